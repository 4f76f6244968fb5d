package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"reserva/internal/domain"
)

var hotelCmd = &cobra.Command{Use: "hotel", Short: "Hotel record operations"}

var hotelCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a hotel record",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		name, _ := cmd.Flags().GetString("name")
		location, _ := cmd.Flags().GetString("location")
		rooms, _ := cmd.Flags().GetInt("rooms")
		return st.CreateHotel(ctx, domain.Hotel{ID: id, Name: name, Location: location, Rooms: rooms})
	},
}

var hotelDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete every hotel with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		return st.DeleteHotel(ctx, id)
	},
}

var hotelShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the first hotel with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeFn, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		h, ok := st.DisplayHotel(id)
		if !ok {
			// absence is a normal outcome, not a command failure
			fmt.Fprintf(cmd.OutOrStdout(), "hotel %d not found\n", id)
			return nil
		}
		return printJSON(cmd, h)
	},
}

var hotelUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields on every hotel with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		// only flags the caller actually passed become part of the patch,
		// so --name "" clears the name while omitting --name leaves it alone
		var p domain.HotelPatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			p.Name = &v
		}
		if cmd.Flags().Changed("location") {
			v, _ := cmd.Flags().GetString("location")
			p.Location = &v
		}
		if cmd.Flags().Changed("rooms") {
			v, _ := cmd.Flags().GetInt("rooms")
			p.Rooms = &v
		}
		return st.ModifyHotel(ctx, id, p)
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func init() {
	hotelCreateCmd.Flags().Int("id", 0, "hotel id (caller-assigned)")
	hotelCreateCmd.Flags().String("name", "", "hotel name")
	hotelCreateCmd.Flags().String("location", "", "hotel location")
	hotelCreateCmd.Flags().Int("rooms", 0, "room count")
	_ = hotelCreateCmd.MarkFlagRequired("id")

	hotelDeleteCmd.Flags().Int("id", 0, "hotel id")
	_ = hotelDeleteCmd.MarkFlagRequired("id")

	hotelShowCmd.Flags().Int("id", 0, "hotel id")
	_ = hotelShowCmd.MarkFlagRequired("id")

	hotelUpdateCmd.Flags().Int("id", 0, "hotel id")
	hotelUpdateCmd.Flags().String("name", "", "new name")
	hotelUpdateCmd.Flags().String("location", "", "new location")
	hotelUpdateCmd.Flags().Int("rooms", 0, "new room count")
	_ = hotelUpdateCmd.MarkFlagRequired("id")

	hotelCmd.AddCommand(hotelCreateCmd, hotelDeleteCmd, hotelShowCmd, hotelUpdateCmd)
	rootCmd.AddCommand(hotelCmd)
}
