package main

import (
	"github.com/spf13/cobra"

	"reserva/internal/domain"
)

var reserveCmd = &cobra.Command{
	Use:   "reserve",
	Short: "Create a reservation for a customer at a hotel",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		customer, _ := cmd.Flags().GetInt("customer")
		hotel, _ := cmd.Flags().GetInt("hotel")
		return st.ReserveRoom(ctx, domain.Reservation{ID: id, CustomerID: customer, HotelID: hotel})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel every reservation with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		return st.CancelReservation(ctx, id)
	},
}

func init() {
	reserveCmd.Flags().Int("id", 0, "reservation id (caller-assigned)")
	reserveCmd.Flags().Int("customer", 0, "customer id")
	reserveCmd.Flags().Int("hotel", 0, "hotel id")
	_ = reserveCmd.MarkFlagRequired("id")
	_ = reserveCmd.MarkFlagRequired("customer")
	_ = reserveCmd.MarkFlagRequired("hotel")

	cancelCmd.Flags().Int("id", 0, "reservation id")
	_ = cancelCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(reserveCmd, cancelCmd)
}
