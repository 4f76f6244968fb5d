package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reserva/internal/domain"
)

var customerCmd = &cobra.Command{Use: "customer", Short: "Customer record operations"}

var customerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer record",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		return st.CreateCustomer(ctx, domain.Customer{ID: id, Name: name, Email: email})
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete every customer with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		return st.DeleteCustomer(ctx, id)
	},
}

var customerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the first customer with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, closeFn, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		c, ok := st.DisplayCustomer(id)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "customer %d not found\n", id)
			return nil
		}
		return printJSON(cmd, c)
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields on every customer with the id",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()
		id, _ := cmd.Flags().GetInt("id")
		var p domain.CustomerPatch
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			p.Name = &v
		}
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			p.Email = &v
		}
		return st.ModifyCustomer(ctx, id, p)
	},
}

func init() {
	customerCreateCmd.Flags().Int("id", 0, "customer id (caller-assigned)")
	customerCreateCmd.Flags().String("name", "", "customer name")
	customerCreateCmd.Flags().String("email", "", "customer email")
	_ = customerCreateCmd.MarkFlagRequired("id")

	customerDeleteCmd.Flags().Int("id", 0, "customer id")
	_ = customerDeleteCmd.MarkFlagRequired("id")

	customerShowCmd.Flags().Int("id", 0, "customer id")
	_ = customerShowCmd.MarkFlagRequired("id")

	customerUpdateCmd.Flags().Int("id", 0, "customer id")
	customerUpdateCmd.Flags().String("name", "", "new name")
	customerUpdateCmd.Flags().String("email", "", "new email")
	_ = customerUpdateCmd.MarkFlagRequired("id")

	customerCmd.AddCommand(customerCreateCmd, customerDeleteCmd, customerShowCmd, customerUpdateCmd)
	rootCmd.AddCommand(customerCmd)
}
