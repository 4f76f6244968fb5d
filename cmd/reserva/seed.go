package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"reserva/internal/domain"
)

var seedLocations = []string{"Monterrey", "Cancún", "Oaxaca", "Mérida", "Guadalajara", "Puebla"}

// seedCmd loads demo records through the regular store operations. Every
// create runs a full persist cycle, so writes are paced with a client-side
// rate limiter instead of hammering the backing store.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load generated demo data into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, closeFn, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		nHotels, _ := cmd.Flags().GetInt("hotels")
		nCustomers, _ := cmd.Flags().GetInt("customers")
		nReservations, _ := cmd.Flags().GetInt("reservations")
		if nReservations > 0 && (nHotels == 0 || nCustomers == 0) {
			return fmt.Errorf("reservations need at least one hotel and one customer")
		}

		limiter := rate.NewLimiter(rate.Limit(cfg.SeedRate), cfg.SeedRate)

		for i := 1; i <= nHotels; i++ {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			h := domain.Hotel{
				ID:       i,
				Name:     fmt.Sprintf("Hotel %d", i),
				Location: seedLocations[i%len(seedLocations)],
				Rooms:    20 + 5*(i%8),
			}
			if err := st.CreateHotel(ctx, h); err != nil {
				return err
			}
		}
		for i := 1; i <= nCustomers; i++ {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			c := domain.Customer{
				ID:    i,
				Name:  fmt.Sprintf("Guest %d", i),
				Email: fmt.Sprintf("guest%d@example.com", i),
			}
			if err := st.CreateCustomer(ctx, c); err != nil {
				return err
			}
		}
		for i := 1; i <= nReservations; i++ {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			r := domain.Reservation{
				ID:         i,
				CustomerID: 1 + (i-1)%nCustomers,
				HotelID:    1 + (i-1)%nHotels,
			}
			if err := st.ReserveRoom(ctx, r); err != nil {
				return err
			}
		}

		log.Info().
			Int("hotels", nHotels).
			Int("customers", nCustomers).
			Int("reservations", nReservations).
			Msg("seed completed")
		return nil
	},
}

func init() {
	seedCmd.Flags().Int("hotels", 10, "hotels to generate")
	seedCmd.Flags().Int("customers", 25, "customers to generate")
	seedCmd.Flags().Int("reservations", 40, "reservations to generate")
	rootCmd.AddCommand(seedCmd)
}
