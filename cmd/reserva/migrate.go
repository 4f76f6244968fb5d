package main

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"reserva/internal/domain"
	"reserva/internal/storage/jsonfile"
	mysqlgw "reserva/internal/storage/mysql"
)

// migrateCmd copies the three collections between the JSON file backend
// (DATA_DIR) and the MySQL backend (MYSQL_DSN). Collections are independent
// files/rows, so the copies run concurrently under a bounded semaphore.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy all collections between the jsonfile and mysql backends",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		to, _ := cmd.Flags().GetString("to")
		if to != "mysql" && to != "jsonfile" {
			return fmt.Errorf("unknown destination %q (want mysql or jsonfile)", to)
		}
		if cfg.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN must be set to migrate")
		}

		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return fmt.Errorf("sql.Open: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db.Ping: %w", err)
		}
		mgw := mysqlgw.New(db)
		if err := mgw.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		fgw := jsonfile.New(cfg.DataDir)

		var src domain.Gateway = mgw
		var dst domain.Gateway = fgw
		if to == "mysql" {
			src, dst = fgw, mgw
		}

		tasks := []struct {
			name string
			copy func(context.Context) error
		}{
			{"hotels", func(ctx context.Context) error {
				hs, err := src.LoadHotels(ctx)
				if err != nil {
					return err
				}
				return dst.SaveHotels(ctx, hs)
			}},
			{"customers", func(ctx context.Context) error {
				cs, err := src.LoadCustomers(ctx)
				if err != nil {
					return err
				}
				return dst.SaveCustomers(ctx, cs)
			}},
			{"reservations", func(ctx context.Context) error {
				rs, err := src.LoadReservations(ctx)
				if err != nil {
					return err
				}
				return dst.SaveReservations(ctx, rs)
			}},
		}

		sem := semaphore.NewWeighted(int64(cfg.MigrateWorkers))
		var wg sync.WaitGroup
		var mu sync.Mutex
		var firstErr error

		for _, t := range tasks {
			t := t
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)
				if err := t.copy(ctx); err != nil {
					log.Warn().Str("collection", t.name).Err(err).Msg("migrate failed")
					mu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("migrate %s: %w", t.name, err)
					}
					mu.Unlock()
					return
				}
				log.Info().Str("collection", t.name).Str("to", to).Msg("migrate ok")
			}()
		}
		wg.Wait()
		return firstErr
	},
}

func init() {
	migrateCmd.Flags().String("to", "mysql", "destination backend: mysql or jsonfile")
	rootCmd.AddCommand(migrateCmd)
}
