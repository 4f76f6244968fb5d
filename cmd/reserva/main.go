package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"reserva/internal/adapters/observability"
	redisad "reserva/internal/adapters/redis"
	"reserva/internal/app"
	"reserva/internal/domain"
	"reserva/internal/shared"
	"reserva/internal/storage/jsonfile"
	mysqlgw "reserva/internal/storage/mysql"
)

var cfg shared.Config

var rootCmd = &cobra.Command{
	Use:           "reserva",
	Short:         "Hotel reservation store with file-backed persistence",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = shared.Load()
		log.Logger = observability.NewLogger(cfg.AppEnv)
		observability.ServeOps(cfg.OpsAddr)
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// newGateway picks the persistence backend: MySQL when MYSQL_DSN is set,
// the JSON file directory otherwise.
func newGateway(ctx context.Context) (domain.Gateway, func(), error) {
	if cfg.MySQLDSN == "" {
		return jsonfile.New(cfg.DataDir), func() {}, nil
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db.Ping: %w", err)
	}
	gw := mysqlgw.New(db)
	if err := gw.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}
	return gw, func() { _ = db.Close() }, nil
}

func newCache() domain.Cache {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
}

func openStore(ctx context.Context) (*app.Store, func(), error) {
	gw, closeFn, err := newGateway(ctx)
	if err != nil {
		return nil, nil, err
	}
	st, err := app.New(ctx, gw, newCache(), cfg.CacheTTL)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return st, closeFn, nil
}
