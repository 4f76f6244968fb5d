// Package mysql is the alternative Gateway for deployments that already run
// a database: same collection contract as the file backend, one row per
// collection.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"reserva/internal/adapters/observability"
	"reserva/internal/domain"
	"reserva/internal/storage/record"
)

const (
	hotelsCollection       = "hotels"
	customersCollection    = "customers"
	reservationsCollection = "reservations"
)

type Gateway struct{ db *sql.DB }

func New(db *sql.DB) *Gateway { return &Gateway{db: db} }

// EnsureSchema creates the collections table when missing.
func (g *Gateway) EnsureSchema(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, createCollectionsSQL)
	return err
}

func (g *Gateway) SaveHotels(ctx context.Context, hs []domain.Hotel) error {
	b, err := record.EncodeHotels(hs)
	if err != nil {
		return fmt.Errorf("encode hotels: %w", err)
	}
	return g.save(ctx, hotelsCollection, b)
}

func (g *Gateway) SaveCustomers(ctx context.Context, cs []domain.Customer) error {
	b, err := record.EncodeCustomers(cs)
	if err != nil {
		return fmt.Errorf("encode customers: %w", err)
	}
	return g.save(ctx, customersCollection, b)
}

func (g *Gateway) SaveReservations(ctx context.Context, rs []domain.Reservation) error {
	b, err := record.EncodeReservations(rs)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}
	return g.save(ctx, reservationsCollection, b)
}

func (g *Gateway) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	return load(ctx, g, hotelsCollection, record.DecodeHotels)
}

func (g *Gateway) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	return load(ctx, g, customersCollection, record.DecodeCustomers)
}

func (g *Gateway) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	return load(ctx, g, reservationsCollection, record.DecodeReservations)
}

func (g *Gateway) save(ctx context.Context, name string, payload []byte) error {
	if _, err := g.db.ExecContext(ctx, upsertCollectionSQL, name, string(payload)); err != nil {
		observability.ObserveGateway("mysql", "write_error")
		return fmt.Errorf("upsert collection %s: %w", name, err)
	}
	observability.ObserveGateway("mysql", "save")
	return nil
}

// load mirrors the file backend's policy: no row is an empty collection, a
// payload that fails strict decode degrades to empty with a diagnostic.
// Database errors, unlike corrupt payloads, do propagate.
func load[T any](ctx context.Context, g *Gateway, name string, decode func([]byte) ([]T, error)) ([]T, error) {
	var payload string
	err := g.db.QueryRowContext(ctx, selectCollectionSQL, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select collection %s: %w", name, err)
	}
	recs, err := decode([]byte(payload))
	if err != nil {
		log.Warn().Str("collection", name).Err(err).Msg("collection malformed, starting empty")
		observability.ObserveGateway("mysql", "corrupt")
		return nil, nil
	}
	observability.ObserveGateway("mysql", "load")
	return recs, nil
}
