// Package jsonfile is the default Gateway: each collection lives in its own
// JSON array file under a data directory.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"reserva/internal/adapters/observability"
	"reserva/internal/domain"
	"reserva/internal/storage/record"
)

const (
	hotelsFile       = "hotels.json"
	customersFile    = "customers.json"
	reservationsFile = "reservations.json"
)

type Gateway struct{ dir string }

func New(dir string) *Gateway { return &Gateway{dir: dir} }

func (g *Gateway) SaveHotels(ctx context.Context, hs []domain.Hotel) error {
	b, err := record.EncodeHotels(hs)
	if err != nil {
		return fmt.Errorf("encode hotels: %w", err)
	}
	return g.write(hotelsFile, b)
}

func (g *Gateway) SaveCustomers(ctx context.Context, cs []domain.Customer) error {
	b, err := record.EncodeCustomers(cs)
	if err != nil {
		return fmt.Errorf("encode customers: %w", err)
	}
	return g.write(customersFile, b)
}

func (g *Gateway) SaveReservations(ctx context.Context, rs []domain.Reservation) error {
	b, err := record.EncodeReservations(rs)
	if err != nil {
		return fmt.Errorf("encode reservations: %w", err)
	}
	return g.write(reservationsFile, b)
}

func (g *Gateway) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	return load(g, hotelsFile, record.DecodeHotels)
}

func (g *Gateway) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	return load(g, customersFile, record.DecodeCustomers)
}

func (g *Gateway) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	return load(g, reservationsFile, record.DecodeReservations)
}

// write overwrites the collection file in full. I/O failure here is the one
// unrecoverable outcome in the persistence contract, so it propagates.
func (g *Gateway) write(name string, b []byte) error {
	path := filepath.Join(g.dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		observability.ObserveGateway("jsonfile", "write_error")
		return fmt.Errorf("write %s: %w", path, err)
	}
	observability.ObserveGateway("jsonfile", "save")
	return nil
}

// load reads one collection. A missing file is an empty collection; a file
// that cannot be read or decoded degrades to empty with a diagnostic so a
// corrupted data directory never blocks startup.
func load[T any](g *Gateway, name string, decode func([]byte) ([]T, error)) ([]T, error) {
	path := filepath.Join(g.dir, name)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("collection unreadable, starting empty")
		observability.ObserveGateway("jsonfile", "corrupt")
		return nil, nil
	}
	recs, err := decode(b)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("collection malformed, starting empty")
		observability.ObserveGateway("jsonfile", "corrupt")
		return nil, nil
	}
	observability.ObserveGateway("jsonfile", "load")
	return recs, nil
}
