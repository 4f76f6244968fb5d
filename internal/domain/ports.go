package domain

import "context"

// Gateway persists the three named collections. Save overwrites the whole
// collection and must propagate I/O failure to the caller. Load returns an
// empty collection for a missing file; what it does with malformed content
// is backend policy (the JSON file backend degrades to empty with a
// diagnostic so the store stays bootable).
type Gateway interface {
	SaveHotels(ctx context.Context, hs []Hotel) error
	SaveCustomers(ctx context.Context, cs []Customer) error
	SaveReservations(ctx context.Context, rs []Reservation) error

	LoadHotels(ctx context.Context) ([]Hotel, error)
	LoadCustomers(ctx context.Context) ([]Customer, error)
	LoadReservations(ctx context.Context) ([]Reservation, error)
}

// Cache is the optional read-side projection: after each persist the store
// mirrors affected records into it so sibling processes can observe current
// state without parsing the data files. All calls are best-effort.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
