package app

import (
	"context"
	"fmt"
	"time"

	"reserva/internal/adapters/observability"
	"reserva/internal/domain"
)

// Store is the in-memory aggregate over the three collections. It loads
// everything at construction and re-persists all three collections after
// every mutation; reads never touch the gateway.
//
// A Store assumes one caller context per run. It is not safe for concurrent
// use, and two instances pointed at the same backing files will lose updates
// to each other.
type Store struct {
	gw    domain.Gateway
	cache domain.Cache // optional read-side projection, may be nil
	ttl   int          // projection entry TTL in seconds

	hotels       []domain.Hotel
	customers    []domain.Customer
	reservations []domain.Reservation
}

func New(ctx context.Context, gw domain.Gateway, cache domain.Cache, ttl time.Duration) (*Store, error) {
	s := &Store{gw: gw, cache: cache, ttl: int(ttl.Seconds())}
	var err error
	if s.hotels, err = gw.LoadHotels(ctx); err != nil {
		return nil, fmt.Errorf("load hotels: %w", err)
	}
	if s.customers, err = gw.LoadCustomers(ctx); err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if s.reservations, err = gw.LoadReservations(ctx); err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	return s, nil
}

// ---- hotels ----

// CreateHotel appends the hotel as given. Ids are caller-assigned and not
// checked for uniqueness; creating the same id twice leaves two records.
func (s *Store) CreateHotel(ctx context.Context, h domain.Hotel) error {
	s.hotels = append(s.hotels, h)
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	s.projectSet(ctx, hotelKey(h.ID), h)
	observability.ObserveOp("create_hotel")
	return nil
}

// DeleteHotel removes every hotel carrying the id.
func (s *Store) DeleteHotel(ctx context.Context, id int) error {
	kept := s.hotels[:0]
	for _, h := range s.hotels {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	s.hotels = kept
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	s.projectDel(ctx, hotelKey(id))
	observability.ObserveOp("delete_hotel")
	return nil
}

// DisplayHotel returns the first hotel carrying the id. Absence is a normal
// outcome, reported through the bool, never as an error.
func (s *Store) DisplayHotel(id int) (domain.Hotel, bool) {
	for i := range s.hotels {
		if s.hotels[i].ID == id {
			return cloneHotel(s.hotels[i]), true
		}
	}
	return domain.Hotel{}, false
}

// ModifyHotel applies the patch to every hotel carrying the id. Nil patch
// fields are left untouched; non-nil fields always overwrite, so clearing a
// name to "" is expressible.
func (s *Store) ModifyHotel(ctx context.Context, id int, p domain.HotelPatch) error {
	for i := range s.hotels {
		if s.hotels[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.hotels[i].Name = *p.Name
		}
		if p.Location != nil {
			s.hotels[i].Location = *p.Location
		}
		if p.Rooms != nil {
			s.hotels[i].Rooms = *p.Rooms
		}
	}
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	if h, ok := s.DisplayHotel(id); ok {
		s.projectSet(ctx, hotelKey(id), h)
	}
	observability.ObserveOp("modify_hotel")
	return nil
}

// ---- customers ----

func (s *Store) CreateCustomer(ctx context.Context, c domain.Customer) error {
	s.customers = append(s.customers, c)
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	s.projectSet(ctx, customerKey(c.ID), c)
	observability.ObserveOp("create_customer")
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int) error {
	kept := s.customers[:0]
	for _, c := range s.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.customers = kept
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	s.projectDel(ctx, customerKey(id))
	observability.ObserveOp("delete_customer")
	return nil
}

func (s *Store) DisplayCustomer(id int) (domain.Customer, bool) {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return s.customers[i], true
		}
	}
	return domain.Customer{}, false
}

func (s *Store) ModifyCustomer(ctx context.Context, id int, p domain.CustomerPatch) error {
	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		if p.Name != nil {
			s.customers[i].Name = *p.Name
		}
		if p.Email != nil {
			s.customers[i].Email = *p.Email
		}
	}
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	if c, ok := s.DisplayCustomer(id); ok {
		s.projectSet(ctx, customerKey(id), c)
	}
	observability.ObserveOp("modify_customer")
	return nil
}

// ---- reservations ----

// ReserveRoom appends the reservation and stamps its customer id onto the
// reservations list of every hotel carrying the reservation's hotel id.
// Neither the hotel nor the customer has to exist, and the hotel's room
// count is never consulted.
func (s *Store) ReserveRoom(ctx context.Context, r domain.Reservation) error {
	s.reservations = append(s.reservations, r)
	var touched []int
	for i := range s.hotels {
		if s.hotels[i].ID == r.HotelID {
			s.hotels[i].Reservations = append(s.hotels[i].Reservations, r.CustomerID)
			touched = append(touched, i)
		}
	}
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	s.projectSet(ctx, reservationKey(r.ID), r)
	for _, i := range touched {
		s.projectSet(ctx, hotelKey(s.hotels[i].ID), cloneHotel(s.hotels[i]))
	}
	observability.ObserveOp("reserve_room")
	return nil
}

// CancelReservation removes every reservation carrying the id, and prunes
// entries equal to that id from every hotel's reservations list.
//
// Hotel.Reservations holds customer ids, yet the pruning here matches the
// reservation id; the two only line up when a customer id happens to collide
// with the reservation id. This mirrors the established on-disk behavior and
// is kept as-is rather than corrected.
func (s *Store) CancelReservation(ctx context.Context, id int) error {
	kept := s.reservations[:0]
	for _, r := range s.reservations {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.reservations = kept
	var touched []int
	for i := range s.hotels {
		pruned := s.hotels[i].Reservations[:0]
		changed := false
		for _, cid := range s.hotels[i].Reservations {
			if cid == id {
				changed = true
				continue
			}
			pruned = append(pruned, cid)
		}
		s.hotels[i].Reservations = pruned
		if changed {
			touched = append(touched, i)
		}
	}
	if err := s.persistAll(ctx); err != nil {
		return err
	}
	s.projectDel(ctx, reservationKey(id))
	for _, i := range touched {
		s.projectSet(ctx, hotelKey(s.hotels[i].ID), cloneHotel(s.hotels[i]))
	}
	observability.ObserveOp("cancel_reservation")
	return nil
}

// Reservations returns a snapshot of the reservation collection.
func (s *Store) Reservations() []domain.Reservation {
	out := make([]domain.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

// ---- internals ----

// persistAll writes all three collections, whole, on every mutation. There
// are no partial writes; the first gateway failure aborts and surfaces.
func (s *Store) persistAll(ctx context.Context) error {
	start := time.Now()
	if err := s.gw.SaveHotels(ctx, s.hotels); err != nil {
		return fmt.Errorf("persist hotels: %w", err)
	}
	if err := s.gw.SaveCustomers(ctx, s.customers); err != nil {
		return fmt.Errorf("persist customers: %w", err)
	}
	if err := s.gw.SaveReservations(ctx, s.reservations); err != nil {
		return fmt.Errorf("persist reservations: %w", err)
	}
	observability.ObservePersist(time.Since(start))
	return nil
}

func (s *Store) projectSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, s.ttl)
}

func (s *Store) projectDel(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, key)
}

// cloneHotel copies the reservations slice so callers never alias the
// store's backing array.
func cloneHotel(h domain.Hotel) domain.Hotel {
	if n := len(h.Reservations); n > 0 {
		res := make([]int, n)
		copy(res, h.Reservations)
		h.Reservations = res
	}
	return h
}

func hotelKey(id int) string       { return fmt.Sprintf("hotel:%d", id) }
func customerKey(id int) string    { return fmt.Sprintf("customer:%d", id) }
func reservationKey(id int) string { return fmt.Sprintf("reservation:%d", id) }
