package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"reserva/internal/app"
	"reserva/internal/domain"
)

// ---- fakes ----

type fakeGateway struct {
	hotels       []domain.Hotel
	customers    []domain.Customer
	reservations []domain.Reservation

	saves     int
	failSaves bool
}

var errDiskFull = errors.New("disk full")

func (f *fakeGateway) SaveHotels(ctx context.Context, hs []domain.Hotel) error {
	if f.failSaves {
		return errDiskFull
	}
	f.hotels = append([]domain.Hotel(nil), hs...)
	f.saves++
	return nil
}

func (f *fakeGateway) SaveCustomers(ctx context.Context, cs []domain.Customer) error {
	if f.failSaves {
		return errDiskFull
	}
	f.customers = append([]domain.Customer(nil), cs...)
	f.saves++
	return nil
}

func (f *fakeGateway) SaveReservations(ctx context.Context, rs []domain.Reservation) error {
	if f.failSaves {
		return errDiskFull
	}
	f.reservations = append([]domain.Reservation(nil), rs...)
	f.saves++
	return nil
}

func (f *fakeGateway) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeGateway) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	return f.customers, nil
}

func (f *fakeGateway) LoadReservations(ctx context.Context) ([]domain.Reservation, error) {
	return f.reservations, nil
}

type fakeCache struct {
	sets map[string]any
	dels []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) { return false, nil }

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.sets == nil {
		c.sets = map[string]any{}
	}
	c.sets[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	return nil
}

func newStore(t *testing.T, gw *fakeGateway, cache domain.Cache) *app.Store {
	t.Helper()
	s, err := app.New(context.Background(), gw, cache, 10*time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }

// ---- tests ----

func TestCreateHotel_Display(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	h := domain.Hotel{ID: 1, Name: "Test Hotel", Location: "Test City", Rooms: 10}
	if err := s.CreateHotel(ctx, h); err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}

	got, ok := s.DisplayHotel(1)
	if !ok {
		t.Fatalf("expected hotel 1 to exist")
	}
	if got.Name != "Test Hotel" || got.Location != "Test City" || got.Rooms != 10 {
		t.Fatalf("unexpected hotel: %+v", got)
	}
}

func TestDisplayHotel_NotFoundIsNormal(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	if _, ok := s.DisplayHotel(99); ok {
		t.Fatalf("expected not found")
	}
}

func TestCreateThenDeleteCustomer(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	c := domain.Customer{ID: 1, Name: "Test User", Email: "test.user@example.com"}
	if err := s.CreateCustomer(ctx, c); err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}
	if err := s.DeleteCustomer(ctx, 1); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}
	if _, ok := s.DisplayCustomer(1); ok {
		t.Fatalf("customer 1 should be gone")
	}
}

func TestModifyHotel_PatchOnlyTouchesSetFields(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	if err := s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "Test Hotel", Location: "Test City", Rooms: 10}); err != nil {
		t.Fatalf("CreateHotel: %v", err)
	}
	if err := s.ModifyHotel(ctx, 1, domain.HotelPatch{Name: ptr("Updated Hotel")}); err != nil {
		t.Fatalf("ModifyHotel: %v", err)
	}

	got, _ := s.DisplayHotel(1)
	if got.Name != "Updated Hotel" {
		t.Fatalf("name not updated: %+v", got)
	}
	if got.Location != "Test City" || got.Rooms != 10 {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	// a set field always wins, even when the new value is the zero value
	if err := s.ModifyHotel(ctx, 1, domain.HotelPatch{Rooms: ptr(0)}); err != nil {
		t.Fatalf("ModifyHotel: %v", err)
	}
	got, _ = s.DisplayHotel(1)
	if got.Rooms != 0 {
		t.Fatalf("explicit zero should overwrite, got %d", got.Rooms)
	}
}

func TestModifyHotel_AppliesToEveryDuplicate(t *testing.T) {
	// duplicate ids are allowed at creation; modify has no uniqueness assumption
	gw := &fakeGateway{}
	s := newStore(t, gw, nil)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "A", Rooms: 1})
	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "B", Rooms: 2})

	if err := s.ModifyHotel(ctx, 1, domain.HotelPatch{Location: ptr("Centro")}); err != nil {
		t.Fatalf("ModifyHotel: %v", err)
	}
	if len(gw.hotels) != 2 {
		t.Fatalf("expected both duplicates persisted, got %d", len(gw.hotels))
	}
	for _, h := range gw.hotels {
		if h.Location != "Centro" {
			t.Fatalf("duplicate not patched: %+v", h)
		}
	}
}

func TestReserveRoom_AppendsAndDenormalizes(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "Test Hotel", Rooms: 10})
	_ = s.CreateCustomer(ctx, domain.Customer{ID: 5, Name: "Test User"})

	if err := s.ReserveRoom(ctx, domain.Reservation{ID: 1, CustomerID: 5, HotelID: 1}); err != nil {
		t.Fatalf("ReserveRoom: %v", err)
	}

	found := false
	for _, r := range s.Reservations() {
		if r.ID == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("reservation 1 not present")
	}

	h, _ := s.DisplayHotel(1)
	if len(h.Reservations) != 1 || h.Reservations[0] != 5 {
		t.Fatalf("hotel list should carry customer id 5: %v", h.Reservations)
	}
}

func TestReserveRoom_UnknownHotelStillRecorded(t *testing.T) {
	// no referential check: the reservation lands even with no matching hotel
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	if err := s.ReserveRoom(ctx, domain.Reservation{ID: 3, CustomerID: 9, HotelID: 404}); err != nil {
		t.Fatalf("ReserveRoom: %v", err)
	}
	if n := len(s.Reservations()); n != 1 {
		t.Fatalf("expected 1 reservation, got %d", n)
	}
}

func TestCancelReservation_RemovesIt(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "Test Hotel", Rooms: 10})
	_ = s.ReserveRoom(ctx, domain.Reservation{ID: 1, CustomerID: 1, HotelID: 1})

	if err := s.CancelReservation(ctx, 1); err != nil {
		t.Fatalf("CancelReservation: %v", err)
	}
	for _, r := range s.Reservations() {
		if r.ID == 1 {
			t.Fatalf("reservation 1 still present")
		}
	}
}

// Hotel.Reservations carries customer ids while cancellation prunes it by
// reservation id, so the list entry only disappears when the two ids happen
// to collide. Both sides of that coincidence are pinned down here.
func TestCancelReservation_PrunesHotelListByReservationID(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "Test Hotel", Rooms: 10})

	// colliding ids: customer 7 holds reservation 7
	_ = s.ReserveRoom(ctx, domain.Reservation{ID: 7, CustomerID: 7, HotelID: 1})
	if err := s.CancelReservation(ctx, 7); err != nil {
		t.Fatalf("CancelReservation: %v", err)
	}
	h, _ := s.DisplayHotel(1)
	if len(h.Reservations) != 0 {
		t.Fatalf("colliding entry should be pruned: %v", h.Reservations)
	}

	// disjoint ids: customer 7 holds reservation 9; the hotel list keeps the
	// stale customer id after cancellation
	_ = s.ReserveRoom(ctx, domain.Reservation{ID: 9, CustomerID: 7, HotelID: 1})
	if err := s.CancelReservation(ctx, 9); err != nil {
		t.Fatalf("CancelReservation: %v", err)
	}
	for _, r := range s.Reservations() {
		if r.ID == 9 {
			t.Fatalf("reservation 9 still present")
		}
	}
	h, _ = s.DisplayHotel(1)
	if len(h.Reservations) != 1 || h.Reservations[0] != 7 {
		t.Fatalf("expected stale customer id 7 to survive: %v", h.Reservations)
	}
}

func TestEveryMutationPersistsAllThreeCollections(t *testing.T) {
	gw := &fakeGateway{}
	s := newStore(t, gw, nil)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1})
	if gw.saves != 3 {
		t.Fatalf("expected 3 collection saves after one mutation, got %d", gw.saves)
	}
	_ = s.DeleteHotel(ctx, 1)
	if gw.saves != 6 {
		t.Fatalf("expected 6 collection saves after two mutations, got %d", gw.saves)
	}

	// reads never touch the gateway
	_, _ = s.DisplayHotel(1)
	if gw.saves != 6 {
		t.Fatalf("display must not persist, got %d saves", gw.saves)
	}
}

func TestSaveFailurePropagates(t *testing.T) {
	gw := &fakeGateway{failSaves: true}
	s := newStore(t, gw, nil)

	err := s.CreateHotel(context.Background(), domain.Hotel{ID: 1})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected disk full error, got %v", err)
	}
}

func TestNew_LoadsExistingCollections(t *testing.T) {
	gw := &fakeGateway{
		hotels:       []domain.Hotel{{ID: 2, Name: "Loaded"}},
		customers:    []domain.Customer{{ID: 3, Name: "Loaded Too"}},
		reservations: []domain.Reservation{{ID: 4, CustomerID: 3, HotelID: 2}},
	}
	s := newStore(t, gw, nil)

	if h, ok := s.DisplayHotel(2); !ok || h.Name != "Loaded" {
		t.Fatalf("hotel not loaded: %+v ok=%v", h, ok)
	}
	if c, ok := s.DisplayCustomer(3); !ok || c.Name != "Loaded Too" {
		t.Fatalf("customer not loaded: %+v ok=%v", c, ok)
	}
	if n := len(s.Reservations()); n != 1 {
		t.Fatalf("reservations not loaded: %d", n)
	}
}

func TestProjectionMirrorsMutations(t *testing.T) {
	cache := &fakeCache{}
	s := newStore(t, &fakeGateway{}, cache)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1, Name: "Test Hotel"})
	if _, ok := cache.sets["hotel:1"]; !ok {
		t.Fatalf("create should project hotel:1, sets=%v", cache.sets)
	}

	_ = s.ReserveRoom(ctx, domain.Reservation{ID: 2, CustomerID: 8, HotelID: 1})
	if _, ok := cache.sets["reservation:2"]; !ok {
		t.Fatalf("reserve should project reservation:2")
	}

	_ = s.DeleteHotel(ctx, 1)
	if len(cache.dels) == 0 || cache.dels[len(cache.dels)-1] != "hotel:1" {
		t.Fatalf("delete should drop hotel:1, dels=%v", cache.dels)
	}
}

func TestDisplayHotel_CopyDoesNotAliasStore(t *testing.T) {
	s := newStore(t, &fakeGateway{}, nil)
	ctx := context.Background()

	_ = s.CreateHotel(ctx, domain.Hotel{ID: 1})
	_ = s.ReserveRoom(ctx, domain.Reservation{ID: 1, CustomerID: 4, HotelID: 1})

	h, _ := s.DisplayHotel(1)
	h.Reservations[0] = 999

	again, _ := s.DisplayHotel(1)
	if again.Reservations[0] != 4 {
		t.Fatalf("caller mutation leaked into store: %v", again.Reservations)
	}
}
