package domain

// Hotel is one property record. The id is caller-assigned and NOT unique:
// the store accepts duplicates, and the plural operations (delete, modify)
// act on every matching record.
type Hotel struct {
	ID       int    `json:"hotel_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Rooms    int    `json:"rooms"`
	// Reservations is a denormalized convenience list of the customer ids
	// currently holding a room here. It is never used as a capacity check
	// against Rooms.
	Reservations []int `json:"reservations"`
}

type Customer struct {
	ID    int    `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Reservation links a customer to a hotel. Neither reference is checked at
// creation time; a reservation may point at ids that no record carries.
type Reservation struct {
	ID         int `json:"reservation_id"`
	CustomerID int `json:"customer_id"`
	HotelID    int `json:"hotel_id"`
}

// HotelPatch carries the fields a modify may overwrite. A nil field means
// "leave unchanged"; a non-nil field always wins, so clearing a value to its
// zero is distinguishable from not touching it.
type HotelPatch struct {
	Name     *string
	Location *string
	Rooms    *int
}

type CustomerPatch struct {
	Name  *string
	Email *string
}
