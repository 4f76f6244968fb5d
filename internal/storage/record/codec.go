// Package record defines the wire shape of the three persisted collections
// and strict encode/decode between it and the domain types. Field names are
// stable lower_underscore; decoding rejects unknown fields and records with
// required fields missing, so a file that drifted from the schema reads as
// malformed instead of silently half-parsing.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"

	"reserva/internal/domain"
)

type hotelRecord struct {
	HotelID      *int    `json:"hotel_id"`
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Rooms        *int    `json:"rooms"`
	Reservations []int   `json:"reservations"`
}

type customerRecord struct {
	CustomerID *int    `json:"customer_id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
}

type reservationRecord struct {
	ReservationID *int `json:"reservation_id"`
	CustomerID    *int `json:"customer_id"`
	HotelID       *int `json:"hotel_id"`
}

func EncodeHotels(hs []domain.Hotel) ([]byte, error) {
	out := make([]hotelRecord, 0, len(hs))
	for i := range hs {
		h := hs[i]
		res := h.Reservations
		if res == nil {
			res = []int{} // keep the persisted array explicit, never null
		}
		out = append(out, hotelRecord{
			HotelID:      &h.ID,
			Name:         &h.Name,
			Location:     &h.Location,
			Rooms:        &h.Rooms,
			Reservations: res,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func DecodeHotels(b []byte) ([]domain.Hotel, error) {
	var raw []hotelRecord
	if err := decodeStrict(b, &raw); err != nil {
		return nil, err
	}
	hs := make([]domain.Hotel, 0, len(raw))
	for i, r := range raw {
		if r.HotelID == nil || r.Name == nil || r.Location == nil || r.Rooms == nil {
			return nil, fmt.Errorf("hotel record %d: missing required field", i)
		}
		hs = append(hs, domain.Hotel{
			ID:           *r.HotelID,
			Name:         *r.Name,
			Location:     *r.Location,
			Rooms:        *r.Rooms,
			Reservations: r.Reservations,
		})
	}
	return hs, nil
}

func EncodeCustomers(cs []domain.Customer) ([]byte, error) {
	out := make([]customerRecord, 0, len(cs))
	for i := range cs {
		c := cs[i]
		out = append(out, customerRecord{CustomerID: &c.ID, Name: &c.Name, Email: &c.Email})
	}
	return json.MarshalIndent(out, "", "  ")
}

func DecodeCustomers(b []byte) ([]domain.Customer, error) {
	var raw []customerRecord
	if err := decodeStrict(b, &raw); err != nil {
		return nil, err
	}
	cs := make([]domain.Customer, 0, len(raw))
	for i, r := range raw {
		if r.CustomerID == nil || r.Name == nil || r.Email == nil {
			return nil, fmt.Errorf("customer record %d: missing required field", i)
		}
		cs = append(cs, domain.Customer{ID: *r.CustomerID, Name: *r.Name, Email: *r.Email})
	}
	return cs, nil
}

func EncodeReservations(rs []domain.Reservation) ([]byte, error) {
	out := make([]reservationRecord, 0, len(rs))
	for i := range rs {
		r := rs[i]
		out = append(out, reservationRecord{ReservationID: &r.ID, CustomerID: &r.CustomerID, HotelID: &r.HotelID})
	}
	return json.MarshalIndent(out, "", "  ")
}

func DecodeReservations(b []byte) ([]domain.Reservation, error) {
	var raw []reservationRecord
	if err := decodeStrict(b, &raw); err != nil {
		return nil, err
	}
	rs := make([]domain.Reservation, 0, len(raw))
	for i, r := range raw {
		if r.ReservationID == nil || r.CustomerID == nil || r.HotelID == nil {
			return nil, fmt.Errorf("reservation record %d: missing required field", i)
		}
		rs = append(rs, domain.Reservation{ID: *r.ReservationID, CustomerID: *r.CustomerID, HotelID: *r.HotelID})
	}
	return rs, nil
}

func decodeStrict(b []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// trailing garbage after the array is malformed too
	if dec.More() {
		return fmt.Errorf("trailing data after collection array")
	}
	return nil
}
