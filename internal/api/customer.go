package api

import (
	"context"
	"net/url"
	"time"

	"parking-bot/internal/models"
)

// SlotFilters narrows the available-slot listing. The ANY sentinel (or a
// zero value) leaves that dimension unfiltered.
type SlotFilters struct {
	Size        models.SlotSize
	VehicleType models.VehicleType
}

func (f SlotFilters) query() url.Values {
	q := url.Values{}
	if f.Size != "" && f.Size != models.AnySize {
		q.Set("size", string(f.Size))
	}
	if f.VehicleType != "" && f.VehicleType != models.VehicleAny {
		q.Set("vehicleType", string(f.VehicleType))
	}
	return q
}

// AvailableSlots lists slots bookable by the customer, optionally filtered.
func (c *Client) AvailableSlots(ctx context.Context, filters SlotFilters) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.get(ctx, "/customer/slots", filters.query(), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateBooking requests a reservation for the given window. Conflicts and
// availability are decided server-side and come back as an *Error.
func (c *Client) CreateBooking(ctx context.Context, slotID string, start, end time.Time) (models.Booking, error) {
	body := map[string]string{
		"slotId":    slotID,
		"startTime": start.Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
	}
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.post(ctx, "/customer/bookings", body, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

// MyBookings lists the caller's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.get(ctx, "/customer/bookings/me", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Booking fetches one booking owned by the caller.
func (c *Client) Booking(ctx context.Context, id string) (models.Booking, error) {
	var booking models.Booking
	if err := c.get(ctx, "/customer/bookings/"+id, nil, &booking); err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// CancelBooking asks the server to cancel. Whether a terminal booking may be
// cancelled again is the server's call; the client just relays the answer.
func (c *Client) CancelBooking(ctx context.Context, id string) (models.Booking, error) {
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.patch(ctx, "/customer/bookings/"+id+"/cancel", nil, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

// Ticket fetches the priced summary for a booking. Read-only and safe to
// call repeatedly.
func (c *Client) Ticket(ctx context.Context, bookingID string) (models.Ticket, error) {
	var ticket models.Ticket
	if err := c.get(ctx, "/customer/bookings/"+bookingID+"/ticket", nil, &ticket); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}
