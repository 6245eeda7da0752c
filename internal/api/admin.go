package api

import (
	"context"

	"parking-bot/internal/models"
)

// SlotInput carries the editable slot fields for create and update.
type SlotInput struct {
	Number      string             `json:"number"`
	Size        models.SlotSize    `json:"size"`
	VehicleType models.VehicleType `json:"vehicleType"`
	Location    string             `json:"location"`
	Status      models.SlotStatus  `json:"status"`
}

func (c *Client) Slots(ctx context.Context) ([]models.Slot, error) {
	var out struct {
		Slots []models.Slot `json:"slots"`
	}
	if err := c.get(ctx, "/slots", nil, &out); err != nil {
		return nil, err
	}
	return out.Slots, nil
}

func (c *Client) CreateSlot(ctx context.Context, in SlotInput) (models.Slot, error) {
	var out struct {
		Slot models.Slot `json:"slot"`
	}
	if err := c.post(ctx, "/slots", in, &out); err != nil {
		return models.Slot{}, err
	}
	return out.Slot, nil
}

func (c *Client) UpdateSlot(ctx context.Context, id string, in SlotInput) (models.Slot, error) {
	var out struct {
		Slot models.Slot `json:"slot"`
	}
	if err := c.patch(ctx, "/slots/"+id, in, &out); err != nil {
		return models.Slot{}, err
	}
	return out.Slot, nil
}

func (c *Client) DeleteSlot(ctx context.Context, id string) error {
	return c.delete(ctx, "/slots/"+id)
}

func (c *Client) AllBookings(ctx context.Context) ([]models.Booking, error) {
	var out struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if err := c.get(ctx, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) AdminBooking(ctx context.Context, id string) (models.Booking, error) {
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.get(ctx, "/bookings/"+id, nil, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	body := map[string]string{"status": string(status)}
	var out struct {
		Booking models.Booking `json:"booking"`
	}
	if err := c.patch(ctx, "/bookings/"+id+"/status", body, &out); err != nil {
		return models.Booking{}, err
	}
	return out.Booking, nil
}

func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "/bookings/"+id)
}

func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) User(ctx context.Context, id string) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "/users/"+id, nil, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// UserInput carries the admin-editable user fields.
type UserInput struct {
	Name       string      `json:"name,omitempty"`
	IsVerified *bool       `json:"isVerified,omitempty"`
	Role       models.Role `json:"role,omitempty"`
}

func (c *Client) UpdateUser(ctx context.Context, id string, in UserInput) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.patch(ctx, "/users/"+id, in, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id)
}

func (c *Client) Stats(ctx context.Context) (models.AdminStats, error) {
	var out struct {
		Data models.AdminStats `json:"data"`
	}
	if err := c.get(ctx, "/stats", nil, &out); err != nil {
		return models.AdminStats{}, err
	}
	return out.Data, nil
}
