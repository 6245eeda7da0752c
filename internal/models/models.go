package models

import (
	"fmt"
	"time"
)

// Role is a user's access level.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
	Role       Role   `json:"role"`
}

// SlotSize is the physical size class of a parking slot.
type SlotSize string

const (
	SizeSmall  SlotSize = "SMALL"
	SizeMedium SlotSize = "MEDIUM"
	SizeLarge  SlotSize = "LARGE"

	// AnySize is a filter sentinel, never a stored slot size.
	AnySize SlotSize = "ANY"
)

func ParseSlotSize(s string) (SlotSize, error) {
	switch SlotSize(s) {
	case SizeSmall:
		return SizeSmall, nil
	case SizeMedium:
		return SizeMedium, nil
	case SizeLarge:
		return SizeLarge, nil
	}
	return "", fmt.Errorf("unknown slot size %q", s)
}

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
	VehicleCar        VehicleType = "CAR"
	VehicleTruck      VehicleType = "TRUCK"
	VehicleAny        VehicleType = "ANY"
)

func ParseVehicleType(s string) (VehicleType, error) {
	switch VehicleType(s) {
	case VehicleMotorcycle:
		return VehicleMotorcycle, nil
	case VehicleCar:
		return VehicleCar, nil
	case VehicleTruck:
		return VehicleTruck, nil
	case VehicleAny:
		return VehicleAny, nil
	}
	return "", fmt.Errorf("unknown vehicle type %q", s)
}

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "AVAILABLE"
	SlotOccupied    SlotStatus = "OCCUPIED"
	SlotUnavailable SlotStatus = "UNAVAILABLE"
)

func ParseSlotStatus(s string) (SlotStatus, error) {
	switch SlotStatus(s) {
	case SlotAvailable:
		return SlotAvailable, nil
	case SlotOccupied:
		return SlotOccupied, nil
	case SlotUnavailable:
		return SlotUnavailable, nil
	}
	return "", fmt.Errorf("unknown slot status %q", s)
}

type Slot struct {
	ID          string      `json:"id"`
	Number      string      `json:"number"`
	Size        SlotSize    `json:"size"`
	VehicleType VehicleType `json:"vehicleType"`
	Location    string      `json:"location"`
	Status      SlotStatus  `json:"status"`
}

// Label is the one-line slot description used in pickers and lists.
func (s Slot) Label() string {
	return fmt.Sprintf("%s - %s (%s / %s)", s.Number, s.Location, s.Size, s.VehicleType)
}

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending:
		return BookingPending, nil
	case BookingConfirmed:
		return BookingConfirmed, nil
	case BookingCancelled:
		return BookingCancelled, nil
	case BookingCompleted:
		return BookingCompleted, nil
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingCancelled, BookingCompleted:
		return true
	case BookingPending, BookingConfirmed:
		return false
	}
	return false
}

type Booking struct {
	ID        string        `json:"id"`
	SlotID    string        `json:"slotId"`
	UserID    string        `json:"userId"`
	Slot      Slot          `json:"slot"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CanCancel reports whether cancellation may be offered for this booking.
// The transition itself is the server's decision; this only gates the UI.
func (b Booking) CanCancel() bool {
	return !b.Status.IsTerminal()
}

// Ticket is a priced summary derived from a booking, computed by the server
// on demand. The client treats it as read-only and never persists it.
type Ticket struct {
	BookingID     string      `json:"bookingId"`
	SlotNumber    string      `json:"slotNumber"`
	VehicleType   VehicleType `json:"vehicleType"`
	Location      string      `json:"location"`
	StartTime     time.Time   `json:"startTime"`
	EndTime       time.Time   `json:"endTime"`
	DurationHours float64     `json:"durationHours"`
	RatePerHour   float64     `json:"ratePerHour"`
	Total         float64     `json:"total"`
}

// ExpectedTotal recomputes the price from the ticket's own fields.
func (t Ticket) ExpectedTotal() float64 {
	return t.DurationHours * t.RatePerHour
}

type AdminStats struct {
	TotalUsers        int `json:"totalUsers"`
	VerifiedUsers     int `json:"verifiedUsers"`
	TotalBookings     int `json:"totalBookings"`
	PendingBookings   int `json:"pendingBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	AvailableSlots    int `json:"availableSlots"`
	OccupiedSlots     int `json:"occupiedSlots"`
	UnavailableSlots  int `json:"unavailableSlots"`
}

// VerifiedPercent is the share of verified users rounded to a whole percent.
func (s AdminStats) VerifiedPercent() int {
	if s.TotalUsers == 0 {
		return 0
	}
	return int(float64(s.VerifiedUsers)/float64(s.TotalUsers)*100 + 0.5)
}

// OccupancyPercent is occupied slots over slots in service
// (available + occupied); unavailable slots do not count.
func (s AdminStats) OccupancyPercent() int {
	inService := s.AvailableSlots + s.OccupiedSlots
	if inService == 0 {
		return 0
	}
	return int(float64(s.OccupiedSlots)/float64(inService)*100 + 0.5)
}
