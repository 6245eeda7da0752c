package models

import (
	"testing"
	"time"
)

func TestBookingCanCancel(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingPending, true},
		{BookingConfirmed, true},
		{BookingCancelled, false},
		{BookingCompleted, false},
	}

	for _, tt := range tests {
		booking := Booking{Status: tt.status}
		if got := booking.CanCancel(); got != tt.want {
			t.Errorf("Booking{Status: %s}.CanCancel() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("CONFIRMED")
	if err != nil {
		t.Fatalf("ParseBookingStatus(CONFIRMED) error = %v", err)
	}
	if status != BookingConfirmed {
		t.Errorf("ParseBookingStatus(CONFIRMED) = %v, want %v", status, BookingConfirmed)
	}

	if _, err := ParseBookingStatus("EXPIRED"); err == nil {
		t.Error("ParseBookingStatus(EXPIRED) error = nil, want error")
	}
}

func TestParseSlotStatus(t *testing.T) {
	if _, err := ParseSlotStatus("UNAVAILABLE"); err != nil {
		t.Errorf("ParseSlotStatus(UNAVAILABLE) error = %v", err)
	}
	// MAINTENANCE is not part of the canonical enumeration.
	if _, err := ParseSlotStatus("MAINTENANCE"); err == nil {
		t.Error("ParseSlotStatus(MAINTENANCE) error = nil, want error")
	}
}

func TestTicketExpectedTotal(t *testing.T) {
	ticket := Ticket{
		BookingID:     "bk_123",
		DurationHours: 1.5,
		RatePerHour:   500,
		Total:         750,
		StartTime:     time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC),
	}

	if got := ticket.ExpectedTotal(); got != ticket.Total {
		t.Errorf("ExpectedTotal() = %v, want %v", got, ticket.Total)
	}
}

func TestSlotLabel(t *testing.T) {
	slot := Slot{
		Number:      "A-12",
		Size:        SizeMedium,
		VehicleType: VehicleCar,
		Location:    "Level 2",
	}

	want := "A-12 - Level 2 (MEDIUM / CAR)"
	if got := slot.Label(); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestAdminStatsPercents(t *testing.T) {
	stats := AdminStats{
		TotalUsers:     200,
		VerifiedUsers:  150,
		AvailableSlots: 30,
		OccupiedSlots:  10,
	}

	if got := stats.VerifiedPercent(); got != 75 {
		t.Errorf("VerifiedPercent() = %d, want 75", got)
	}
	if got := stats.OccupancyPercent(); got != 25 {
		t.Errorf("OccupancyPercent() = %d, want 25", got)
	}

	var empty AdminStats
	if got := empty.VerifiedPercent(); got != 0 {
		t.Errorf("empty VerifiedPercent() = %d, want 0", got)
	}
	if got := empty.OccupancyPercent(); got != 0 {
		t.Errorf("empty OccupancyPercent() = %d, want 0", got)
	}
}
