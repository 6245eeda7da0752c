package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"parking-bot/internal/models"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, staticToken(token), zap.NewNop())
}

func TestAvailableSlotsFilters(t *testing.T) {
	tests := []struct {
		name      string
		filters   SlotFilters
		wantQuery string
	}{
		{"both", SlotFilters{Size: models.SizeMedium, VehicleType: models.VehicleCar}, "size=MEDIUM&vehicleType=CAR"},
		{"none", SlotFilters{}, ""},
		{"any sentinels", SlotFilters{Size: models.AnySize, VehicleType: models.VehicleAny}, ""},
		{"size only", SlotFilters{Size: models.SizeSmall}, "size=SMALL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.RawQuery
				json.NewEncoder(w).Encode([]models.Slot{})
			}, "tok")

			if _, err := client.AvailableSlots(context.Background(), tt.filters); err != nil {
				t.Fatalf("AvailableSlots() error = %v", err)
			}
			if gotQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", gotQuery, tt.wantQuery)
			}
		})
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotReqID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]models.Slot{})
	}, "tok123")

	if _, err := client.AvailableSlots(context.Background(), SlotFilters{}); err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
	if gotReqID == "" {
		t.Error("X-Request-ID is empty, want a request id")
	}
}

func TestNoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Slot{})
	}, "")

	if _, err := client.AvailableSlots(context.Background(), SlotFilters{}); err != nil {
		t.Fatalf("AvailableSlots() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestCreateBooking(t *testing.T) {
	var gotBody map[string]string
	var gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"booking": models.Booking{ID: "bk1", SlotID: "s1", Status: models.BookingPending},
		})
	}, "tok")

	start := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 11, 10, 30, 0, 0, time.UTC)
	booking, err := client.CreateBooking(context.Background(), "s1", start, end)
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}

	if gotMethod != http.MethodPost || gotPath != "/customer/bookings" {
		t.Errorf("request = %s %s, want POST /customer/bookings", gotMethod, gotPath)
	}
	if gotBody["slotId"] != "s1" {
		t.Errorf("slotId = %q, want %q", gotBody["slotId"], "s1")
	}
	if gotBody["startTime"] != "2026-03-11T09:00:00Z" {
		t.Errorf("startTime = %q, want %q", gotBody["startTime"], "2026-03-11T09:00:00Z")
	}
	if gotBody["endTime"] != "2026-03-11T10:30:00Z" {
		t.Errorf("endTime = %q, want %q", gotBody["endTime"], "2026-03-11T10:30:00Z")
	}
	if booking.ID != "bk1" {
		t.Errorf("booking.ID = %q, want %q", booking.ID, "bk1")
	}
}

func TestCancelBooking(t *testing.T) {
	var gotPath, gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]any{
			"booking": models.Booking{ID: "bk1", Status: models.BookingCancelled},
		})
	}, "tok")

	booking, err := client.CancelBooking(context.Background(), "bk1")
	if err != nil {
		t.Fatalf("CancelBooking() error = %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/customer/bookings/bk1/cancel" {
		t.Errorf("request = %s %s, want PATCH /customer/bookings/bk1/cancel", gotMethod, gotPath)
	}
	if booking.Status != models.BookingCancelled {
		t.Errorf("status = %s, want CANCELLED", booking.Status)
	}
}

func TestErrorPropagation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "slot already booked for this window"})
	}, "tok")

	_, err := client.CreateBooking(context.Background(), "s1", time.Now(), time.Now().Add(time.Hour))
	if err == nil {
		t.Fatal("CreateBooking() error = nil, want *Error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Status = %d, want %d", apiErr.Status, http.StatusConflict)
	}
	if apiErr.Message != "slot already booked for this window" {
		t.Errorf("Message = %q, want server message", apiErr.Message)
	}
}

func TestIsUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "tok")

	_, err := client.CurrentUser(context.Background())
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}

	if IsUnauthorized(errors.New("network down")) {
		t.Error("IsUnauthorized(plain error) = true, want false")
	}
}

func TestStatsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": models.AdminStats{TotalUsers: 7, OccupiedSlots: 3},
		})
	}, "tok")

	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalUsers != 7 || stats.OccupiedSlots != 3 {
		t.Errorf("stats = %+v, want TotalUsers 7, OccupiedSlots 3", stats)
	}
}

func TestSlotEnvelopes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{
				"slots": []models.Slot{{ID: "s1", Number: "A-1"}},
			})
		case http.MethodPost:
			json.NewEncoder(w).Encode(map[string]any{
				"slot": models.Slot{ID: "s2", Number: "A-2"},
			})
		}
	}, "tok")

	slots, err := client.Slots(context.Background())
	if err != nil {
		t.Fatalf("Slots() error = %v", err)
	}
	if len(slots) != 1 || slots[0].ID != "s1" {
		t.Errorf("Slots() = %+v, want one slot s1", slots)
	}

	slot, err := client.CreateSlot(context.Background(), SlotInput{Number: "A-2"})
	if err != nil {
		t.Fatalf("CreateSlot() error = %v", err)
	}
	if slot.ID != "s2" {
		t.Errorf("CreateSlot().ID = %q, want %q", slot.ID, "s2")
	}
}

func TestTicketFetch(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(models.Ticket{
			BookingID:     "bk1",
			DurationHours: 2,
			RatePerHour:   500,
			Total:         1000,
		})
	}, "tok")

	// Repeatable: two fetches, same derived pricing.
	for i := 0; i < 2; i++ {
		ticket, err := client.Ticket(context.Background(), "bk1")
		if err != nil {
			t.Fatalf("Ticket() error = %v", err)
		}
		if ticket.Total != ticket.ExpectedTotal() {
			t.Errorf("Total = %v, want %v", ticket.Total, ticket.ExpectedTotal())
		}
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
