package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Booking hours: slots are offered on a half-hour grid between 06:00 and
// 22:00 inclusive.
const (
	openingHour = 6
	closingHour = 22
)

// TimeOptions returns the selectable times, "06:00" through "22:00" in
// half-hour steps.
func TimeOptions() []string {
	var times []string
	for hour := openingHour; hour <= closingHour; hour++ {
		times = append(times, fmt.Sprintf("%02d:00", hour))
		if hour < closingHour {
			times = append(times, fmt.Sprintf("%02d:30", hour))
		}
	}
	return times
}

// ValidTimeOption reports whether s is a member of the time grid.
func ValidTimeOption(s string) bool {
	for _, t := range TimeOptions() {
		if t == s {
			return true
		}
	}
	return false
}

// timeValue turns "09:30" into 930 for ordering comparisons.
func timeValue(s string) int {
	n, _ := strconv.Atoi(strings.Replace(s, ":", "", 1))
	return n
}

// Phase is the booking form's submission state.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

// ValidationError names the offending field so the UI can point at it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// BookingForm is the draft of a new reservation. Values survive a failed
// submission so the user can correct and resend.
type BookingForm struct {
	SlotID    string
	Date      time.Time // midnight UTC of the chosen day; zero when unset
	StartTime string    // "HH:MM" from the grid; "" when unset
	EndTime   string
	Phase     Phase
}

// Validate applies the submission contract: slot chosen, date today or
// later, both times on the grid, end strictly after start.
func (f *BookingForm) Validate(now time.Time) error {
	if f.SlotID == "" {
		return &ValidationError{Field: "slot", Message: "please select a parking slot"}
	}
	if f.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "please select a date"}
	}
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	if f.Date.Before(today) {
		return &ValidationError{Field: "date", Message: "date must be today or later"}
	}
	if f.StartTime == "" {
		return &ValidationError{Field: "startTime", Message: "please select a start time"}
	}
	if !ValidTimeOption(f.StartTime) {
		return &ValidationError{Field: "startTime", Message: "start time is outside booking hours"}
	}
	if f.EndTime == "" {
		return &ValidationError{Field: "endTime", Message: "please select an end time"}
	}
	if !ValidTimeOption(f.EndTime) {
		return &ValidationError{Field: "endTime", Message: "end time is outside booking hours"}
	}
	if timeValue(f.EndTime) <= timeValue(f.StartTime) {
		return &ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}
	return nil
}

// Instants combines the chosen date with each time string into absolute UTC
// instants, ready for the wire.
func (f *BookingForm) Instants() (start, end time.Time) {
	return f.instant(f.StartTime), f.instant(f.EndTime)
}

func (f *BookingForm) instant(hhmm string) time.Time {
	parts := strings.SplitN(hhmm, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute := 0
	if len(parts) == 2 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), hour, minute, 0, 0, time.UTC)
}

// BeginSubmit moves the form into the submitting phase. It returns false if
// a submission is already in flight, which is how duplicate taps on the
// confirm control are swallowed.
func (f *BookingForm) BeginSubmit() bool {
	if f.Phase == PhaseSubmitting {
		return false
	}
	f.Phase = PhaseSubmitting
	return true
}

// Fail marks the submission failed. The entered values stay put; a failed
// form is still editable.
func (f *BookingForm) Fail() {
	f.Phase = PhaseFailed
}

func (f *BookingForm) Succeed() {
	f.Phase = PhaseSuccess
}
