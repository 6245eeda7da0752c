package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parking-bot/internal/models"
	"parking-bot/internal/services"
	"parking-bot/internal/ticket"
)

func (b *ParkingBot) showSlots(chatID int64) {
	if !b.requireLogin(chatID) {
		return
	}
	st := b.state(chatID)

	slots, err := b.client.AvailableSlots(context.Background(), st.Filters)
	if err != nil {
		b.failure(chatID, "Slot listing", err)
		return
	}
	if len(slots) == 0 {
		b.sendWithKeyboard(chatID, "No slots match the current filters.", slotListKeyboard(nil))
		return
	}

	var sb strings.Builder
	sb.WriteString("🅿️ *Available slots*")
	if st.Filters.Size != "" && st.Filters.Size != models.AnySize {
		sb.WriteString(fmt.Sprintf("\nSize: %s", st.Filters.Size))
	}
	if st.Filters.VehicleType != "" && st.Filters.VehicleType != models.VehicleAny {
		sb.WriteString(fmt.Sprintf("\nVehicle: %s", st.Filters.VehicleType))
	}
	sb.WriteString("\n\nTap a slot to book it.")
	b.sendWithKeyboard(chatID, sb.String(), slotListKeyboard(slots))
}

func (b *ParkingBot) handleSizeFilter(chatID int64, st *chatState, value string) {
	if value == string(models.AnySize) {
		st.Filters.Size = ""
		b.showSlots(chatID)
		return
	}
	size, err := models.ParseSlotSize(value)
	if err != nil {
		b.send(chatID, "⚠️ Unknown size.")
		return
	}
	st.Filters.Size = size
	b.showSlots(chatID)
}

func (b *ParkingBot) handleVehicleFilter(chatID int64, st *chatState, value string) {
	vt, err := models.ParseVehicleType(value)
	if err != nil {
		b.send(chatID, "⚠️ Unknown vehicle type.")
		return
	}
	if vt == models.VehicleAny {
		st.Filters.VehicleType = ""
	} else {
		st.Filters.VehicleType = vt
	}
	b.showSlots(chatID)
}

// startBookingFlow opens a fresh form and shows the slot picker.
func (b *ParkingBot) startBookingFlow(chatID int64) {
	if !b.requireLogin(chatID) {
		return
	}
	st := b.state(chatID)
	st.resetFlow()
	st.Form = &services.BookingForm{}

	slots, err := b.client.AvailableSlots(context.Background(), st.Filters)
	if err != nil {
		b.failure(chatID, "Slot listing", err)
		return
	}
	if len(slots) == 0 {
		b.send(chatID, "No slots are available right now.")
		return
	}
	b.sendWithKeyboard(chatID, "📝 *New booking*\n\nPick a parking slot:", slotListKeyboard(slots))
}

func (b *ParkingBot) handleBookingSlot(chatID int64, st *chatState, slotID string) {
	if !b.requireLogin(chatID) {
		return
	}
	if st.Form == nil {
		st.Form = &services.BookingForm{}
	}
	st.Form.SlotID = slotID
	b.sendWithKeyboard(chatID, "📅 Pick a date:", dayKeyboard(time.Now()))
}

func (b *ParkingBot) handleBookingDay(chatID int64, st *chatState, dateStr string) {
	if st.Form == nil {
		b.send(chatID, "Start over with 📝 Book.")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		b.send(chatID, "⚠️ Unknown date.")
		return
	}
	st.Form.Date = date
	b.sendWithKeyboard(chatID, "🕒 Pick a start time:", timeKeyboard("book_start_"))
}

func (b *ParkingBot) handleBookingStart(chatID int64, st *chatState, timeStr string) {
	if st.Form == nil {
		b.send(chatID, "Start over with 📝 Book.")
		return
	}
	if !services.ValidTimeOption(timeStr) {
		b.send(chatID, "⚠️ That time is outside booking hours.")
		return
	}
	st.Form.StartTime = timeStr
	b.sendWithKeyboard(chatID, "🕒 Pick an end time:", timeKeyboard("book_end_"))
}

func (b *ParkingBot) handleBookingEnd(chatID int64, st *chatState, timeStr string) {
	if st.Form == nil {
		b.send(chatID, "Start over with 📝 Book.")
		return
	}
	st.Form.EndTime = timeStr

	if err := st.Form.Validate(time.Now()); err != nil {
		b.send(chatID, "❌ "+validationMessage(err))
		var verr *services.ValidationError
		if errors.As(err, &verr) && verr.Field == "endTime" {
			b.sendWithKeyboard(chatID, "🕒 Pick an end time:", timeKeyboard("book_end_"))
		}
		return
	}

	start, end := st.Form.Instants()
	summary := fmt.Sprintf(
		"📝 *Confirm your booking*\n\nDate: %s\nFrom: %s\nTo: %s\n\nBook this slot?",
		st.Form.Date.Format("Mon, 02 Jan 2006"),
		start.Format("15:04"),
		end.Format("15:04"))
	b.sendWithKeyboard(chatID, summary, confirmKeyboard("book_confirm", "book_abort"))
}

func (b *ParkingBot) handleBookingConfirm(chatID int64, st *chatState) {
	if st.Form == nil {
		b.send(chatID, "Start over with 📝 Book.")
		return
	}
	if err := st.Form.Validate(time.Now()); err != nil {
		b.send(chatID, "❌ "+validationMessage(err))
		return
	}
	// Swallow duplicate taps while the request is in flight.
	if !st.Form.BeginSubmit() {
		return
	}

	start, end := st.Form.Instants()
	booking, err := b.client.CreateBooking(context.Background(), st.Form.SlotID, start, end)
	if err != nil {
		st.Form.Fail()
		b.failure(chatID, "Booking", err)
		b.sendWithKeyboard(chatID, "Your selections are kept - confirm to retry.",
			confirmKeyboard("book_confirm", "book_abort"))
		return
	}

	st.Form.Succeed()
	st.Form = nil
	b.send(chatID, fmt.Sprintf("✅ Booking created! Status: %s", booking.Status))
	b.showMyBookings(chatID)
}

func (b *ParkingBot) showMyBookings(chatID int64) {
	if !b.requireLogin(chatID) {
		return
	}
	bookings, err := b.client.MyBookings(context.Background())
	if err != nil {
		b.failure(chatID, "Booking listing", err)
		return
	}
	if len(bookings) == 0 {
		b.send(chatID, "You have no bookings yet. Use 📝 Book to create one.")
		return
	}
	b.sendWithKeyboard(chatID, "📋 *Your bookings*\n\nTap one for details.", bookingListKeyboard(bookings))
}

func (b *ParkingBot) showBookingDetail(chatID int64, id string) {
	booking, err := b.client.Booking(context.Background(), id)
	if err != nil {
		b.failure(chatID, "Booking load", err)
		return
	}
	b.sendWithKeyboard(chatID, formatBooking(booking), bookingDetailKeyboard(booking))
}

func (b *ParkingBot) askCancelBooking(chatID int64, id string) {
	b.sendWithKeyboard(chatID,
		"Cancel this booking? This can't be undone.",
		confirmKeyboard("bkcancel_yes_"+id, "bkcancel_no_"+id))
}

func (b *ParkingBot) handleCancelBooking(chatID int64, id string) {
	if _, err := b.client.CancelBooking(context.Background(), id); err != nil {
		b.failure(chatID, "Cancellation", err)
		return
	}
	// Re-fetch rather than trusting local state; the displayed status is
	// always the server's latest decision.
	booking, err := b.client.Booking(context.Background(), id)
	if err != nil {
		b.failure(chatID, "Booking load", err)
		return
	}
	b.send(chatID, "✅ Booking cancelled.")
	b.sendWithKeyboard(chatID, formatBooking(booking), bookingDetailKeyboard(booking))
}

// sendTicket fetches the priced summary and renders it locally; fetching is
// repeatable and rendering makes no further calls.
func (b *ParkingBot) sendTicket(chatID int64, bookingID string) {
	tk, err := b.client.Ticket(context.Background(), bookingID)
	if err != nil {
		b.failure(chatID, "Ticket", err)
		return
	}
	pdf, err := ticket.Render(tk, b.currency)
	if err != nil {
		b.failure(chatID, "Ticket rendering", err)
		return
	}
	b.sendDocument(chatID, ticket.Filename(tk.BookingID), pdf)
}

func formatBooking(bk models.Booking) string {
	return fmt.Sprintf(
		"🎫 *Booking %s*\n\nSlot: %s\nLocation: %s\nVehicle: %s\nFrom: %s\nTo: %s\nStatus: %s\nCreated: %s\nUpdated: %s",
		shortID(bk.ID),
		bk.Slot.Number,
		bk.Slot.Location,
		bk.Slot.VehicleType,
		bk.StartTime.Format("02 Jan 2006 15:04"),
		bk.EndTime.Format("02 Jan 2006 15:04"),
		bk.Status,
		bk.CreatedAt.Format("02 Jan 2006 15:04"),
		bk.UpdatedAt.Format("02 Jan 2006 15:04"))
}

func validationMessage(err error) string {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
