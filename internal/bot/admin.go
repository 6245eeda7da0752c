package bot

import (
	"context"
	"fmt"
	"strings"

	"parking-bot/internal/api"
	"parking-bot/internal/models"
)

func (b *ParkingBot) showAdminMenu(chatID int64) {
	if !b.requireAdmin(chatID) {
		return
	}
	b.sendWithKeyboard(chatID, "🛠 *Administration*", adminMenuKeyboard())
}

// --- slots ---

func (b *ParkingBot) showAdminSlots(chatID int64) {
	if !b.requireAdmin(chatID) {
		return
	}
	slots, err := b.client.Slots(context.Background())
	if err != nil {
		b.failure(chatID, "Slot listing", err)
		return
	}

	var sb strings.Builder
	sb.WriteString("🅿️ *Slots*\n")
	for _, slot := range slots {
		sb.WriteString(fmt.Sprintf("\n%s · %s · %s / %s · %s",
			slot.Number, slot.Location, slot.Size, slot.VehicleType, slot.Status))
	}
	if len(slots) == 0 {
		sb.WriteString("\nNo slots yet.")
	}
	b.sendWithKeyboard(chatID, sb.String(), adminSlotListKeyboard(slots))
}

// startSlotDialog opens the shared create/edit dialog. A non-empty id means
// edit mode with the current values prefilled.
func (b *ParkingBot) startSlotDialog(chatID int64, st *chatState, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	st.resetFlow()

	draft := &slotDraft{ID: id}
	draft.Input.Status = models.SlotAvailable
	if id != "" {
		slots, err := b.client.Slots(context.Background())
		if err != nil {
			b.failure(chatID, "Slot load", err)
			return
		}
		found := false
		for _, slot := range slots {
			if slot.ID == id {
				draft.Input = api.SlotInput{
					Number:      slot.Number,
					Size:        slot.Size,
					VehicleType: slot.VehicleType,
					Location:    slot.Location,
					Status:      slot.Status,
				}
				found = true
				break
			}
		}
		if !found {
			b.send(chatID, "⚠️ That slot no longer exists.")
			b.showAdminSlots(chatID)
			return
		}
	}

	st.SlotDraft = draft
	st.Flow = flowSlotNumber
	prompt := "Slot number (e.g. A-12):"
	if draft.Input.Number != "" {
		prompt = fmt.Sprintf("Slot number (currently %s):", draft.Input.Number)
	}
	b.send(chatID, prompt)
}

func (b *ParkingBot) handleSlotNumberInput(chatID int64, st *chatState, text string) {
	number := strings.TrimSpace(text)
	if number == "" {
		b.send(chatID, "❌ Slot number is required. Try again:")
		return
	}
	st.SlotDraft.Input.Number = number
	st.Flow = flowNone
	b.sendWithKeyboard(chatID, "Size:", slotSizeKeyboard())
}

func (b *ParkingBot) handleSlotSize(chatID int64, st *chatState, value string) {
	if st.SlotDraft == nil {
		return
	}
	size, err := models.ParseSlotSize(value)
	if err != nil {
		b.send(chatID, "⚠️ Unknown size.")
		return
	}
	st.SlotDraft.Input.Size = size
	b.sendWithKeyboard(chatID, "Vehicle type:", slotVehicleKeyboard())
}

func (b *ParkingBot) handleSlotVehicle(chatID int64, st *chatState, value string) {
	if st.SlotDraft == nil {
		return
	}
	vt, err := models.ParseVehicleType(value)
	if err != nil {
		b.send(chatID, "⚠️ Unknown vehicle type.")
		return
	}
	st.SlotDraft.Input.VehicleType = vt
	st.Flow = flowSlotLocation
	prompt := "Location (e.g. Level 2, Block B):"
	if st.SlotDraft.Input.Location != "" {
		prompt = fmt.Sprintf("Location (currently %s):", st.SlotDraft.Input.Location)
	}
	b.send(chatID, prompt)
}

func (b *ParkingBot) handleSlotLocationInput(chatID int64, st *chatState, text string) {
	location := strings.TrimSpace(text)
	if location == "" {
		b.send(chatID, "❌ Location is required. Try again:")
		return
	}
	st.SlotDraft.Input.Location = location
	st.Flow = flowNone
	b.sendWithKeyboard(chatID, "Status:", slotStatusKeyboard())
}

// handleSlotStatus is the final dialog step; picking a status submits the
// slot and refetches the list.
func (b *ParkingBot) handleSlotStatus(chatID int64, st *chatState, value string) {
	if st.SlotDraft == nil {
		return
	}
	status, err := models.ParseSlotStatus(value)
	if err != nil {
		b.send(chatID, "⚠️ Unknown status.")
		return
	}
	draft := st.SlotDraft
	draft.Input.Status = status
	st.SlotDraft = nil

	ctx := context.Background()
	if draft.ID == "" {
		if _, err := b.client.CreateSlot(ctx, draft.Input); err != nil {
			b.failure(chatID, "Slot creation", err)
			return
		}
		b.send(chatID, "✅ Slot created.")
	} else {
		if _, err := b.client.UpdateSlot(ctx, draft.ID, draft.Input); err != nil {
			b.failure(chatID, "Slot update", err)
			return
		}
		b.send(chatID, "✅ Slot updated.")
	}
	b.showAdminSlots(chatID)
}

func (b *ParkingBot) askDeleteSlot(chatID int64, id string) {
	b.sendWithKeyboard(chatID,
		"Delete this slot? This can't be undone.",
		confirmKeyboard("aslot_del_yes_"+id, "aslot_del_no"))
}

func (b *ParkingBot) handleDeleteSlot(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	if err := b.client.DeleteSlot(context.Background(), id); err != nil {
		b.failure(chatID, "Slot deletion", err)
		return
	}
	b.send(chatID, "✅ Slot deleted.")
	b.showAdminSlots(chatID)
}

// --- bookings ---

func (b *ParkingBot) showAdminBookings(chatID int64) {
	if !b.requireAdmin(chatID) {
		return
	}
	bookings, err := b.client.AllBookings(context.Background())
	if err != nil {
		b.failure(chatID, "Booking listing", err)
		return
	}
	if len(bookings) == 0 {
		b.send(chatID, "No bookings.")
		return
	}
	b.sendWithKeyboard(chatID, "📋 *All bookings*\n\nTap one to manage.", adminBookingListKeyboard(bookings))
}

func (b *ParkingBot) showAdminBookingDetail(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	booking, err := b.client.AdminBooking(context.Background(), id)
	if err != nil {
		b.failure(chatID, "Booking load", err)
		return
	}
	b.sendWithKeyboard(chatID, formatBooking(booking), adminBookingKeyboard(booking))
}

// handleAdminBookingStatus parses "<id>_<STATUS>"; the status is always the
// final underscore-separated field.
func (b *ParkingBot) handleAdminBookingStatus(chatID int64, payload string) {
	if !b.requireAdmin(chatID) {
		return
	}
	sep := strings.LastIndex(payload, "_")
	if sep < 0 {
		return
	}
	id := payload[:sep]
	status, err := models.ParseBookingStatus(payload[sep+1:])
	if err != nil {
		b.send(chatID, "⚠️ Unknown status.")
		return
	}

	if _, err := b.client.UpdateBookingStatus(context.Background(), id, status); err != nil {
		b.failure(chatID, "Status update", err)
		return
	}
	b.send(chatID, "✅ Status updated.")
	b.showAdminBookingDetail(chatID, id)
}

func (b *ParkingBot) askDeleteBooking(chatID int64, id string) {
	b.sendWithKeyboard(chatID,
		"Delete this booking? This can't be undone.",
		confirmKeyboard("abk_del_yes_"+id, "abk_del_no"))
}

func (b *ParkingBot) handleDeleteBooking(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	if err := b.client.DeleteBooking(context.Background(), id); err != nil {
		b.failure(chatID, "Booking deletion", err)
		return
	}
	b.send(chatID, "✅ Booking deleted.")
	b.showAdminBookings(chatID)
}

// --- users ---

func (b *ParkingBot) showAdminUsers(chatID int64) {
	if !b.requireAdmin(chatID) {
		return
	}
	users, err := b.client.Users(context.Background())
	if err != nil {
		b.failure(chatID, "User listing", err)
		return
	}
	if len(users) == 0 {
		b.send(chatID, "No users.")
		return
	}
	b.sendWithKeyboard(chatID, "👥 *Users*\n\nTap one to manage.", adminUserListKeyboard(users))
}

func (b *ParkingBot) showAdminUserDetail(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	user, err := b.client.User(context.Background(), id)
	if err != nil {
		b.failure(chatID, "User load", err)
		return
	}
	verified := "no"
	if user.IsVerified {
		verified = "yes"
	}
	text := fmt.Sprintf("👤 *%s*\nEmail: %s\nRole: %s\nVerified: %s",
		user.Name, user.Email, user.Role, verified)
	b.sendWithKeyboard(chatID, text, adminUserKeyboard(user))
}

func (b *ParkingBot) handleToggleUserVerified(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	ctx := context.Background()
	user, err := b.client.User(ctx, id)
	if err != nil {
		b.failure(chatID, "User load", err)
		return
	}
	verified := !user.IsVerified
	if _, err := b.client.UpdateUser(ctx, id, api.UserInput{IsVerified: &verified}); err != nil {
		b.failure(chatID, "User update", err)
		return
	}
	b.showAdminUserDetail(chatID, id)
}

func (b *ParkingBot) handleToggleUserRole(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	ctx := context.Background()
	user, err := b.client.User(ctx, id)
	if err != nil {
		b.failure(chatID, "User load", err)
		return
	}
	role := models.RoleAdmin
	if user.Role == models.RoleAdmin {
		role = models.RoleCustomer
	}
	if _, err := b.client.UpdateUser(ctx, id, api.UserInput{Role: role}); err != nil {
		b.failure(chatID, "User update", err)
		return
	}
	b.showAdminUserDetail(chatID, id)
}

func (b *ParkingBot) askDeleteUser(chatID int64, id string) {
	b.sendWithKeyboard(chatID,
		"Delete this user? This can't be undone.",
		confirmKeyboard("ausr_del_yes_"+id, "ausr_del_no"))
}

func (b *ParkingBot) handleDeleteUser(chatID int64, id string) {
	if !b.requireAdmin(chatID) {
		return
	}
	if err := b.client.DeleteUser(context.Background(), id); err != nil {
		b.failure(chatID, "User deletion", err)
		return
	}
	b.send(chatID, "✅ User deleted.")
	b.showAdminUsers(chatID)
}

// --- stats ---

func (b *ParkingBot) showAdminStats(chatID int64) {
	if !b.requireAdmin(chatID) {
		return
	}
	stats, err := b.client.Stats(context.Background())
	if err != nil {
		b.failure(chatID, "Stats", err)
		return
	}

	text := fmt.Sprintf(
		"📊 *Dashboard*\n\n"+
			"Users: %d (%d verified, %d%%)\n"+
			"Bookings: %d total · %d pending · %d confirmed\n"+
			"Slots: %d available · %d occupied · %d unavailable\n"+
			"Occupancy: %d%%",
		stats.TotalUsers, stats.VerifiedUsers, stats.VerifiedPercent(),
		stats.TotalBookings, stats.PendingBookings, stats.ConfirmedBookings,
		stats.AvailableSlots, stats.OccupiedSlots, stats.UnavailableSlots,
		stats.OccupancyPercent())
	b.send(chatID, text)
}
