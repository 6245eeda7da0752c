package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"parking-bot/internal/models"
	"parking-bot/internal/services"
)

func mainMenuKeyboard(loggedIn, admin bool) tgbotapi.ReplyKeyboardMarkup {
	if !loggedIn {
		return tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton("🔑 Login"),
				tgbotapi.NewKeyboardButton("🆕 Register"),
			),
		)
	}
	rows := [][]tgbotapi.KeyboardButton{
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🅿️ Slots"),
			tgbotapi.NewKeyboardButton("📝 Book"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📋 My Bookings"),
			tgbotapi.NewKeyboardButton("👤 Profile"),
		),
	}
	if admin {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🛠 Admin"),
		))
	}
	return tgbotapi.NewReplyKeyboard(rows...)
}

func slotListKeyboard(slots []models.Slot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, slot := range slots {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(slot.Label(), "book_slot_"+slot.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔍 Filter by size", "filter_size_menu"),
		tgbotapi.NewInlineKeyboardButtonData("🚗 Filter by vehicle", "filter_veh_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func sizeFilterKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Small", "filter_size_SMALL"),
			tgbotapi.NewInlineKeyboardButtonData("Medium", "filter_size_MEDIUM"),
			tgbotapi.NewInlineKeyboardButtonData("Large", "filter_size_LARGE"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Any", "filter_size_ANY"),
		),
	)
}

func vehicleFilterKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Motorcycle", "filter_veh_MOTORCYCLE"),
			tgbotapi.NewInlineKeyboardButtonData("Car", "filter_veh_CAR"),
			tgbotapi.NewInlineKeyboardButtonData("Truck", "filter_veh_TRUCK"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Any", "filter_veh_ANY"),
		),
	)
}

// dayKeyboard offers today plus the following week.
func dayKeyboard(now time.Time) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	day := now.UTC()
	for i := 0; i < 8; i++ {
		label := day.Format("Mon 02 Jan")
		if i == 0 {
			label = "Today, " + day.Format("02 Jan")
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "book_day_"+day.Format("2006-01-02")),
		))
		day = day.AddDate(0, 0, 1)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// timeKeyboard lays the half-hour grid out four buttons per row.
func timeKeyboard(prefix string) tgbotapi.InlineKeyboardMarkup {
	options := services.TimeOptions()
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, opt := range options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(opt, prefix+opt))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmKeyboard(yesData, noData string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes", yesData),
			tgbotapi.NewInlineKeyboardButtonData("↩️ No", noData),
		),
	)
}

func bookingListKeyboard(bookings []models.Booking) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, bk := range bookings {
		label := fmt.Sprintf("%s · %s · %s",
			bk.Slot.Number,
			bk.StartTime.Format("02 Jan 15:04"),
			bk.Status)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "mybk_"+bk.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// bookingDetailKeyboard offers cancel only while the booking is not
// terminal, and a ticket for pending/confirmed bookings.
func bookingDetailKeyboard(bk models.Booking) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if bk.CanCancel() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel booking", "bkcancel_ask_"+bk.ID),
		))
	}
	switch bk.Status {
	case models.BookingPending, models.BookingConfirmed:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎫 Download ticket", "ticket_"+bk.ID),
		))
	case models.BookingCancelled, models.BookingCompleted:
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("← Back to bookings", "mybookings"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🅿️ Slots", "admin_slots"),
			tgbotapi.NewInlineKeyboardButtonData("📋 Bookings", "admin_bookings"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Users", "admin_users"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", "admin_stats"),
		),
	)
}

func adminSlotListKeyboard(slots []models.Slot) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, slot := range slots {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+slot.Number, "aslot_edit_"+slot.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+slot.Number, "aslot_del_ask_"+slot.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ New slot", "aslot_new"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func slotSizeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Small", "aslot_size_SMALL"),
			tgbotapi.NewInlineKeyboardButtonData("Medium", "aslot_size_MEDIUM"),
			tgbotapi.NewInlineKeyboardButtonData("Large", "aslot_size_LARGE"),
		),
	)
}

func slotVehicleKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Motorcycle", "aslot_veh_MOTORCYCLE"),
			tgbotapi.NewInlineKeyboardButtonData("Car", "aslot_veh_CAR"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Truck", "aslot_veh_TRUCK"),
			tgbotapi.NewInlineKeyboardButtonData("Any", "aslot_veh_ANY"),
		),
	)
}

func slotStatusKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Available", "aslot_status_AVAILABLE"),
			tgbotapi.NewInlineKeyboardButtonData("Occupied", "aslot_status_OCCUPIED"),
			tgbotapi.NewInlineKeyboardButtonData("Unavailable", "aslot_status_UNAVAILABLE"),
		),
	)
}

func adminBookingListKeyboard(bookings []models.Booking) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, bk := range bookings {
		label := fmt.Sprintf("%s · %s · %s", bk.Slot.Number, bk.StartTime.Format("02 Jan 15:04"), bk.Status)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "abk_view_"+bk.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// adminBookingKeyboard offers the status picker unless the booking is
// already cancelled, plus deletion behind a confirm step.
func adminBookingKeyboard(bk models.Booking) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if bk.Status != models.BookingCancelled {
		rows = append(rows,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("→ Pending", "abk_st_"+bk.ID+"_PENDING"),
				tgbotapi.NewInlineKeyboardButtonData("→ Confirmed", "abk_st_"+bk.ID+"_CONFIRMED"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("→ Cancelled", "abk_st_"+bk.ID+"_CANCELLED"),
				tgbotapi.NewInlineKeyboardButtonData("→ Completed", "abk_st_"+bk.ID+"_COMPLETED"),
			),
		)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", "abk_del_ask_"+bk.ID),
		tgbotapi.NewInlineKeyboardButtonData("← Back", "admin_bookings"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminUserListKeyboard(users []models.User) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, user := range users {
		verified := "✗"
		if user.IsVerified {
			verified = "✓"
		}
		label := fmt.Sprintf("%s · %s %s", user.Name, user.Role, verified)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "ausr_view_"+user.ID),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func adminUserKeyboard(user models.User) tgbotapi.InlineKeyboardMarkup {
	verifyLabel := "Mark verified"
	if user.IsVerified {
		verifyLabel = "Mark unverified"
	}
	roleLabel := "Make admin"
	if user.Role == models.RoleAdmin {
		roleLabel = "Make customer"
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(verifyLabel, "ausr_verify_"+user.ID),
			tgbotapi.NewInlineKeyboardButtonData(roleLabel, "ausr_role_"+user.ID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete", "ausr_del_ask_"+user.ID),
			tgbotapi.NewInlineKeyboardButtonData("← Back", "admin_users"),
		),
	)
}
