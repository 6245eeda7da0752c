package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (b *ParkingBot) handleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := msg.Text
	st := b.state(chatID)

	switch text {
	case "/start", "/menu", "🏠 Main Menu":
		st.resetFlow()
		b.sendWelcome(chatID)

	case "🔑 Login", "/login":
		b.startLogin(chatID)

	case "🆕 Register", "/register":
		b.startRegister(chatID)

	case "/logout":
		st.resetFlow()
		b.handleLogout(chatID)

	case "🅿️ Slots", "/slots":
		st.resetFlow()
		b.showSlots(chatID)

	case "📝 Book", "/book":
		b.startBookingFlow(chatID)

	case "📋 My Bookings", "/mybookings":
		st.resetFlow()
		b.showMyBookings(chatID)

	case "👤 Profile", "/profile":
		st.resetFlow()
		b.showProfile(chatID)

	case "🛠 Admin", "/admin":
		st.resetFlow()
		b.showAdminMenu(chatID)

	default:
		if st.Flow != flowNone {
			b.handleFlowInput(chatID, st, text)
			return
		}
		b.send(chatID, "I don't understand that. Use the menu buttons or /start.")
	}
}

// handleFlowInput feeds free-text messages into whichever dialog the chat is
// in the middle of.
func (b *ParkingBot) handleFlowInput(chatID int64, st *chatState, text string) {
	switch st.Flow {
	case flowLoginEmail:
		b.handleLoginEmail(chatID, st, text)
	case flowLoginPassword:
		b.handleLoginPassword(chatID, st, text)
	case flowRegisterName:
		b.handleRegisterName(chatID, st, text)
	case flowRegisterEmail:
		b.handleRegisterEmail(chatID, st, text)
	case flowRegisterPassword:
		b.handleRegisterPassword(chatID, st, text)
	case flowVerifyOTP:
		b.handleVerifyOTP(chatID, st, text)
	case flowSlotNumber:
		b.handleSlotNumberInput(chatID, st, text)
	case flowSlotLocation:
		b.handleSlotLocationInput(chatID, st, text)
	case flowNone:
	}
}

func (b *ParkingBot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	data := query.Data

	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := b.botAPI.Request(callback); err != nil {
		b.log.Warn("callback ack failed", zap.Error(err))
	}

	st := b.state(chatID)

	switch {
	case data == "mybookings":
		b.showMyBookings(chatID)

	// customer booking flow
	case strings.HasPrefix(data, "book_slot_"):
		b.handleBookingSlot(chatID, st, strings.TrimPrefix(data, "book_slot_"))
	case strings.HasPrefix(data, "book_day_"):
		b.handleBookingDay(chatID, st, strings.TrimPrefix(data, "book_day_"))
	case strings.HasPrefix(data, "book_start_"):
		b.handleBookingStart(chatID, st, strings.TrimPrefix(data, "book_start_"))
	case strings.HasPrefix(data, "book_end_"):
		b.handleBookingEnd(chatID, st, strings.TrimPrefix(data, "book_end_"))
	case data == "book_confirm":
		b.handleBookingConfirm(chatID, st)
	case data == "book_abort":
		st.Form = nil
		b.send(chatID, "Booking abandoned.")

	// slot filters
	case data == "filter_size_menu":
		b.sendWithKeyboard(chatID, "Filter by size:", sizeFilterKeyboard())
	case data == "filter_veh_menu":
		b.sendWithKeyboard(chatID, "Filter by vehicle type:", vehicleFilterKeyboard())
	case strings.HasPrefix(data, "filter_size_"):
		b.handleSizeFilter(chatID, st, strings.TrimPrefix(data, "filter_size_"))
	case strings.HasPrefix(data, "filter_veh_"):
		b.handleVehicleFilter(chatID, st, strings.TrimPrefix(data, "filter_veh_"))

	// my bookings
	case strings.HasPrefix(data, "mybk_"):
		b.showBookingDetail(chatID, strings.TrimPrefix(data, "mybk_"))
	case strings.HasPrefix(data, "bkcancel_ask_"):
		b.askCancelBooking(chatID, strings.TrimPrefix(data, "bkcancel_ask_"))
	case strings.HasPrefix(data, "bkcancel_yes_"):
		b.handleCancelBooking(chatID, strings.TrimPrefix(data, "bkcancel_yes_"))
	case strings.HasPrefix(data, "bkcancel_no_"):
		b.showBookingDetail(chatID, strings.TrimPrefix(data, "bkcancel_no_"))
	case strings.HasPrefix(data, "ticket_"):
		b.sendTicket(chatID, strings.TrimPrefix(data, "ticket_"))

	// admin
	case data == "admin_slots":
		b.showAdminSlots(chatID)
	case data == "admin_bookings":
		b.showAdminBookings(chatID)
	case data == "admin_users":
		b.showAdminUsers(chatID)
	case data == "admin_stats":
		b.showAdminStats(chatID)

	case data == "aslot_new":
		b.startSlotDialog(chatID, st, "")
	case strings.HasPrefix(data, "aslot_edit_"):
		b.startSlotDialog(chatID, st, strings.TrimPrefix(data, "aslot_edit_"))
	case strings.HasPrefix(data, "aslot_del_ask_"):
		b.askDeleteSlot(chatID, strings.TrimPrefix(data, "aslot_del_ask_"))
	case strings.HasPrefix(data, "aslot_del_yes_"):
		b.handleDeleteSlot(chatID, strings.TrimPrefix(data, "aslot_del_yes_"))
	case data == "aslot_del_no":
		b.showAdminSlots(chatID)
	case strings.HasPrefix(data, "aslot_size_"):
		b.handleSlotSize(chatID, st, strings.TrimPrefix(data, "aslot_size_"))
	case strings.HasPrefix(data, "aslot_veh_"):
		b.handleSlotVehicle(chatID, st, strings.TrimPrefix(data, "aslot_veh_"))
	case strings.HasPrefix(data, "aslot_status_"):
		b.handleSlotStatus(chatID, st, strings.TrimPrefix(data, "aslot_status_"))

	case strings.HasPrefix(data, "abk_view_"):
		b.showAdminBookingDetail(chatID, strings.TrimPrefix(data, "abk_view_"))
	case strings.HasPrefix(data, "abk_st_"):
		b.handleAdminBookingStatus(chatID, strings.TrimPrefix(data, "abk_st_"))
	case strings.HasPrefix(data, "abk_del_ask_"):
		b.askDeleteBooking(chatID, strings.TrimPrefix(data, "abk_del_ask_"))
	case strings.HasPrefix(data, "abk_del_yes_"):
		b.handleDeleteBooking(chatID, strings.TrimPrefix(data, "abk_del_yes_"))
	case data == "abk_del_no":
		b.showAdminBookings(chatID)

	case strings.HasPrefix(data, "ausr_view_"):
		b.showAdminUserDetail(chatID, strings.TrimPrefix(data, "ausr_view_"))
	case strings.HasPrefix(data, "ausr_verify_"):
		b.handleToggleUserVerified(chatID, strings.TrimPrefix(data, "ausr_verify_"))
	case strings.HasPrefix(data, "ausr_role_"):
		b.handleToggleUserRole(chatID, strings.TrimPrefix(data, "ausr_role_"))
	case strings.HasPrefix(data, "ausr_del_ask_"):
		b.askDeleteUser(chatID, strings.TrimPrefix(data, "ausr_del_ask_"))
	case strings.HasPrefix(data, "ausr_del_yes_"):
		b.handleDeleteUser(chatID, strings.TrimPrefix(data, "ausr_del_yes_"))
	case data == "ausr_del_no":
		b.showAdminUsers(chatID)

	default:
		b.log.Debug("unknown callback", zap.String("data", data))
	}
}

func (b *ParkingBot) sendWelcome(chatID int64) {
	loggedIn := b.session.LoggedIn()
	text := "🅿️ *Welcome to the parking bot!*\n\nChoose an action:"
	if !loggedIn {
		text = "🅿️ *Welcome to the parking bot!*\n\nPlease log in or create an account."
	}
	b.sendWithKeyboard(chatID, text, mainMenuKeyboard(loggedIn, b.isAdmin(chatID)))
}

// isAdmin requires both the API role and, when configured, the dedicated
// admin chat.
func (b *ParkingBot) isAdmin(chatID int64) bool {
	if !b.session.IsAdmin() {
		return false
	}
	return b.adminID == 0 || chatID == b.adminID
}
