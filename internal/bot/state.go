package bot

import (
	"parking-bot/internal/api"
	"parking-bot/internal/services"
)

// flow marks which multi-step dialog a chat is in the middle of.
type flow int

const (
	flowNone flow = iota
	flowLoginEmail
	flowLoginPassword
	flowRegisterName
	flowRegisterEmail
	flowRegisterPassword
	flowVerifyOTP
	flowSlotNumber
	flowSlotLocation
)

type chatState struct {
	Flow flow

	// auth dialog inputs
	LoginEmail  string
	RegName     string
	RegEmail    string
	RegPassword string

	// customer booking draft and slot filters
	Form    *services.BookingForm
	Filters api.SlotFilters

	// admin slot dialog; ID empty means create
	SlotDraft *slotDraft
}

type slotDraft struct {
	ID    string
	Input api.SlotInput
}

func (b *ParkingBot) state(chatID int64) *chatState {
	st, ok := b.states[chatID]
	if !ok {
		st = &chatState{}
		b.states[chatID] = st
	}
	return st
}

// resetFlow abandons any dialog in progress but keeps the slot filters.
func (st *chatState) resetFlow() {
	filters := st.Filters
	*st = chatState{Filters: filters}
}
