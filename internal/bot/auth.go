package bot

import (
	"context"
	"fmt"
	"strings"
)

func (b *ParkingBot) startLogin(chatID int64) {
	st := b.state(chatID)
	st.resetFlow()
	st.Flow = flowLoginEmail
	b.send(chatID, "Enter your email address:")
}

func (b *ParkingBot) handleLoginEmail(chatID int64, st *chatState, text string) {
	email := strings.TrimSpace(text)
	if !strings.Contains(email, "@") {
		b.send(chatID, "❌ That doesn't look like an email address. Try again:")
		return
	}
	st.LoginEmail = email
	st.Flow = flowLoginPassword
	b.send(chatID, "Enter your password:")
}

func (b *ParkingBot) handleLoginPassword(chatID int64, st *chatState, text string) {
	email := st.LoginEmail
	st.resetFlow()

	user, err := b.session.Login(context.Background(), b.client, email, text)
	if err != nil {
		b.failure(chatID, "Login", err)
		return
	}
	b.send(chatID, fmt.Sprintf("✅ Welcome back, %s!", user.Name))
	b.sendWelcome(chatID)
}

func (b *ParkingBot) startRegister(chatID int64) {
	st := b.state(chatID)
	st.resetFlow()
	st.Flow = flowRegisterName
	b.send(chatID, "Let's create your account. What's your name?")
}

func (b *ParkingBot) handleRegisterName(chatID int64, st *chatState, text string) {
	name := strings.TrimSpace(text)
	if name == "" {
		b.send(chatID, "❌ Name can't be empty. Try again:")
		return
	}
	st.RegName = name
	st.Flow = flowRegisterEmail
	b.send(chatID, "Your email address:")
}

func (b *ParkingBot) handleRegisterEmail(chatID int64, st *chatState, text string) {
	email := strings.TrimSpace(text)
	if !strings.Contains(email, "@") {
		b.send(chatID, "❌ That doesn't look like an email address. Try again:")
		return
	}
	st.RegEmail = email
	st.Flow = flowRegisterPassword
	b.send(chatID, "Choose a password (at least 6 characters):")
}

func (b *ParkingBot) handleRegisterPassword(chatID int64, st *chatState, text string) {
	if len(text) < 6 {
		b.send(chatID, "❌ Password must be at least 6 characters. Try again:")
		return
	}
	st.RegPassword = text

	_, err := b.client.Register(context.Background(), st.RegName, st.RegEmail, st.RegPassword)
	if err != nil {
		st.resetFlow()
		b.failure(chatID, "Registration", err)
		return
	}
	st.Flow = flowVerifyOTP
	b.send(chatID, "📧 We sent a verification code to your email. Enter it here:")
}

func (b *ParkingBot) handleVerifyOTP(chatID int64, st *chatState, text string) {
	email := st.RegEmail
	otp := strings.TrimSpace(text)

	if err := b.client.VerifyEmail(context.Background(), email, otp); err != nil {
		b.failure(chatID, "Verification", err)
		b.send(chatID, "Enter the code again, or /start to abandon:")
		return
	}
	st.resetFlow()
	b.send(chatID, "✅ Email verified! You can /login now.")
}

func (b *ParkingBot) handleLogout(chatID int64) {
	b.session.Logout(context.Background())
	b.send(chatID, "👋 Logged out.")
	b.sendWelcome(chatID)
}

func (b *ParkingBot) showProfile(chatID int64) {
	if !b.requireLogin(chatID) {
		return
	}

	// Always re-fetch; an expired token surfaces here as a profile-load
	// failure and clears the session.
	if err := b.session.Refresh(context.Background(), b.client); err != nil {
		b.failure(chatID, "Profile load", err)
		return
	}

	user := b.session.Current()
	if user == nil {
		b.send(chatID, "🔒 Please /login first.")
		return
	}
	verified := "no"
	if user.IsVerified {
		verified = "yes"
	}
	b.send(chatID, fmt.Sprintf(
		"👤 *%s*\nEmail: %s\nRole: %s\nVerified: %s\n\n/logout to sign out.",
		user.Name, user.Email, user.Role, verified))
}

func (b *ParkingBot) requireLogin(chatID int64) bool {
	if b.session.LoggedIn() {
		return true
	}
	b.send(chatID, "🔒 Please /login first.")
	return false
}

func (b *ParkingBot) requireAdmin(chatID int64) bool {
	if !b.requireLogin(chatID) {
		return false
	}
	if !b.isAdmin(chatID) {
		b.send(chatID, "⛔ This area is for administrators.")
		return false
	}
	return true
}
