package api

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parking-bot/internal/models"
)

// Login exchanges credentials for a bearer token and the user it belongs to.
func (c *Client) Login(ctx context.Context, email, password string) (string, models.User, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	if err := c.post(ctx, "/auth/login", body, &out); err != nil {
		return "", models.User{}, err
	}
	return out.Token, out.User, nil
}

// Register creates a customer account. Role is fixed server-side semantics;
// the client never registers admins.
func (c *Client) Register(ctx context.Context, name, email, password string) (models.User, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     string(models.RoleCustomer),
	}
	var user models.User
	if err := c.post(ctx, "/auth/register", body, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// VerifyEmail submits the OTP sent during registration.
func (c *Client) VerifyEmail(ctx context.Context, email, otp string) error {
	body := map[string]string{"email": email, "otp": otp}
	return c.post(ctx, "/auth/verify-email", body, nil)
}

// CurrentUser fetches the profile of the token's owner.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.get(ctx, "/users/me", nil, &out); err != nil {
		return models.User{}, err
	}
	return out.User, nil
}

// TokenExpired inspects the token's exp claim without verifying the
// signature; verification belongs to the server. A token that cannot be
// parsed or carries a past exp counts as expired.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}
