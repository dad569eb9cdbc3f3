// Package service contains the business logic sitting between the gin
// handlers and the database
package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/pkg/security"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idLength  = 16

	// OtpWindow is how long a one-time passcode stays valid after it was
	// generated.
	OtpWindow = 10 * time.Minute
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike
	// so responses don't reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrInvalidOtp         = errors.New("invalid otp")
	ErrOtpExpired         = errors.New("otp expired")
	ErrUserNotFound       = errors.New("user not found")
	ErrMailer             = errors.New("failed to send mail")
)

// Identity is the minimal projection of a user handed to handlers after
// authentication. It carries no framework types and no secrets.
type Identity struct {
	UserID string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// AuthResult is what register/login/verify hand back: either a session
// token plus identity, or just a message for the pending-verification
// branch of registration.
type AuthResult struct {
	Token   string    `json:"token,omitempty"`
	User    *Identity `json:"user,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Auth orchestrates the register -> (otp gate) -> login -> logout
// lifecycle on top of the credential store, the JWT signer and the token
// ledger.
type Auth struct {
	db     *gorm.DB
	argon  *security.ArgonHash
	jwt    *security.JWT
	ledger *TokenLedger
	mailer Mailer

	// RequireVerification gates registration behind an emailed OTP.
	// Admin-created accounts skip the gate either way.
	RequireVerification bool
}

func NewAuth(db *gorm.DB, argon *security.ArgonHash, jwt *security.JWT, ledger *TokenLedger, mailer Mailer, requireVerification bool) *Auth {
	return &Auth{
		db:                  db,
		argon:               argon,
		jwt:                 jwt,
		ledger:              ledger,
		mailer:              mailer,
		RequireVerification: requireVerification,
	}
}

// NormalizeEmail fixes the case policy once for the whole app: emails are
// trimmed and lowercased before every store or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. With verification required the account
// starts disabled and an OTP goes out by mail; otherwise (and always for
// admin-created accounts) it's enabled immediately and a session token is
// issued on the spot.
func (a *Auth) Register(name, email, password string, role model.Role) (*AuthResult, error) {
	email = NormalizeEmail(email)

	if role == "" {
		role = model.RoleUser
	}

	var count int64
	if err := a.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := a.argon.HashPassword(password)
	if err != nil {
		return nil, err
	}

	userID, err := gonanoid.Generate(idCharset, idLength)
	if err != nil {
		return nil, err
	}

	user := model.User{
		ID:           userID,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	if a.RequireVerification && role != model.RoleAdmin {
		code, err := security.GenerateOtp()
		if err != nil {
			return nil, err
		}

		// Mail first so a dead SMTP server doesn't leave behind an
		// account nobody can ever verify.
		if err := a.mailer.SendOtp(email, code); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMailer, err)
		}

		now := time.Now()
		user.Otp = &code
		user.OtpGeneratedAt = &now

		if err := a.db.Create(&user).Error; err != nil {
			return nil, err
		}

		zap.L().Info("User registered, awaiting verification", zap.String("userID", userID))

		return &AuthResult{
			Message: "Registered. Check your email for the verification code",
		}, nil
	}

	user.Enabled = true

	if err := a.db.Create(&user).Error; err != nil {
		return nil, err
	}

	return a.openSession(&user)
}

// VerifyOtp checks the presented code against the outstanding challenge.
// A wrong code and a timed-out window are distinct outcomes; on success
// the account is enabled, the challenge cleared and a session opened.
func (a *Auth) VerifyOtp(email, code string) (*AuthResult, error) {
	user, err := a.findByEmail(email)
	if err != nil {
		return nil, err
	}

	if user.Otp == nil || subtle.ConstantTimeCompare([]byte(code), []byte(*user.Otp)) != 1 {
		return nil, ErrInvalidOtp
	}

	if user.OtpGeneratedAt == nil || time.Now().After(user.OtpGeneratedAt.Add(OtpWindow)) {
		return nil, ErrOtpExpired
	}

	err = a.db.Model(user).Updates(map[string]any{
		"enabled":          true,
		"otp":              nil,
		"otp_generated_at": nil,
	}).Error
	if err != nil {
		return nil, err
	}

	user.Enabled = true

	return a.openSession(user)
}

// Login verifies credentials and opens a fresh session. Every previously
// active token of the user dies with it.
func (a *Auth) Login(email, password string) (*AuthResult, error) {
	user, err := a.findByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	ok, err := a.argon.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.Enabled {
		return nil, ErrAccountNotVerified
	}

	return a.openSession(user)
}

// Logout kills exactly one session token. Tokens this system never issued
// come back as ErrTokenNotFound.
func (a *Auth) Logout(tokenStr string) error {
	return a.ledger.Revoke(tokenStr)
}

// Authenticate resolves a bearer token to an identity for one request.
// Any failure, from a forged signature to a revoked ledger row, leaves
// the caller anonymous; the returned error only says why, for logging.
// It never mutates state.
func (a *Auth) Authenticate(tokenStr string) (*Identity, error) {
	subject, err := a.jwt.Validate(tokenStr)
	if err != nil {
		return nil, err
	}

	active, err := a.ledger.IsActive(tokenStr)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, ErrTokenNotFound
	}

	user, err := a.findByEmail(subject)
	if err != nil {
		return nil, err
	}

	return identityOf(user), nil
}

// openSession issues a signed token and rotates the ledger so this
// becomes the user's only active session lineage.
func (a *Auth) openSession(user *model.User) (*AuthResult, error) {
	tokenStr, err := a.jwt.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	if err := a.ledger.Rotate(user.ID, tokenStr); err != nil {
		return nil, err
	}

	return &AuthResult{
		Token: tokenStr,
		User:  identityOf(user),
	}, nil
}

func (a *Auth) findByEmail(email string) (*model.User, error) {
	var user model.User

	err := a.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

func identityOf(user *model.User) *Identity {
	return &Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}
}
