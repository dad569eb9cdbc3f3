package service

import (
	"errors"
	"testing"
	"time"

	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeMailer captures outgoing OTP codes instead of dialing SMTP.
type fakeMailer struct {
	otps map[string]string
	fail bool
}

func (m *fakeMailer) SendOtp(to, code string) error {
	if m.fail {
		return errors.New("smtp down")
	}

	m.otps[to] = code
	return nil
}

func (m *fakeMailer) SendPasswordReset(to, link string) error {
	return nil
}

func newTestAuth(t *testing.T, requireVerification bool) (*Auth, *fakeMailer, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(model.User{}, model.Token{}))

	mailer := &fakeMailer{otps: map[string]string{}}
	a := NewAuth(
		conn,
		security.NewArgon(),
		security.NewJWT("test-secret", time.Hour),
		NewTokenLedger(conn),
		mailer,
		requireVerification,
	)

	return a, mailer, conn
}

func TestRegisterVerifyLoginLogout(t *testing.T) {
	a, mailer, conn := newTestAuth(t, true)

	res, err := a.Register("Alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)
	assert.Empty(t, res.Token, "no session before verification")
	assert.NotEmpty(t, res.Message)

	var user model.User
	require.NoError(t, conn.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.False(t, user.Enabled)
	require.NotNil(t, user.Otp)
	assert.Equal(t, mailer.otps["alice@example.com"], *user.Otp)

	// Logging in before verification is refused outright
	_, err = a.Login("alice@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrAccountNotVerified)

	res, err = a.VerifyOtp("alice@example.com", *user.Otp)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@example.com", res.User.Email)

	// Challenge is gone after success. Re-read into a fresh struct: gorm
	// leaves stale field values in place for NULL columns.
	var verified model.User
	require.NoError(t, conn.Where("email = ?", "alice@example.com").First(&verified).Error)
	assert.True(t, verified.Enabled)
	assert.Nil(t, verified.Otp)
	assert.Nil(t, verified.OtpGeneratedAt)

	firstToken := res.Token

	identity, err := a.Authenticate(firstToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.UserID)
	assert.Equal(t, model.RoleUser, identity.Role)

	// A fresh login kills the earlier session
	res, err = a.Login("alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, firstToken, res.Token)

	_, err = a.Authenticate(firstToken)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	_, err = a.Authenticate(res.Token)
	require.NoError(t, err)

	require.NoError(t, a.Logout(res.Token))

	_, err = a.Authenticate(res.Token)
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// The ledger keeps every row it ever wrote
	var count int64
	require.NoError(t, conn.Model(&model.Token{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRegisterWithoutVerification(t *testing.T) {
	a, mailer, _ := newTestAuth(t, false)

	res, err := a.Register("Bob", "bob@example.com", "hunter22!", "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Empty(t, mailer.otps)

	_, err = a.Authenticate(res.Token)
	assert.NoError(t, err)
}

func TestLoginImmediatelyAfterRegister(t *testing.T) {
	a, _, conn := newTestAuth(t, false)

	// Two sessions inside the same second must not collide on the
	// ledger's unique token column
	reg, err := a.Register("Alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)

	res, err := a.Login("alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, reg.Token, res.Token)

	var active int64
	require.NoError(t, conn.Model(&model.Token{}).
		Where("user_id = ? AND revoked = ? AND expired = ?", res.User.UserID, false, false).
		Count(&active).Error)
	assert.EqualValues(t, 1, active)
}

func TestRegisterAdminSkipsVerification(t *testing.T) {
	a, mailer, _ := newTestAuth(t, true)

	res, err := a.Register("Root", "root@example.com", "super secret", model.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, model.RoleAdmin, res.User.Role)
	assert.Empty(t, mailer.otps)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a, _, _ := newTestAuth(t, false)

	_, err := a.Register("Alice", "Alice@Example.COM", "correct horse", "")
	require.NoError(t, err)

	// Same address modulo case and whitespace
	_, err = a.Register("Evil Alice", "  alice@example.com ", "other password", "")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterMailFailureLeavesNoAccount(t *testing.T) {
	a, mailer, conn := newTestAuth(t, true)
	mailer.fail = true

	_, err := a.Register("Carol", "carol@example.com", "some password", "")
	assert.ErrorIs(t, err, ErrMailer)

	var count int64
	require.NoError(t, conn.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLoginInvalidCredentials(t *testing.T) {
	a, _, _ := newTestAuth(t, false)

	_, err := a.Register("Alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)

	// Unknown email and wrong password look identical to the caller
	_, err = a.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login("alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyOtpWrongCode(t *testing.T) {
	a, mailer, _ := newTestAuth(t, true)

	_, err := a.Register("Alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)
	require.NotEmpty(t, mailer.otps["alice@example.com"])

	_, err = a.VerifyOtp("alice@example.com", "000000")
	assert.ErrorIs(t, err, ErrInvalidOtp)

	_, err = a.VerifyOtp("nobody@example.com", "123456")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyOtpExpired(t *testing.T) {
	a, mailer, conn := newTestAuth(t, true)

	_, err := a.Register("Alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)

	stale := time.Now().Add(-OtpWindow - time.Minute)
	require.NoError(t, conn.Model(&model.User{}).
		Where("email = ?", "alice@example.com").
		Update("otp_generated_at", stale).Error)

	_, err = a.VerifyOtp("alice@example.com", mailer.otps["alice@example.com"])
	assert.ErrorIs(t, err, ErrOtpExpired)

	// A wrong code wins over an expired window
	_, err = a.VerifyOtp("alice@example.com", "000000")
	assert.ErrorIs(t, err, ErrInvalidOtp)

	var user model.User
	require.NoError(t, conn.Where("email = ?", "alice@example.com").First(&user).Error)
	assert.False(t, user.Enabled)
}

func TestAuthenticateForgedToken(t *testing.T) {
	a, _, _ := newTestAuth(t, false)

	res, err := a.Register("Alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)

	// Same claims, different secret: signature check must catch it
	forged, err := security.NewJWT("other-secret", time.Hour).Issue("alice@example.com")
	require.NoError(t, err)

	_, err = a.Authenticate(forged)
	assert.ErrorIs(t, err, security.ErrTokenInvalid)

	// Valid signature but never recorded in the ledger
	unlisted, err := security.NewJWT("test-secret", time.Hour).Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, res.Token, unlisted)

	_, err = a.Authenticate(unlisted)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
	assert.Equal(t, "bob@example.com", NormalizeEmail("bob@example.com"))
}
