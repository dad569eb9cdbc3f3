package service

import (
	"errors"
	"time"

	"mupro/lostfound-api/internal/model"

	"gorm.io/gorm"
)

var ErrTokenNotFound = errors.New("token not found")

// TokenLedger is the server-side record of every issued session token.
// A signed token only authenticates while its row exists with both flags
// still false, which is what lets us kill sessions before the expiry
// embedded in the JWT. Rows are flipped, never deleted.
type TokenLedger struct {
	db *gorm.DB
}

func NewTokenLedger(db *gorm.DB) *TokenLedger {
	return &TokenLedger{db: db}
}

// Record inserts a fresh ledger row for a newly issued token.
func (l *TokenLedger) Record(tokenStr, userID string) error {
	return l.db.Create(&model.Token{
		Token:  tokenStr,
		UserID: userID,
	}).Error
}

// Find returns the ledger row for a token string, or ErrTokenNotFound if
// this system never issued it.
func (l *TokenLedger) Find(tokenStr string) (*model.Token, error) {
	var t model.Token

	err := l.db.Where("token = ?", tokenStr).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}

		return nil, err
	}

	return &t, nil
}

// IsActive reports whether a ledger row exists and has not been revoked
// or marked expired. Missing rows count as inactive, not as an error.
func (l *TokenLedger) IsActive(tokenStr string) (bool, error) {
	t, err := l.Find(tokenStr)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return false, nil
		}

		return false, err
	}

	return !t.Revoked && !t.Expired, nil
}

// Revoke flips both flags on exactly one row (the logout path).
func (l *TokenLedger) Revoke(tokenStr string) error {
	res := l.db.Model(&model.Token{}).
		Where("token = ?", tokenStr).
		Updates(map[string]any{
			"revoked": true,
			"expired": true,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// Rotate revokes every active token of a user and records a new one, in
// that order, inside a single transaction. This is the only way new login
// tokens enter the ledger, so two concurrent logins can't both leave an
// active token behind: whichever transaction commits last wins and the
// other session's token is already flipped.
func (l *TokenLedger) Rotate(userID, tokenStr string) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		err := revokeAllForUser(tx, userID)
		if err != nil {
			return err
		}

		return tx.Create(&model.Token{
			Token:  tokenStr,
			UserID: userID,
		}).Error
	})
}

// RevokeAllForUser flips every active row of one user.
func (l *TokenLedger) RevokeAllForUser(userID string) error {
	return revokeAllForUser(l.db, userID)
}

func revokeAllForUser(tx *gorm.DB, userID string) error {
	return tx.Model(&model.Token{}).
		Where("user_id = ? AND revoked = ? AND expired = ?", userID, false, false).
		Updates(map[string]any{
			"revoked": true,
			"expired": true,
		}).Error
}

// Sweep marks rows whose embedded expiry has passed. The JWT middleware
// rejects those anyway, this just keeps the expired flag truthful for
// anyone reading the ledger directly. Rows are kept as an audit trail.
func (l *TokenLedger) Sweep(ttl time.Duration) error {
	return l.db.Model(&model.Token{}).
		Where("expired = ? AND created_at < ?", false, time.Now().Add(-ttl)).
		Update("expired", true).Error
}
