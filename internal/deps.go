package internal

import (
	"mupro/lostfound-api/internal/service"
	"mupro/lostfound-api/pkg/security"

	"gorm.io/gorm"
)

// Deps bundles everything the handlers need. Built once in the router and
// passed by closure.
type Deps struct {
	DB     *gorm.DB
	Argon  *security.ArgonHash
	JWT    *security.JWT
	Auth   *service.Auth
	Tokens *service.TokenLedger
	Mailer service.Mailer
	Images service.ImageStore
}
