package service

import (
	"time"

	"go.uber.org/zap"
)

// TokenSweep periodically marks ledger rows whose embedded expiry has
// passed. Runs forever; meant to be started once from the router.
func TokenSweep(interval, tokenTTL time.Duration, ledger *TokenLedger) {
	ticker := time.NewTicker(interval)

	zap.L().Debug("Token sweep attached", zap.Duration("tick_every", interval))

	go func() {
		for range ticker.C {
			if err := ledger.Sweep(tokenTTL); err != nil {
				zap.L().Error("Failed to sweep expired tokens", zap.Error(err))
			}
		}
	}()
}
