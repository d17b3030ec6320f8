package workers

import (
	"log"
	"time"

	"wordnest/auth"
	"wordnest/models"

	"github.com/jinzhu/gorm"
)

// StartTokenCleanup runs the hourly storage-hygiene sweep: expired refresh
// and reset tokens are dropped, stale pending link requests and
// verification codes are marked expired.
//
// Not safety-critical: expired rows are already rejected at lookup time.
// Deletions are keyed by expiry, so the sweep is safe next to in-flight
// requests.
func StartTokenCleanup(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		sweep(db)
		for range ticker.C {
			sweep(db)
		}
	}()
}

func sweep(db *gorm.DB) {
	if err := auth.CleanupExpiredTokens(db); err != nil {
		log.Printf("token cleanup: %v", err)
	}

	now := time.Now()
	if err := db.Model(&models.LinkRequest{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.LINK_STATUS_PENDING, now).
		Update("status", models.LINK_STATUS_EXPIRED).Error; err != nil {
		log.Printf("token cleanup: link requests: %v", err)
	}
	if err := db.Model(&models.EmailVerification{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.VERIFICATION_STATUS_PENDING, now).
		Update("status", models.VERIFICATION_STATUS_EXPIRED).Error; err != nil {
		log.Printf("token cleanup: verifications: %v", err)
	}
}
