package auth

import (
	"testing"
	"time"

	"wordnest/models"
	"wordnest/tools"
)

func TestRefreshRotation(t *testing.T) {
	db := openTestDB(t)

	user, pair, err := Register(db, RegisterInput{Username: "rot", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	pair2, err := Refresh(db, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if pair2.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh returned the same token")
	}
	if claims, err := VerifyAccessToken(pair2.AccessToken); err != nil || claims.UserID != user.ID {
		t.Fatalf("new access token invalid: claims=%+v err=%v", claims, err)
	}

	// The rotated-out token is dead, only the replacement works.
	if _, err := Refresh(db, pair.RefreshToken); err != ErrInvalidRefreshToken {
		t.Errorf("replayed token: got %v, want ErrInvalidRefreshToken", err)
	}
	if _, err := Refresh(db, pair2.RefreshToken); err != nil {
		t.Errorf("current token: %v", err)
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	db := openTestDB(t)

	if _, err := Refresh(db, "never-issued"); err != ErrInvalidRefreshToken {
		t.Errorf("got %v, want ErrInvalidRefreshToken", err)
	}
}

func TestRefreshExpiredToken(t *testing.T) {
	db := openTestDB(t)

	_, pair, err := Register(db, RegisterInput{Username: "exp", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	past := time.Now().Add(-time.Hour)
	hash := tools.EncryptTextSHA512(pair.RefreshToken)
	if err := db.Model(&models.RefreshToken{}).Where("token_hash = ?", hash).
		Update("expires_at", past).Error; err != nil {
		t.Fatalf("backdate token: %v", err)
	}

	if _, err := Refresh(db, pair.RefreshToken); err != ErrRefreshTokenExpired {
		t.Fatalf("got %v, want ErrRefreshTokenExpired", err)
	}

	// The expired row is removed on sight.
	var count int64
	db.Model(&models.RefreshToken{}).Where("token_hash = ?", hash).Count(&count)
	if count != 0 {
		t.Errorf("expired token row still present")
	}
}

func TestConcurrentSessions(t *testing.T) {
	db := openTestDB(t)

	user, first, err := Register(db, RegisterInput{Username: "multi", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_, second, err := Login(db, "multi", "secret1")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	// A second login does not revoke the first device.
	if _, err := Refresh(db, first.RefreshToken); err != nil {
		t.Errorf("first session refresh: %v", err)
	}
	if _, err := Refresh(db, second.RefreshToken); err != nil {
		t.Errorf("second session refresh: %v", err)
	}

	if err := RevokeAllUserRefreshTokens(db, user.ID); err != nil {
		t.Fatalf("revoke all: %v", err)
	}
	var count int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 0 {
		t.Errorf("tokens left after revoke all: %d", count)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	_, pair, err := Register(db, RegisterInput{Username: "bye", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := Logout(db, pair.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := Logout(db, pair.RefreshToken); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if _, err := Refresh(db, pair.RefreshToken); err != ErrInvalidRefreshToken {
		t.Errorf("refresh after logout: got %v, want ErrInvalidRefreshToken", err)
	}
}

func TestCleanupExpiredTokens(t *testing.T) {
	db := openTestDB(t)

	user, live, err := Register(db, RegisterInput{Username: "sweep", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	_, stale, err := Login(db, "sweep", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	past := time.Now().Add(-time.Hour)
	if err := db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tools.EncryptTextSHA512(stale.RefreshToken)).
		Update("expires_at", past).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}
	if err := db.Create(&models.PasswordReset{
		UserID: user.ID, TokenHash: "dead:hash", ExpiresAt: &past,
	}).Error; err != nil {
		t.Fatalf("seed stale reset: %v", err)
	}

	if err := CleanupExpiredTokens(db); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	var refreshCount, resetCount int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&refreshCount)
	db.Model(&models.PasswordReset{}).Where("user_id = ?", user.ID).Count(&resetCount)
	if refreshCount != 1 {
		t.Errorf("want only the live refresh token, got %d rows", refreshCount)
	}
	if resetCount != 0 {
		t.Errorf("stale reset row survived cleanup")
	}
	if _, err := Refresh(db, live.RefreshToken); err != nil {
		t.Errorf("live token after cleanup: %v", err)
	}
}
