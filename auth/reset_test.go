package auth

import (
	"strings"
	"testing"
	"time"

	"wordnest/models"
)

func TestPasswordResetFlow(t *testing.T) {
	db := openTestDB(t)

	user, pair, err := Register(db, RegisterInput{
		Username: "eve", Password: "secret1", Email: "eve@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	mailer := &captureMailer{}
	if err := RequestPasswordReset(db, mailer, "eve@example.com"); err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if mailer.lastEmail != "eve@example.com" || mailer.lastToken == "" {
		t.Fatalf("no reset mail sent: %+v", mailer)
	}
	if strings.Count(mailer.lastToken, ".") != 1 {
		t.Fatalf("token %q is not selector.validator shaped", mailer.lastToken)
	}

	// The raw token never touches the database.
	var reset models.PasswordReset
	if err := db.Where("user_id = ?", user.ID).First(&reset).Error; err != nil {
		t.Fatalf("reset row missing: %v", err)
	}
	validator := strings.SplitN(mailer.lastToken, ".", 2)[1]
	if strings.Contains(reset.TokenHash, validator) {
		t.Fatal("validator stored in plaintext")
	}

	if !ValidateResetToken(db, mailer.lastToken) {
		t.Fatal("freshly issued token does not validate")
	}

	if err := ResetPassword(db, mailer, mailer.lastToken, "brandnew1"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if _, _, err := Login(db, "eve", "brandnew1"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, err := Login(db, "eve", "secret1"); err != ErrInvalidCredentials {
		t.Errorf("login with old password: got %v, want ErrInvalidCredentials", err)
	}

	// Consuming the token kills every session and every outstanding token.
	if _, err := Refresh(db, pair.RefreshToken); err != ErrInvalidRefreshToken {
		t.Errorf("refresh after reset: got %v, want ErrInvalidRefreshToken", err)
	}
	if ValidateResetToken(db, mailer.lastToken) {
		t.Error("consumed token still validates")
	}
	if err := ResetPassword(db, mailer, mailer.lastToken, "another1"); err != ErrInvalidOrExpiredToken {
		t.Errorf("reuse consumed token: got %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestResetTokenRejections(t *testing.T) {
	db := openTestDB(t)

	user, _, err := Register(db, RegisterInput{
		Username: "mallory", Password: "secret1", Email: "mallory@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	mailer := &captureMailer{}
	if err := RequestPasswordReset(db, mailer, "mallory@example.com"); err != nil {
		t.Fatalf("request reset: %v", err)
	}

	selector := strings.SplitN(mailer.lastToken, ".", 2)[0]
	for _, raw := range []string{
		"",
		"justonepart",
		"a.b.c",
		"." + "validatoralone",
		selector + ".",
		selector + ".wrongvalidator",
	} {
		if ValidateResetToken(db, raw) {
			t.Errorf("token %q should not validate", raw)
		}
		if err := ResetPassword(db, mailer, raw, "brandnew1"); err != ErrInvalidOrExpiredToken {
			t.Errorf("token %q: got %v, want ErrInvalidOrExpiredToken", raw, err)
		}
	}

	if err := ResetPassword(db, mailer, mailer.lastToken, "short"); err != ErrWeakPassword {
		t.Errorf("weak password: got %v, want ErrWeakPassword", err)
	}

	// An expired token is treated exactly like a bad one.
	past := time.Now().Add(-time.Minute)
	if err := db.Model(&models.PasswordReset{}).Where("user_id = ?", user.ID).
		Update("expires_at", past).Error; err != nil {
		t.Fatalf("backdate reset: %v", err)
	}
	if ValidateResetToken(db, mailer.lastToken) {
		t.Error("expired token still validates")
	}
	if err := ResetPassword(db, mailer, mailer.lastToken, "brandnew1"); err != ErrInvalidOrExpiredToken {
		t.Errorf("expired token: got %v, want ErrInvalidOrExpiredToken", err)
	}
}

func TestResetRequestRateLimit(t *testing.T) {
	db := openTestDB(t)

	user, _, err := Register(db, RegisterInput{
		Username: "spam", Password: "secret1", Email: "spam@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	mailer := &captureMailer{}
	for i := 0; i < resetRateLimit+2; i++ {
		if err := RequestPasswordReset(db, mailer, "spam@example.com"); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}

	var count int64
	db.Model(&models.PasswordReset{}).Where("user_id = ?", user.ID).Count(&count)
	if count != resetRateLimit {
		t.Errorf("got %d reset rows, want %d", count, resetRateLimit)
	}
}

func TestResetRequestUnknownEmail(t *testing.T) {
	db := openTestDB(t)

	mailer := &captureMailer{}
	start := time.Now()
	if err := RequestPasswordReset(db, mailer, "ghost@example.com"); err != nil {
		t.Fatalf("unknown email must look like success, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 150*time.Millisecond {
		t.Errorf("unknown-email path answered in %s, too fast to mask enumeration", elapsed)
	}
	if mailer.lastToken != "" {
		t.Error("mail sent for unknown email")
	}

	var count int64
	db.Model(&models.PasswordReset{}).Count(&count)
	if count != 0 {
		t.Errorf("reset row created for unknown email")
	}
}

func TestResetRequestMailFailureSurfaces(t *testing.T) {
	db := openTestDB(t)

	if _, _, err := Register(db, RegisterInput{
		Username: "nomail", Password: "secret1", Email: "nomail@example.com",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	mailer := &captureMailer{fail: true}
	if err := RequestPasswordReset(db, mailer, "nomail@example.com"); err == nil {
		t.Fatal("mail send failure must surface to the caller")
	}
}
