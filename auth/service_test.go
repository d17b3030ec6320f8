package auth

import (
	"testing"

	"wordnest/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := openTestDB(t)

	user, pair, err := Register(db, RegisterInput{
		Username: "alice123",
		Password: "secret1",
		Role:     models.ROLE_STUDENT,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("register returned user without id")
	}
	if user.DisplayName != "alice123" {
		t.Errorf("display name should default to username, got %q", user.DisplayName)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("register returned empty token pair")
	}
	if user.Password == "secret1" {
		t.Fatal("password stored in plaintext")
	}

	// The stats row is created alongside the user.
	var stats models.UserStats
	if err := db.Where("user_id = ?", user.ID).First(&stats).Error; err != nil {
		t.Fatalf("stats row missing: %v", err)
	}

	logged, pair2, err := Login(db, "alice123", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("login returned user %d, want %d", logged.ID, user.ID)
	}

	claims, err := VerifyAccessToken(pair2.AccessToken)
	if err != nil {
		t.Fatalf("verify access token: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "alice123" || claims.Role != models.ROLE_STUDENT {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)

	if _, _, err := Register(db, RegisterInput{Username: "bob", Password: "short"}); err != ErrWeakPassword {
		t.Errorf("weak password: got %v, want ErrWeakPassword", err)
	}
	if _, _, err := Register(db, RegisterInput{
		Username: "dad", Password: "secret1", Role: models.ROLE_PARENT, Email: "not-an-email",
	}); err != ErrInvalidEmailFormat {
		t.Errorf("bad parent email: got %v, want ErrInvalidEmailFormat", err)
	}
	if _, _, err := Register(db, RegisterInput{
		Username: "dad", Password: "secret1", Role: models.ROLE_PARENT, Email: "",
	}); err != ErrInvalidEmailFormat {
		t.Errorf("missing parent email: got %v, want ErrInvalidEmailFormat", err)
	}

	if _, _, err := Register(db, RegisterInput{
		Username: "carol", Password: "secret1", Email: "carol@example.com",
	}); err != nil {
		t.Fatalf("register carol: %v", err)
	}
	if _, _, err := Register(db, RegisterInput{Username: "carol", Password: "secret1"}); err != ErrUsernameTaken {
		t.Errorf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
	if _, _, err := Register(db, RegisterInput{
		Username: "carol2", Password: "secret1", Email: "carol@example.com",
	}); err != ErrEmailTaken {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	db := openTestDB(t)

	if _, _, err := Register(db, RegisterInput{Username: "dave", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := Login(db, "nobody", "secret1"); err != ErrInvalidCredentials {
		t.Errorf("unknown username: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := Login(db, "dave", "wrongpass"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
}

func TestChangeOwnPassword(t *testing.T) {
	db := openTestDB(t)

	user, pair, err := Register(db, RegisterInput{Username: "self", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := ChangeOwnPassword(db, user, "short"); err != ErrWeakPassword {
		t.Errorf("weak password: got %v, want ErrWeakPassword", err)
	}
	if err := ChangeOwnPassword(db, user, "newpass1"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, _, err := Login(db, "self", "newpass1"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, err := Login(db, "self", "secret1"); err != ErrInvalidCredentials {
		t.Errorf("login with old password: got %v, want ErrInvalidCredentials", err)
	}
	// Other devices are logged out.
	if _, err := Refresh(db, pair.RefreshToken); err != ErrInvalidRefreshToken {
		t.Errorf("refresh after password change: got %v, want ErrInvalidRefreshToken", err)
	}
}

func TestResetUserPasswordAuthorization(t *testing.T) {
	db := openTestDB(t)

	admin, _, err := Register(db, RegisterInput{Username: "root", Password: "secret1", Role: models.ROLE_ADMIN})
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	parent, _, err := Register(db, RegisterInput{
		Username: "mom", Password: "secret1", Role: models.ROLE_PARENT, Email: "mom@example.com",
	})
	if err != nil {
		t.Fatalf("register parent: %v", err)
	}
	kid, _, err := Register(db, RegisterInput{Username: "kid", Password: "secret1"})
	if err != nil {
		t.Fatalf("register kid: %v", err)
	}
	stranger, _, err := Register(db, RegisterInput{Username: "stranger", Password: "secret1"})
	if err != nil {
		t.Fatalf("register stranger: %v", err)
	}

	if err := ResetUserPassword(db, kid, stranger.ID, "newpass1"); err != ErrUnauthorized {
		t.Errorf("student resetting another user: got %v, want ErrUnauthorized", err)
	}
	if err := ResetUserPassword(db, admin, admin.ID, "newpass1"); err != ErrUnauthorized {
		t.Errorf("admin self-reset: got %v, want ErrUnauthorized", err)
	}
	if err := ResetUserPassword(db, parent, kid.ID, "newpass1"); err != ErrUnauthorized {
		t.Errorf("parent resetting unlinked student: got %v, want ErrUnauthorized", err)
	}
	if err := ResetUserPassword(db, admin, 99999, "newpass1"); err != ErrUserNotFound {
		t.Errorf("missing target: got %v, want ErrUserNotFound", err)
	}
	if err := ResetUserPassword(db, admin, kid.ID, "short"); err != ErrWeakPassword {
		t.Errorf("weak new password: got %v, want ErrWeakPassword", err)
	}

	// Link the kid to the parent and try again.
	if err := db.Model(&models.User{}).Where("id = ?", kid.ID).
		Update("parent_id", parent.ID).Error; err != nil {
		t.Fatalf("link kid: %v", err)
	}
	if err := ResetUserPassword(db, parent, kid.ID, "newpass1"); err != nil {
		t.Fatalf("parent resetting linked student: %v", err)
	}
	if _, _, err := Login(db, "kid", "newpass1"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
	if _, _, err := Login(db, "kid", "secret1"); err != ErrInvalidCredentials {
		t.Errorf("login with old password: got %v, want ErrInvalidCredentials", err)
	}

	// The assisted reset revokes every session.
	var remaining int64
	db.Model(&models.RefreshToken{}).Where("user_id = ?", kid.ID).Count(&remaining)
	if remaining != 0 {
		t.Errorf("refresh tokens left after assisted reset: %d", remaining)
	}
	var note models.Notification
	if err := db.Where("user_id = ? AND kind = ?", kid.ID, models.NOTIFICATION_KIND_PASSWORD_CHANGED).
		First(&note).Error; err != nil {
		t.Errorf("password-changed notification missing: %v", err)
	}
}
