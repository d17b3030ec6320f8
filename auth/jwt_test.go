package auth

import (
	"testing"
	"time"

	"wordnest/models"

	"github.com/golang-jwt/jwt/v5"
)

func testUser() models.User {
	return models.User{ID: 42, Username: "zed", Role: models.ROLE_STUDENT}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken(testUser())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "zed" || claims.Role != models.ROLE_STUDENT {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("token has no jti")
	}
}

func TestVerifyAccessTokenRejections(t *testing.T) {
	good, err := NewAccessToken(testUser())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   42,
		Username: "zed",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredString, err := expired.SignedString(jwtSecret())
	if err != nil {
		t.Fatalf("sign expired: %v", err)
	}

	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 42})
	wrongKeyString, err := wrongKey.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign wrong key: %v", err)
	}

	noUserID := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	noUserIDString, err := noUserID.SignedString(jwtSecret())
	if err != nil {
		t.Fatalf("sign without user id: %v", err)
	}

	cases := map[string]string{
		"garbage":      "not.a.jwt",
		"tampered":     good + "x",
		"expired":      expiredString,
		"wrong key":    wrongKeyString,
		"zero user id": noUserIDString,
	}
	for name, token := range cases {
		if _, err := VerifyAccessToken(token); err != ErrInvalidOrExpiredToken {
			t.Errorf("%s: got %v, want ErrInvalidOrExpiredToken", name, err)
		}
	}
}
