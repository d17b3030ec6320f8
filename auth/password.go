package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes plaintext with bcrypt (salted, cost from config,
// 12 by default).
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPasswordHash runs bcrypt's constant-time verify.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
