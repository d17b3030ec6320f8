package tools

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// CheckPassword returns the name of the failing field ("password") or "".
func CheckPassword(password string) string {
	if len(password) < 6 {
		return "password"
	}
	return ""
}
