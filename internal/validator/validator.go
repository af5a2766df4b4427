package validator

import (
	"regexp"
	"strings"
)

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func IsValidLogin(login string) bool {
	return loginPattern.MatchString(login)
}

// IsValidPassword caps length at 72 bytes, the bcrypt input limit.
func IsValidPassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

// NormalizePhone reduces a phone number to +7XXXXXXXXXX form.
// Accepts 10 digits, or 11 digits starting with 7 or 8.
func NormalizePhone(phone string) (string, bool) {
	var digits strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()

	switch len(cleaned) {
	case 10:
		return "+7" + cleaned, true
	case 11:
		if cleaned[0] == '8' || cleaned[0] == '7' {
			return "+7" + cleaned[1:], true
		}
	}

	return "", false
}
