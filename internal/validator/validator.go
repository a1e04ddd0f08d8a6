// Package validator holds the pure credential format checks. Every function
// is deterministic, side-effect free and safe to call from any goroutine.
package validator

import "strings"

// PhoneFormat reports whether the phone number starts with the mobile
// carrier prefix "010".
func PhoneFormat(phone string) bool {
	return strings.HasPrefix(phone, "010")
}

// PhoneLength reports whether the phone number is exactly 11 ASCII digits.
func PhoneLength(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// PasswordFormat reports whether the password is 6 to 12 characters drawn
// only from A-Z, a-z and 0-9.
func PasswordFormat(password string) bool {
	if len(password) < 6 || len(password) > 12 {
		return false
	}
	for i := 0; i < len(password); i++ {
		c := password[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
