package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, err := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Field)
		b.WriteString(": ")
		b.WriteString(err.Message)
	}
	return b.String()
}

// ToMap flattens the errors for the response envelope's details field.
// Later errors on the same field win.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v))
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Employee codes are four digits, assigned at registration.
	employeeCodeRegex = regexp.MustCompile(`^\d{4}$`)

	// Usernames: 3-50 chars of letters, digits, ., _, -
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsValidDate parses a YYYY-MM-DD calendar date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
