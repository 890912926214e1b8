package validate

import (
	"regexp"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	postcodePattern = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}$`)
)

// FieldErrors maps a field name to the message shown next to its input.
// JSON-encodes as the `errors` object handlers return with a 400.
type FieldErrors map[string]string

// Add records msg for field unless an earlier message is already present.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e FieldErrors) Empty() bool { return len(e) == 0 }

// Required adds msg when value is blank after trimming.
func (e FieldErrors) Required(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		e.Add(field, msg)
		return false
	}
	return true
}

// Email checks presence then shape (local@domain.tld).
func (e FieldErrors) Email(field, value string) {
	if !e.Required(field, value, "Please enter your email address.") {
		return
	}
	if !IsEmail(value) {
		e.Add(field, "Please enter a valid email address.")
	}
}

// Postcode checks presence then UK postcode shape.
func (e FieldErrors) Postcode(field, value string) {
	if !e.Required(field, value, "Postcode is required.") {
		return
	}
	if !IsUKPostcode(value) {
		e.Add(field, "Please enter a valid UK postcode.")
	}
}

// OneOf adds msg when value is not among allowed.
func (e FieldErrors) OneOf(field, value string, allowed []string, msg string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, msg)
}

func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

func IsUKPostcode(s string) bool {
	return postcodePattern.MatchString(strings.TrimSpace(s))
}

// NormalizePostcode upper-cases and collapses inner whitespace to one space.
func NormalizePostcode(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}
