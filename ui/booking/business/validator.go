package business

import (
	"regexp"
	"strings"

	"railroute/ui/booking/models"
)

// emailPattern accepts local@domain.tld shapes: non-whitespace, non-@ runs
// around a single "@" with at least one dot in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// nonDigits strips everything that is not 0-9 when normalizing phones.
var nonDigits = regexp.MustCompile(`\D`)

// phoneDigits is the exact digit count a normalized phone must have.
const phoneDigits = 10

// NormalizePhone strips all non-digit characters from a phone number.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidatePassengerDetails checks the passenger form for submission,
// short-circuiting on the first failure. The order is fixed: required
// fields, then email shape, then phone digits.
func ValidatePassengerDetails(d models.PassengerDetails) *ValidationError {
	fullName := strings.TrimSpace(d.FullName)
	email := strings.TrimSpace(d.Email)
	phone := strings.TrimSpace(d.Phone)

	if fullName == "" || email == "" || phone == "" {
		return &ValidationError{
			Kind:    MissingRequiredField,
			Message: "Please fill all required fields",
		}
	}

	if !emailPattern.MatchString(email) {
		return &ValidationError{
			Kind:    InvalidEmail,
			Message: "Please enter a valid email address",
		}
	}

	if len(NormalizePhone(phone)) != phoneDigits {
		return &ValidationError{
			Kind:    InvalidPhone,
			Message: "Please enter a valid 10-digit phone number",
		}
	}

	return nil
}
