// internal/registration/validate.go
package registration

import (
	"fmt"
	"regexp"
)

var (
	emailRegex  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileRegex = regexp.MustCompile(`^\d{10}$`)
)

const (
	msgLeaderIncomplete = "Please fill all team leader fields."
	msgInvalidEmail     = "Please enter a valid email address."
	msgInvalidMobile    = "Please enter a valid 10-digit mobile number."
)

// ValidationResult is produced fresh on each submit attempt. Reason carries
// the first-failing rule's user-facing message.
type ValidationResult struct {
	Valid  bool
	Reason string
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(reason string) ValidationResult {
	return ValidationResult{Reason: reason}
}

// Validate checks the draft against the fixed rule order, short-circuiting on
// the first failure. Fields are compared against the empty string exactly; no
// trimming happens here. Pure function of the draft.
func Validate(d *Draft) ValidationResult {
	if d.Leader.Name == "" || d.Leader.Branch == "" || d.Leader.Year == "" ||
		d.Leader.Email == "" || d.Leader.Mobile == "" {
		return invalid(msgLeaderIncomplete)
	}

	if !emailRegex.MatchString(d.Leader.Email) {
		return invalid(msgInvalidEmail)
	}

	if !mobileRegex.MatchString(d.Leader.Mobile) {
		return invalid(msgInvalidMobile)
	}

	for i, m := range d.Members {
		if !m.Empty() && !m.Complete() {
			return invalid(fmt.Sprintf(
				"Please complete all fields for Team Member %d or remove them.", i+1))
		}
	}

	return valid()
}
