package session

import "regexp"

// Password strength predicates, checked independently and combined with AND.
var (
	uppercasePattern   = regexp.MustCompile(`[A-Z]`)
	lowercasePattern   = regexp.MustCompile(`[a-z]`)
	numberPattern      = regexp.MustCompile(`[0-9]`)
	specialCharPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

const minPasswordLength = 8

// PasswordChecks holds the outcome of each independent strength predicate,
// so callers can surface per-requirement feedback.
type PasswordChecks struct {
	MinLength      bool
	HasUppercase   bool
	HasLowercase   bool
	HasNumber      bool
	HasSpecialChar bool
}

// Passed reports whether every predicate holds.
func (c PasswordChecks) Passed() bool {
	return c.MinLength && c.HasUppercase && c.HasLowercase && c.HasNumber && c.HasSpecialChar
}

// CheckPassword evaluates the strength predicates for pwd.
func CheckPassword(pwd string) PasswordChecks {
	return PasswordChecks{
		MinLength:      len(pwd) >= minPasswordLength,
		HasUppercase:   uppercasePattern.MatchString(pwd),
		HasLowercase:   lowercasePattern.MatchString(pwd),
		HasNumber:      numberPattern.MatchString(pwd),
		HasSpecialChar: specialCharPattern.MatchString(pwd),
	}
}

// Validator provides the login pre-checks that run before the credential
// comparison. Failures are recovered locally and surfaced as human-readable
// messages; they never change session state.
type Validator struct{}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCredentials returns an empty string when creds pass the
// pre-checks, or the message to surface when they don't.
func (v *Validator) ValidateCredentials(creds Credentials) string {
	if creds.Email == "" {
		return "Please enter your email"
	}

	if creds.Password == "" {
		return "Please enter your password"
	}

	if !CheckPassword(creds.Password).Passed() {
		return "Password does not meet the required criteria"
	}

	return ""
}
