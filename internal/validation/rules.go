package validation

import (
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Field limits
const (
	MinPasswordLength = 6
	MaxEmailLength    = 254
	MaxNameLength     = 35
	MaxUsernameLength = 150
	MaxURLLength      = 200
	MinXP             = 0
	MinLevel          = 0
	MaxLevel          = 500
	MinGradYear       = 2015
	MaxGradYear       = 2080
	RequiredDomain    = ".edu"
)

func checkEmail(errs Errors, email string) {
	if len(email) > MaxEmailLength {
		checkMaxLength(errs, "email", email, MaxEmailLength)
		return
	}
	if err := checkmail.ValidateFormat(email); err != nil || !strings.HasSuffix(strings.ToLower(email), RequiredDomain) {
		errs.Add("email", "Must be a valid .edu email")
	}
}

func checkPassword(errs Errors, password string) {
	if validate.Var(password, fmt.Sprintf("min=%d", MinPasswordLength)) != nil {
		errs.Add("password", fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength))
	}
}

func checkVisibility(errs Errors, visibility string) {
	if validate.Var(visibility, "oneof=public private") != nil {
		errs.Add("visibility", "Must be 'public' or 'private'")
	}
}

func checkMaxLength(errs Errors, field, value string, max int) {
	if validate.Var(value, fmt.Sprintf("max=%d", max)) != nil {
		errs.Add(field, fmt.Sprintf("Ensure this field has no more than %d characters.", max))
	}
}

func checkRange(errs Errors, field string, value int, min, max *int) {
	if min != nil && value < *min {
		errs.Add(field, fmt.Sprintf("Must be >= %d", *min))
	}
	if max != nil && value > *max {
		errs.Add(field, fmt.Sprintf("Must be <= %d", *max))
	}
}

func checkURL(errs Errors, field, value string) {
	if validate.Var(value, fmt.Sprintf("http_url,max=%d", MaxURLLength)) != nil {
		errs.Add(field, "Enter a valid URL.")
	}
}

func isHexColor(value string) bool {
	return validate.Var(value, "len=6,hexadecimal") == nil
}

func isUUID(value string) bool {
	return validate.Var(value, "uuid") == nil
}

// ValidateCredentials applies the signup rules. An empty username is allowed.
func ValidateCredentials(email, password, username string) Errors {
	errs := Errors{}
	checkEmail(errs, email)
	checkPassword(errs, password)
	checkMaxLength(errs, "username", username, MaxUsernameLength)
	return errs
}

func intPtr(v int) *int { return &v }
