package validatorx

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
	cerr "github.com/muhammadheryan/farm-portal/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	phonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
	aadharPattern  = regexp.MustCompile(`^\d{12}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	nonDigit       = regexp.MustCompile(`\D`)
)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	val := gpvalidator.New()

	// report json names so field errors match the request body
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = val.RegisterValidation("in_phone", func(fl gpvalidator.FieldLevel) bool {
		return IsValidPhone(NormalizePhone(fl.Field().String()))
	})
	_ = val.RegisterValidation("aadhar", func(fl gpvalidator.FieldLevel) bool {
		return aadharPattern.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("pincode", func(fl gpvalidator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("notblank", func(fl gpvalidator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v = val
}

func get() *gpvalidator.Validate {
	if v == nil {
		Init()
	}
	return v
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	return get().Struct(s)
}

// ValidateVar validates a single value against a tag expression such as "email".
func ValidateVar(field interface{}, tag string) error {
	return get().Var(field, tag)
}

// FieldErrors flattens a validation failure into field/rule pairs.
func FieldErrors(err error) []cerr.FieldError {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]cerr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if rule == "notblank" {
			rule = "required"
		}
		out = append(out, cerr.FieldError{Field: fe.Field(), Rule: rule})
	}
	return out
}

func IsValidEmail(email string) bool {
	return ValidateVar(email, "required,email") == nil
}

// NormalizePhone strips formatting and the Indian country/trunk prefix.
func NormalizePhone(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	} else if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	return digits
}

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func IsValidAadhar(aadhar string) bool {
	return aadharPattern.MatchString(aadhar)
}

// PasswordIssues lists every strength rule the password fails; empty means acceptable.
func PasswordIssues(password string) []string {
	var issues []string
	if len(password) < MinPasswordLength {
		issues = append(issues, "min_length")
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	if !upper {
		issues = append(issues, "uppercase")
	}
	if !lower {
		issues = append(issues, "lowercase")
	}
	if !digit {
		issues = append(issues, "digit")
	}
	if !special {
		issues = append(issues, "special_character")
	}
	return issues
}
