package errors

import (
	stderrors "errors"

	"github.com/muhammadheryan/farm-portal/constant"
)

// FieldError names one offending request field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type CustomError struct {
	errType constant.ErrorType
	detail  string
	fields  []FieldError
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorKind() constant.ErrorKind {
	return constant.ErrorTypeKind[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func (c CustomError) Fields() []FieldError {
	return c.fields
}

// Is reports whether target is a CustomError of the same type, ignoring detail and fields.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	return ok && t.errType == c.errType
}

// WithDetail overrides the default message.
func (c CustomError) WithDetail(detail string) CustomError {
	c.detail = detail
	return c
}

func (c CustomError) WithFields(fields ...FieldError) CustomError {
	c.fields = append(append([]FieldError{}, c.fields...), fields...)
	return c
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// IsType reports whether err wraps a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}
