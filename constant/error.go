package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidCredentials
	ErrForbidden
	ErrConflict
	ErrInvalidState
	ErrTokenMissing
	ErrTokenExpired
	ErrTokenInvalid
	ErrAccountPending
	ErrAccountInactive
	ErrAccountSuspended
	ErrOTPNotIssued
	ErrOTPMismatch
	ErrOTPExpired
	ErrAlreadyVerified
	ErrWeakPassword
	ErrInvalidEmail
	ErrInvalidPhone
	ErrInvalidEnum
	ErrLicenseExists
	ErrEmployeeIDExists
	ErrAadharExists
	ErrTagExists
	ErrVeterinarianInactive
	ErrFarmerInactive
	ErrSamePassword
	ErrRateLimited
)

// ErrorKind groups concrete error types into the caller-facing taxonomy.
type ErrorKind string

const (
	KindNone            ErrorKind = ""
	KindValidation      ErrorKind = "validation_error"
	KindNotFound        ErrorKind = "not_found"
	KindForbidden       ErrorKind = "forbidden"
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindConflict        ErrorKind = "conflict"
	KindInvalidState    ErrorKind = "invalid_state"
	KindInternal        ErrorKind = "internal_error"
	KindRateLimited     ErrorKind = "rate_limited"
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrCredentialExists:     "email or phone already exists",
	ErrInvalidCredentials:   "invalid email/phone or password",
	ErrForbidden:            "access denied",
	ErrConflict:             "resource was modified concurrently",
	ErrInvalidState:         "operation not allowed in current state",
	ErrTokenMissing:         "authorization token is missing",
	ErrTokenExpired:         "authorization token has expired",
	ErrTokenInvalid:         "authorization token is invalid",
	ErrAccountPending:       "account is pending verification",
	ErrAccountInactive:      "account is inactive",
	ErrAccountSuspended:     "account is suspended",
	ErrOTPNotIssued:         "no verification code issued",
	ErrOTPMismatch:          "invalid verification code",
	ErrOTPExpired:           "verification code has expired",
	ErrAlreadyVerified:      "account is already verified",
	ErrWeakPassword:         "password does not meet strength requirements",
	ErrInvalidEmail:         "invalid email format",
	ErrInvalidPhone:         "invalid phone number format",
	ErrInvalidEnum:          "unrecognized enumeration value",
	ErrLicenseExists:        "license number already registered",
	ErrEmployeeIDExists:     "employee id already registered",
	ErrAadharExists:         "aadhar number already registered",
	ErrTagExists:            "animal tag already exists for this farmer",
	ErrVeterinarianInactive: "veterinarian is not active",
	ErrFarmerInactive:       "farmer is not active",
	ErrSamePassword:         "new password must be different from current password",
	ErrRateLimited:          "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusNotFound,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrCredentialExists:     http.StatusBadRequest,
	ErrInvalidCredentials:   http.StatusUnauthorized,
	ErrForbidden:            http.StatusForbidden,
	ErrConflict:             http.StatusConflict,
	ErrInvalidState:         http.StatusUnprocessableEntity,
	ErrTokenMissing:         http.StatusUnauthorized,
	ErrTokenExpired:         http.StatusUnauthorized,
	ErrTokenInvalid:         http.StatusUnauthorized,
	ErrAccountPending:       http.StatusForbidden,
	ErrAccountInactive:      http.StatusForbidden,
	ErrAccountSuspended:     http.StatusForbidden,
	ErrOTPNotIssued:         http.StatusBadRequest,
	ErrOTPMismatch:          http.StatusBadRequest,
	ErrOTPExpired:           http.StatusBadRequest,
	ErrAlreadyVerified:      http.StatusUnprocessableEntity,
	ErrWeakPassword:         http.StatusBadRequest,
	ErrInvalidEmail:         http.StatusBadRequest,
	ErrInvalidPhone:         http.StatusBadRequest,
	ErrInvalidEnum:          http.StatusBadRequest,
	ErrLicenseExists:        http.StatusBadRequest,
	ErrEmployeeIDExists:     http.StatusBadRequest,
	ErrAadharExists:         http.StatusBadRequest,
	ErrTagExists:            http.StatusBadRequest,
	ErrVeterinarianInactive: http.StatusUnprocessableEntity,
	ErrFarmerInactive:       http.StatusUnprocessableEntity,
	ErrSamePassword:         http.StatusBadRequest,
	ErrRateLimited:          http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrCredentialExists:     "0005",
	ErrInvalidCredentials:   "0006",
	ErrForbidden:            "0007",
	ErrConflict:             "0008",
	ErrInvalidState:         "0009",
	ErrTokenMissing:         "0010",
	ErrTokenExpired:         "0011",
	ErrTokenInvalid:         "0012",
	ErrAccountPending:       "0013",
	ErrAccountInactive:      "0014",
	ErrAccountSuspended:     "0015",
	ErrOTPNotIssued:         "0016",
	ErrOTPMismatch:          "0017",
	ErrOTPExpired:           "0018",
	ErrAlreadyVerified:      "0019",
	ErrWeakPassword:         "0020",
	ErrInvalidEmail:         "0021",
	ErrInvalidPhone:         "0022",
	ErrInvalidEnum:          "0023",
	ErrLicenseExists:        "0024",
	ErrEmployeeIDExists:     "0025",
	ErrAadharExists:         "0026",
	ErrTagExists:            "0027",
	ErrVeterinarianInactive: "0028",
	ErrFarmerInactive:       "0029",
	ErrSamePassword:         "0030",
	ErrRateLimited:          "0031",
}

var ErrorTypeKind = map[ErrorType]ErrorKind{
	Successful:              KindNone,
	ErrInternal:             KindInternal,
	ErrNotFound:             KindNotFound,
	ErrInvalidRequest:       KindValidation,
	ErrUnauthorize:          KindUnauthenticated,
	ErrCredentialExists:     KindValidation,
	ErrInvalidCredentials:   KindUnauthenticated,
	ErrForbidden:            KindForbidden,
	ErrConflict:             KindConflict,
	ErrInvalidState:         KindInvalidState,
	ErrTokenMissing:         KindUnauthenticated,
	ErrTokenExpired:         KindUnauthenticated,
	ErrTokenInvalid:         KindUnauthenticated,
	ErrAccountPending:       KindInvalidState,
	ErrAccountInactive:      KindInvalidState,
	ErrAccountSuspended:     KindInvalidState,
	ErrOTPNotIssued:         KindValidation,
	ErrOTPMismatch:          KindValidation,
	ErrOTPExpired:           KindValidation,
	ErrAlreadyVerified:      KindInvalidState,
	ErrWeakPassword:         KindValidation,
	ErrInvalidEmail:         KindValidation,
	ErrInvalidPhone:         KindValidation,
	ErrInvalidEnum:          KindValidation,
	ErrLicenseExists:        KindValidation,
	ErrEmployeeIDExists:     KindValidation,
	ErrAadharExists:         KindValidation,
	ErrTagExists:            KindValidation,
	ErrVeterinarianInactive: KindInvalidState,
	ErrFarmerInactive:       KindInvalidState,
	ErrSamePassword:         KindValidation,
	ErrRateLimited:          KindRateLimited,
}
