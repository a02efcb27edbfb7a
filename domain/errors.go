package domain

import "errors"

// OTP errors
var (
	ErrOTPRateLimited = errors.New("otp requests temporarily blocked")
	ErrOTPNotFound    = errors.New("otp expired or not found")
	ErrOTPInvalid     = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid        = errors.New("invalid token")
	ErrRefreshTokenInvalid = errors.New("invalid or expired refresh token")
)

// Directory errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrUnknownRole  = errors.New("unknown role tag")
)

// Authorization errors
var (
	ErrUnauthorized    = errors.New("unauthorized access")
	ErrForbidden       = errors.New("insufficient role permissions")
	ErrUpstreamTimeout = errors.New("authorization upstream timed out")
)
