package domain

import "time"

// User represents an account in the user directory. A user may hold
// several role tags at once; the set is empty until a role is granted.
type User struct {
	ID          uint
	PhoneNumber string
	Roles       []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenPair is the result of a successful token issuance.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        int64
	RefreshExpiresIn int64
}

// AccessGrant is the result of exchanging a refresh token.
type AccessGrant struct {
	AccessToken string
	ExpiresIn   int64
}

// AuthResult represents the outcome of a verified signup/login flow.
type AuthResult struct {
	User      *User
	Tokens    *TokenPair
	IsNewUser bool
}

// RefreshToken is a durable row exchangeable for new access tokens.
// A row with ExpiresAt in the past is logically invalid even if it has
// not been garbage-collected yet.
type RefreshToken struct {
	Token     string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

// OTPPurpose scopes a one-time code to the flow that requested it.
type OTPPurpose string

const (
	PurposeRegistration OTPPurpose = "registration"
	PurposeLogin        OTPPurpose = "login"
	PurposeSignupLogin  OTPPurpose = "signup_login"
)

// TokenIdentity is the identity resolved from an access token.
type TokenIdentity struct {
	UserID uint
	Roles  []string
}
