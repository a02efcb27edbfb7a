package domain

import "context"

// UserRepository defines user directory access operations.
// Users are never deleted by this subsystem.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByPhone(ctx context.Context, phoneNumber string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	AddRole(ctx context.Context, userID uint, role string) error
}

// RefreshTokenRepository defines durable refresh-token storage.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// OTPService issues, rate-limits, and verifies one-time codes.
type OTPService interface {
	Send(ctx context.Context, phoneNumber string, purpose OTPPurpose) error
	Verify(ctx context.Context, phoneNumber, code string, purpose OTPPurpose) error
	RemoveLockout(ctx context.Context, phoneNumber string) error
}

// TokenService manages opaque access and refresh credentials.
type TokenService interface {
	Issue(ctx context.Context, userID uint) (*TokenPair, error)
	Validate(ctx context.Context, accessToken string) (uint, error)
	Refresh(ctx context.Context, refreshToken string) (*AccessGrant, error)
	RevokeAccess(ctx context.Context, accessToken string) error
	RevokeAllRefresh(ctx context.Context, userID uint) error
}

// RoleService resolves a user's role set and decides role sufficiency,
// including the SUPER_ADMIN inheritance of the virtual capabilities.
type RoleService interface {
	GetRoles(ctx context.Context, userID uint) ([]string, error)
	HasRole(ctx context.Context, userID uint, required string) (bool, error)
	HasAnyRole(ctx context.Context, userID uint, required []string) (bool, error)
	GrantRole(ctx context.Context, userID uint, role string) error
}

// AuthService defines the combined signup/login business logic.
type AuthService interface {
	SendSignupLoginOTP(ctx context.Context, phoneNumber string) error
	VerifySignupLogin(ctx context.Context, phoneNumber, code string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AccessGrant, error)
	Logout(ctx context.Context, accessToken string) error
}

// NotificationService defines notification operations.
type NotificationService interface {
	SendSMS(to, message string) error
}

// AuthClient is the enforcement point's view of the token and role
// services. It has a local (in-process) adapter and a remote adapter
// over the message RPC channel; the guard does not know which it got.
type AuthClient interface {
	Authenticate(ctx context.Context, accessToken string) (uint, error)
	ValidateToken(ctx context.Context, accessToken string) (*TokenIdentity, error)
	ValidateRoles(ctx context.Context, userID uint, requiredRoles []string) (bool, error)
}
