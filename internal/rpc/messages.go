package rpc

import "encoding/json"

// Message patterns served by the auth queue. Other services call these
// through Client; the auth service answers them through Server.
const (
	PatternAuthenticate  = "authenticate"
	PatternValidateToken = "validate_token"
	PatternValidateRoles = "validate_roles"
)

// Error codes carried across the process boundary. The caller maps
// them back to domain sentinels; infrastructure detail never leaks
// past the guard.
const (
	CodeInvalidToken = "invalid_token"
	CodeUserNotFound = "user_not_found"
	CodeInternal     = "internal"
)

// Envelope frames every request on the auth queue.
type Envelope struct {
	Pattern string          `json:"pattern"`
	Data    json.RawMessage `json:"data"`
}

// Reply frames every response. Exactly one of Data or Code is set.
type Reply struct {
	Data json.RawMessage `json:"data,omitempty"`
	Code string          `json:"code,omitempty"`
}

type AuthenticateRequest struct {
	Token string `json:"token"`
}

type AuthenticateResponse struct {
	UserID uint `json:"userId"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	UserID uint     `json:"userId"`
	Roles  []string `json:"roles"`
}

type ValidateRolesRequest struct {
	UserID        uint     `json:"userId"`
	RequiredRoles []string `json:"requiredRoles"`
}

type ValidateRolesResponse struct {
	HasAccess bool `json:"hasAccess"`
}
