package services

import (
	"context"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// LocalAuthClient implements domain.AuthClient for guards co-located
// with the token and role services: direct calls, no RPC hop.
type LocalAuthClient struct {
	tokenSvc domain.TokenService
	roleSvc  domain.RoleService
}

func NewLocalAuthClient(tokenSvc domain.TokenService, roleSvc domain.RoleService) domain.AuthClient {
	return &LocalAuthClient{tokenSvc: tokenSvc, roleSvc: roleSvc}
}

// Authenticate implements domain.AuthClient
func (c *LocalAuthClient) Authenticate(ctx context.Context, accessToken string) (uint, error) {
	return c.tokenSvc.Validate(ctx, accessToken)
}

// ValidateToken implements domain.AuthClient
func (c *LocalAuthClient) ValidateToken(ctx context.Context, accessToken string) (*domain.TokenIdentity, error) {
	userID, err := c.tokenSvc.Validate(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	roles, err := c.roleSvc.GetRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.TokenIdentity{UserID: userID, Roles: roles}, nil
}

// ValidateRoles implements domain.AuthClient
func (c *LocalAuthClient) ValidateRoles(ctx context.Context, userID uint, requiredRoles []string) (bool, error) {
	return c.roleSvc.HasAnyRole(ctx, userID, requiredRoles)
}

var _ domain.AuthClient = (*LocalAuthClient)(nil)
