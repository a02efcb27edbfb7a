package services

import (
	"context"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/rbac"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// RoleServiceImpl implements domain.RoleService. Role sufficiency is
// decided against the user's stored role set plus the Casbin grouping
// graph, where g(SUPER_ADMIN, ADMIN) and g(SUPER_ADMIN, SYSTEM) make
// the super admin satisfy both virtual capabilities.
type RoleServiceImpl struct {
	userRepo    domain.UserRepository
	roleManager rbac.RoleManager
}

// NewRoleService creates a new role service backed by the enforcer's
// role manager.
func NewRoleService(userRepo domain.UserRepository, enforcer *casbin.Enforcer) domain.RoleService {
	return &RoleServiceImpl{
		userRepo:    userRepo,
		roleManager: enforcer.GetRoleManager(),
	}
}

// GetRoles implements domain.RoleService
func (s *RoleServiceImpl) GetRoles(ctx context.Context, userID uint) ([]string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Roles, nil
}

// HasRole implements domain.RoleService. USER is the baseline
// capability of any resolvable user; unknown tags are denied.
func (s *RoleServiceImpl) HasRole(ctx context.Context, userID uint, required string) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.roleSatisfied(user.Roles, required), nil
}

// HasAnyRole implements domain.RoleService. Access is granted when any
// of the required roles is satisfied; an empty requirement allows.
func (s *RoleServiceImpl) HasAnyRole(ctx context.Context, userID uint, required []string) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(required) == 0 {
		return true, nil
	}
	for _, tag := range required {
		if s.roleSatisfied(user.Roles, tag) {
			return true, nil
		}
	}
	return false, nil
}

// GrantRole implements domain.RoleService. The virtual capabilities are
// never stored directly.
func (s *RoleServiceImpl) GrantRole(ctx context.Context, userID uint, role string) error {
	if !domain.KnownRole(role) || role == domain.RoleAdmin || role == domain.RoleSystem {
		return domain.ErrUnknownRole
	}
	return s.userRepo.AddRole(ctx, userID, role)
}

func (s *RoleServiceImpl) roleSatisfied(roles []string, required string) bool {
	if !domain.KnownRole(required) {
		return false
	}
	if required == domain.RoleUser {
		return true
	}
	for _, held := range roles {
		if held == required {
			return true
		}
		// HasLink walks the inheritance graph (identity included).
		if ok, err := s.roleManager.HasLink(held, required); err == nil && ok {
			return true
		}
	}
	return false
}
