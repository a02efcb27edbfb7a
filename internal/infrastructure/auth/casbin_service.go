package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// CasbinService holds the enforcer backing the role-inheritance graph.
// Only grouping policies are used: an edge g(A, B) means role A
// satisfies a requirement for role B.
type CasbinService struct{ E *casbin.Enforcer }

func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}

// SeedRoleGraph installs the inheritance edges if none are present.
// SUPER_ADMIN is the only role that satisfies the virtual ADMIN and
// SYSTEM capabilities.
func (s *CasbinService) SeedRoleGraph() error {
	edges, err := s.E.GetGroupingPolicy()
	if err != nil {
		return err
	}
	if len(edges) > 0 {
		return nil
	}
	if _, err := s.E.AddGroupingPolicy(domain.RoleSuperAdmin, domain.RoleAdmin); err != nil {
		return err
	}
	if _, err := s.E.AddGroupingPolicy(domain.RoleSuperAdmin, domain.RoleSystem); err != nil {
		return err
	}
	return s.E.SavePolicy()
}
