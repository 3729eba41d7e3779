package rbac

import (
	"github.com/Bricklabsai/theralink/resources"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"
)

// NewEnforcer builds the route enforcer from the embedded model and policy.
// Requests are checked as Enforce(role, method, path) where path is relative
// to the versioned API prefix.
func NewEnforcer() (*casbin.Enforcer, error) {
	rbacModel, err := model.NewModelFromString(resources.RBACModel)
	if err != nil {
		return nil, err
	}

	return casbin.NewEnforcer(rbacModel, stringadapter.NewAdapter(resources.RBACPolicy))
}
