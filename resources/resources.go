package resources

import _ "embed"

// RBACModel is the casbin model shared by the HTTP authorization middleware.
//
//go:embed rbac_model.conf
var RBACModel string

// RBACPolicy maps roles onto API routes relative to the versioned prefix.
//
//go:embed rbac_policy.csv
var RBACPolicy string
