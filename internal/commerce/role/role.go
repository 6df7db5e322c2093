// Package role implements level-gated, cumulative role-based authorization
// for admin console operators.
package role

import (
	"sort"
	"strings"

	apperrors "github.com/chekout/admin/internal/platform/errors"
)

// Access is the level of access granted on a resource.
type Access string

const (
	AccessNone  Access = ""
	AccessRead  Access = "read"
	AccessWrite Access = "write"
)

// Resource names a console surface guarded by permissions.
type Resource string

const (
	ResourceProducts     Resource = "products"
	ResourceCategories   Resource = "categories"
	ResourceUsers        Resource = "users"
	ResourceOrders       Resource = "orders"
	ResourceGiftCards    Resource = "gift_cards"
	ResourceDiscountKeys Resource = "discount_keys"
	ResourceRoles        Resource = "roles"
)

// Resources lists the guarded resources in display order.
func Resources() []Resource {
	return []Resource{
		ResourceProducts,
		ResourceCategories,
		ResourceUsers,
		ResourceOrders,
		ResourceGiftCards,
		ResourceDiscountKeys,
		ResourceRoles,
	}
}

// Role is an admin role with a permission map and a numeric level.
type Role struct {
	ID          string
	Name        string
	Level       int
	Permissions map[Resource]Access
}

// Validate checks role fields before storage.
func Validate(r Role) error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.New(apperrors.CodeRoleNameEmpty, "role name is required")
	}
	if r.Level <= 0 {
		return apperrors.New(apperrors.CodeRoleInvalidLevel, "role level must be positive")
	}
	return nil
}

// Grants holds an operator's effective authority: the union of permissions
// across every assigned role and the maximum assigned level.
type Grants struct {
	Level       int
	Permissions map[Resource]Access
}

// Effective folds multiple assigned roles into cumulative grants. Write
// access on a resource from any role wins over read; unknown resources in
// stored permission maps are carried through untouched.
func Effective(roles []Role) Grants {
	grants := Grants{Permissions: map[Resource]Access{}}
	for _, r := range roles {
		if r.Level > grants.Level {
			grants.Level = r.Level
		}
		for resource, access := range r.Permissions {
			if stronger(access, grants.Permissions[resource]) {
				grants.Permissions[resource] = access
			}
		}
	}
	return grants
}

// CanRead reports whether the grants allow viewing a resource.
func (g Grants) CanRead(resource Resource) bool {
	access := g.Permissions[resource]
	return access == AccessRead || access == AccessWrite
}

// CanWrite reports whether the grants allow mutating a resource.
func (g Grants) CanWrite(resource Resource) bool {
	return g.Permissions[resource] == AccessWrite
}

// RequireWrite returns a permission error unless the grants allow writes.
func (g Grants) RequireWrite(resource Resource) error {
	if g.CanWrite(resource) {
		return nil
	}
	return apperrors.New(apperrors.CodeRolePermissionDenied, "write access required for "+string(resource))
}

// CanManage reports whether an operator with these grants may edit, delete,
// or (un)assign the target role. The operator's level must be strictly
// greater than the target role's level, so peers cannot escalate each other.
func (g Grants) CanManage(target Role) bool {
	return g.CanWrite(ResourceRoles) && g.Level > target.Level
}

// RequireManage returns a level error unless the grants may manage target.
func (g Grants) RequireManage(target Role) error {
	if err := g.RequireWrite(ResourceRoles); err != nil {
		return err
	}
	if g.Level <= target.Level {
		return apperrors.New(apperrors.CodeRoleLevelTooLow, "operator level does not exceed target role level")
	}
	return nil
}

// SortedPermissions returns resource/access pairs in stable display order.
func SortedPermissions(permissions map[Resource]Access) []struct {
	Resource Resource
	Access   Access
} {
	out := make([]struct {
		Resource Resource
		Access   Access
	}, 0, len(permissions))
	for resource, access := range permissions {
		out = append(out, struct {
			Resource Resource
			Access   Access
		}{resource, access})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Resource < out[j].Resource })
	return out
}

func stronger(candidate, current Access) bool {
	rank := func(a Access) int {
		switch a {
		case AccessWrite:
			return 2
		case AccessRead:
			return 1
		}
		return 0
	}
	return rank(candidate) > rank(current)
}
