package role

import (
	"testing"

	apperrors "github.com/chekout/admin/internal/platform/errors"
)

func TestValidate(t *testing.T) {
	if err := Validate(Role{Name: "Support", Level: 1}); err != nil {
		t.Fatalf("expected valid role: %v", err)
	}
	if apperrors.CodeOf(Validate(Role{Level: 1})) != apperrors.CodeRoleNameEmpty {
		t.Fatal("expected name rejection")
	}
	if apperrors.CodeOf(Validate(Role{Name: "X", Level: 0})) != apperrors.CodeRoleInvalidLevel {
		t.Fatal("expected level rejection")
	}
}

func TestEffectiveUnionsPermissions(t *testing.T) {
	grants := Effective([]Role{
		{Name: "Catalog", Level: 2, Permissions: map[Resource]Access{
			ResourceProducts:   AccessWrite,
			ResourceCategories: AccessRead,
		}},
		{Name: "Support", Level: 4, Permissions: map[Resource]Access{
			ResourceCategories: AccessWrite,
			ResourceUsers:      AccessRead,
		}},
	})

	if grants.Level != 4 {
		t.Fatalf("expected max level 4, got %d", grants.Level)
	}
	if !grants.CanWrite(ResourceProducts) {
		t.Fatal("expected products write from first role")
	}
	if !grants.CanWrite(ResourceCategories) {
		t.Fatal("expected write to win over read for categories")
	}
	if !grants.CanRead(ResourceUsers) || grants.CanWrite(ResourceUsers) {
		t.Fatal("expected users read only")
	}
	if grants.CanRead(ResourceOrders) {
		t.Fatal("expected no orders access")
	}
}

func TestEffectiveEmpty(t *testing.T) {
	grants := Effective(nil)
	if grants.Level != 0 {
		t.Fatalf("expected level 0, got %d", grants.Level)
	}
	for _, resource := range Resources() {
		if grants.CanRead(resource) {
			t.Fatalf("expected no access to %s", resource)
		}
	}
}

func TestRequireWrite(t *testing.T) {
	grants := Effective([]Role{
		{Name: "Viewer", Level: 1, Permissions: map[Resource]Access{ResourceOrders: AccessRead}},
	})
	err := grants.RequireWrite(ResourceOrders)
	if apperrors.CodeOf(err) != apperrors.CodeRolePermissionDenied {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestCanManageRequiresStrictlyGreaterLevel(t *testing.T) {
	manager := Effective([]Role{
		{Name: "Manager", Level: 5, Permissions: map[Resource]Access{ResourceRoles: AccessWrite}},
	})

	if !manager.CanManage(Role{Name: "Support", Level: 3}) {
		t.Fatal("expected manager to manage lower role")
	}
	if manager.CanManage(Role{Name: "Peer", Level: 5}) {
		t.Fatal("expected equal level to be rejected")
	}
	if manager.CanManage(Role{Name: "Boss", Level: 7}) {
		t.Fatal("expected higher level to be rejected")
	}
}

func TestRequireManageErrors(t *testing.T) {
	noRoles := Effective([]Role{
		{Name: "Catalog", Level: 9, Permissions: map[Resource]Access{ResourceProducts: AccessWrite}},
	})
	if apperrors.CodeOf(noRoles.RequireManage(Role{Level: 1})) != apperrors.CodeRolePermissionDenied {
		t.Fatal("expected permission denied without roles write")
	}

	lowLevel := Effective([]Role{
		{Name: "Roles", Level: 2, Permissions: map[Resource]Access{ResourceRoles: AccessWrite}},
	})
	if apperrors.CodeOf(lowLevel.RequireManage(Role{Level: 2})) != apperrors.CodeRoleLevelTooLow {
		t.Fatal("expected level rejection for equal level")
	}
}

func TestSortedPermissionsStable(t *testing.T) {
	pairs := SortedPermissions(map[Resource]Access{
		ResourceUsers:    AccessRead,
		ResourceOrders:   AccessWrite,
		ResourceProducts: AccessRead,
	})
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	if pairs[0].Resource != ResourceOrders || pairs[1].Resource != ResourceProducts || pairs[2].Resource != ResourceUsers {
		t.Fatalf("unexpected order: %v", pairs)
	}
}
