package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"CONTRIBUTOR":        RoleContributor,
		"ADMINISTRATOR":      RoleAdministrator,
		"SUPERADMINISTRATOR": RoleSuperadministrator,
		"contributor":        RoleUnknown,
		"ROOT":               RoleUnknown,
		"":                   RoleUnknown,
	}
	for name, want := range cases {
		if got := ParseRole(name); got != want {
			t.Fatalf("ParseRole(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRoleKnown(t *testing.T) {
	for _, r := range []Role{RoleContributor, RoleAdministrator, RoleSuperadministrator} {
		if !r.Known() {
			t.Fatalf("%v should be known", r)
		}
	}
	if RoleUnknown.Known() {
		t.Fatalf("unknown role must not be known")
	}
}

func TestHasEqualOrHigherPrivilegeThan(t *testing.T) {
	contributor := RoleContributor
	admin := RoleAdministrator
	superadmin := RoleSuperadministrator
	unknown := RoleUnknown

	// requester → target → expected
	matrix := []struct {
		requester Role
		target    Role
		want      bool
	}{
		{contributor, contributor, true},
		{contributor, admin, false},
		{contributor, superadmin, false},
		{contributor, unknown, false},

		{admin, contributor, true},
		{admin, admin, true},
		{admin, superadmin, false},
		{admin, unknown, true},

		{superadmin, contributor, true},
		{superadmin, admin, true},
		{superadmin, superadmin, true},
		{superadmin, unknown, true},

		{unknown, contributor, false},
		{unknown, admin, false},
		{unknown, superadmin, false},
		{unknown, unknown, false},
	}

	for _, tc := range matrix {
		if got := tc.requester.HasEqualOrHigherPrivilegeThan(tc.target); got != tc.want {
			t.Fatalf("%v over %v = %v, want %v", tc.requester, tc.target, got, tc.want)
		}
	}
}

func TestRolesAtOrBelow(t *testing.T) {
	if got := RoleContributor.RolesAtOrBelow(); len(got) != 1 || got[0] != RoleContributor {
		t.Fatalf("contributor closure = %v", got)
	}

	admin := RoleAdministrator.RolesAtOrBelow()
	if len(admin) != 2 || admin[0] != RoleContributor || admin[1] != RoleAdministrator {
		t.Fatalf("administrator closure = %v", admin)
	}

	super := RoleSuperadministrator.RolesAtOrBelow()
	if len(super) != 3 {
		t.Fatalf("superadministrator closure = %v", super)
	}

	if got := RoleUnknown.RolesAtOrBelow(); len(got) != 0 {
		t.Fatalf("unknown closure should be empty, got %v", got)
	}
}
