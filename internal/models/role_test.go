package models

import "testing"

func TestParseRole(t *testing.T) {
	valid := []string{"student", "teacher", "administrator", "user"}
	for _, s := range valid {
		role, err := ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) error = %v, want nil", s, err)
		}
		if role.String() != s {
			t.Errorf("ParseRole(%q) = %q", s, role)
		}
	}

	invalid := []string{"", "admin", "Student", "root", "usuario "}
	for _, s := range invalid {
		if _, err := ParseRole(s); err == nil {
			t.Errorf("ParseRole(%q) error = nil, want error", s)
		}
	}
}

func TestRole_In(t *testing.T) {
	if !RoleAdministrator.In(RoleTeacher, RoleAdministrator) {
		t.Error("administrator should be in {teacher, administrator}")
	}
	if RoleUser.In(RoleAdministrator) {
		t.Error("user should not be in {administrator}")
	}
	if RoleUser.In() {
		t.Error("no role is in the empty set")
	}
}
