package auth

import (
	"strings"
	"testing"
)

func validInput() RegisterInput {
	return RegisterInput{
		Name:     "Ana Torres",
		Email:    "ana@example.com",
		Password: "secret123",
		Role:     "",
	}
}

func TestValidateRegister_Valid(t *testing.T) {
	cases := []func(*RegisterInput){
		func(in *RegisterInput) {},
		func(in *RegisterInput) { in.Role = "student" },
		func(in *RegisterInput) { in.Role = "administrator" },
		func(in *RegisterInput) { in.Name = "  Bo  " },                // trimmed, 2 chars
		func(in *RegisterInput) { in.Name = "Ñé" },                    // 2 runes, 4 bytes
		func(in *RegisterInput) { in.Name = strings.Repeat("ñ", 50) }, // 50 runes, 100 bytes
		func(in *RegisterInput) { in.Email = "a.b-c@mail.example.org" },
	}

	for i, mutate := range cases {
		in := validInput()
		mutate(&in)
		if verr := ValidateRegister(&in); verr != nil {
			t.Errorf("case %d: ValidateRegister() = %v, want nil", i, verr)
		}
	}
}

func TestValidateRegister_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty name", func(in *RegisterInput) { in.Name = "" }},
		{"whitespace name", func(in *RegisterInput) { in.Name = "   " }},
		{"name too short", func(in *RegisterInput) { in.Name = "A" }},
		{"single multi-byte rune", func(in *RegisterInput) { in.Name = "ñ" }},
		{"name too long", func(in *RegisterInput) { in.Name = strings.Repeat("x", 51) }},
		{"51 multi-byte runes", func(in *RegisterInput) { in.Name = strings.Repeat("ñ", 51) }},
		{"empty email", func(in *RegisterInput) { in.Email = "" }},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"missing domain", func(in *RegisterInput) { in.Email = "user@" }},
		{"short password", func(in *RegisterInput) { in.Password = "ab1" }},
		{"password without digit", func(in *RegisterInput) { in.Password = "letters" }},
		{"unknown role", func(in *RegisterInput) { in.Role = "superuser" }},
	}

	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if verr := ValidateRegister(&in); verr == nil {
			t.Errorf("%s: ValidateRegister() = nil, want error", tc.name)
		}
	}
}

func TestValidateRegister_CollectsAllErrors(t *testing.T) {
	in := RegisterInput{Name: "", Email: "bad", Password: "x", Role: "nope"}
	verr := ValidateRegister(&in)
	if verr == nil {
		t.Fatal("ValidateRegister() = nil, want error")
	}
	if len(verr.Errors) != 4 {
		t.Errorf("collected %d errors (%v), want 4", len(verr.Errors), verr.Errors)
	}
}

func TestValidateLogin(t *testing.T) {
	if verr := ValidateLogin("a@b.com", "pw"); verr != nil {
		t.Errorf("ValidateLogin() = %v, want nil", verr)
	}
	if verr := ValidateLogin("", "pw"); verr == nil {
		t.Error("missing email: want error")
	}
	if verr := ValidateLogin("a@b.com", ""); verr == nil {
		t.Error("missing password: want error")
	}
	if verr := ValidateLogin("", ""); verr == nil || len(verr.Errors) != 2 {
		t.Errorf("both missing: got %v, want 2 errors", verr)
	}
}
