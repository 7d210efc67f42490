package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
	}{
		{input: "ADMIN", expected: ROLE_ADMIN},
		{input: "admin", expected: ROLE_ADMIN},
		{input: "User", expected: ROLE_USER},
		{input: "owner", expected: ROLE_UNKNOWN},
		{input: "", expected: ROLE_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParseRole(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestAccountRef(t *testing.T) {
	if AccountID(42).String() != "42" {
		t.Errorf("expected account ref 42, got %s", AccountID(42))
	}
	if AccountMe.String() != "me" {
		t.Errorf("expected account ref me, got %s", AccountMe)
	}

	a := MicrosoftAccount{}
	if a.IsLinked() {
		t.Errorf("account without user id should not be linked")
	}
	id := int32(5)
	a.UserID = &id
	if !a.IsLinked() {
		t.Errorf("account with user id should be linked")
	}
}
