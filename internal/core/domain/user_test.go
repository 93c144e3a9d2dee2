package domain

import (
	"encoding/json"
	"testing"
)

func TestRole_Valid(t *testing.T) {
	if !RoleUser.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("defined roles must be valid")
	}
	for _, r := range []Role{"", "superuser", "Admin", "USER"} {
		if r.Valid() {
			t.Fatalf("role %q must be invalid", r)
		}
	}
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	b, err := json.Marshal(&User{ID: "u1", Email: "a@example.com", PasswordHash: "hash", Role: RoleUser})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, leaked := out["password_hash"]; leaked {
		t.Fatalf("password hash leaked: %s", b)
	}
}
