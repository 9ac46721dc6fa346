package store

import (
	"testing"

	"github.com/dveras/focado/internal/database"
)

func setupUserTestDB(t *testing.T) *UserStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserStore(db)
}

func TestUserCRUD(t *testing.T) {
	us := setupUserTestDB(t)

	// Create
	u, err := us.Create("marina", "marina@example.com", "hash1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if u.Username != "marina" {
		t.Errorf("username = %q, want %q", u.Username, "marina")
	}
	if !u.IsActive {
		t.Error("new user should be active")
	}

	// Get by email / username
	byEmail, err := us.GetByEmail("marina@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Errorf("get by email returned %+v", byEmail)
	}
	byName, err := us.GetByUsername("marina")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName == nil || byName.ID != u.ID {
		t.Errorf("get by username returned %+v", byName)
	}

	// Update
	updated, err := us.Update(u.ID, "marina2", "m2@example.com", false)
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.Username != "marina2" || updated.IsActive {
		t.Errorf("updated = %+v", updated)
	}

	// Password
	hash, err := us.PasswordHash(u.ID)
	if err != nil {
		t.Fatalf("password hash: %v", err)
	}
	if hash != "hash1" {
		t.Errorf("hash = %q, want %q", hash, "hash1")
	}
	if err := us.UpdatePassword(u.ID, "hash2"); err != nil {
		t.Fatalf("update password: %v", err)
	}
	hash, _ = us.PasswordHash(u.ID)
	if hash != "hash2" {
		t.Errorf("hash = %q, want %q", hash, "hash2")
	}

	// Delete
	if err := us.Delete(u.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	got, err := us.GetByID(u.ID)
	if err != nil {
		t.Fatalf("get deleted user: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted user")
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	us := setupUserTestDB(t)

	got, err := us.GetByID(404)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent user")
	}
}

func TestUserUniqueEmail(t *testing.T) {
	us := setupUserTestDB(t)

	if _, err := us.Create("a1", "dup@example.com", "h"); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := us.Create("a2", "dup@example.com", "h"); err == nil {
		t.Error("expected unique constraint error for duplicate email")
	}
}
