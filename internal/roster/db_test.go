package roster

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "hireboard-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := Open(dbPath)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open database: %v", err)
	}

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestOpen(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if db == nil {
		t.Fatal("expected non-nil database")
	}

	// Verify tables exist
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='members'").Scan(&count)
	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}
	if count != 1 {
		t.Errorf("expected members table to exist")
	}

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health failed: %v", err)
	}
}

func TestMemberLifecycle(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// Add
	m, err := db.AddMember(ctx, "Alice", 5)
	if err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	if m.ID == "" {
		t.Error("expected ID to be set after add")
	}

	// Get (case-insensitive)
	fetched, err := db.GetMember(ctx, "alice")
	if err != nil {
		t.Fatalf("GetMember failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected member to be found")
	}
	if fetched.Name != "Alice" {
		t.Errorf("expected Name=Alice, got %s", fetched.Name)
	}

	// List
	db.AddMember(ctx, "Bob", 5)
	members, err := db.ListMembers(ctx)
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 members, got %d", len(members))
	}

	// Remove
	if err := db.RemoveMember(ctx, "ALICE"); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	count, _ := db.Count(ctx)
	if count != 1 {
		t.Errorf("expected 1 member after remove, got %d", count)
	}
}

func TestAddMemberEnforcesCap(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	db.AddMember(ctx, "Alice", 2)
	db.AddMember(ctx, "Bob", 2)

	_, err := db.AddMember(ctx, "Carol", 2)
	if !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull, got %v", err)
	}
}

func TestAddMemberDuplicate(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	db.AddMember(ctx, "Alice", 5)

	if _, err := db.AddMember(ctx, "Alice", 5); err == nil {
		t.Error("expected error for duplicate name")
	}
	// Collation makes the unique check case-insensitive too.
	if _, err := db.AddMember(ctx, "alice", 5); err == nil {
		t.Error("expected error for duplicate name with different case")
	}
}

func TestRemoveMemberNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	if err := db.RemoveMember(context.Background(), "Nobody"); err == nil {
		t.Error("expected error for unknown member")
	}
}

func TestGetMemberNotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	m, err := db.GetMember(context.Background(), "Nobody")
	if err != nil {
		t.Fatalf("GetMember failed: %v", err)
	}
	if m != nil {
		t.Error("expected nil for non-existent member")
	}
}

func TestClear(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	db.AddMember(ctx, "Alice", 5)
	db.AddMember(ctx, "Bob", 5)

	if err := db.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	count, _ := db.Count(ctx)
	if count != 0 {
		t.Errorf("expected empty roster after clear, got %d", count)
	}
}

func TestAddMembersBatch(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := db.AddMembers(ctx, []string{"Alice", "Bob", "Carol"}, 5); err != nil {
		t.Fatalf("AddMembers failed: %v", err)
	}

	count, _ := db.Count(ctx)
	if count != 3 {
		t.Errorf("expected 3 members, got %d", count)
	}

	// The whole batch is rejected if it would exceed the cap.
	if err := db.AddMembers(ctx, []string{"Dave", "Eve", "Frank"}, 5); !errors.Is(err, ErrFull) {
		t.Errorf("expected ErrFull for oversized batch, got %v", err)
	}
	count, _ = db.Count(ctx)
	if count != 3 {
		t.Errorf("expected roster unchanged after rejected batch, got %d", count)
	}
}
