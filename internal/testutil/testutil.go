package testutil

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mergington/internal/db"
)

// OpenInMemoryDB opens a private in-memory SQLite database with the schema applied.
// The database lives as long as its single pooled connection, which is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared", false)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gdb
}

// OpenFileDB opens an on-disk SQLite database under t.TempDir with the schema applied.
// Unlike OpenInMemoryDB it allows several concurrent connections.
func OpenFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.db")
	gdb, err := db.Open("sqlite:///"+path, false)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return gdb
}
