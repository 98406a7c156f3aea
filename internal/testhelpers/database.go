package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RabbiPrimon/Calorie-Counter/internal/database"
)

// SetupTestDatabase opens an isolated in-memory SQLite database with the
// full application schema migrated.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database so every connection in gorm's pool
	// sees the same data, unique per test for isolation.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
