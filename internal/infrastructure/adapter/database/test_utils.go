package database

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var testDBCounter atomic.Int64

// TestConfig returns a sqlite configuration backed by a private in-memory database.
// A single connection keeps the database alive and serializes access.
func TestConfig(name string) *Config {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	return &Config{
		Driver:        DriverSQLite,
		Database:      fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=1", name, testDBCounter.Add(1)),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}
}

// NewTestManager connects and migrates a fresh in-memory database that is closed when t ends
func NewTestManager(t *testing.T) *Manager {
	t.Helper()

	manager := NewManager(TestConfig(t.Name()), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), nil, nil)

	ctx := context.Background()
	if _, err := manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return manager
}

// NewTestDB returns a migrated in-memory database for repository tests
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewTestManager(t).DB()
}
