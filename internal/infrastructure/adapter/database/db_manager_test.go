package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConnectAndPing(t *testing.T) {
	manager := NewTestManager(t)

	assert.NoError(t, manager.Ping(context.Background()))
	assert.Equal(t, "sqlite", manager.DB().Dialector.Name())
}

func TestManager_NotConnected(t *testing.T) {
	manager := NewManager(TestConfig(t.Name()), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), nil, nil)

	assert.ErrorIs(t, manager.Ping(context.Background()), ErrNotConnected)
	assert.ErrorIs(t, manager.Migrate(context.Background()), ErrNotConnected)
	assert.NoError(t, manager.Close())
}

func TestManager_ConnectRejectsInvalidConfig(t *testing.T) {
	conf := TestConfig(t.Name())
	conf.Driver = "mysql"
	manager := NewManager(conf, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), nil, nil)

	_, err := manager.Connect(context.Background())

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestManager_MigrateIsIdempotent(t *testing.T) {
	// Arrange
	manager := NewTestManager(t)
	ctx := context.Background()

	// Act
	err := manager.Migrate(ctx)

	// Assert
	require.NoError(t, err)
	var versions []model.MigrationVersion
	require.NoError(t, manager.DB().Order("id").Find(&versions).Error)
	require.Len(t, versions, 1)
	assert.Equal(t, migration.CurrentSchemaVersion, versions[0].Version)
	assert.Equal(t, "sqlite", versions[0].Dialect)

	for _, m := range model.All() {
		assert.True(t, manager.DB().Migrator().HasTable(m), "missing table for %T", m)
	}
}

type recordingObserver struct {
	operations []string
	failures   int
}

func (o *recordingObserver) ObserveQuery(operation string, _ time.Duration, failed bool) {
	o.operations = append(o.operations, operation)
	if failed {
		o.failures++
	}
}

func TestManager_ReportsQueriesToObserver(t *testing.T) {
	// Arrange
	observer := &recordingObserver{}
	manager := NewManager(TestConfig(t.Name()), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), observer, nil)
	_, err := manager.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	// Act
	require.NoError(t, manager.DB().Exec("SELECT 1").Error)
	_ = manager.DB().Exec("SELECT * FROM missing_table").Error

	// Assert
	assert.Contains(t, observer.operations, "SELECT")
	assert.Equal(t, 1, observer.failures)
}
