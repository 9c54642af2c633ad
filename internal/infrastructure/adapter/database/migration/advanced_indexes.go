package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// group expense listings only touch rows with a group
		name: "idx_expenses_group_created_partial",
		sql: `CREATE INDEX IF NOT EXISTS idx_expenses_group_created_partial
			ON expenses (group_id, created_at DESC)
			WHERE group_id IS NOT NULL`,
	},
	{
		name: "idx_expenses_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_expenses_created_at_brin
			ON expenses USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_users_email_lower",
		sql: `CREATE INDEX IF NOT EXISTS idx_users_email_lower
			ON users (LOWER(email))`,
	},
	{
		// balance queries read the share together with the expense id
		name: "idx_expense_participants_user_cover",
		sql: `CREATE INDEX IF NOT EXISTS idx_expense_participants_user_cover
			ON expense_participants (user_id) INCLUDE (expense_id, share)`,
	},
}

// CreateAdvancedIndexes creates PostgreSQL-only indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)
	for _, idx := range advancedIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", coreport.ErrorFields(err, map[string]any{
				"index": idx.name,
			}))
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	tweaks := []string{
		"ALTER TABLE expenses SET (fillfactor = 90)",
		"ALTER TABLE expense_participants ALTER COLUMN user_id SET STATISTICS 1000",
	}
	db := m.db.WithContext(ctx)
	for _, stmt := range tweaks {
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", coreport.ErrorFields(err, map[string]any{
				"statement": stmt,
			}))
		}
	}
}
