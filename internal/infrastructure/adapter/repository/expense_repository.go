package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/model"
)

// ExpenseRepository implements ExpenseRepository interface using GORM
type ExpenseRepository struct {
	baseRepository
}

// NewExpenseRepository creates a new ExpenseRepository instance
func NewExpenseRepository(db *gorm.DB, logger coreport.Logger) *ExpenseRepository {
	return &ExpenseRepository{baseRepository: newBaseRepository(db, logger)}
}

func expenseEntityToModel(e *entity.Expense) *model.Expense {
	m := &model.Expense{
		ID:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		ExpenseType: string(e.Scope),
		PaidBy:      e.PaidBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.GroupID != "" {
		groupID := e.GroupID
		m.GroupID = &groupID
	}
	return m
}

func expenseModelToEntity(m *model.Expense) *entity.Expense {
	e := &entity.Expense{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Scope:       entity.Scope(m.ExpenseType),
		PaidBy:      m.PaidBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.GroupID != nil {
		e.GroupID = *m.GroupID
	}
	return e
}

// Create stores the expense row without participants
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	if err := r.db.WithContext(ctx).Create(expenseEntityToModel(expense)).Error; err != nil {
		return r.handleDatabaseError("creating expense", err, dbErrorMapping{
			duplicate: errs.ErrConflict,
			reference: errs.ErrNotFound,
		}, map[string]any{"expense_id": expense.ID})
	}
	return nil
}

// AddParticipants stores participant shares
func (r *ExpenseRepository) AddParticipants(ctx context.Context, participants []entity.ExpenseParticipant) error {
	if len(participants) == 0 {
		return nil
	}

	models := make([]model.ExpenseParticipant, 0, len(participants))
	for _, p := range participants {
		models = append(models, model.ExpenseParticipant{
			ExpenseID: p.ExpenseID,
			UserID:    p.UserID,
			Share:     p.Share,
		})
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return r.handleDatabaseError("adding expense participants", err, dbErrorMapping{
			duplicate: errs.ErrConflict,
			reference: errs.ErrNotFound,
		}, map[string]any{
			"expense_id":        participants[0].ExpenseID,
			"participant_count": len(participants),
		})
	}
	return nil
}

// GetByID retrieves an expense with its participants
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	var expenseModel model.Expense
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting expense", err, dbErrorMapping{
			notFound: errs.NewEntityNotFoundError("expense", id),
		}, map[string]any{"expense_id": id})
	}

	expenses := []*entity.Expense{expenseModelToEntity(&expenseModel)}
	if err := r.attachParticipants(ctx, expenses); err != nil {
		return nil, err
	}
	return expenses[0], nil
}

// Update saves amount, description and updated_at
func (r *ExpenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	result := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]any{
			"amount":      expense.Amount,
			"description": expense.Description,
			"updated_at":  expense.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating expense", result.Error, dbErrorMapping{}, map[string]any{
			"expense_id": expense.ID,
		})
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("expense", expense.ID)
	}
	return nil
}

// Delete removes the expense row
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Expense{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting expense", result.Error, dbErrorMapping{}, map[string]any{
			"expense_id": id,
		})
	}
	if result.RowsAffected == 0 {
		return errs.NewEntityNotFoundError("expense", id)
	}
	return nil
}

// DeleteParticipants removes every participant row of an expense
func (r *ExpenseRepository) DeleteParticipants(ctx context.Context, expenseID string) error {
	if err := r.db.WithContext(ctx).Where("expense_id = ?", expenseID).Delete(&model.ExpenseParticipant{}).Error; err != nil {
		return r.handleDatabaseError("deleting expense participants", err, dbErrorMapping{}, map[string]any{
			"expense_id": expenseID,
		})
	}
	return nil
}

// DeleteByGroup removes the participants and then the expenses of a group
func (r *ExpenseRepository) DeleteByGroup(ctx context.Context, groupID string) error {
	db := r.db.WithContext(ctx)
	groupExpenses := db.Model(&model.Expense{}).Select("id").Where("group_id = ?", groupID)

	if err := db.Where("expense_id IN (?)", groupExpenses).Delete(&model.ExpenseParticipant{}).Error; err != nil {
		return r.handleDatabaseError("deleting group expense participants", err, dbErrorMapping{}, map[string]any{
			"group_id": groupID,
		})
	}
	if err := db.Where("group_id = ?", groupID).Delete(&model.Expense{}).Error; err != nil {
		return r.handleDatabaseError("deleting group expenses", err, dbErrorMapping{}, map[string]any{
			"group_id": groupID,
		})
	}
	return nil
}

// ListForUser returns expenses userID paid for or participates in, newest first
func (r *ExpenseRepository) ListForUser(ctx context.Context, userID string, filter entity.ExpenseFilter) ([]*entity.Expense, error) {
	db := r.db.WithContext(ctx)
	participating := db.Model(&model.ExpenseParticipant{}).Select("expense_id").Where("user_id = ?", userID)

	query := db.Model(&model.Expense{}).
		Where("(paid_by = ? OR id IN (?))", userID, participating)
	if filter.Scope != "" {
		query = query.Where("expense_type = ?", string(filter.Scope))
	}
	if filter.GroupID != "" {
		query = query.Where("group_id = ?", filter.GroupID)
	}

	return r.listExpenses(ctx, query, "listing user expenses", map[string]any{"user_id": userID})
}

// ListByGroup returns the expenses of a group, newest first
func (r *ExpenseRepository) ListByGroup(ctx context.Context, groupID string) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.Expense{}).Where("group_id = ?", groupID)
	return r.listExpenses(ctx, query, "listing group expenses", map[string]any{"group_id": groupID})
}

func (r *ExpenseRepository) listExpenses(ctx context.Context, query *gorm.DB, operation string, fields map[string]any) ([]*entity.Expense, error) {
	var expenseModels []model.Expense
	if err := query.Order("created_at DESC, id").Find(&expenseModels).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, dbErrorMapping{}, fields)
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, expenseModelToEntity(&expenseModels[i]))
	}
	if err := r.attachParticipants(ctx, expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

type participantRow struct {
	ExpenseID string
	UserID    string
	Username  string
	Share     decimal.Decimal
}

// attachParticipants loads the participants of every expense in one query
func (r *ExpenseRepository) attachParticipants(ctx context.Context, expenses []*entity.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[string]*entity.Expense, len(expenses))
	ids := make([]string, 0, len(expenses))
	for _, e := range expenses {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	var rows []participantRow
	err := r.db.WithContext(ctx).
		Table("expense_participants AS p").
		Select("p.expense_id, p.user_id, COALESCE(u.username, '') AS username, p.share").
		Joins("LEFT JOIN users AS u ON u.id = p.user_id").
		Where("p.expense_id IN ?", ids).
		Order("p.expense_id, u.username, p.user_id").
		Scan(&rows).Error
	if err != nil {
		return r.handleDatabaseError("listing expense participants", err, dbErrorMapping{}, map[string]any{
			"expense_count": len(ids),
		})
	}

	for _, row := range rows {
		e := byID[row.ExpenseID]
		e.Participants = append(e.Participants, entity.ExpenseParticipant{
			ExpenseID: row.ExpenseID,
			UserID:    row.UserID,
			Username:  row.Username,
			Share:     row.Share,
		})
	}
	return nil
}

type shareRow struct {
	ExpenseID       string
	ExpenseType     string
	GroupID         string
	GroupName       string
	PayerID         string
	PayerName       string
	ParticipantID   string
	ParticipantName string
	Share           decimal.Decimal
}

// sharesQuery joins participant rows with their expense, payer, participant and group names
func (r *ExpenseRepository) sharesQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("expense_participants AS p").
		Select(`p.expense_id, e.expense_type,
			COALESCE(e.group_id, '') AS group_id, COALESCE(g.name, '') AS group_name,
			e.paid_by AS payer_id, COALESCE(payer.username, '') AS payer_name,
			p.user_id AS participant_id, COALESCE(pu.username, '') AS participant_name,
			p.share`).
		Joins("JOIN expenses AS e ON e.id = p.expense_id").
		Joins("LEFT JOIN users AS payer ON payer.id = e.paid_by").
		Joins("LEFT JOIN users AS pu ON pu.id = p.user_id").
		Joins("LEFT JOIN expense_groups AS g ON g.id = e.group_id")
}

func (r *ExpenseRepository) listShares(query *gorm.DB, operation, userID string) ([]entity.ExpenseShare, error) {
	var rows []shareRow
	if err := query.Order("p.expense_id, p.user_id").Scan(&rows).Error; err != nil {
		return nil, r.handleDatabaseError(operation, err, dbErrorMapping{}, map[string]any{
			"user_id": userID,
		})
	}

	shares := make([]entity.ExpenseShare, 0, len(rows))
	for _, row := range rows {
		shares = append(shares, entity.ExpenseShare{
			ExpenseID:       row.ExpenseID,
			Scope:           entity.Scope(row.ExpenseType),
			GroupID:         row.GroupID,
			GroupName:       row.GroupName,
			PayerID:         row.PayerID,
			PayerName:       row.PayerName,
			ParticipantID:   row.ParticipantID,
			ParticipantName: row.ParticipantName,
			Share:           row.Share,
		})
	}
	return shares, nil
}

// ListSharesByParticipant returns every participant row of userID joined with its expense
func (r *ExpenseRepository) ListSharesByParticipant(ctx context.Context, userID string) ([]entity.ExpenseShare, error) {
	return r.listShares(r.sharesQuery(ctx).Where("p.user_id = ?", userID), "listing shares by participant", userID)
}

// ListSharesByPayer returns every participant row of expenses paid by userID
func (r *ExpenseRepository) ListSharesByPayer(ctx context.Context, userID string) ([]entity.ExpenseShare, error) {
	return r.listShares(r.sharesQuery(ctx).Where("e.paid_by = ?", userID), "listing shares by payer", userID)
}
