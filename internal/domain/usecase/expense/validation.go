package expense

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
)

// Validator checks a new expense against the store in a fixed order:
// shape (amount, participants, scope, group reference), group existence,
// payer membership, share sum, participant existence
type Validator struct {
	uow persistence.UnitOfWork
}

// NewValidator creates a new Validator
func NewValidator(uow persistence.UnitOfWork) *Validator {
	return &Validator{uow: uow}
}

// Validate returns the first failed precondition of draft, or nil
func (v *Validator) Validate(ctx context.Context, draft entity.ExpenseDraft) error {
	scope, err := draft.ValidateShape()
	if err != nil {
		return err
	}

	if scope == entity.ScopeGroup {
		if err := v.validateGroupAccess(ctx, draft.GroupID, draft.PayerID); err != nil {
			return err
		}
	}

	if err := entity.ValidateShares(draft.Amount, draft.Participants); err != nil {
		return err
	}

	return v.ValidateParticipantsExist(ctx, draft.Participants)
}

// validateGroupAccess requires the group to exist and the payer to be a member
func (v *Validator) validateGroupAccess(ctx context.Context, groupID, payerID string) error {
	groupRepo := v.uow.GetGroupRepository(ctx)
	if _, err := groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}

	member, err := groupRepo.IsMember(ctx, groupID, payerID)
	if err != nil {
		return err
	}
	if !member {
		return fmt.Errorf("%w: payer is not a member of group %s", errs.ErrNotAuthorized, groupID)
	}
	return nil
}

// ValidateParticipantsExist requires every participant to be a registered user
func (v *Validator) ValidateParticipantsExist(ctx context.Context, participants []entity.ParticipantShare) error {
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.UserID)
	}

	users, err := v.uow.GetUserRepository(ctx).GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[string]struct{}, len(users))
	for _, u := range users {
		found[u.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return errs.NewEntityNotFoundError("user", id)
		}
	}
	return nil
}
