package allocation

import (
	"context"
	"errors"
	"strconv"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"
)

// Update - валидируемое обновление аллокации подчиненного.
//
// Единственный путь записи полей аллокации: сначала инвариант
// по родителю и остальным детям, затем один атомарный UPDATE
func (s *serv) Update(ctx context.Context, childID int, upd model.AllocationUpdate) (*model.AllocationDecision, error) {
	child, err := s.userRepo.GetUserByID(ctx, childID)
	if err != nil {
		return nil, &apperr.ErrorNotFound{Entity: "user", Key: strconv.Itoa(childID)}
	}

	if child.ParentID == nil {
		return nil, &apperr.ErrorBadRequest{Field: "id", Message: "root allocation cannot be updated"}
	}

	callerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}
	if *child.ParentID != callerID {
		return nil, &apperr.ErrorBadRequest{Field: "id", Message: "not a direct subordinate"}
	}

	parent, err := s.userRepo.GetUserByID(ctx, *child.ParentID)
	if err != nil {
		return nil, err
	}

	siblings, err := s.userRepo.GetChildren(ctx, parent.ID)
	if err != nil {
		return nil, err
	}

	decision := ValidateUpdate(*parent, siblings, childID, upd)
	if !decision.IsValid {
		return decision, nil
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.userRepo.UpdateAllocation(txCtx, childID, upd)
	})
	if err != nil {
		s.log.WithError(err).Error("failed to update allocation")
		return nil, errors.New("failed to update allocation")
	}

	return decision, nil
}
