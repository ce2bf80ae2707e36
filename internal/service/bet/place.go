package bet

import (
	"context"
	"errors"
	"fmt"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"
)

// Place - размещение ставки.
//
// Лимит проверяется один раз по введенной комбинации до разворачивания;
// развернутые перестановки отдельной проверке не подвергаются.
// Все записи одного размещения сохраняются в одной транзакции
func (s *serv) Place(ctx context.Context, req model.PlaceBet) ([]model.Bet, error) {
	req, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	decision, err := s.CheckLimit(ctx, req.Combination, req.Amount, req.GameTitle, req.BetDate)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		return nil, &apperr.ErrorBadRequest{
			Field:   "amount",
			Message: fmt.Sprintf("bet limit for %s on %s is %.2f", req.Combination, req.BetDate, *decision.LimitAmount),
		}
	}

	bets := Expand(req, userID)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.betRepo.InsertBets(txCtx, bets)
	})
	if err != nil {
		s.log.WithError(err).Error("failed to insert bets")
		return nil, errors.New("failed to place bet")
	}

	return bets, nil
}

// BetsByDate - все ставки за день
func (s *serv) BetsByDate(ctx context.Context, betDate string) ([]model.Bet, error) {
	return s.betRepo.GetBetsByDate(ctx, betDate)
}
