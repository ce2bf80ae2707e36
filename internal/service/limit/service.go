package limit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"
	"swertres_backend/internal/service"
	"swertres_backend/pkg/apperr"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type serv struct {
	limitRepo repository.BetLimitRepository
	log       *logrus.Logger
}

func NewLimitService(limitRepo repository.BetLimitRepository, log *logrus.Logger) service.LimitService {
	return &serv{
		limitRepo: limitRepo,
		log:       log,
	}
}

// Set - установка лимита на ключ (дата, игра, комбинация).
// Повторная установка на тот же ключ заменяет значение, а не дублирует его
func (s *serv) Set(ctx context.Context, limit model.BetLimit) (*model.BetLimit, error) {
	if !limit.GameTitle.Valid() {
		return nil, &apperr.ErrorBadRequest{Field: "gameTitle", Message: fmt.Sprintf("unknown game %q", limit.GameTitle)}
	}

	if limit.LimitAmount <= 0 {
		return nil, &apperr.ErrorBadRequest{Field: "limitAmount", Message: "limit must be positive"}
	}

	if _, err := time.Parse(dateLayout, limit.BetDate); err != nil {
		return nil, &apperr.ErrorBadRequest{Field: "betDate", Message: "date must be YYYY-MM-DD"}
	}

	width := limit.GameTitle.Width()
	limit.Combination = model.ZeroPad(limit.Combination, width)
	if len(limit.Combination) != width || !model.IsDigits(limit.Combination) {
		return nil, &apperr.ErrorBadRequest{
			Field:   "combination",
			Message: fmt.Sprintf("combination must be exactly %d digits", width),
		}
	}

	err := s.limitRepo.Upsert(ctx, &limit)
	if err != nil {
		s.log.WithError(err).Error("failed to upsert bet limit")
		return nil, errors.New("failed to set bet limit")
	}

	return &limit, nil
}

// LimitsByDate - все лимиты на день
func (s *serv) LimitsByDate(ctx context.Context, betDate string) ([]model.BetLimit, error) {
	return s.limitRepo.GetByDate(ctx, betDate)
}
