package bet

import (
	"context"

	"swertres_backend/internal/model"
)

// CheckLimit - предварительная проверка потолка ставок на комбинацию.
//
// Отсутствие настроенного лимита означает отсутствие ограничения.
// Ошибка обращения к хранилищу не блокирует размещение (проверка
// носит рекомендательный характер), но обязательно попадает в лог
func (s *serv) CheckLimit(ctx context.Context, combination string, amount float64, game model.GameTitle, betDate string) (*model.LimitDecision, error) {
	combination = model.ZeroPad(combination, game.Width())

	limit, err := s.limitRepo.Get(ctx, betDate, game, combination)
	if err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"bet_date":    betDate,
			"game":        game,
			"combination": combination,
		}).Warn("bet limit lookup failed, allowing bet")
		return &model.LimitDecision{Allowed: true}, nil
	}

	if limit == nil {
		return &model.LimitDecision{Allowed: true}, nil
	}

	return &model.LimitDecision{
		Allowed:     amount <= limit.LimitAmount,
		LimitAmount: &limit.LimitAmount,
	}, nil
}
