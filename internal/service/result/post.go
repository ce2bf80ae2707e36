package result

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"
)

const dateLayout = "2006-01-02"

// Post - публикация результата тиража.
//
// Уникальность пары (дата, слот) проверяется явным чтением до вставки,
// чтобы конфликт вернулся осмысленной ошибкой, а не ошибкой constraint
func (s *serv) Post(ctx context.Context, req model.PostDrawResult) (*model.DrawResult, error) {
	if _, err := time.Parse(dateLayout, req.DrawDate); err != nil {
		return nil, &apperr.ErrorBadRequest{Field: "drawDate", Message: "date must be YYYY-MM-DD"}
	}

	req.DrawTime = model.NormalizeDrawTime(req.DrawTime)
	if !s.validSlot(req.DrawTime) {
		return nil, &apperr.ErrorBadRequest{Field: "drawTime", Message: fmt.Sprintf("%q is not a draw slot", req.DrawTime)}
	}

	req.L2Result = model.ZeroPad(req.L2Result, model.GameLastTwo.Width())
	if len(req.L2Result) != 2 || !model.IsDigits(req.L2Result) {
		return nil, &apperr.ErrorBadRequest{Field: "l2Result", Message: "result must be exactly 2 digits"}
	}

	req.D3Result = model.ZeroPad(req.D3Result, model.GameSwertres.Width())
	if len(req.D3Result) != 3 || !model.IsDigits(req.D3Result) {
		return nil, &apperr.ErrorBadRequest{Field: "d3Result", Message: "result must be exactly 3 digits"}
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user id not found in context")
	}

	existing, err := s.drawRepo.GetBySlot(ctx, req.DrawDate, req.DrawTime)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &apperr.ErrorConflict{
			Message: fmt.Sprintf("draw result for %s %s already exists", req.DrawDate, req.DrawTime),
		}
	}

	res := &model.DrawResult{
		DrawDate:  req.DrawDate,
		DrawTime:  req.DrawTime,
		L2Result:  req.L2Result,
		D3Result:  req.D3Result,
		CreatedBy: userID,
	}

	res.ID, err = s.drawRepo.Insert(ctx, res)
	if err != nil {
		s.log.WithError(err).Error("failed to insert draw result")
		return nil, errors.New("failed to post draw result")
	}

	return res, nil
}

// ResultsByDate - результаты тиражей за день
func (s *serv) ResultsByDate(ctx context.Context, drawDate string) ([]model.DrawResult, error) {
	return s.drawRepo.GetByDate(ctx, drawDate)
}

func (s *serv) validSlot(drawTime string) bool {
	for _, slot := range s.gameCfg.DrawSlots() {
		if drawTime == slot {
			return true
		}
	}
	return false
}
