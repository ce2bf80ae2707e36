package bet

import (
	"fmt"
	"time"

	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"
)

const dateLayout = "2006-01-02"

// validate проверяет запрос до какой-либо записи в БД.
// Комбинация возвращается нормализованной (с ведущими нулями),
// время тиража - в каноническом виде HH:MM:SS
func (s *serv) validate(req model.PlaceBet) (model.PlaceBet, error) {
	if !req.GameTitle.Valid() {
		return req, &apperr.ErrorBadRequest{Field: "gameTitle", Message: fmt.Sprintf("unknown game %q", req.GameTitle)}
	}

	if req.Amount <= 0 {
		return req, &apperr.ErrorBadRequest{Field: "amount", Message: "amount must be positive"}
	}

	width := req.GameTitle.Width()
	req.Combination = model.ZeroPad(req.Combination, width)
	if len(req.Combination) != width || !model.IsDigits(req.Combination) {
		return req, &apperr.ErrorBadRequest{
			Field:   "combination",
			Message: fmt.Sprintf("combination must be exactly %d digits", width),
		}
	}

	if _, err := time.Parse(dateLayout, req.BetDate); err != nil {
		return req, &apperr.ErrorBadRequest{Field: "betDate", Message: "date must be YYYY-MM-DD"}
	}

	req.DrawTime = model.NormalizeDrawTime(req.DrawTime)
	if !s.validSlot(req.DrawTime) {
		return req, &apperr.ErrorBadRequest{
			Field:   "drawTime",
			Message: fmt.Sprintf("%q is not a draw slot", req.DrawTime),
		}
	}

	return req, nil
}

func (s *serv) validSlot(drawTime string) bool {
	for _, slot := range s.gameCfg.DrawSlots() {
		if drawTime == slot {
			return true
		}
	}
	return false
}
