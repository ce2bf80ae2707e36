package bet

import (
	"swertres_backend/internal/model"
	"swertres_backend/pkg/rumble"
)

// Expand разворачивает запрос в записи ставок для сохранения.
//
// Рамбл имеет смысл только для SWERTRES: для LAST_TWO флаг игнорируется.
// Трипл ("777") перестановок не имеет - рамбл по нему вырождается
// в одну обычную ставку на полную сумму, ставка не теряется.
// Иначе сумма делится поровну между всеми различными перестановками,
// и каждая запись несет исходную комбинацию для восстановления группы.
func Expand(req model.PlaceBet, userID int) []model.Bet {
	base := model.Bet{
		UserID:      userID,
		Combination: req.Combination,
		Amount:      req.Amount,
		GameTitle:   req.GameTitle,
		DrawTime:    req.DrawTime,
		BetDate:     req.BetDate,
	}

	if !req.IsRumble || req.GameTitle != model.GameSwertres {
		return []model.Bet{base}
	}

	perms := rumble.Permutations(req.Combination)
	if len(perms) == 0 {
		return []model.Bet{base}
	}

	split := req.Amount / float64(len(perms))

	bets := make([]model.Bet, 0, len(perms))
	for _, p := range perms {
		b := base
		b.Combination = p
		b.OriginalCombination = req.Combination
		b.Amount = split
		b.IsRumble = true
		bets = append(bets, b)
	}
	return bets
}
