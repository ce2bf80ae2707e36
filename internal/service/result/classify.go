package result

import (
	"swertres_backend/internal/model"
)

// Classify определяет статус ставки по результатам тиражей ее дня.
//
// Ставка сопоставляется с результатом по дате и слоту (время приводится
// к HH:MM:SS). Нет результата на слот - Pending. Есть результат -
// сравнивается поле соответствующей игры: совпало - Won, нет - Lost.
// Функция чистая: статус выводится при каждом чтении и нигде не хранится
func Classify(bet model.Bet, results []model.DrawResult) model.BetStatus {
	betTime := model.NormalizeDrawTime(bet.DrawTime)

	for _, res := range results {
		if res.DrawDate != bet.BetDate || model.NormalizeDrawTime(res.DrawTime) != betTime {
			continue
		}

		drawn := res.L2Result
		if bet.GameTitle == model.GameSwertres {
			drawn = res.D3Result
		}

		width := bet.GameTitle.Width()
		if model.ZeroPad(drawn, width) == model.ZeroPad(bet.Combination, width) {
			return model.StatusWon
		}
		return model.StatusLost
	}

	return model.StatusPending
}

// PayoutMultiplier - множитель выплаты для ставки.
// Базовый множитель игры может быть переопределен
// полем winnings_l2 / winnings_l3 владельца ставки
func PayoutMultiplier(bet model.Bet, owner *model.User, base float64) float64 {
	if owner == nil {
		return base
	}

	override := owner.WinningsL2
	if bet.GameTitle == model.GameSwertres {
		override = owner.WinningsL3
	}
	if override > 0 {
		return override
	}
	return base
}
