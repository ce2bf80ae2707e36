package bet

type PlaceBetRequest struct {
	Combination string  `json:"combination" validate:"required"` // Комбинация (ведущие нули значимы)
	Amount      float64 `json:"amount" validate:"required,gt=0"` // Сумма ставки
	IsRumble    bool    `json:"is_rumble"`                       // Развернуть по перестановкам (только SWERTRES)
	GameTitle   string  `json:"game_title" validate:"required"`  // LAST_TWO | SWERTRES
	DrawTime    string  `json:"draw_time" validate:"required"`   // Слот тиража
	BetDate     string  `json:"bet_date" validate:"required"`    // YYYY-MM-DD
}

type BetResponse struct {
	Combination         string  `json:"combination"`
	OriginalCombination string  `json:"original_combination,omitempty"` // Исходная комбинация рамбла
	Amount              float64 `json:"amount"`
	IsRumble            bool    `json:"is_rumble"`
	GameTitle           string  `json:"game_title"`
	DrawTime            string  `json:"draw_time"`
	BetDate             string  `json:"bet_date"`
}

type PlaceBetResponse struct {
	Bets        []BetResponse `json:"bets"`         // Сохраненные записи (1 или перестановки)
	TotalAmount float64       `json:"total_amount"` // Сумма по всем записям
}

type CheckLimitRequest struct {
	Combination string  `json:"combination" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	GameTitle   string  `json:"game_title" validate:"required"`
	BetDate     string  `json:"bet_date" validate:"required"`
}

type CheckLimitResponse struct {
	Allowed     bool     `json:"allowed"`
	LimitAmount *float64 `json:"limit_amount,omitempty"` // Настроенный потолок, если есть
}
