package limit

type SetLimitRequest struct {
	BetDate     string  `json:"bet_date" validate:"required"`
	GameTitle   string  `json:"game_title" validate:"required"`
	Combination string  `json:"combination" validate:"required"`
	LimitAmount float64 `json:"limit_amount" validate:"required,gt=0"`
}

type LimitResponse struct {
	BetDate     string  `json:"bet_date"`
	GameTitle   string  `json:"game_title"`
	Combination string  `json:"combination"`
	LimitAmount float64 `json:"limit_amount"`
}
