package result

type PostResultRequest struct {
	DrawDate string `json:"draw_date" validate:"required"` // YYYY-MM-DD
	DrawTime string `json:"draw_time" validate:"required"` // Слот тиража
	L2Result string `json:"l2_result" validate:"required"` // 2 цифры
	D3Result string `json:"d3_result" validate:"required"` // 3 цифры
}

type ResultResponse struct {
	ID       int    `json:"id"`
	DrawDate string `json:"draw_date"`
	DrawTime string `json:"draw_time"`
	L2Result string `json:"l2_result"`
	D3Result string `json:"d3_result"`
}

type ClassifiedBetResponse struct {
	Combination         string  `json:"combination"`
	OriginalCombination string  `json:"original_combination,omitempty"`
	Amount              float64 `json:"amount"`
	GameTitle           string  `json:"game_title"`
	DrawTime            string  `json:"draw_time"`
	BetDate             string  `json:"bet_date"`
	Status              string  `json:"status"` // Won | Lost | Pending
	Payout              float64 `json:"payout"`
}

type TallyResponse struct {
	Bets         []ClassifiedBetResponse `json:"bets"`
	TotalStake   float64                 `json:"total_stake"`
	TotalPayout  float64                 `json:"total_payout"`
	WonCount     int                     `json:"won_count"`
	LostCount    int                     `json:"lost_count"`
	PendingCount int                     `json:"pending_count"`
}
