package allocation

type UpdateAllocationRequest struct {
	PercentageL2 float64 `json:"percentage_l2" validate:"gte=0,lte=100"`
	PercentageL3 float64 `json:"percentage_l3" validate:"gte=0,lte=100"`
	WinningsL2   float64 `json:"winnings_l2" validate:"gte=0"`
	WinningsL3   float64 `json:"winnings_l3" validate:"gte=0"`
}

type DecisionResponse struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"` // Поле и оставшийся запас при нарушении
}

type UserResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Login        string  `json:"login"`
	Role         string  `json:"role"`
	PercentageL2 float64 `json:"percentage_l2"`
	PercentageL3 float64 `json:"percentage_l3"`
	WinningsL2   float64 `json:"winnings_l2"`
	WinningsL3   float64 `json:"winnings_l3"`
}
