package model

// BetLimit - потолок суммы ставок на комбинацию в конкретный день.
// Ключ (BetDate, GameTitle, Combination) уникален,
// повторная установка заменяет значение
type BetLimit struct {
	ID          int
	BetDate     string
	GameTitle   GameTitle
	Combination string
	LimitAmount float64
}

// LimitDecision - решение предварительной проверки лимита.
// LimitAmount равен nil, если лимит на ключ не настроен
type LimitDecision struct {
	Allowed     bool
	LimitAmount *float64
}
