package model

import "time"

type GameTitle string

const (
	GameLastTwo  GameTitle = "LAST_TWO"
	GameSwertres GameTitle = "SWERTRES"
)

// Width - фиксированная длина комбинации для игры:
// 2 цифры для LAST_TWO, 3 цифры для SWERTRES
func (g GameTitle) Width() int {
	if g == GameSwertres {
		return 3
	}
	return 2
}

func (g GameTitle) Valid() bool {
	return g == GameLastTwo || g == GameSwertres
}

type BetStatus string

const (
	StatusWon     BetStatus = "Won"
	StatusLost    BetStatus = "Lost"
	StatusPending BetStatus = "Pending"
)

type Bet struct {
	ID     int
	UserID int
	// Комбинация, на которую сделана ставка (с ведущими нулями)
	Combination string
	// Исходная комбинация рамбл-ставки.
	// Пустая строка, если ставка не разворачивалась
	OriginalCombination string
	Amount              float64
	IsRumble            bool
	GameTitle           GameTitle
	DrawTime            string // HH:MM:SS
	BetDate             string // YYYY-MM-DD
	CreatedAt           time.Time
}

// PlaceBet - запрос на размещение одной ставки (до разворачивания)
type PlaceBet struct {
	Combination string
	Amount      float64
	IsRumble    bool
	GameTitle   GameTitle
	DrawTime    string
	BetDate     string
}

// ClassifiedBet - ставка с вычисленным статусом и выплатой.
// Статус не хранится в БД, а выводится из результатов тиражей
type ClassifiedBet struct {
	Bet
	Status BetStatus
	Payout float64
}

// DayTally - сводка по ставкам за день
type DayTally struct {
	Bets         []ClassifiedBet
	TotalStake   float64
	TotalPayout  float64
	WonCount     int
	LostCount    int
	PendingCount int
}
