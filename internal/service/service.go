package service

import (
	"context"

	"swertres_backend/internal/model"
)

type BetService interface {
	// Place - размещение ставки с разворачиванием рамбла
	// и предварительной проверкой лимита
	Place(ctx context.Context, req model.PlaceBet) ([]model.Bet, error)
	CheckLimit(ctx context.Context, combination string, amount float64, game model.GameTitle, betDate string) (*model.LimitDecision, error)
	BetsByDate(ctx context.Context, betDate string) ([]model.Bet, error)
}

type ResultService interface {
	Post(ctx context.Context, req model.PostDrawResult) (*model.DrawResult, error)
	ResultsByDate(ctx context.Context, drawDate string) ([]model.DrawResult, error)
	// Tally - классификация всех ставок дня по результатам тиражей
	Tally(ctx context.Context, betDate string) (*model.DayTally, error)
}

type LimitService interface {
	Set(ctx context.Context, limit model.BetLimit) (*model.BetLimit, error)
	LimitsByDate(ctx context.Context, betDate string) ([]model.BetLimit, error)
}

type AllocationService interface {
	Children(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, childID int, upd model.AllocationUpdate) (*model.AllocationDecision, error)
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, user *model.User) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
