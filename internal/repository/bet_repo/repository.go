package bet_repo

import (
	"context"
	"time"

	"swertres_backend/internal/model"
	"swertres_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "bets"
	colID          = "id"
	colUserID      = "user_id"
	colCombination = "combination"
	colOriginal    = "original_combination"
	colAmount      = "amount"
	colIsRumble    = "is_rumble"
	colGameTitle   = "game_title"
	colDrawTime    = "draw_time"
	colBetDate     = "bet_date"
	colCreatedAt   = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// InsertBets - вставка пакета ставок одним INSERT.
// Все записи одного размещения попадают в БД вместе или не попадают вовсе
func (r *repo) InsertBets(ctx context.Context, bets []model.Bet) error {
	if len(bets) == 0 {
		return nil
	}

	query := sq.Insert(table).
		Columns(colUserID, colCombination, colOriginal, colAmount, colIsRumble, colGameTitle, colDrawTime, colBetDate, colCreatedAt).
		PlaceholderFormat(sq.Dollar)

	now := time.Now()
	for _, b := range bets {
		query = query.Values(b.UserID, b.Combination, b.OriginalCombination, b.Amount, b.IsRumble, string(b.GameTitle), b.DrawTime, b.BetDate, now)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetBetsByDate - все ставки за день
func (r *repo) GetBetsByDate(ctx context.Context, betDate string) ([]model.Bet, error) {
	return r.getBets(ctx, sq.Eq{colBetDate: betDate})
}

// GetBetsByDateAndUser - ставки за день, размещенные конкретным пользователем
func (r *repo) GetBetsByDateAndUser(ctx context.Context, betDate string, userID int) ([]model.Bet, error) {
	return r.getBets(ctx, sq.And{sq.Eq{colBetDate: betDate}, sq.Eq{colUserID: userID}})
}

func (r *repo) getBets(ctx context.Context, where sq.Sqlizer) ([]model.Bet, error) {
	query := sq.Select(colID, colUserID, colCombination, colOriginal, colAmount, colIsRumble, colGameTitle, colDrawTime, colBetDate, colCreatedAt).
		From(table).
		Where(where).
		OrderBy(colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []model.Bet
	for rows.Next() {
		var b model.Bet
		var game string
		err = rows.Scan(&b.ID, &b.UserID, &b.Combination, &b.OriginalCombination, &b.Amount, &b.IsRumble, &game, &b.DrawTime, &b.BetDate, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		b.GameTitle = model.GameTitle(game)
		bets = append(bets, b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bets, nil
}
