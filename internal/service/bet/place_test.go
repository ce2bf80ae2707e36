package bet

import (
	"context"
	"errors"
	"io"
	"testing"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGameCfg struct{}

func (fakeGameCfg) DrawSlots() []string {
	return []string{"11:00:00", "17:00:00", "21:00:00"}
}

func (fakeGameCfg) PayoutMultiplier(game string) float64 {
	if game == string(model.GameSwertres) {
		return 400
	}
	return 80
}

type fakeBetRepo struct {
	batches   [][]model.Bet
	insertErr error
}

func (r *fakeBetRepo) InsertBets(_ context.Context, bets []model.Bet) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.batches = append(r.batches, bets)
	return nil
}

func (r *fakeBetRepo) GetBetsByDate(context.Context, string) ([]model.Bet, error) {
	return nil, nil
}

func (r *fakeBetRepo) GetBetsByDateAndUser(context.Context, string, int) ([]model.Bet, error) {
	return nil, nil
}

type fakeLimitRepo struct {
	limits map[string]*model.BetLimit
	getErr error
}

func limitKey(betDate string, game model.GameTitle, comb string) string {
	return betDate + "|" + string(game) + "|" + comb
}

func (r *fakeLimitRepo) Get(_ context.Context, betDate string, game model.GameTitle, comb string) (*model.BetLimit, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.limits[limitKey(betDate, game, comb)], nil
}

func (r *fakeLimitRepo) GetByDate(context.Context, string) ([]model.BetLimit, error) {
	return nil, nil
}

func (r *fakeLimitRepo) Upsert(_ context.Context, limit *model.BetLimit) error {
	if r.limits == nil {
		r.limits = make(map[string]*model.BetLimit)
	}
	r.limits[limitKey(limit.BetDate, limit.GameTitle, limit.Combination)] = limit
	return nil
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(betRepo *fakeBetRepo, limitRepo *fakeLimitRepo) *serv {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &serv{
		betRepo:   betRepo,
		limitRepo: limitRepo,
		gameCfg:   fakeGameCfg{},
		txManager: fakeTxManager{},
		log:       log,
	}
}

func usherCtx() context.Context {
	return middleware.ContextWithUser(context.Background(), 1, model.RoleUsher)
}

func TestPlace_SingleBet(t *testing.T) {
	betRepo := &fakeBetRepo{}
	s := newTestService(betRepo, &fakeLimitRepo{})

	bets, err := s.Place(usherCtx(), model.PlaceBet{
		Combination: "07",
		Amount:      10,
		GameTitle:   model.GameLastTwo,
		DrawTime:    "11:00",
		BetDate:     "2024-01-01",
	})

	require.NoError(t, err)
	require.Len(t, bets, 1)
	assert.Equal(t, "07", bets[0].Combination)
	assert.Equal(t, "11:00:00", bets[0].DrawTime, "draw time must be normalized")
	require.Len(t, betRepo.batches, 1)
	require.Len(t, betRepo.batches[0], 1)
}

func TestPlace_RumbleInsertsOneBatch(t *testing.T) {
	betRepo := &fakeBetRepo{}
	s := newTestService(betRepo, &fakeLimitRepo{})

	bets, err := s.Place(usherCtx(), model.PlaceBet{
		Combination: "123",
		Amount:      60,
		IsRumble:    true,
		GameTitle:   model.GameSwertres,
		DrawTime:    "17:00:00",
		BetDate:     "2024-01-01",
	})

	require.NoError(t, err)
	require.Len(t, bets, 6)
	require.Len(t, betRepo.batches, 1, "all records of one placement go in one batch")
	require.Len(t, betRepo.batches[0], 6)

	var total float64
	for _, b := range betRepo.batches[0] {
		total += b.Amount
	}
	assert.InDelta(t, 60, total, 0.01*6)
}

func TestPlace_RejectedOverLimit(t *testing.T) {
	betRepo := &fakeBetRepo{}
	limitRepo := &fakeLimitRepo{limits: map[string]*model.BetLimit{
		limitKey("2024-01-01", model.GameSwertres, "123"): {
			BetDate: "2024-01-01", GameTitle: model.GameSwertres, Combination: "123", LimitAmount: 500,
		},
	}}
	s := newTestService(betRepo, limitRepo)

	_, err := s.Place(usherCtx(), model.PlaceBet{
		Combination: "123",
		Amount:      500.01,
		GameTitle:   model.GameSwertres,
		DrawTime:    "11:00:00",
		BetDate:     "2024-01-01",
	})

	var badRequest *apperr.ErrorBadRequest
	require.ErrorAs(t, err, &badRequest)
	assert.Empty(t, betRepo.batches, "nothing may be inserted on rejection")
}

// Ошибка поиска лимита не блокирует размещение
func TestPlace_FailOpenOnLimitLookupError(t *testing.T) {
	betRepo := &fakeBetRepo{}
	s := newTestService(betRepo, &fakeLimitRepo{getErr: errors.New("backend unreachable")})

	bets, err := s.Place(usherCtx(), model.PlaceBet{
		Combination: "777",
		Amount:      10,
		GameTitle:   model.GameSwertres,
		DrawTime:    "21:00:00",
		BetDate:     "2024-01-01",
	})

	require.NoError(t, err)
	require.Len(t, bets, 1)
	require.Len(t, betRepo.batches, 1)
}

func TestPlace_InsertFailureSurfaced(t *testing.T) {
	betRepo := &fakeBetRepo{insertErr: errors.New("connection reset")}
	s := newTestService(betRepo, &fakeLimitRepo{})

	_, err := s.Place(usherCtx(), model.PlaceBet{
		Combination: "42",
		Amount:      5,
		GameTitle:   model.GameLastTwo,
		DrawTime:    "11:00:00",
		BetDate:     "2024-01-01",
	})

	require.Error(t, err)
}

func TestPlace_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  model.PlaceBet
	}{
		{"non-positive amount", model.PlaceBet{Combination: "12", Amount: 0, GameTitle: model.GameLastTwo, DrawTime: "11:00:00", BetDate: "2024-01-01"}},
		{"negative amount", model.PlaceBet{Combination: "12", Amount: -5, GameTitle: model.GameLastTwo, DrawTime: "11:00:00", BetDate: "2024-01-01"}},
		{"combination too long", model.PlaceBet{Combination: "123", Amount: 10, GameTitle: model.GameLastTwo, DrawTime: "11:00:00", BetDate: "2024-01-01"}},
		{"non-digit combination", model.PlaceBet{Combination: "1a3", Amount: 10, GameTitle: model.GameSwertres, DrawTime: "11:00:00", BetDate: "2024-01-01"}},
		{"unknown game", model.PlaceBet{Combination: "123", Amount: 10, GameTitle: "KENO", DrawTime: "11:00:00", BetDate: "2024-01-01"}},
		{"not a draw slot", model.PlaceBet{Combination: "123", Amount: 10, GameTitle: model.GameSwertres, DrawTime: "12:30:00", BetDate: "2024-01-01"}},
		{"bad date", model.PlaceBet{Combination: "123", Amount: 10, GameTitle: model.GameSwertres, DrawTime: "11:00:00", BetDate: "01/01/2024"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			betRepo := &fakeBetRepo{}
			s := newTestService(betRepo, &fakeLimitRepo{})

			_, err := s.Place(usherCtx(), tc.req)

			var badRequest *apperr.ErrorBadRequest
			require.ErrorAs(t, err, &badRequest)
			assert.Empty(t, betRepo.batches)
		})
	}
}

// Комбинация короче ширины игры дополняется ведущими нулями
func TestPlace_ZeroPadsCombination(t *testing.T) {
	betRepo := &fakeBetRepo{}
	s := newTestService(betRepo, &fakeLimitRepo{})

	bets, err := s.Place(usherCtx(), model.PlaceBet{
		Combination: "7",
		Amount:      10,
		GameTitle:   model.GameLastTwo,
		DrawTime:    "11:00:00",
		BetDate:     "2024-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "07", bets[0].Combination)
}

func TestCheckLimit(t *testing.T) {
	limitRepo := &fakeLimitRepo{limits: map[string]*model.BetLimit{
		limitKey("2024-01-01", model.GameSwertres, "123"): {
			BetDate: "2024-01-01", GameTitle: model.GameSwertres, Combination: "123", LimitAmount: 500,
		},
	}}
	s := newTestService(&fakeBetRepo{}, limitRepo)
	ctx := context.Background()

	decision, err := s.CheckLimit(ctx, "123", 500, model.GameSwertres, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, decision.Allowed, "stake equal to the limit is allowed")
	require.NotNil(t, decision.LimitAmount)
	assert.Equal(t, 500.0, *decision.LimitAmount)

	decision, err = s.CheckLimit(ctx, "123", 500.01, model.GameSwertres, "2024-01-01")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	decision, err = s.CheckLimit(ctx, "999", 1000000, model.GameSwertres, "2024-01-01")
	require.NoError(t, err)
	assert.True(t, decision.Allowed, "no configured limit means unrestricted")
	assert.Nil(t, decision.LimitAmount)
}

// Поиск лимита идет по нормализованной комбинации
func TestCheckLimit_NormalizesCombination(t *testing.T) {
	limitRepo := &fakeLimitRepo{limits: map[string]*model.BetLimit{
		limitKey("2024-01-01", model.GameLastTwo, "07"): {
			BetDate: "2024-01-01", GameTitle: model.GameLastTwo, Combination: "07", LimitAmount: 50,
		},
	}}
	s := newTestService(&fakeBetRepo{}, limitRepo)

	decision, err := s.CheckLimit(context.Background(), "7", 100, model.GameLastTwo, "2024-01-01")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}
