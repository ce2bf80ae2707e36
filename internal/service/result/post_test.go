package result

import (
	"context"
	"io"
	"testing"

	"swertres_backend/internal/middleware"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"

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

type fakeDrawRepo struct {
	results []model.DrawResult
	nextID  int
}

func (r *fakeDrawRepo) GetByDate(_ context.Context, drawDate string) ([]model.DrawResult, error) {
	var out []model.DrawResult
	for _, res := range r.results {
		if res.DrawDate == drawDate {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeDrawRepo) GetBySlot(_ context.Context, drawDate, drawTime string) (*model.DrawResult, error) {
	for _, res := range r.results {
		if res.DrawDate == drawDate && res.DrawTime == drawTime {
			return &res, nil
		}
	}
	return nil, nil
}

func (r *fakeDrawRepo) Insert(_ context.Context, res *model.DrawResult) (int, error) {
	r.nextID++
	stored := *res
	stored.ID = r.nextID
	r.results = append(r.results, stored)
	return r.nextID, nil
}

type fakeBetRepo struct {
	bets []model.Bet
}

func (r *fakeBetRepo) InsertBets(_ context.Context, bets []model.Bet) error {
	r.bets = append(r.bets, bets...)
	return nil
}

func (r *fakeBetRepo) GetBetsByDate(_ context.Context, betDate string) ([]model.Bet, error) {
	var out []model.Bet
	for _, b := range r.bets {
		if b.BetDate == betDate {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBetRepo) GetBetsByDateAndUser(context.Context, string, int) ([]model.Bet, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[int]*model.User
}

func (r *fakeUserRepo) CreateUser(context.Context, *model.User) (int, error) { return 0, nil }
func (r *fakeUserRepo) GetUserByLogin(context.Context, string) (*model.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetChildren(context.Context, int) ([]model.User, error) { return nil, nil }
func (r *fakeUserRepo) UpdateAllocation(context.Context, int, model.AllocationUpdate) error {
	return nil
}

func newTestService(drawRepo *fakeDrawRepo, betRepo *fakeBetRepo, userRepo *fakeUserRepo) *serv {
	log := logrus.New()
	log.SetOutput(io.Discard)

	if userRepo == nil {
		userRepo = &fakeUserRepo{users: map[int]*model.User{}}
	}

	return &serv{
		drawRepo: drawRepo,
		betRepo:  betRepo,
		userRepo: userRepo,
		gameCfg:  fakeGameCfg{},
		log:      log,
	}
}

func adminCtx() context.Context {
	return middleware.ContextWithUser(context.Background(), 1, model.RoleAdmin)
}

func TestPost_HappyPath(t *testing.T) {
	drawRepo := &fakeDrawRepo{}
	s := newTestService(drawRepo, &fakeBetRepo{}, nil)

	res, err := s.Post(adminCtx(), model.PostDrawResult{
		DrawDate: "2024-01-01",
		DrawTime: "11:00",
		L2Result: "7",
		D3Result: "42",
	})

	require.NoError(t, err)
	assert.Equal(t, "11:00:00", res.DrawTime, "slot must be normalized")
	assert.Equal(t, "07", res.L2Result, "results must be zero-padded")
	assert.Equal(t, "042", res.D3Result)
	assert.Equal(t, 1, res.CreatedBy)
}

// Повторная публикация на занятый слот отклоняется с явным конфликтом
// до какой-либо вставки
func TestPost_DuplicateSlotConflict(t *testing.T) {
	drawRepo := &fakeDrawRepo{}
	s := newTestService(drawRepo, &fakeBetRepo{}, nil)

	_, err := s.Post(adminCtx(), model.PostDrawResult{
		DrawDate: "2024-01-01", DrawTime: "11:00:00", L2Result: "07", D3Result: "123",
	})
	require.NoError(t, err)

	_, err = s.Post(adminCtx(), model.PostDrawResult{
		DrawDate: "2024-01-01", DrawTime: "11:00:00", L2Result: "99", D3Result: "456",
	})

	var conflict *apperr.ErrorConflict
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "2024-01-01")
	assert.Contains(t, err.Error(), "11:00:00")
	assert.Len(t, drawRepo.results, 1)
}

func TestPost_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  model.PostDrawResult
	}{
		{"bad date", model.PostDrawResult{DrawDate: "01.01.2024", DrawTime: "11:00:00", L2Result: "07", D3Result: "123"}},
		{"not a slot", model.PostDrawResult{DrawDate: "2024-01-01", DrawTime: "12:00:00", L2Result: "07", D3Result: "123"}},
		{"bad l2", model.PostDrawResult{DrawDate: "2024-01-01", DrawTime: "11:00:00", L2Result: "7x", D3Result: "123"}},
		{"bad d3", model.PostDrawResult{DrawDate: "2024-01-01", DrawTime: "11:00:00", L2Result: "07", D3Result: "12345"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(&fakeDrawRepo{}, &fakeBetRepo{}, nil)

			_, err := s.Post(adminCtx(), tc.req)

			var badRequest *apperr.ErrorBadRequest
			require.ErrorAs(t, err, &badRequest)
		})
	}
}

func TestTally(t *testing.T) {
	drawRepo := &fakeDrawRepo{results: []model.DrawResult{
		{DrawDate: "2024-01-01", DrawTime: "11:00:00", L2Result: "07", D3Result: "123"},
	}}
	betRepo := &fakeBetRepo{bets: []model.Bet{
		{UserID: 2, Combination: "07", Amount: 10, GameTitle: model.GameLastTwo, DrawTime: "11:00:00", BetDate: "2024-01-01"},
		{UserID: 2, Combination: "42", Amount: 5, GameTitle: model.GameLastTwo, DrawTime: "11:00:00", BetDate: "2024-01-01"},
		{UserID: 2, Combination: "123", Amount: 7, GameTitle: model.GameSwertres, DrawTime: "17:00:00", BetDate: "2024-01-01"},
	}}
	userRepo := &fakeUserRepo{users: map[int]*model.User{
		2: {ID: 2, Role: model.RoleUsher},
	}}
	s := newTestService(drawRepo, betRepo, userRepo)

	tally, err := s.Tally(context.Background(), "2024-01-01")

	require.NoError(t, err)
	require.Len(t, tally.Bets, 3)
	assert.Equal(t, 1, tally.WonCount)
	assert.Equal(t, 1, tally.LostCount)
	assert.Equal(t, 1, tally.PendingCount, "no result for 17:00:00 yet")
	assert.Equal(t, 22.0, tally.TotalStake)
	assert.Equal(t, 800.0, tally.TotalPayout, "10 * 80 for the winning last-two bet")
}

// Переопределение множителя выплат владельца ставки
func TestTally_OwnerWinningsOverride(t *testing.T) {
	drawRepo := &fakeDrawRepo{results: []model.DrawResult{
		{DrawDate: "2024-01-01", DrawTime: "11:00:00", L2Result: "07", D3Result: "123"},
	}}
	betRepo := &fakeBetRepo{bets: []model.Bet{
		{UserID: 3, Combination: "07", Amount: 10, GameTitle: model.GameLastTwo, DrawTime: "11:00:00", BetDate: "2024-01-01"},
	}}
	userRepo := &fakeUserRepo{users: map[int]*model.User{
		3: {ID: 3, Role: model.RoleUsher, WinningsL2: 75},
	}}
	s := newTestService(drawRepo, betRepo, userRepo)

	tally, err := s.Tally(context.Background(), "2024-01-01")

	require.NoError(t, err)
	assert.Equal(t, 750.0, tally.TotalPayout)
}
