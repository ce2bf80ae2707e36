package limit

import (
	"context"
	"errors"
	"io"
	"testing"

	"swertres_backend/internal/model"
	"swertres_backend/pkg/apperr"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLimitRepo struct {
	limits    map[string]*model.BetLimit
	upsertErr error
}

func key(l *model.BetLimit) string {
	return l.BetDate + "|" + string(l.GameTitle) + "|" + l.Combination
}

func (r *fakeLimitRepo) Get(_ context.Context, betDate string, game model.GameTitle, combination string) (*model.BetLimit, error) {
	return r.limits[betDate+"|"+string(game)+"|"+combination], nil
}

func (r *fakeLimitRepo) GetByDate(_ context.Context, betDate string) ([]model.BetLimit, error) {
	var out []model.BetLimit
	for _, l := range r.limits {
		if l.BetDate == betDate {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLimitRepo) Upsert(_ context.Context, l *model.BetLimit) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	if r.limits == nil {
		r.limits = make(map[string]*model.BetLimit)
	}
	stored := *l
	r.limits[key(l)] = &stored
	return nil
}

func newTestService(repo *fakeLimitRepo) *serv {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &serv{limitRepo: repo, log: log}
}

func TestSet_NormalizesCombination(t *testing.T) {
	repo := &fakeLimitRepo{}
	s := newTestService(repo)

	limit, err := s.Set(context.Background(), model.BetLimit{
		BetDate:     "2024-01-01",
		GameTitle:   model.GameLastTwo,
		Combination: "7",
		LimitAmount: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, "07", limit.Combination)
	assert.NotNil(t, repo.limits["2024-01-01|LAST_TWO|07"])
}

// Повторная установка на тот же ключ заменяет значение
func TestSet_ReplacesExisting(t *testing.T) {
	repo := &fakeLimitRepo{}
	s := newTestService(repo)

	_, err := s.Set(context.Background(), model.BetLimit{
		BetDate: "2024-01-01", GameTitle: model.GameSwertres, Combination: "123", LimitAmount: 500,
	})
	require.NoError(t, err)

	_, err = s.Set(context.Background(), model.BetLimit{
		BetDate: "2024-01-01", GameTitle: model.GameSwertres, Combination: "123", LimitAmount: 200,
	})
	require.NoError(t, err)

	require.Len(t, repo.limits, 1)
	assert.Equal(t, 200.0, repo.limits["2024-01-01|SWERTRES|123"].LimitAmount)
}

func TestSet_Validation(t *testing.T) {
	tests := []struct {
		name  string
		limit model.BetLimit
	}{
		{"unknown game", model.BetLimit{BetDate: "2024-01-01", GameTitle: "PICK_FOUR", Combination: "12", LimitAmount: 100}},
		{"zero amount", model.BetLimit{BetDate: "2024-01-01", GameTitle: model.GameLastTwo, Combination: "12", LimitAmount: 0}},
		{"negative amount", model.BetLimit{BetDate: "2024-01-01", GameTitle: model.GameLastTwo, Combination: "12", LimitAmount: -5}},
		{"bad date", model.BetLimit{BetDate: "01/01/2024", GameTitle: model.GameLastTwo, Combination: "12", LimitAmount: 100}},
		{"too long combination", model.BetLimit{BetDate: "2024-01-01", GameTitle: model.GameLastTwo, Combination: "123", LimitAmount: 100}},
		{"non-digit combination", model.BetLimit{BetDate: "2024-01-01", GameTitle: model.GameLastTwo, Combination: "1x", LimitAmount: 100}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestService(&fakeLimitRepo{})

			_, err := s.Set(context.Background(), tc.limit)

			var badRequest *apperr.ErrorBadRequest
			require.ErrorAs(t, err, &badRequest)
		})
	}
}

func TestSet_RepoError(t *testing.T) {
	s := newTestService(&fakeLimitRepo{upsertErr: errors.New("connection refused")})

	_, err := s.Set(context.Background(), model.BetLimit{
		BetDate: "2024-01-01", GameTitle: model.GameLastTwo, Combination: "12", LimitAmount: 100,
	})

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "connection refused", "driver errors must not leak to the caller")
}
