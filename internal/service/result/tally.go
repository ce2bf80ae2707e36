package result

import (
	"context"

	"swertres_backend/internal/model"
)

// Tally - классификация всех ставок дня по опубликованным результатам.
// Выплата считается только для выигравших ставок
func (s *serv) Tally(ctx context.Context, betDate string) (*model.DayTally, error) {
	results, err := s.drawRepo.GetByDate(ctx, betDate)
	if err != nil {
		return nil, err
	}

	bets, err := s.betRepo.GetBetsByDate(ctx, betDate)
	if err != nil {
		return nil, err
	}

	// Владельцы ставок для переопределения множителей выплат
	owners := make(map[int]*model.User)

	tally := &model.DayTally{}
	for _, b := range bets {
		status := Classify(b, results)

		var payout float64
		if status == model.StatusWon {
			owner, ok := owners[b.UserID]
			if !ok {
				owner, err = s.userRepo.GetUserByID(ctx, b.UserID)
				if err != nil {
					s.log.WithError(err).WithField("user_id", b.UserID).Warn("failed to load bet owner, using base payout")
					owner = nil
				}
				owners[b.UserID] = owner
			}
			base := s.gameCfg.PayoutMultiplier(string(b.GameTitle))
			payout = b.Amount * PayoutMultiplier(b, owner, base)
		}

		tally.Bets = append(tally.Bets, model.ClassifiedBet{
			Bet:    b,
			Status: status,
			Payout: payout,
		})
		tally.TotalStake += b.Amount
		tally.TotalPayout += payout

		switch status {
		case model.StatusWon:
			tally.WonCount++
		case model.StatusLost:
			tally.LostCount++
		default:
			tally.PendingCount++
		}
	}

	return tally, nil
}
