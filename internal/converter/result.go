package converter

import (
	dto "swertres_backend/internal/api/dto/result"
	"swertres_backend/internal/model"
)

func ToPostDrawResult(req dto.PostResultRequest) model.PostDrawResult {
	return model.PostDrawResult{
		DrawDate: req.DrawDate,
		DrawTime: req.DrawTime,
		L2Result: req.L2Result,
		D3Result: req.D3Result,
	}
}

func ToResultResponse(res model.DrawResult) dto.ResultResponse {
	return dto.ResultResponse{
		ID:       res.ID,
		DrawDate: res.DrawDate,
		DrawTime: res.DrawTime,
		L2Result: res.L2Result,
		D3Result: res.D3Result,
	}
}

func ToResultResponses(results []model.DrawResult) []dto.ResultResponse {
	out := make([]dto.ResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, ToResultResponse(res))
	}
	return out
}

func ToTallyResponse(tally model.DayTally) dto.TallyResponse {
	resp := dto.TallyResponse{
		Bets:         make([]dto.ClassifiedBetResponse, 0, len(tally.Bets)),
		TotalStake:   tally.TotalStake,
		TotalPayout:  tally.TotalPayout,
		WonCount:     tally.WonCount,
		LostCount:    tally.LostCount,
		PendingCount: tally.PendingCount,
	}
	for _, b := range tally.Bets {
		resp.Bets = append(resp.Bets, dto.ClassifiedBetResponse{
			Combination:         b.Combination,
			OriginalCombination: b.OriginalCombination,
			Amount:              b.Amount,
			GameTitle:           string(b.GameTitle),
			DrawTime:            b.DrawTime,
			BetDate:             b.BetDate,
			Status:              string(b.Status),
			Payout:              b.Payout,
		})
	}
	return resp
}
