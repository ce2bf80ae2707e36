package converter

import (
	dto "swertres_backend/internal/api/dto/bet"
	"swertres_backend/internal/model"
)

func ToPlaceBet(req dto.PlaceBetRequest) model.PlaceBet {
	return model.PlaceBet{
		Combination: req.Combination,
		Amount:      req.Amount,
		IsRumble:    req.IsRumble,
		GameTitle:   model.GameTitle(req.GameTitle),
		DrawTime:    req.DrawTime,
		BetDate:     req.BetDate,
	}
}

func ToPlaceBetResponse(bets []model.Bet) dto.PlaceBetResponse {
	resp := dto.PlaceBetResponse{
		Bets: make([]dto.BetResponse, 0, len(bets)),
	}
	for _, b := range bets {
		resp.Bets = append(resp.Bets, ToBetResponse(b))
		resp.TotalAmount += b.Amount
	}
	return resp
}

func ToBetResponse(b model.Bet) dto.BetResponse {
	return dto.BetResponse{
		Combination:         b.Combination,
		OriginalCombination: b.OriginalCombination,
		Amount:              b.Amount,
		IsRumble:            b.IsRumble,
		GameTitle:           string(b.GameTitle),
		DrawTime:            b.DrawTime,
		BetDate:             b.BetDate,
	}
}

func ToCheckLimitResponse(d model.LimitDecision) dto.CheckLimitResponse {
	return dto.CheckLimitResponse{
		Allowed:     d.Allowed,
		LimitAmount: d.LimitAmount,
	}
}
