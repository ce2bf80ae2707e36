package converter

import (
	dto "swertres_backend/internal/api/dto/limit"
	"swertres_backend/internal/model"
)

func ToBetLimit(req dto.SetLimitRequest) model.BetLimit {
	return model.BetLimit{
		BetDate:     req.BetDate,
		GameTitle:   model.GameTitle(req.GameTitle),
		Combination: req.Combination,
		LimitAmount: req.LimitAmount,
	}
}

func ToLimitResponse(limit model.BetLimit) dto.LimitResponse {
	return dto.LimitResponse{
		BetDate:     limit.BetDate,
		GameTitle:   string(limit.GameTitle),
		Combination: limit.Combination,
		LimitAmount: limit.LimitAmount,
	}
}

func ToLimitResponses(limits []model.BetLimit) []dto.LimitResponse {
	out := make([]dto.LimitResponse, 0, len(limits))
	for _, limit := range limits {
		out = append(out, ToLimitResponse(limit))
	}
	return out
}
