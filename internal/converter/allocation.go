package converter

import (
	dto "swertres_backend/internal/api/dto/allocation"
	"swertres_backend/internal/model"
)

func ToAllocationUpdate(req dto.UpdateAllocationRequest) model.AllocationUpdate {
	return model.AllocationUpdate{
		PercentageL2: req.PercentageL2,
		PercentageL3: req.PercentageL3,
		WinningsL2:   req.WinningsL2,
		WinningsL3:   req.WinningsL3,
	}
}

func ToDecisionResponse(d model.AllocationDecision) dto.DecisionResponse {
	return dto.DecisionResponse{
		IsValid: d.IsValid,
		Message: d.Message,
	}
}

func ToUserResponses(users []model.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:           u.ID,
			Name:         u.Name,
			Login:        u.Login,
			Role:         string(u.Role),
			PercentageL2: u.PercentageL2,
			PercentageL3: u.PercentageL3,
			WinningsL2:   u.WinningsL2,
			WinningsL3:   u.WinningsL3,
		})
	}
	return out
}
