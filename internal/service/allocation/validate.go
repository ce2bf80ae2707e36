package allocation

import (
	"fmt"

	"swertres_backend/internal/model"
)

// ValidateUpdate проверяет инвариант аллокации: по каждому из четырех
// полей сумма значений прямых подчиненных узла (без обновляемого,
// плюс предложенное новое значение) не должна превышать значение,
// выданное самому узлу.
//
// При нарушении решение содержит имя поля и оставшийся запас
func ValidateUpdate(parent model.User, siblings []model.User, childID int, proposed model.AllocationUpdate) *model.AllocationDecision {
	checks := []struct {
		field    string
		parent   float64
		proposed float64
		sibling  func(model.User) float64
	}{
		{"percentageL2", parent.PercentageL2, proposed.PercentageL2, func(u model.User) float64 { return u.PercentageL2 }},
		{"percentageL3", parent.PercentageL3, proposed.PercentageL3, func(u model.User) float64 { return u.PercentageL3 }},
		{"winningsL2", parent.WinningsL2, proposed.WinningsL2, func(u model.User) float64 { return u.WinningsL2 }},
		{"winningsL3", parent.WinningsL3, proposed.WinningsL3, func(u model.User) float64 { return u.WinningsL3 }},
	}

	for _, c := range checks {
		if c.proposed < 0 {
			return &model.AllocationDecision{
				Message: fmt.Sprintf("%s must not be negative", c.field),
			}
		}

		var siblingSum float64
		for _, sib := range siblings {
			if sib.ID == childID {
				continue
			}
			siblingSum += c.sibling(sib)
		}

		if siblingSum+c.proposed > c.parent {
			return &model.AllocationDecision{
				Message: fmt.Sprintf("%s exceeds parent allocation: %.2f available", c.field, c.parent-siblingSum),
			}
		}
	}

	return &model.AllocationDecision{IsValid: true}
}
