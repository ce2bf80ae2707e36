package bet

import (
	"net/http"

	dto "swertres_backend/internal/api/dto/bet"
	"swertres_backend/internal/api/httperr"
	"swertres_backend/internal/converter"
	"swertres_backend/internal/model"
	"swertres_backend/internal/service"
	"swertres_backend/pkg/req"
	"swertres_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BetService
}

type Handler struct {
	serv service.BetService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Place - размещение ставки (с разворачиванием рамбла)
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	bets, err := h.serv.Place(r.Context(), converter.ToPlaceBet(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToPlaceBetResponse(bets))
}

// CheckLimit - рекомендательная проверка лимита до размещения
func (h *Handler) CheckLimit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CheckLimitRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	decision, err := h.serv.CheckLimit(r.Context(), payload.Combination, payload.Amount, model.GameTitle(payload.GameTitle), payload.BetDate)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCheckLimitResponse(*decision))
}

// List - ставки за день (?date=YYYY-MM-DD)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	betDate := r.URL.Query().Get("date")
	if betDate == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}

	bets, err := h.serv.BetsByDate(r.Context(), betDate)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	out := make([]dto.BetResponse, 0, len(bets))
	for _, b := range bets {
		out = append(out, converter.ToBetResponse(b))
	}

	resp.WriteJSONResponse(w, http.StatusOK, out)
}
