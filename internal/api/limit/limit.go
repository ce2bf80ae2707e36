package limit

import (
	"net/http"

	dto "swertres_backend/internal/api/dto/limit"
	"swertres_backend/internal/api/httperr"
	"swertres_backend/internal/converter"
	"swertres_backend/internal/service"
	"swertres_backend/pkg/req"
	"swertres_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LimitService
}

type Handler struct {
	serv service.LimitService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Set - установка/замена лимита на ключ (дата, игра, комбинация)
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SetLimitRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := h.serv.Set(r.Context(), converter.ToBetLimit(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLimitResponse(*limit))
}

// List - лимиты на день (?date=YYYY-MM-DD)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	betDate := r.URL.Query().Get("date")
	if betDate == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}

	limits, err := h.serv.LimitsByDate(r.Context(), betDate)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLimitResponses(limits))
}
