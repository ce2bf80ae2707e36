package result

import (
	"net/http"

	dto "swertres_backend/internal/api/dto/result"
	"swertres_backend/internal/api/httperr"
	"swertres_backend/internal/converter"
	"swertres_backend/internal/service"
	"swertres_backend/pkg/req"
	"swertres_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.ResultService
}

type Handler struct {
	serv service.ResultService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Post - публикация результата тиража.
// Повторная публикация на занятый слот - 409
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PostResultRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.serv.Post(r.Context(), converter.ToPostDrawResult(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToResultResponse(*res))
}

// List - результаты тиражей за день (?date=YYYY-MM-DD)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	drawDate := r.URL.Query().Get("date")
	if drawDate == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}

	results, err := h.serv.ResultsByDate(r.Context(), drawDate)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResultResponses(results))
}

// Tally - классифицированные ставки и итоги дня (?date=YYYY-MM-DD)
func (h *Handler) Tally(w http.ResponseWriter, r *http.Request) {
	betDate := r.URL.Query().Get("date")
	if betDate == "" {
		http.Error(w, "date query parameter is required", http.StatusBadRequest)
		return
	}

	tally, err := h.serv.Tally(r.Context(), betDate)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTallyResponse(*tally))
}
