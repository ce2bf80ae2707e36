package allocation

import (
	"net/http"
	"strconv"

	dto "swertres_backend/internal/api/dto/allocation"
	"swertres_backend/internal/api/httperr"
	"swertres_backend/internal/converter"
	"swertres_backend/internal/service"
	"swertres_backend/pkg/req"
	"swertres_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AllocationService
}

type Handler struct {
	serv service.AllocationService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Children - прямые подчиненные аутентифицированного узла
func (h *Handler) Children(w http.ResponseWriter, r *http.Request) {
	users, err := h.serv.Children(r.Context())
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponses(users))
}

// Update - валидируемое обновление аллокации подчиненного.
// Нарушение инварианта - 422 с именем поля и оставшимся запасом
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	childID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	payload, err := req.Decode[dto.UpdateAllocationRequest](r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	decision, err := h.serv.Update(r.Context(), childID, converter.ToAllocationUpdate(payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	status := http.StatusOK
	if !decision.IsValid {
		status = http.StatusUnprocessableEntity
	}

	resp.WriteJSONResponse(w, status, converter.ToDecisionResponse(*decision))
}
