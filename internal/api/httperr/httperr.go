package httperr

import (
	"errors"
	"net/http"

	"swertres_backend/pkg/apperr"
)

// Write - отображение доменных ошибок на HTTP статусы
func Write(w http.ResponseWriter, err error) {
	var (
		badRequest *apperr.ErrorBadRequest
		notFound   *apperr.ErrorNotFound
		conflict   *apperr.ErrorConflict
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &badRequest):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict):
		status = http.StatusConflict
	}

	http.Error(w, err.Error(), status)
}
