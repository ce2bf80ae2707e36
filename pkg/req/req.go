package req

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode - декодирование JSON тела запроса в структуру T
// с проверкой validate-тегов
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, err
	}

	err = validate.Struct(&payload)
	if err != nil {
		return payload, err
	}

	return payload, nil
}
