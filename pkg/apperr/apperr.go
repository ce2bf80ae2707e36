package apperr

import "fmt"

// ErrorNotFound - сущность с таким ключом не найдена
type ErrorNotFound struct {
	Entity string
	Key    string
}

func (e *ErrorNotFound) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Entity, e.Key)
}

// ErrorBadRequest - ошибка валидации входных данных
type ErrorBadRequest struct {
	Field   string
	Message string
}

func (e *ErrorBadRequest) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("bad request: invalid field '%s' - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("bad request: %s", e.Message)
}

// ErrorConflict - конфликт с уже существующими данными
// (например, повторный результат тиража на один слот)
type ErrorConflict struct {
	Message string
}

func (e *ErrorConflict) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}
