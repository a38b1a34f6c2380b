package recipe

import (
	"errors"
	"fmt"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("only the author can modify the recipe")
)

// ValidationError несёт имя поля, чтобы хендлер отдал
// field-level детали клиенту. Выбрасывается до любой записи в БД.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
