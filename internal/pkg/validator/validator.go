package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate проверяет структуру по validate-тегам и возвращает
// карту поле → нарушенное правило (nil, если всё в порядке).
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	problems := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		problems[fieldErr.Field()] = fieldErr.Tag()
	}
	return problems
}
