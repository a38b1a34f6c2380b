package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = gorm.ErrRecordNotFound

	// ErrDuplicatePair возвращается при попытке повторно создать
	// уникальную связку (избранное, корзина, подписка).
	ErrDuplicatePair = errors.New("pair already exists")
)

// IsDuplicateError распознаёт нарушение уникального индекса.
// Postgres отдаёт код 23505, sqlite — текст "UNIQUE constraint failed".
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
