package cart

import (
	"context"
	"fmt"
	"strings"

	"foodgram/internal/repository"
)

// Service собирает агрегированный список покупок пользователя.
type Service struct {
	carts repository.CartRepository
}

func NewService(carts repository.CartRepository) *Service {
	return &Service{carts: carts}
}

// ShoppingList возвращает сгруппированные по (имя, единица) суммы
// количеств по всем рецептам корзины, отсортированные по имени.
func (s *Service) ShoppingList(ctx context.Context, userID int64) ([]repository.ShoppingListItem, error) {
	return s.carts.ShoppingList(ctx, userID)
}

// RenderText форматирует список в текстовый файл для скачивания,
// по строке на ингредиент: "имя, единица: количество".
func RenderText(items []repository.ShoppingListItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s, %s: %d\n", item.Name, item.MeasurementUnit, item.TotalAmount)
	}
	return b.String()
}
