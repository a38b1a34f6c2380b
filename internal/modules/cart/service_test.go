package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foodgram/internal/repository"
)

func TestRenderText(t *testing.T) {
	items := []repository.ShoppingListItem{
		{Name: "мука пшеничная", MeasurementUnit: "г", TotalAmount: 350},
		{Name: "сахар", MeasurementUnit: "г", TotalAmount: 50},
	}

	out := RenderText(items)

	assert.Equal(t, "мука пшеничная, г: 350\nсахар, г: 50\n", out)
}

func TestRenderText_Empty(t *testing.T) {
	assert.Equal(t, "", RenderText(nil))
}
