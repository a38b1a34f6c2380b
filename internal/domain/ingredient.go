package domain

// Ingredient — справочный ингредиент с единицей измерения.
// Количество задаётся в связке с конкретным рецептом (RecipeIngredient).
type Ingredient struct {
	ID              int64  `json:"id" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:50;not null"`
}

func (Ingredient) TableName() string { return "ingredients" }
