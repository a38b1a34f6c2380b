package domain

// Tag — метка рецепта (например "завтрак"). Имя и slug уникальны,
// цвет хранится в hex-формате для фронта.
type Tag struct {
	ID    int64  `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Color string `json:"color" gorm:"size:7"`
	Slug  string `json:"slug" gorm:"size:50;uniqueIndex;not null"`
}

func (Tag) TableName() string { return "tags" }
