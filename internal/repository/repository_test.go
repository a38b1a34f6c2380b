package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"foodgram/internal/database"
	"foodgram/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Tag{},
		&domain.Ingredient{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
		&domain.Follow{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:        username + "@example.com",
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTag(t *testing.T, db *gorm.DB, name, slug string) *domain.Tag {
	t.Helper()
	tag := &domain.Tag{Name: name, Color: "#49B64E", Slug: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func createIngredient(t *testing.T, db *gorm.DB, name, unit string) *domain.Ingredient {
	t.Helper()
	ing := &domain.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ing).Error)
	return ing
}

func createRecipe(t *testing.T, db *gorm.DB, repo RecipeRepository, authorID int64, name string, ingredients []domain.RecipeIngredient, tagIDs []int64) *domain.Recipe {
	t.Helper()
	rec := &domain.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "recipes/" + name + ".jpg",
		Text:        "text",
		CookingTime: 10,
	}
	require.NoError(t, repo.Create(context.Background(), rec, ingredients, tagIDs))
	return rec
}

func TestCartRepository_ShoppingListAggregation(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	user := createUser(t, db, "buyer")
	tag := createTag(t, db, "Обед", "lunch")
	flour := createIngredient(t, db, "мука пшеничная", "г")
	sugar := createIngredient(t, db, "сахар", "г")

	recipes := NewRecipeRepository(db)
	r1 := createRecipe(t, db, recipes, user.ID, "r1", []domain.RecipeIngredient{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: sugar.ID, Amount: 50},
	}, []int64{tag.ID})
	r2 := createRecipe(t, db, recipes, user.ID, "r2", []domain.RecipeIngredient{
		{IngredientID: flour.ID, Amount: 150},
	}, []int64{tag.ID})

	carts := NewCartRepository(db)
	_, err := carts.Add(ctx, user.ID, r1.ID)
	require.NoError(t, err)
	_, err = carts.Add(ctx, user.ID, r2.ID)
	require.NoError(t, err)

	items, err := carts.ShoppingList(ctx, user.ID)
	require.NoError(t, err)

	// мука из двух рецептов складывается в одну строку,
	// порядок — по имени ингредиента
	require.Len(t, items, 2)
	assert.Equal(t, "мука пшеничная", items[0].Name)
	assert.Equal(t, int64(350), items[0].TotalAmount)
	assert.Equal(t, "сахар", items[1].Name)
	assert.Equal(t, int64(50), items[1].TotalAmount)
}

func TestCartRepository_ShoppingListEmpty(t *testing.T) {
	db := setupDB(t)

	user := createUser(t, db, "empty")
	carts := NewCartRepository(db)

	items, err := carts.ShoppingList(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFavoriteRepository_ToggleSemantics(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	user := createUser(t, db, "fan")
	author := createUser(t, db, "author")
	tag := createTag(t, db, "Ужин", "dinner")
	ing := createIngredient(t, db, "соль", "г")

	recipes := NewRecipeRepository(db)
	rec := createRecipe(t, db, recipes, author.ID, "r", []domain.RecipeIngredient{
		{IngredientID: ing.ID, Amount: 10},
	}, []int64{tag.ID})

	favorites := NewFavoriteRepository(db)

	// удаление несуществующей связки
	err := favorites.Remove(ctx, user.ID, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = favorites.Add(ctx, user.ID, rec.ID)
	require.NoError(t, err)

	exists, err := favorites.Exists(ctx, user.ID, rec.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// повторное добавление — конфликт
	_, err = favorites.Add(ctx, user.ID, rec.ID)
	assert.ErrorIs(t, err, ErrDuplicatePair)

	require.NoError(t, favorites.Remove(ctx, user.ID, rec.ID))

	exists, err = favorites.Exists(ctx, user.ID, rec.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFollowRepository_ListAuthors(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	reader := createUser(t, db, "reader")
	first := createUser(t, db, "first")
	second := createUser(t, db, "second")
	stranger := createUser(t, db, "stranger")

	follows := NewFollowRepository(db)
	_, err := follows.Add(ctx, reader.ID, first.ID)
	require.NoError(t, err)
	_, err = follows.Add(ctx, reader.ID, second.ID)
	require.NoError(t, err)

	authors, total, err := follows.ListAuthors(ctx, reader.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, authors, 2)

	usernames := []string{authors[0].Username, authors[1].Username}
	assert.Contains(t, usernames, "first")
	assert.Contains(t, usernames, "second")
	assert.NotContains(t, usernames, stranger.Username)

	// повторная подписка на того же автора — конфликт
	_, err = follows.Add(ctx, reader.ID, first.ID)
	assert.ErrorIs(t, err, ErrDuplicatePair)
}

func TestRecipeRepository_ListByTagSlugs(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	author := createUser(t, db, "author")
	breakfast := createTag(t, db, "Завтрак", "breakfast")
	dinner := createTag(t, db, "Ужин", "dinner")
	ing := createIngredient(t, db, "яйцо куриное", "шт")

	recipes := NewRecipeRepository(db)
	rows := func() []domain.RecipeIngredient {
		return []domain.RecipeIngredient{{IngredientID: ing.ID, Amount: 1}}
	}
	rBreakfast := createRecipe(t, db, recipes, author.ID, "omelette", rows(), []int64{breakfast.ID})
	rDinner := createRecipe(t, db, recipes, author.ID, "steak", rows(), []int64{dinner.ID})
	rBoth := createRecipe(t, db, recipes, author.ID, "universal", rows(), []int64{breakfast.ID, dinner.ID})

	found, total, err := recipes.List(ctx, RecipeFilter{TagSlugs: []string{"breakfast"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	ids := recipeIDs(found)
	assert.Contains(t, ids, rBreakfast.ID)
	assert.Contains(t, ids, rBoth.ID)
	assert.NotContains(t, ids, rDinner.ID)

	// OR по слагам; рецепт с двумя тегами не дублируется
	found, total, err = recipes.List(ctx, RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, found, 3)
}

func TestRecipeRepository_ListByTagSlugsOrdered(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	author := createUser(t, db, "author")
	morning := createTag(t, db, "Завтрак", "breakfast")
	evening := createTag(t, db, "Ужин", "dinner")
	ing := createIngredient(t, db, "молоко", "мл")

	recipes := NewRecipeRepository(db)
	var created []int64
	for i := 0; i < 4; i++ {
		rec := createRecipe(t, db, recipes, author.ID, fmt.Sprintf("r%d", i), []domain.RecipeIngredient{
			{IngredientID: ing.ID, Amount: 100},
		}, []int64{morning.ID, evening.ID})
		created = append(created, rec.ID)
	}

	// фильтр по тегу сохраняет порядок "новые первыми" и с лимитом,
	// и без него; рецепт с двумя подходящими тегами входит один раз
	found, total, err := recipes.List(ctx, RecipeFilter{
		TagSlugs: []string{"breakfast", "dinner"},
		Limit:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, found, 3)
	assert.Equal(t, created[3], found[0].ID)
	assert.Equal(t, created[2], found[1].ID)
	assert.Equal(t, created[1], found[2].ID)
}

func TestRecipeRepository_UpdateReplacesAssociations(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	author := createUser(t, db, "author")
	tagX := createTag(t, db, "X", "x")
	tagY := createTag(t, db, "Y", "y")
	tagZ := createTag(t, db, "Z", "z")
	flour := createIngredient(t, db, "мука пшеничная", "г")
	sugar := createIngredient(t, db, "сахар", "г")

	recipes := NewRecipeRepository(db)
	rec := createRecipe(t, db, recipes, author.ID, "cake", []domain.RecipeIngredient{
		{IngredientID: flour.ID, Amount: 200},
		{IngredientID: sugar.ID, Amount: 100},
	}, []int64{tagX.ID, tagY.ID})

	updated := &domain.Recipe{
		ID:          rec.ID,
		AuthorID:    author.ID,
		Name:        "better cake",
		Image:       rec.Image,
		Text:        "new text",
		CookingTime: 45,
	}
	err := recipes.Update(ctx, updated, []domain.RecipeIngredient{
		{IngredientID: sugar.ID, Amount: 500},
	}, []int64{tagZ.ID})
	require.NoError(t, err)

	got, err := recipes.GetByID(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, "better cake", got.Name)
	assert.Equal(t, 45, got.CookingTime)

	// наборы заменяются целиком, без слияния со старыми
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "z", got.Tags[0].Slug)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, sugar.ID, got.Ingredients[0].IngredientID)
	assert.Equal(t, 500, got.Ingredients[0].Amount)
}

func TestRecipeRepository_DeleteCleansRelations(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	author := createUser(t, db, "author")
	fan := createUser(t, db, "fan")
	tag := createTag(t, db, "Обед", "lunch")
	ing := createIngredient(t, db, "картофель", "г")

	recipes := NewRecipeRepository(db)
	rec := createRecipe(t, db, recipes, author.ID, "soup", []domain.RecipeIngredient{
		{IngredientID: ing.ID, Amount: 300},
	}, []int64{tag.ID})

	favorites := NewFavoriteRepository(db)
	carts := NewCartRepository(db)
	_, err := favorites.Add(ctx, fan.ID, rec.ID)
	require.NoError(t, err)
	_, err = carts.Add(ctx, fan.ID, rec.ID)
	require.NoError(t, err)

	require.NoError(t, recipes.Delete(ctx, rec.ID))

	_, err = recipes.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.Favorite{}).Where("recipe_id = ?", rec.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&domain.RecipeIngredient{}).Where("recipe_id = ?", rec.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecipeRepository_ListPagination(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	author := createUser(t, db, "author")
	tag := createTag(t, db, "Завтрак", "breakfast")
	ing := createIngredient(t, db, "молоко", "мл")

	recipes := NewRecipeRepository(db)
	for i := 0; i < 8; i++ {
		createRecipe(t, db, recipes, author.ID, fmt.Sprintf("r%d", i), []domain.RecipeIngredient{
			{IngredientID: ing.ID, Amount: 100},
		}, []int64{tag.ID})
	}

	page1, total, err := recipes.List(ctx, RecipeFilter{Limit: 6, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, page1, 6)

	page2, _, err := recipes.List(ctx, RecipeFilter{Limit: 6, Offset: 6})
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestIngredientRepository_Search(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	createIngredient(t, db, "мука пшеничная", "г")
	createIngredient(t, db, "мука ржаная", "г")
	createIngredient(t, db, "сахар", "г")

	ingredients := NewIngredientRepository(db)

	found, err := ingredients.Search(ctx, "мука")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "мука пшеничная", found[0].Name)

	all, err := ingredients.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func recipeIDs(recipes []domain.Recipe) []int64 {
	ids := make([]int64, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	return ids
}
