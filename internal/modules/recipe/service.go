package recipe

import (
	"context"
	"errors"

	"foodgram/internal/domain"
	"foodgram/internal/modules/user"
	"foodgram/internal/repository"

	"gorm.io/gorm"
)

// Service содержит бизнес-логику рецептов: валидацию до записи,
// авторские права на изменение и сборку viewer-зависимого представления.
type Service struct {
	recipes     repository.RecipeRepository
	tags        repository.TagRepository
	ingredients repository.IngredientRepository
	favorites   repository.FavoriteRepository
	carts       repository.CartRepository
	follows     repository.FollowRepository

	mediaDir string
	pageSize int
}

func NewService(
	recipes repository.RecipeRepository,
	tags repository.TagRepository,
	ingredients repository.IngredientRepository,
	favorites repository.FavoriteRepository,
	carts repository.CartRepository,
	follows repository.FollowRepository,
	mediaDir string,
	pageSize int,
) *Service {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &Service{
		recipes:     recipes,
		tags:        tags,
		ingredients: ingredients,
		favorites:   favorites,
		carts:       carts,
		follows:     follows,
		mediaDir:    mediaDir,
		pageSize:    pageSize,
	}
}

// validateWrite проверяет тело запроса целиком до каких-либо записей:
// при ошибке в БД не попадает ни рецепт, ни его связки.
func (s *Service) validateWrite(ctx context.Context, req WriteRequest) error {
	if req.CookingTime < 1 {
		return validationErr("cooking_time", "cooking time must be at least 1 minute")
	}

	if len(req.Ingredients) == 0 {
		return validationErr("ingredients", "add at least one ingredient")
	}
	seenIngredients := make(map[int64]struct{}, len(req.Ingredients))
	ids := make([]int64, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		if _, dup := seenIngredients[item.ID]; dup {
			return validationErr("ingredients", "ingredient already added")
		}
		seenIngredients[item.ID] = struct{}{}
		if item.Amount < 1 {
			return validationErr("amount", "amount must be at least 1")
		}
		ids = append(ids, item.ID)
	}
	found, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return validationErr("ingredients", "unknown ingredient")
	}

	if len(req.Tags) == 0 {
		return validationErr("tags", "add at least one tag")
	}
	seenTags := make(map[int64]struct{}, len(req.Tags))
	for _, id := range req.Tags {
		if _, dup := seenTags[id]; dup {
			return validationErr("tags", "tag already added")
		}
		seenTags[id] = struct{}{}
	}
	foundTags, err := s.tags.GetByIDs(ctx, req.Tags)
	if err != nil {
		return err
	}
	if len(foundTags) != len(req.Tags) {
		return validationErr("tags", "unknown tag")
	}

	return nil
}

func (s *Service) Create(ctx context.Context, authorID int64, req WriteRequest) (*Response, error) {
	if err := s.validateWrite(ctx, req); err != nil {
		return nil, err
	}
	if req.Image == "" {
		return nil, validationErr("image", "image is required")
	}
	imagePath, err := saveImage(s.mediaDir, req.Image)
	if err != nil {
		return nil, err
	}

	rec := &domain.Recipe{
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.recipes.Create(ctx, rec, toIngredientRows(req.Ingredients), req.Tags); err != nil {
		removeImage(s.mediaDir, imagePath)
		return nil, err
	}
	return s.Get(ctx, rec.ID, authorID)
}

func (s *Service) Update(ctx context.Context, recipeID, editorID int64, req WriteRequest) (*Response, error) {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if existing.AuthorID != editorID {
		return nil, ErrNotAuthor
	}

	if err := s.validateWrite(ctx, req); err != nil {
		return nil, err
	}

	imagePath := existing.Image
	if req.Image != "" {
		imagePath, err = saveImage(s.mediaDir, req.Image)
		if err != nil {
			return nil, err
		}
	}

	rec := &domain.Recipe{
		ID:          recipeID,
		AuthorID:    existing.AuthorID,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.recipes.Update(ctx, rec, toIngredientRows(req.Ingredients), req.Tags); err != nil {
		if req.Image != "" {
			removeImage(s.mediaDir, imagePath)
		}
		return nil, err
	}
	return s.Get(ctx, recipeID, editorID)
}

func (s *Service) Delete(ctx context.Context, recipeID, editorID int64) error {
	existing, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if existing.AuthorID != editorID {
		return ErrNotAuthor
	}
	return s.recipes.Delete(ctx, recipeID)
}

// Get возвращает карточку рецепта для конкретного зрителя
// (viewerID == 0 для анонима).
func (s *Service) Get(ctx context.Context, recipeID, viewerID int64) (*Response, error) {
	rec, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	resp, err := s.present(ctx, rec, viewerID)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter, viewerID int64) (*ListResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = s.pageSize
	}

	repoFilter := repository.RecipeFilter{
		AuthorID: filter.Author,
		TagSlugs: filter.Tags,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	// Для анонима флаги is_favorited / is_in_shopping_cart
	// ничего не фильтруют.
	if viewerID != 0 {
		if filter.IsFavorited {
			repoFilter.FavoritedBy = viewerID
		}
		if filter.IsInShoppingCart {
			repoFilter.InCartOf = viewerID
		}
	}

	recipes, total, err := s.recipes.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	items := make([]Response, len(recipes))
	for i := range recipes {
		items[i], err = s.present(ctx, &recipes[i], viewerID)
		if err != nil {
			return nil, err
		}
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return &ListResponse{
		Recipes:    items,
		Total:      total,
		Page:       page,
		PerPage:    limit,
		TotalPages: totalPages,
	}, nil
}

// present собирает представление рецепта для зрителя. Поля
// is_favorited / is_in_shopping_cart и is_subscribed автора считаются
// заново на каждый вызов.
func (s *Service) present(ctx context.Context, rec *domain.Recipe, viewerID int64) (Response, error) {
	ingredients := make([]IngredientInRecipe, len(rec.Ingredients))
	for i, row := range rec.Ingredients {
		item := IngredientInRecipe{
			ID:     row.IngredientID,
			Amount: row.Amount,
		}
		if row.Ingredient != nil {
			item.Name = row.Ingredient.Name
			item.MeasurementUnit = row.Ingredient.MeasurementUnit
		}
		ingredients[i] = item
	}

	var isFavorited, isInCart, isSubscribed bool
	if viewerID != 0 {
		var err error
		if isFavorited, err = s.favorites.Exists(ctx, viewerID, rec.ID); err != nil {
			return Response{}, err
		}
		if isInCart, err = s.carts.Exists(ctx, viewerID, rec.ID); err != nil {
			return Response{}, err
		}
		if viewerID != rec.AuthorID {
			if isSubscribed, err = s.follows.Exists(ctx, viewerID, rec.AuthorID); err != nil {
				return Response{}, err
			}
		}
	}

	author := user.Response{ID: rec.AuthorID, IsSubscribed: isSubscribed}
	if rec.Author != nil {
		author = user.ToResponse(rec.Author, isSubscribed)
	}

	tags := rec.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}

	return Response{
		ID:               rec.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		Name:             rec.Name,
		Image:            rec.Image,
		Text:             rec.Text,
		CookingTime:      rec.CookingTime,
	}, nil
}

func toIngredientRows(items []IngredientAmount) []domain.RecipeIngredient {
	rows := make([]domain.RecipeIngredient, len(items))
	for i, item := range items {
		rows[i] = domain.RecipeIngredient{
			IngredientID: item.ID,
			Amount:       item.Amount,
		}
	}
	return rows
}
