package main

import (
	"fmt"
	"log"
	"os"

	"foodgram/internal/database"
	"foodgram/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "foodgram.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Tag{},
		&domain.Ingredient{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.Favorite{},
		&domain.ShoppingCart{},
		&domain.Follow{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM follows")
	db.Exec("DELETE FROM shopping_carts")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM recipe_tags")
	db.Exec("DELETE FROM recipe_ingredients")
	db.Exec("DELETE FROM recipes")
	db.Exec("DELETE FROM ingredients")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := []domain.User{}
	names := [][2]string{
		{"Анна", "Смирнова"},
		{"Борис", "Иванов"},
		{"Вера", "Кузнецова"},
	}
	for i, n := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo12345"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        fmt.Sprintf("user%d@foodgram.local", i+1),
			Username:     fmt.Sprintf("user%d", i+1),
			FirstName:    n[0],
			LastName:     n[1],
			PasswordHash: string(hash),
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User created: %s / demo12345", u.Email)
	}

	// ================== TAGS ==================
	log.Println("Creating tags...")
	tags := []domain.Tag{
		{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
		{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
		{Name: "Ужин", Color: "#8775D2", Slug: "dinner"},
	}
	for i := range tags {
		db.Create(&tags[i])
	}

	// ================== INGREDIENTS ==================
	log.Println("Creating ingredients...")
	ingredients := []domain.Ingredient{
		{Name: "мука пшеничная", MeasurementUnit: "г"},
		{Name: "сахар", MeasurementUnit: "г"},
		{Name: "соль", MeasurementUnit: "г"},
		{Name: "яйцо куриное", MeasurementUnit: "шт"},
		{Name: "молоко", MeasurementUnit: "мл"},
		{Name: "масло сливочное", MeasurementUnit: "г"},
		{Name: "картофель", MeasurementUnit: "г"},
		{Name: "лук репчатый", MeasurementUnit: "шт"},
		{Name: "морковь", MeasurementUnit: "шт"},
		{Name: "говядина", MeasurementUnit: "г"},
	}
	for i := range ingredients {
		db.Create(&ingredients[i])
	}

	// ================== RECIPES ==================
	log.Println("Creating recipes...")

	pancakes := domain.Recipe{
		AuthorID:    users[0].ID,
		Name:        "Блины на молоке",
		Image:       "/media/recipes/seed_pancakes.jpg",
		Text:        "Смешать муку, яйца и молоко, жарить на разогретой сковороде с двух сторон.",
		CookingTime: 30,
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: ingredients[0].ID, Amount: 200},
			{IngredientID: ingredients[3].ID, Amount: 2},
			{IngredientID: ingredients[4].ID, Amount: 500},
			{IngredientID: ingredients[1].ID, Amount: 30},
		},
	}
	db.Create(&pancakes)
	db.Model(&pancakes).Association("Tags").Append(&tags[0])

	soup := domain.Recipe{
		AuthorID:    users[1].ID,
		Name:        "Суп с говядиной",
		Image:       "/media/recipes/seed_soup.jpg",
		Text:        "Сварить бульон, добавить картофель, лук и морковь, посолить по вкусу.",
		CookingTime: 90,
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: ingredients[9].ID, Amount: 400},
			{IngredientID: ingredients[6].ID, Amount: 300},
			{IngredientID: ingredients[7].ID, Amount: 1},
			{IngredientID: ingredients[8].ID, Amount: 1},
			{IngredientID: ingredients[2].ID, Amount: 10},
		},
	}
	db.Create(&soup)
	db.Model(&soup).Association("Tags").Append(&tags[1], &tags[2])

	// ================== RELATIONS ==================
	log.Println("Creating follows, favorites and cart entries...")
	db.Create(&domain.Follow{UserID: users[2].ID, AuthorID: users[0].ID})
	db.Create(&domain.Follow{UserID: users[2].ID, AuthorID: users[1].ID})
	db.Create(&domain.Favorite{UserID: users[2].ID, RecipeID: pancakes.ID})
	db.Create(&domain.ShoppingCart{UserID: users[2].ID, RecipeID: soup.ID})

	log.Println("Seed complete.")
}
