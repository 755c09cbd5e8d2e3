// Seeds a development database: a starter menu and, with -admin-email, an
// immediately promoted staff account.
package main

import (
	"flag"
	"fmt"
	"log"

	"skyhi-pos/internal/auth"
	"skyhi-pos/internal/model"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	dbPath := flag.String("db", "skyhi_pos.db", "sqlite database path")
	adminEmail := flag.String("admin-email", "", "existing account to promote to admin")
	skipMenu := flag.Bool("skip-menu", false, "do not insert the starter menu")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.MenuItem{}, &model.Order{}, &model.OrderItem{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	if !*skipMenu {
		if err := seedMenu(db); err != nil {
			log.Fatalf("seed menu: %v", err)
		}
	}

	if *adminEmail != "" {
		if err := promote(db, *adminEmail); err != nil {
			log.Fatalf("promote: %v", err)
		}
	}
}

func seedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("menu already seeded, skipping")
		return nil
	}

	items := []model.MenuItem{
		{Name: "Spring Rolls", Category: model.CategoryAppetizers, PriceCents: 650, CostCents: 220, Emoji: "🥟"},
		{Name: "Garlic Bread", Category: model.CategoryAppetizers, PriceCents: 450, CostCents: 120, Emoji: "🍞"},
		{Name: "Grilled Salmon", Category: model.CategoryMainCourse, PriceCents: 1850, CostCents: 900, Emoji: "🐟"},
		{Name: "Ribeye Steak", Category: model.CategoryMainCourse, PriceCents: 2400, CostCents: 1250, Emoji: "🥩"},
		{Name: "Margherita Pizza", Category: model.CategoryMainCourse, PriceCents: 1200, CostCents: 400, Emoji: "🍕"},
		{Name: "Caesar Salad", Category: model.CategorySalads, PriceCents: 950, CostCents: 300, Emoji: "🥗"},
		{Name: "Tiramisu", Category: model.CategoryDesserts, PriceCents: 700, CostCents: 250, Emoji: "🍰"},
		{Name: "Fresh Lemonade", Category: model.CategoryBeverages, PriceCents: 400, CostCents: 80, Emoji: "🍋"},
		{Name: "Espresso", Category: model.CategoryBeverages, PriceCents: 300, CostCents: 50, Emoji: "☕"},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	fmt.Printf("seeded %d menu items\n", len(items))
	return nil
}

func promote(db *gorm.DB, email string) error {
	email = auth.NormalizeEmail(email)
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("account %s: %w", email, err)
	}
	if user.Role == model.RoleAdmin {
		fmt.Printf("%s is already an admin\n", email)
		return nil
	}
	user.Role = model.RoleAdmin
	if err := db.Save(&user).Error; err != nil {
		return err
	}
	fmt.Printf("%s promoted to admin\n", email)
	return nil
}
