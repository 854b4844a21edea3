package configs

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/theoMich19/delivecrous/entity"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account once.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Administrateur",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads the public catalog on an empty database.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []entity.Restaurant{
		{Name: "RU Paul Appell", City: "Strasbourg", Rating: 4.2, TimeEstimate: "20-30 min",
			Tags: []string{"Cuisine française", "Plats du jour"}, ImageURL: "https://images.delivecrous.fr/ru-paul-appell.jpg"},
		{Name: "Crous Pizza République", City: "Paris", Rating: 4.5, TimeEstimate: "15-25 min",
			Tags: []string{"Pizza", "Italien"}, ImageURL: "https://images.delivecrous.fr/pizza-republique.jpg"},
		{Name: "Cafétéria Les Tanneurs", City: "Tours", Rating: 3.9, TimeEstimate: "25-35 min",
			Tags: []string{"Sandwichs", "Salades"}, ImageURL: "https://images.delivecrous.fr/les-tanneurs.jpg"},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	meals := []entity.Meal{
		{Name: "Poulet basquaise", Description: "Riz, poivrons, sauce tomate", PriceCents: 330,
			CategoryIDs: []string{"plats"}, RestaurantID: restaurants[0].ID,
			ImageURL: "https://images.delivecrous.fr/poulet-basquaise.jpg"},
		{Name: "Gratin dauphinois", Description: "Pommes de terre, crème", PriceCents: 295,
			CategoryIDs: []string{"plats", "vegetarien"}, RestaurantID: restaurants[0].ID,
			ImageURL: "https://images.delivecrous.fr/gratin.jpg"},
		{Name: "Pizza margherita", Description: "Tomate, mozzarella, basilic", PriceCents: 650,
			CategoryIDs: []string{"pizzas", "vegetarien"}, RestaurantID: restaurants[1].ID,
			ImageURL: "https://images.delivecrous.fr/margherita.jpg"},
		{Name: "Pizza regina", Description: "Jambon, champignons", PriceCents: 750,
			CategoryIDs: []string{"pizzas"}, RestaurantID: restaurants[1].ID,
			ImageURL: "https://images.delivecrous.fr/regina.jpg"},
		{Name: "Sandwich thon crudités", Description: "Pain baguette, thon, crudités", PriceCents: 280,
			CategoryIDs: []string{"sandwichs"}, RestaurantID: restaurants[2].ID,
			ImageURL: "https://images.delivecrous.fr/sandwich-thon.jpg"},
	}
	if err := db.Create(&meals).Error; err != nil {
		return err
	}

	news := []entity.NewsItem{
		{Title: "Repas à 1€ prolongé", Content: "Le repas à 1€ pour les étudiants boursiers est prolongé ce semestre.", Date: "2025-09-01"},
		{Title: "Nouveau RU partenaire", Content: "La cafétéria Les Tanneurs rejoint DeliveCROUS à Tours.", Date: "2025-09-15"},
	}
	return db.Create(&news).Error
}
