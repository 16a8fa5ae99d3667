package main

import (
	"flag"
	"fmt"
	"log"

	"club-management-platform/internal/config"
	"club-management-platform/internal/database"
	"club-management-platform/internal/models"
	"club-management-platform/internal/repositories"
	"club-management-platform/internal/utils"
)

func main() {
	var (
		email     = flag.String("email", "admin@club.example", "Admin email address")
		password  = flag.String("password", "", "Admin password (required)")
		firstName = flag.String("first-name", "Club", "Admin first name")
		lastName  = flag.String("last-name", "Admin", "Admin last name")
	)
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db.DB)

	if existing, err := userRepo.GetByEmail(*email); err == nil {
		fmt.Printf("Admin user already exists with ID: %d\n", existing.ID)
		return
	}

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin, err := userRepo.Create(&models.UserCreateRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.RoleAdmin,
	}, passwordHash)
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	fmt.Printf("Admin user created with ID: %d\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
}
