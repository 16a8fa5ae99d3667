package main

import (
	"log"
	"time"

	"club-management-platform/internal/config"
	"club-management-platform/internal/database"
	"club-management-platform/internal/models"
	"club-management-platform/internal/repositories"
)

func main() {
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

	productRepo := repositories.NewProductRepository(db.DB)
	matchRepo := repositories.NewMatchRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)

	products := []*models.Product{
		{ID: "P1", Name: "Home Shirt 2026/27", Category: "apparel", Price: 6500, Stock: 150},
		{ID: "P2", Name: "Away Shirt 2026/27", Category: "apparel", Price: 6500, Stock: 120},
		{ID: "P3", Name: "Club Scarf", Category: "accessories", Price: 1800, Stock: 300},
		{ID: "P4", Name: "Training Jacket", Category: "apparel", Price: 8900, Stock: 60},
		{ID: "P5", Name: "Supporter Mug", Category: "accessories", Price: 1200, Stock: 500},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Printf("Skipping product %s: %v", p.ID, err)
			continue
		}
		log.Printf("Seeded product %s (%s)", p.ID, p.Name)
	}

	kickoff := time.Now().AddDate(0, 0, 14).Truncate(time.Hour)
	matches := []*models.Match{
		{ID: "M1", HomeTeam: "Club FC", AwayTeam: "Rivals United", Venue: "Club Stadium", Kickoff: kickoff},
		{ID: "M2", HomeTeam: "Club FC", AwayTeam: "City Rovers", Venue: "Club Stadium", Kickoff: kickoff.AddDate(0, 0, 14)},
	}
	for _, m := range matches {
		if err := matchRepo.Create(m); err != nil {
			log.Printf("Skipping match %s: %v", m.ID, err)
			continue
		}
		log.Printf("Seeded match %s (%s vs %s)", m.ID, m.HomeTeam, m.AwayTeam)
	}

	tickets := []*models.MatchTicket{
		{ID: "T1", MatchID: "M1", SeatCategory: "VIP", Price: 12000, AvailableTickets: 40},
		{ID: "T2", MatchID: "M1", SeatCategory: "Standard", Price: 4500, AvailableTickets: 800},
		{ID: "T3", MatchID: "M1", SeatCategory: "General", Price: 2000, AvailableTickets: 2500},
		{ID: "T4", MatchID: "M2", SeatCategory: "VIP", Price: 12000, AvailableTickets: 40},
		{ID: "T5", MatchID: "M2", SeatCategory: "Standard", Price: 4500, AvailableTickets: 800},
		{ID: "T6", MatchID: "M2", SeatCategory: "General", Price: 2000, AvailableTickets: 2500},
	}
	for _, t := range tickets {
		if err := ticketRepo.Create(t); err != nil {
			log.Printf("Skipping ticket %s: %v", t.ID, err)
			continue
		}
		log.Printf("Seeded ticket %s (%s %s)", t.ID, t.MatchID, t.SeatCategory)
	}

	log.Println("Catalog seeding complete")
}
