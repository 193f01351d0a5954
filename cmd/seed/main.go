package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leadflow.backend/internal/config"
	"leadflow.backend/internal/domain/entities"
	"leadflow.backend/internal/infrastructure/models"
	"leadflow.backend/internal/infrastructure/repositories"
	"leadflow.backend/pkg/crypto"
)

var firstNames = []string{
	"Ada", "Bob", "Carol", "David", "Elena", "Frank", "Grace", "Hugo",
	"Irene", "James", "Karen", "Liam", "Maria", "Nathan", "Olivia", "Peter",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Martinez", "Lopez", "Wilson", "Anderson", "Taylor", "Thomas",
}

var companies = []string{
	"Initech", "ACME Corp", "Globex", "Umbrella", "Stark Industries",
	"Wayne Enterprises", "Hooli", "Pied Piper", "Vandelay Industries", "Soylent",
}

var sources = []string{
	"Website", "Referral", "Cold Call", "LinkedIn", "Trade Show", "Email Campaign",
}

var locations = []struct {
	country string
	city    string
}{
	{"USA", "Austin"}, {"USA", "Boston"}, {"USA", "Seattle"},
	{"UK", "London"}, {"UK", "Manchester"},
	{"Germany", "Berlin"}, {"France", "Paris"},
	{"Canada", "Toronto"}, {"Australia", "Sydney"}, {"Japan", "Tokyo"},
}

var positions = []string{
	"CEO", "CTO", "VP Sales", "Head of Marketing", "Product Manager",
	"Engineering Manager", "Procurement Lead",
}

var notePool = []string{
	"Asked for a follow-up call next quarter.",
	"Interested in the enterprise tier.",
	"Met at the annual trade show.",
	"Budget approval pending.",
	"Prefers email over phone.",
}

// statusFor keeps status consistent with terminal pipeline stages.
func statusFor(rng *rand.Rand, stage entities.Stage) entities.LeadStatus {
	switch stage {
	case entities.StageClosedWon:
		return entities.StatusConverted
	case entities.StageClosedLost:
		return entities.StatusRejected
	default:
		if rng.Intn(5) == 0 {
			return entities.StatusInactive
		}
		return entities.StatusActive
	}
}

func randomLead(rng *rand.Rand, n int) *entities.Lead {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]
	company := companies[rng.Intn(len(companies))]
	loc := locations[rng.Intn(len(locations))]
	stages := entities.Stages()
	stage := stages[rng.Intn(len(stages))]

	domain := strings.ToLower(strings.Fields(company)[0]) + ".example.com"
	lead := &entities.Lead{
		Email:     fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), n, domain),
		FirstName: first,
		LastName:  last,
		Phone:     fmt.Sprintf("+1-555-%04d", rng.Intn(10000)),
		Company:   company,
		Position:  positions[rng.Intn(len(positions))],
		Stage:     stage,
		Status:    statusFor(rng, stage),
		Source:    sources[rng.Intn(len(sources))],
		Value:     float64(rng.Intn(49001) + 1000),
		Country:   loc.country,
		City:      loc.city,
	}
	if rng.Intn(2) == 0 {
		lead.Notes = null.StringFrom(notePool[rng.Intn(len(notePool))])
	}
	return lead
}

func main() {
	count := flag.Int("count", 50, "number of leads to generate")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	userEmail := flag.String("user-email", "demo@leadflow.dev", "demo account email")
	userPassword := flag.String("user-password", "Password123!", "demo account password")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	var dialector gorm.Dialector
	if cfg.Database.Driver == "sqlite" {
		dialector = sqlite.Open(cfg.Database.Path)
	} else {
		dialector = postgres.Open(cfg.Database.URL())
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Lead{}); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	if err := seedDemoUser(ctx, db, *userEmail, *userPassword); err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}

	inserted, err := seedLeads(ctx, db, *count, *seed)
	if err != nil {
		log.Fatalf("failed to seed leads: %v", err)
	}

	fmt.Printf("Seed complete: %d leads inserted\n", inserted)
	fmt.Printf("Demo account: %s / %s\n", *userEmail, *userPassword)
}

func seedDemoUser(ctx context.Context, db *gorm.DB, email, password string) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Printf("demo user %s already present, skipping", email)
		return nil
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	userRepo := repositories.NewUserRepository(db)
	return userRepo.Create(ctx, &entities.User{
		Email:        email,
		Name:         "Demo User",
		PasswordHash: hash,
	})
}

func seedLeads(ctx context.Context, db *gorm.DB, count int, seed int64) (int, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.Lead{}).Count(&existing).Error; err != nil {
		return 0, err
	}
	if existing > 0 {
		log.Printf("collection already holds %d leads, skipping", existing)
		return 0, nil
	}

	rng := rand.New(rand.NewSource(seed))
	leadRepo := repositories.NewLeadRepository(db)

	inserted := 0
	for i := 0; i < count; i++ {
		if err := leadRepo.Create(ctx, randomLead(rng, i)); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
