package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/saradorri/gameplatform/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository) *Seeder {
	return &Seeder{
		userRepo: userRepo,
	}
}

// SeedUsers seeds the database with demo players, synthetic opponents
// and the platform commission account.
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	hash := sha256.Sum256([]byte("password123"))
	passwordHash := hex.EncodeToString(hash[:])

	users := []struct {
		id       string
		username string
		role     domain.UserRole
		balance  domain.Money
	}{
		{domain.PlatformAccountID, "platform", domain.RoleAdmin, 0},
		{"admin", "admin", domain.RoleAdmin, 0},
		{"alice", "alice", domain.RoleMember, domain.MoneyFromFloat(1000)},
		{"bob", "bob", domain.RoleMember, domain.MoneyFromFloat(1000)},
		{"carol", "carol", domain.RoleMember, domain.MoneyFromFloat(1000)},
		{"dave", "dave", domain.RoleMember, domain.MoneyFromFloat(500)},
		{domain.AIUserPrefix + "rex", "ai_rex", domain.RoleMember, domain.MoneyFromFloat(100000)},
		{domain.AIUserPrefix + "dot", "ai_dot", domain.RoleMember, domain.MoneyFromFloat(100000)},
		{domain.AIUserPrefix + "max", "ai_max", domain.RoleMember, domain.MoneyFromFloat(100000)},
	}

	for _, u := range users {
		existingUser, err := s.userRepo.GetByID(u.id)
		if err != nil {
			log.Printf("Error checking existing user %s, skipping: %v", u.username, err)
			continue
		}

		if existingUser != nil {
			log.Printf("User %s already exists, skipping", u.username)
			continue
		}

		user := &domain.User{
			ID:       u.id,
			Username: u.username,
			Password: passwordHash,
			Role:     u.role,
			Balance:  u.balance,
		}

		if err := s.userRepo.Create(user); err != nil {
			log.Printf("Error creating user %s", u.username)
			return err
		}
		log.Printf("Created user %s", u.username)
	}

	log.Printf("User seeding completed successfully")
	return nil
}
