package repository

import (
	"log"

	"lumina_site/internal/common/security"
	"lumina_site/internal/domain/model"
)

// DemoUsers returns the three built-in demo accounts. Passwords
// (admin123, user123, demo123) are hashed at startup so the login path is
// identical for seeded and registered users.
func DemoUsers() []*model.User {
	accounts := []struct {
		id, name, email, password, role string
	}{
		{"1", "Admin User", "admin@example.com", "admin123", model.RoleAdmin},
		{"2", "Regular User", "user@example.com", "user123", model.RoleUser},
		{"3", "Demo User", "demo@example.com", "demo123", model.RoleAdmin},
	}

	users := make([]*model.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := security.HashPassword(a.password)
		if err != nil {
			log.Fatalf("hashing demo password: %v", err)
		}
		users = append(users, &model.User{
			ID:             a.id,
			Name:           a.name,
			Email:          a.email,
			HashedPassword: hash,
			Role:           a.role,
		})
	}
	return users
}
