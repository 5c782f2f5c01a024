package models

import (
	"log/slog"
	"sync"

	"bodaplanner-backend/utils"
)

// User accounts are a fixed seed list, never persisted to the database.
type User struct {
	ID       string
	Email    string
	Password string // bcrypt hash
	Role     string // "planner", "novia" or "guest"
	FullName string
}

// UserStore is the process-wide account list, injected into the handlers
// that need it instead of living as an ambient global.
type UserStore struct {
	mu    sync.RWMutex
	users []User
}

func NewUserStore(users []User) *UserStore {
	return &UserStore{users: users}
}

// FindByEmail returns the user with the given email, if any.
func (s *UserStore) FindByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

type seedUser struct {
	id, email, password, role, fullName string
}

var seedUsers = []seedUser{
	{"planner_andrea", "planner@andreafigueroa.com", "plannercustommer_123", "planner", "Andrea Figueroa"},
	{"novia_erika", "earrobalopez@gmail.com", "Gabi9090", "novia", "Erika Arroba"},
	{"novia_maria", "maria.gonzalez@boda.com", "mariaBoda2026", "novia", "María González"},
	{"novia_isabella", "isabella.rojas@future.com", "isaYjuan2025", "novia", "Isabella Rojas"},
	{"novia_carla", "carla.ruiz@wedding.com", "ruizBoda99", "novia", "Carla Ruiz"},
	{"novia_sofia", "sofia.martinez@email.com", "sofiaLove23", "novia", "Sofía Martínez"},
	{"novia_valentina", "valentina.lopez@dream.com", "valeDiosa", "novia", "Valentina López"},
	{"novia_lucia", "lucia.fer@mail.com", "lucil120", "novia", "Lucía Fer"},
}

// SeedUserStore builds the static account list, hashing the seed
// passwords so only bcrypt hashes are held in memory.
func SeedUserStore() *UserStore {
	users := make([]User, 0, len(seedUsers))
	for _, s := range seedUsers {
		hash, err := utils.HashPassword(s.password)
		if err != nil {
			slog.Error("Failed to hash seed password", "user", s.id, "error", err)
			continue
		}
		users = append(users, User{
			ID:       s.id,
			Email:    s.email,
			Password: hash,
			Role:     s.role,
			FullName: s.fullName,
		})
	}
	return NewUserStore(users)
}
