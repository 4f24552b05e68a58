package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency injection.
type Repositories struct {
	UserRepository    *UserRepository
	ProfileRepository *ProfileRepository
	EventRepository   *EventRepository
	RSVPRepository    *RSVPRepository
	ReviewRepository  *ReviewRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db),
		ProfileRepository: NewProfileRepository(db),
		EventRepository:   NewEventRepository(db),
		RSVPRepository:    NewRSVPRepository(db),
		ReviewRepository:  NewReviewRepository(db),
	}
}
