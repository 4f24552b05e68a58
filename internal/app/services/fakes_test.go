package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/deniz/eventhub/internal/app/auth"
	"github.com/deniz/eventhub/internal/app/models"
	"github.com/deniz/eventhub/internal/app/repositories"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
)

// In-memory stores backing the service tests. They mirror the repository
// semantics: scope filtering happens inside the store, absent rows surface
// the same sentinel errors, and the rsvp store upserts atomically.

type memEventStore struct {
	nextID int64
	events map[int64]models.Event
}

func newMemEventStore() *memEventStore {
	return &memEventStore{nextID: 1, events: make(map[int64]models.Event)}
}

func (s *memEventStore) visible(e models.Event, scope auth.EventScope) bool {
	return e.IsPublic || e.OrganizerID == scope.ViewerID
}

func (s *memEventStore) List(_ context.Context, scope auth.EventScope, filter repositories.EventFilter, offset uint64, limit int) ([]models.Event, int64, error) {
	var all []models.Event
	for _, e := range s.events {
		if !s.visible(e, scope) {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(e.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (s *memEventStore) GetByID(_ context.Context, scope auth.EventScope, id int64) (*models.Event, error) {
	e, ok := s.events[id]
	if !ok || !s.visible(e, scope) {
		return nil, apperrors.ErrEventNotFound
	}
	event := e
	return &event, nil
}

func (s *memEventStore) Create(_ context.Context, event *models.Event) error {
	event.ID = s.nextID
	s.nextID++
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	s.events[event.ID] = *event
	return nil
}

func (s *memEventStore) Update(_ context.Context, event *models.Event) error {
	if _, ok := s.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	event.UpdatedAt = time.Now()
	s.events[event.ID] = *event
	return nil
}

func (s *memEventStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(s.events, id)
	return nil
}

type rsvpKey struct {
	eventID int64
	userID  int64
}

type memRSVPStore struct {
	nextID int64
	rsvps  map[rsvpKey]models.RSVP
}

func newMemRSVPStore() *memRSVPStore {
	return &memRSVPStore{nextID: 1, rsvps: make(map[rsvpKey]models.RSVP)}
}

func (s *memRSVPStore) Upsert(_ context.Context, eventID, userID int64, status models.RSVPStatus) (*models.RSVP, bool, error) {
	key := rsvpKey{eventID: eventID, userID: userID}
	existing, ok := s.rsvps[key]
	if ok {
		existing.Status = status
		existing.UpdatedAt = time.Now()
		s.rsvps[key] = existing
		rsvp := existing
		return &rsvp, false, nil
	}

	created := models.RSVP{
		ID:        s.nextID,
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.nextID++
	s.rsvps[key] = created
	rsvp := created
	return &rsvp, true, nil
}

func (s *memRSVPStore) GetByEventAndUser(_ context.Context, eventID, userID int64) (*models.RSVP, error) {
	r, ok := s.rsvps[rsvpKey{eventID: eventID, userID: userID}]
	if !ok {
		return nil, nil
	}
	rsvp := r
	return &rsvp, nil
}

func (s *memRSVPStore) ListByUser(_ context.Context, userID int64, offset uint64, limit int) ([]models.RSVP, int64, error) {
	var all []models.RSVP
	for _, r := range s.rsvps {
		if r.UserID == userID {
			all = append(all, r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

type memReviewStore struct {
	nextID  int64
	reviews map[int64]models.Review
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{nextID: 1, reviews: make(map[int64]models.Review)}
}

func (s *memReviewStore) Create(_ context.Context, review *models.Review) error {
	for _, r := range s.reviews {
		if r.EventID == review.EventID && r.UserID == review.UserID {
			return apperrors.ErrReviewExists
		}
	}
	review.ID = s.nextID
	s.nextID++
	review.CreatedAt = time.Now()
	s.reviews[review.ID] = *review
	return nil
}

func (s *memReviewStore) GetByID(_ context.Context, id int64) (*models.Review, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, apperrors.ErrReviewNotFound
	}
	review := r
	return &review, nil
}

func (s *memReviewStore) ExistsByEventAndUser(_ context.Context, eventID, userID int64) (bool, error) {
	for _, r := range s.reviews {
		if r.EventID == eventID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memReviewStore) ListByEvent(_ context.Context, eventID int64, offset uint64, limit int) ([]models.Review, int64, error) {
	var all []models.Review
	for _, r := range s.reviews {
		if r.EventID == eventID {
			all = append(all, r)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (s *memReviewStore) Update(_ context.Context, review *models.Review) error {
	if _, ok := s.reviews[review.ID]; !ok {
		return apperrors.ErrReviewNotFound
	}
	s.reviews[review.ID] = *review
	return nil
}

func (s *memReviewStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.reviews[id]; !ok {
		return apperrors.ErrReviewNotFound
	}
	delete(s.reviews, id)
	return nil
}

type memProfileStore struct {
	profiles map[int64]models.Profile
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[int64]models.Profile)}
}

func (s *memProfileStore) GetByUserID(_ context.Context, userID int64) (*models.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.ErrProfileNotFound
	}
	profile := p
	return &profile, nil
}

func (s *memProfileStore) List(_ context.Context, offset uint64, limit int) ([]models.Profile, int64, error) {
	var all []models.Profile
	for _, p := range s.profiles {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })

	total := int64(len(all))
	if offset >= uint64(len(all)) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

func (s *memProfileStore) Update(_ context.Context, profile *models.Profile) error {
	if _, ok := s.profiles[profile.UserID]; !ok {
		return apperrors.ErrProfileNotFound
	}
	profile.UpdatedAt = time.Now()
	s.profiles[profile.UserID] = *profile
	return nil
}

type memUserStore struct {
	nextID int64
	users  map[int64]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: make(map[int64]models.User)}
}

func (s *memUserStore) CreateWithProfile(_ context.Context, user *models.User, profile *models.Profile) error {
	for _, u := range s.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameExists
		}
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	profile.UserID = user.ID
	return nil
}

func (s *memUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	user := u
	return &user, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
