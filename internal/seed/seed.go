// Package seed creates demo data on first startup.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/deniz/eventhub/internal/app/models"
	appRepos "github.com/deniz/eventhub/internal/app/repositories"
	"github.com/deniz/eventhub/internal/pkg/apperrors"
	pkgAuth "github.com/deniz/eventhub/internal/pkg/auth"
)

// CreateDefaultData creates a demo organizer account and a couple of public
// events if they don't exist yet. Runs on every startup; existing data is
// left alone.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")

	hashed, err := pkgAuth.HashPassword("demo-pass-123")
	if err != nil {
		return err
	}

	demo := &appModels.User{
		Username: "demo",
		Email:    "demo@eventhub.app",
		Password: hashed,
	}
	profile := &appModels.Profile{
		FullName: "Demo Organizer",
		Bio:      "Account created at first startup.",
	}

	err = userRepo.CreateWithProfile(ctx, demo, profile)
	if err != nil {
		if errors.Is(err, apperrors.ErrUsernameExists) || errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			// Already seeded on a previous startup.
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating demo user")
		return err
	}

	start := time.Now().AddDate(0, 0, 14).Truncate(time.Hour)
	events := []appModels.Event{
		{
			Title:       "EventHub Launch Meetup",
			Description: "Kickoff meetup for the EventHub community.",
			OrganizerID: demo.ID,
			Location:    "Istanbul",
			StartTime:   start,
			EndTime:     start.Add(3 * time.Hour),
			IsPublic:    true,
		},
		{
			Title:       "Monthly Organizers Call",
			Description: "Private planning call for event organizers.",
			OrganizerID: demo.ID,
			Location:    "Online",
			StartTime:   start.AddDate(0, 0, 7),
			EndTime:     start.AddDate(0, 0, 7).Add(time.Hour),
			IsPublic:    false,
		},
	}

	var finalErr error
	for i := range events {
		if err := eventRepo.Create(ctx, &events[i]); err != nil {
			lgr.Error().Err(err).Str("title", events[i].Title).Msg("Error creating demo event")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data created.")
	}
	return finalErr
}
