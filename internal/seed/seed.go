package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/deniz/credbridge/internal/app/models"
	appRepos "github.com/deniz/credbridge/internal/app/repositories"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

// CreateDefaultData creates a small default catalog and an advisor account
// if they don't exist yet. Errors are collected so a partial failure does
// not abort the remaining seed steps.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	universityRepo := appRepos.NewUniversityRepository(dbPool)
	ruleRepo := appRepos.NewRuleRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Universities/Rules)...")
	var finalErr error

	northfieldID := seedUniversity(ctx, universityRepo, "Northfield University", "USA", lgr, &finalErr)
	lakesideID := seedUniversity(ctx, universityRepo, "Lakeside Institute of Technology", "USA", lgr, &finalErr)

	if northfieldID > 0 && lakesideID > 0 {
		rules, err := ruleRepo.GetActiveByUniversityPair(ctx, northfieldID, lakesideID)
		if err != nil {
			lgr.Error().Err(err).Msg("Error checking existing transfer rules")
			finalErr = errors.Join(finalErr, err)
		} else if len(rules) == 0 {
			tolerance := 1
			rule := &appModels.TransferRule{
				SourceUniversityID:       northfieldID,
				TargetUniversityID:       lakesideID,
				MinimumOverlapPercentage: 70,
				CreditHourTolerance:      &tolerance,
				Active:                   true,
			}
			if _, err := ruleRepo.Create(ctx, rule); err != nil {
				lgr.Error().Err(err).Msg("Error creating default transfer rule")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// Default advisor account
	const advisorEmail = "advisor@credbridge.app"
	_, err := userRepo.GetByEmail(ctx, advisorEmail)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Info().Msg("Creating default advisor user...")

		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte("Advisor123!"), bcrypt.DefaultCost)
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing advisor password")
			finalErr = errors.Join(finalErr, hashErr)
		} else {
			advisor := &appModels.User{
				Email:    advisorEmail,
				Password: string(hashedPassword),
				FullName: "Default Advisor",
				RoleType: appModels.RoleAdvisor,
			}
			advisorID, createErr := userRepo.Create(ctx, advisor)
			if createErr != nil {
				lgr.Error().Err(createErr).Msg("Error creating default advisor user")
				finalErr = errors.Join(finalErr, createErr)
			} else {
				lgr.Info().Int64("advisorID", advisorID).Msg("Default advisor user created successfully")
			}
		}
	} else if err != nil {
		lgr.Error().Err(err).Msg("Error checking if advisor user exists")
		finalErr = errors.Join(finalErr, err)
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// seedUniversity creates a university if missing and returns its ID, or 0
// when neither creating nor finding it succeeded.
func seedUniversity(ctx context.Context, repo *appRepos.UniversityRepository, name, country string, lgr zerolog.Logger, finalErr *error) int64 {
	id, err := repo.Create(ctx, &appModels.University{Name: name, Country: country, Active: true})
	if err == nil {
		return id
	}
	if !errors.Is(err, apperrors.ErrUniversityAlreadyExists) {
		lgr.Error().Err(err).Str("name", name).Msg("Error creating default university")
		*finalErr = errors.Join(*finalErr, err)
		return 0
	}

	universities, getErr := repo.GetAll(ctx)
	if getErr != nil {
		lgr.Error().Err(getErr).Msg("Error getting existing universities")
		*finalErr = errors.Join(*finalErr, getErr)
		return 0
	}
	for _, u := range universities {
		if u.Name == name {
			return u.ID
		}
	}
	return 0
}
