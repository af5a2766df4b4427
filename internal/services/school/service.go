package schoolservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"schoolsite/internal/models"
	"strings"
)

const pkg = "schoolService/"

type SchoolService struct {
	log        *slog.Logger
	schoolRepo SchoolRepository
}

func New(log *slog.Logger, schoolRepo SchoolRepository) *SchoolService {
	return &SchoolService{
		log:        log,
		schoolRepo: schoolRepo,
	}
}

// SchoolInfo returns the single info row, creating a blank one on first use.
func (ss *SchoolService) SchoolInfo(ctx context.Context) (*models.SchoolInfo, error) {
	op := pkg + "SchoolInfo"

	log := ss.log.With(slog.String("op", op))

	log.Debug("attempting to get school info")

	info, err := ss.schoolRepo.SchoolInfo(ctx)
	if err == nil {
		return info, nil
	}

	if !errors.Is(err, models.ErrSchoolInfoNotFound) {
		log.Error("failed to get school info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Info("school info missing, creating blank row")

	blank := &models.SchoolInfo{ID: models.SchoolInfoID}

	if err := ss.schoolRepo.CreateSchoolInfo(ctx, blank); err != nil {
		log.Error("failed to create school info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	info, err = ss.schoolRepo.SchoolInfo(ctx)
	if err != nil {
		log.Error("failed to get school info after create", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	return info, nil
}

func (ss *SchoolService) UpdateSchoolInfo(ctx context.Context, info *models.SchoolInfo) (*models.SchoolInfo, error) {
	op := pkg + "UpdateSchoolInfo"

	log := ss.log.With(slog.String("op", op))

	log.Debug("attempting to update school info")

	info.ID = models.SchoolInfoID

	if info.Email != "" && !strings.Contains(info.Email, "@") {
		log.Warn("invalid contact email", slog.String("email", info.Email))
		return nil, models.ErrInvalidParams
	}

	err := ss.schoolRepo.UpdateSchoolInfo(ctx, info)
	if err != nil {
		if errors.Is(err, models.ErrSchoolInfoNotFound) {
			log.Info("school info missing, creating from update")

			if err := ss.schoolRepo.CreateSchoolInfo(ctx, info); err != nil {
				log.Error("failed to create school info", slog.String("error", err.Error()))
				return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
			}

			return info, nil
		}

		log.Error("failed to update school info", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, models.ErrInternal)
	}

	log.Debug("school info updated successfully")

	return info, nil
}
