package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dragonball-client/internal/logger"
	"github.com/MKhiriev/dragonball-client/models"
)

const planetsPath = "/planets"

type planetService struct {
	api    Requester
	logger *logger.Logger
}

// NewPlanetService returns a [PlanetService] backed by api.
func NewPlanetService(api Requester, logger *logger.Logger) PlanetService {
	return &planetService{api: api, logger: logger}
}

func (s *planetService) List(ctx context.Context, page, limit int) (models.Page[models.Planet], error) {
	var result models.Page[models.Planet]
	if err := getPage(ctx, s.api, planetsPath, page, limit, &result); err != nil {
		return models.Page[models.Planet]{}, fmt.Errorf("list planets: %w", err)
	}

	s.logger.Debug().Int("page", page).Int("count", len(result.Items)).Msg("planets listed")
	return result, nil
}

func (s *planetService) Get(ctx context.Context, id int) (models.Planet, error) {
	var result models.Planet
	if err := getOne(ctx, s.api, planetsPath, id, &result); err != nil {
		return models.Planet{}, fmt.Errorf("get planet %d: %w", id, err)
	}

	return result, nil
}
