package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dragonball-client/internal/logger"
	"github.com/MKhiriev/dragonball-client/models"
)

const charactersPath = "/characters"

type characterService struct {
	api    Requester
	logger *logger.Logger
}

// NewCharacterService returns a [CharacterService] backed by api.
func NewCharacterService(api Requester, logger *logger.Logger) CharacterService {
	return &characterService{api: api, logger: logger}
}

func (s *characterService) List(ctx context.Context, page, limit int) (models.Page[models.Character], error) {
	var result models.Page[models.Character]
	if err := getPage(ctx, s.api, charactersPath, page, limit, &result); err != nil {
		return models.Page[models.Character]{}, fmt.Errorf("list characters: %w", err)
	}

	s.logger.Debug().Int("page", page).Int("count", len(result.Items)).Msg("characters listed")
	return result, nil
}

func (s *characterService) Get(ctx context.Context, id int) (models.Character, error) {
	var result models.Character
	if err := getOne(ctx, s.api, charactersPath, id, &result); err != nil {
		return models.Character{}, fmt.Errorf("get character %d: %w", id, err)
	}

	return result, nil
}
