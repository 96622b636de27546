package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/dragonball-client/internal/apiclient"
	"github.com/MKhiriev/dragonball-client/internal/logger"
)

// Services groups every API-backed service of the client.
type Services struct {
	Characters CharacterService
	Planets    PlanetService
}

// NewServices builds all services on top of api.
func NewServices(api Requester, logger *logger.Logger) *Services {
	return &Services{
		Characters: NewCharacterService(api, logger),
		Planets:    NewPlanetService(api, logger),
	}
}

// getPage fetches a paginated listing into dst.
func getPage(ctx context.Context, api Requester, path string, page, limit int, dst any) error {
	if page < 1 || limit < 1 {
		return fmt.Errorf("%w: page=%d limit=%d", ErrInvalidPage, page, limit)
	}

	_, err := api.Get(ctx, path,
		apiclient.WithQueryParams(map[string]string{
			"page":  strconv.Itoa(page),
			"limit": strconv.Itoa(limit),
		}),
		apiclient.WithResult(dst),
	)
	return err
}

// getOne fetches path/{id} into dst.
func getOne(ctx context.Context, api Requester, path string, id int, dst any) error {
	if id < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	_, err := api.Get(ctx, path+"/"+strconv.Itoa(id), apiclient.WithResult(dst))
	return err
}
