// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/dragonball-client/internal/apiclient"
	"github.com/MKhiriev/dragonball-client/models"
	"github.com/go-resty/resty/v2"
)

// Requester is the part of [apiclient.Client] the services depend on.
type Requester interface {
	Get(ctx context.Context, path string, opts ...apiclient.RequestOption) (*resty.Response, error)
}

// CharacterService reads characters from the Dragon Ball API.
//
// Failed calls return an error wrapping [*apiclient.Error]; callers show its
// FriendlyMessage to users (see apiclient.FriendlyMessageOf).
type CharacterService interface {
	// List returns one page of characters. page is 1-based.
	List(ctx context.Context, page, limit int) (models.Page[models.Character], error)

	// Get returns a single character including its origin planet and
	// transformations.
	Get(ctx context.Context, id int) (models.Character, error)
}

// PlanetService reads planets from the Dragon Ball API.
type PlanetService interface {
	// List returns one page of planets. page is 1-based.
	List(ctx context.Context, page, limit int) (models.Page[models.Planet], error)

	// Get returns a single planet including its inhabitants.
	Get(ctx context.Context, id int) (models.Planet, error)
}
