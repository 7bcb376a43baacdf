package service

import (
	"context"
	"time"

	"niyam/internal/cache"
	"niyam/internal/gateway"
)

const professionalCacheTTL = time.Minute

// ProfessionalService proxies the professional directory.
type ProfessionalService interface {
	List(ctx context.Context) (*gateway.ProfessionalsResponse, error)
	ByID(ctx context.Context, id string) (*gateway.Professional, error)
}

type professionalService struct {
	backend *gateway.Client
	cache   *cache.Client
}

// NewProfessionalService builds a ProfessionalService over the gateway.
func NewProfessionalService(backend *gateway.Client, cache *cache.Client) ProfessionalService {
	return &professionalService{backend: backend, cache: cache}
}

func (s *professionalService) List(ctx context.Context) (*gateway.ProfessionalsResponse, error) {
	const key = "professionals"
	var cached gateway.ProfessionalsResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	resp, err := s.backend.Professionals(ctx)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []gateway.Professional{}
	}

	s.cache.SetJSON(ctx, key, resp, professionalCacheTTL)
	return resp, nil
}

func (s *professionalService) ByID(ctx context.Context, id string) (*gateway.Professional, error) {
	key := "professional:" + id
	var cached gateway.Professional
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	pro, err := s.backend.ProfessionalByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, pro, professionalCacheTTL)
	return pro, nil
}
