package service

import (
	"context"
	"fmt"
	"time"

	"niyam/internal/cache"
	apperrors "niyam/internal/errors"
	"niyam/internal/gateway"
)

const searchCacheTTL = 30 * time.Second

// Search entity types, one backend endpoint each.
const (
	SearchArticles      = "articles"
	SearchDocuments     = "documents"
	SearchProfessionals = "professionals"
	SearchDictionary    = "dictionary"
)

// SearchService proxies the per-entity full-text search endpoints.
type SearchService interface {
	Search(ctx context.Context, entity, query string) (*gateway.SearchResponse, error)
}

type searchService struct {
	backend *gateway.Client
	cache   *cache.Client
}

// NewSearchService builds a SearchService over the gateway.
func NewSearchService(backend *gateway.Client, cache *cache.Client) SearchService {
	return &searchService{backend: backend, cache: cache}
}

func (s *searchService) Search(ctx context.Context, entity, query string) (*gateway.SearchResponse, error) {
	key := fmt.Sprintf("search:%s:%s", entity, query)
	var cached gateway.SearchResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	var (
		resp *gateway.SearchResponse
		err  error
	)
	switch entity {
	case SearchArticles:
		resp, err = s.backend.SearchArticles(ctx, query)
	case SearchDocuments:
		resp, err = s.backend.SearchDocuments(ctx, query)
	case SearchProfessionals:
		resp, err = s.backend.SearchProfessionals(ctx, query)
	case SearchDictionary:
		resp, err = s.backend.SearchDictionary(ctx, query)
	default:
		return nil, apperrors.NewValidationError([]string{"Unknown search type: " + entity})
	}
	if err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []gateway.SearchResult{}
	}

	s.cache.SetJSON(ctx, key, resp, searchCacheTTL)
	return resp, nil
}
