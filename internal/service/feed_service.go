package service

import (
	"context"
	"fmt"
	"time"

	"niyam/internal/cache"
	"niyam/internal/gateway"
)

const feedCacheTTL = 30 * time.Second

// FeedService proxies the backend article feed.
type FeedService interface {
	Feed(ctx context.Context, p gateway.FeedParams) (*gateway.FeedResponse, error)
	ArticleBySlug(ctx context.Context, slug string) (*gateway.Article, error)
	RecordView(ctx context.Context, slug string) error
}

type feedService struct {
	backend *gateway.Client
	cache   *cache.Client
}

// NewFeedService builds a FeedService over the gateway with a short read
// cache.
func NewFeedService(backend *gateway.Client, cache *cache.Client) FeedService {
	return &feedService{backend: backend, cache: cache}
}

func (s *feedService) Feed(ctx context.Context, p gateway.FeedParams) (*gateway.FeedResponse, error) {
	key := fmt.Sprintf("feed:%d:%d:%s:%s", p.Page, p.Limit, p.Filter, p.SortOrder)
	var cached gateway.FeedResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	resp, err := s.backend.Feed(ctx, p)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []gateway.Article{}
	}

	s.cache.SetJSON(ctx, key, resp, feedCacheTTL)
	return resp, nil
}

func (s *feedService) ArticleBySlug(ctx context.Context, slug string) (*gateway.Article, error) {
	key := "article:" + slug
	var cached gateway.Article
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	article, err := s.backend.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, article, feedCacheTTL)
	return article, nil
}

func (s *feedService) RecordView(ctx context.Context, slug string) error {
	return s.backend.RecordArticleView(ctx, slug)
}
