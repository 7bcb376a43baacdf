package service

import (
	"context"
	"io"
	"time"

	"niyam/internal/cache"
	"niyam/internal/gateway"
)

const documentCacheTTL = time.Minute

// DocsService proxies document retrieval and upload. Authenticated operations
// forward the caller's bearer token.
type DocsService interface {
	PublicDocuments(ctx context.Context) (*gateway.DocumentsResponse, error)
	DocumentByID(ctx context.Context, id string) (*gateway.LegalDocument, error)
	StructuredDocument(ctx context.Context, id string) (*gateway.StructuredDocument, error)
	MyDocuments(ctx context.Context, token string) (*gateway.DocumentsResponse, error)
	Upload(ctx context.Context, token, filename string, file io.Reader, documentType string) (*gateway.UploadResponse, error)
}

type docsService struct {
	backend *gateway.Client
	cache   *cache.Client
}

// NewDocsService builds a DocsService over the gateway.
func NewDocsService(backend *gateway.Client, cache *cache.Client) DocsService {
	return &docsService{backend: backend, cache: cache}
}

func (s *docsService) PublicDocuments(ctx context.Context) (*gateway.DocumentsResponse, error) {
	const key = "documents:public"
	var cached gateway.DocumentsResponse
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	resp, err := s.backend.PublicDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []gateway.LegalDocument{}
	}

	s.cache.SetJSON(ctx, key, resp, documentCacheTTL)
	return resp, nil
}

func (s *docsService) DocumentByID(ctx context.Context, id string) (*gateway.LegalDocument, error) {
	key := "document:" + id
	var cached gateway.LegalDocument
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	doc, err := s.backend.DocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, doc, documentCacheTTL)
	return doc, nil
}

func (s *docsService) StructuredDocument(ctx context.Context, id string) (*gateway.StructuredDocument, error) {
	key := "document:structured:" + id
	var cached gateway.StructuredDocument
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	doc, err := s.backend.StructuredDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, doc, documentCacheTTL)
	return doc, nil
}

func (s *docsService) MyDocuments(ctx context.Context, token string) (*gateway.DocumentsResponse, error) {
	resp, err := s.backend.WithToken(token).MyLegalDocuments(ctx)
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []gateway.LegalDocument{}
	}
	return resp, nil
}

func (s *docsService) Upload(ctx context.Context, token, filename string, file io.Reader, documentType string) (*gateway.UploadResponse, error) {
	resp, err := s.backend.WithToken(token).UploadDocument(ctx, filename, file, documentType)
	if err != nil {
		return nil, err
	}

	// A new document invalidates the public listing.
	_ = s.cache.Delete(ctx, "documents:public")
	return resp, nil
}
