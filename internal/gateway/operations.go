package gateway

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
)

// Each operation is a thin typed wrapper over the fetcher with a fixed path
// and method. No business logic lives here beyond path and parameter
// templating.

// Login authenticates a regular user.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.postJSON(ctx, "/api/v1/users/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminLogin authenticates an administrator.
func (c *Client) AdminLogin(ctx context.Context, req LoginRequest) (*AdminLoginResponse, error) {
	var out AdminLoginResponse
	if err := c.postJSON(ctx, "/api/v1/admins/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new user.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.postJSON(ctx, "/api/v1/users/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me fetches the current user for the attached token.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	var out MeResponse
	if err := c.get(ctx, "/api/v1/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the server-side session. The response body is usually
// empty.
func (c *Client) Logout(ctx context.Context) error {
	return c.postJSON(ctx, "/api/v1/logout", nil, nil)
}

// FeedParams are the query knobs of the article feed.
type FeedParams struct {
	Page      int
	Limit     int
	Filter    string
	SortOrder string
}

// Feed fetches the paginated article feed.
func (c *Client) Feed(ctx context.Context, p FeedParams) (*FeedResponse, error) {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Filter != "" {
		q.Set("filter", p.Filter)
	}
	if p.SortOrder != "" {
		q.Set("sortOrder", p.SortOrder)
	}

	var out FeedResponse
	if err := c.get(ctx, "/api/v1/feed", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArticleBySlug fetches one article.
func (c *Client) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	var out Article
	if err := c.get(ctx, "/api/v1/articles/"+url.PathEscape(slug), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecordArticleView records a view against an article. Empty 204 responses
// are expected here.
func (c *Client) RecordArticleView(ctx context.Context, slug string) error {
	return c.postJSON(ctx, "/api/v1/articles/"+url.PathEscape(slug)+"/view", nil, nil)
}

// SearchArticles runs full-text search over articles.
func (c *Client) SearchArticles(ctx context.Context, query string) (*SearchResponse, error) {
	return c.search(ctx, "articles", query)
}

// SearchDocuments runs full-text search over documents.
func (c *Client) SearchDocuments(ctx context.Context, query string) (*SearchResponse, error) {
	return c.search(ctx, "documents", query)
}

// SearchProfessionals runs full-text search over the professional directory.
func (c *Client) SearchProfessionals(ctx context.Context, query string) (*SearchResponse, error) {
	return c.search(ctx, "professionals", query)
}

// SearchDictionary runs full-text search over the legal dictionary.
func (c *Client) SearchDictionary(ctx context.Context, query string) (*SearchResponse, error) {
	return c.search(ctx, "dictionary", query)
}

func (c *Client) search(ctx context.Context, entity, query string) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)

	var out SearchResponse
	if err := c.get(ctx, "/api/v1/search/"+entity, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicDocuments lists all public legal documents.
func (c *Client) PublicDocuments(ctx context.Context) (*DocumentsResponse, error) {
	var out DocumentsResponse
	if err := c.get(ctx, "/api/v1/documents", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DocumentByID fetches one document's metadata.
func (c *Client) DocumentByID(ctx context.Context, id string) (*LegalDocument, error) {
	var out LegalDocument
	if err := c.get(ctx, "/api/v1/documents/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StructuredDocument fetches the sectioned form of a document.
func (c *Client) StructuredDocument(ctx context.Context, id string) (*StructuredDocument, error) {
	var out StructuredDocument
	if err := c.get(ctx, "/api/v1/documents/"+url.PathEscape(id)+"/structured", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyLegalDocuments lists the authenticated user's documents.
func (c *Client) MyLegalDocuments(ctx context.Context) (*DocumentsResponse, error) {
	var out DocumentsResponse
	if err := c.get(ctx, "/api/v1/documents/my", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadDocument streams a file to the backend for processing and
// structuring. The multipart writer sets its own boundary content type.
func (c *Client) UploadDocument(ctx context.Context, filename string, file io.Reader, documentType string) (*UploadResponse, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := form.WriteField("documentType", documentType); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	var out UploadResponse
	if err := c.postMultipart(ctx, "/api/v1/documents/process", pr, form.FormDataContentType(), &out); err != nil {
		return nil, fmt.Errorf("upload %s: %w", filename, err)
	}
	return &out, nil
}

// Professionals lists the professional directory.
func (c *Client) Professionals(ctx context.Context) (*ProfessionalsResponse, error) {
	var out ProfessionalsResponse
	if err := c.get(ctx, "/api/v1/professionals", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfessionalByID fetches one directory entry.
func (c *Client) ProfessionalByID(ctx context.Context, id string) (*Professional, error) {
	var out Professional
	if err := c.get(ctx, "/api/v1/professionals/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
