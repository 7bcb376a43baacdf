package gateway

// Wire types for the backend API. User and admin records arrive in different
// shapes and are kept distinct here; normalization into one client-side shape
// happens at the session boundary.

// RawUser is a backend user record.
type RawUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// RawAdmin is a backend administrator record.
type RawAdmin struct {
	ID        string `json:"id"`
	AdminName string `json:"adminname"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// LoginRequest is the credential payload for user and admin login.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SignupRequest is the registration payload.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginResponse wraps a user login result. The record sits inside a Body
// envelope on the wire.
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		Body RawUser `json:"Body"`
	} `json:"user"`
}

// AdminLoginResponse wraps an admin login result.
type AdminLoginResponse struct {
	Token string `json:"token"`
	Admin struct {
		Body RawAdmin `json:"Body"`
	} `json:"admin"`
}

// MeResponse wraps the current-user lookup.
type MeResponse struct {
	User struct {
		Body RawUser `json:"Body"`
	} `json:"user"`
}

// Article is a feed entry or a full article depending on the endpoint.
type Article struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary,omitempty"`
	Content   string `json:"content,omitempty"`
	Author    string `json:"author,omitempty"`
	Category  string `json:"category,omitempty"`
	ViewCount int    `json:"viewCount"`
	CreatedAt string `json:"createdAt"`
}

// FeedResponse is a paginated article listing.
type FeedResponse struct {
	Data  []Article `json:"data"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Total int       `json:"total"`
}

// SearchResult is one hit from any of the per-entity search endpoints.
type SearchResult struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
	Slug    string `json:"slug,omitempty"`
}

// SearchResponse wraps search hits.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// LegalDocument is a stored legal document's metadata.
type LegalDocument struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	DocumentType string `json:"documentType"`
	Status       string `json:"status"`
	OwnerID      string `json:"ownerId,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// DocumentsResponse is a document listing.
type DocumentsResponse struct {
	Data []LegalDocument `json:"data"`
}

// StructuredDocument is the parsed, sectioned form of a legal document.
type StructuredDocument struct {
	DocumentID string            `json:"documentId"`
	Title      string            `json:"title"`
	Sections   []DocumentSection `json:"sections"`
}

// DocumentSection is one heading plus its body text.
type DocumentSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Order   int    `json:"order"`
}

// UploadResponse wraps the document created by a multipart upload.
type UploadResponse struct {
	LegalDocument LegalDocument `json:"LegalDocument"`
}

// Professional is a directory entry.
type Professional struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	Location  string `json:"location,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// ProfessionalsResponse is a directory listing.
type ProfessionalsResponse struct {
	Data []Professional `json:"data"`
}
