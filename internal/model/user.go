package model

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user record may carry.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User represents an authenticated user stored in the users collection.
// Password holds the bcrypt hash and is stripped from every JSON projection.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Normalize lowercases and trims the fields that are matched against.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Name = strings.TrimSpace(u.Name)
	if u.Role == "" {
		u.Role = RoleUser
	}
}

// ValidateNew checks a user about to be created. The password here is the
// plaintext candidate, validated before hashing. Messages are joined into a
// single string for the 400 response.
func ValidateNew(email, name, password string) []string {
	var msgs []string
	msgs = append(msgs, validateEmail(email)...)
	msgs = append(msgs, validateName(name)...)
	if password == "" {
		msgs = append(msgs, "Password is required")
	} else if len(password) < 8 {
		msgs = append(msgs, "Password must be at least 8 characters long")
	}
	return msgs
}

// ValidateUpdate checks the mutable fields of an existing user. Empty values
// mean "leave unchanged" and are not validated.
func ValidateUpdate(email, name, role string) []string {
	var msgs []string
	if email != "" {
		msgs = append(msgs, validateEmail(email)...)
	}
	if name != "" {
		msgs = append(msgs, validateName(name)...)
	}
	msgs = append(msgs, ValidateRole(role)...)
	return msgs
}

// ValidateRole checks a role value. Empty means "default" and is accepted.
func ValidateRole(role string) []string {
	if role != "" && role != RoleUser && role != RoleAdmin {
		return []string{"Role must be either user or admin"}
	}
	return nil
}

func validateEmail(email string) []string {
	if strings.TrimSpace(email) == "" {
		return []string{"Email is required"}
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return []string{"Invalid email format"}
	}
	return nil
}

func validateName(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return []string{"Name is required"}
	}
	if len(trimmed) < 2 {
		return []string{"Name must be at least 2 characters long"}
	}
	return nil
}
