package domain

import "time"

// DefaultProfilePictureURL is used when no picture has been uploaded yet.
const DefaultProfilePictureURL = "https://via.placeholder.com/150"

// SocialLinks groups the profile's outbound links.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	GitLab   string `json:"gitlab,omitempty"`
}

// User models the site owner — the single authenticated actor in the system.
type User struct {
	ID                string      `json:"id"`
	Email             string      `json:"email"`
	PasswordHash      string      `json:"-"`
	IsAdmin           bool        `json:"is_admin"`
	FullName          string      `json:"full_name"`
	JobTitle          string      `json:"job_title"`
	Bio               string      `json:"bio"`
	ShortBio          string      `json:"short_bio"`
	ProfilePictureURL string      `json:"profile_picture_url,omitempty"`
	ProfilePictureID  string      `json:"-"`
	ResumeURL         string      `json:"resume_url,omitempty"`
	ResumeID          string      `json:"-"`
	SocialLinks       SocialLinks `json:"social_links"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// AuthClaims is the verified identity extracted from a bearer token.
// Claims are a snapshot taken at issuance: a later change to the stored user
// (e.g. a revoked admin flag) is not reflected until the token expires.
type AuthClaims struct {
	UserID    string
	Email     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// CanMutate is the single ownership gate consulted by every mutating
// operation: admins may mutate anything, otherwise the caller must own the
// resource.
func CanMutate(callerID string, isAdmin bool, ownerID string) bool {
	return isAdmin || (callerID != "" && callerID == ownerID)
}
