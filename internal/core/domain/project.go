package domain

import (
	"strings"
	"time"
)

// DefaultProjectImageURL is the placeholder shown until an image is uploaded.
// No provider id is recorded for it, so deletes never reach the provider.
const DefaultProjectImageURL = "https://picsum.photos/600/400"

// DefaultProjectCategory is applied when the caller omits a category.
const DefaultProjectCategory = "Uncategorized"

// Project is a portfolio entry. Owner is the id of the user that created it
// and gates mutation; it never cascades deletion of the user.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ImageID     string    `json:"-"`
	LiveURL     string    `json:"live_url,omitempty"`
	RepoURL     string    `json:"repo_url,omitempty"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NormalizeTags flattens tag input into a clean list: each element may itself
// be a comma-separated string, segments are trimmed and empties dropped.
// "React, Node.js, , CSS" becomes ["React", "Node.js", "CSS"].
func NormalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, r := range raw {
		for _, seg := range strings.Split(r, ",") {
			if t := strings.TrimSpace(seg); t != "" {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
