package domain

import (
	"strings"
	"time"
)

const (
	DefaultSkillIcon     = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/react/react-original.svg"
	DefaultSkillCategory = "other"
)

// Skill is a single entry in the skills list. Names are stored upper-cased,
// making the unique index on name effectively case-insensitive.
type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Category  string    `json:"category"`
	CreatedOn time.Time `json:"created_on"`
}

// NormalizeSkillName trims and upper-cases a skill name.
func NormalizeSkillName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
