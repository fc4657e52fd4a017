package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultEmploymentLocation = "Remote"
	DefaultEmploymentEndDate  = "Present"
)

// Employment is a work-history entry. Description holds the bullet points
// shown under the role and must be non-empty.
type Employment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description []string  `json:"description"`
	CreatedOn   time.Time `json:"created_on"`
}

// CapitalizeWords upper-cases the first letter of every word and lower-cases
// the rest, as applied to employment titles and company names.
func CapitalizeWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
