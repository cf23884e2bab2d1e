package calculator

import (
	"strings"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// Filter returns the crimes whose title or article contains query,
// ignoring case. The empty query matches everything.
func Filter(crimes []models.Crime, query string) []models.Crime {
	if query == "" {
		out := make([]models.Crime, len(crimes))
		copy(out, crimes)
		return out
	}

	q := strings.ToLower(query)
	out := make([]models.Crime, 0, len(crimes))
	for _, c := range crimes {
		if strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Article), q) {
			out = append(out, c)
		}
	}
	return out
}
