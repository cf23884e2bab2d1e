package calculator

import (
	"strconv"
	"strings"
)

// CitationSeparator joins the entries of a citation line.
const CitationSeparator = " | "

// Citation renders the selection as "article - title (xN) | ...", in
// selection order. The multiplier suffix only shows when it is above one.
// An empty selection yields "".
func Citation(items []SelectedCrime) string {
	parts := make([]string, 0, len(items))
	for _, c := range items {
		entry := c.Article + " - " + c.Title
		if c.Multiplier > 1 {
			entry += " (x" + strconv.Itoa(c.Multiplier) + ")"
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, CitationSeparator)
}

// Citation is a shorthand for Citation(s.Items()).
func (s *Selection) Citation() string {
	return Citation(s.items)
}
