// Package calculator turns a set of selected crimes into a sentence summary:
// total months, fine and bail, the effect of paying bail and of percentage
// reductions, and the citation line pasted into the arrest report.
//
// Everything here is session state. Nothing is persisted and the crimes
// themselves are never modified.
package calculator

import (
	"math"

	"github.com/AlostXD/police-lumos-rp/internal/coerce"
	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// SelectedCrime is a crime counted Multiplier times.
type SelectedCrime struct {
	models.Crime
	Multiplier int `json:"multiplier"`
}

// Selection is the ordered list of crimes picked by the user. A crime
// appears at most once; insertion order drives display and the citation.
type Selection struct {
	items []SelectedCrime
}

func sameCrime(a, b models.Crime) bool {
	if a.ID != 0 || b.ID != 0 {
		return a.ID == b.ID
	}
	return a.Article == b.Article
}

func (s *Selection) indexOf(c models.Crime) int {
	for i, item := range s.items {
		if sameCrime(item.Crime, c) {
			return i
		}
	}
	return -1
}

// Add appends c with multiplier 1. It reports false, leaving the selection
// untouched, when c is already selected.
func (s *Selection) Add(c models.Crime) bool {
	if s.indexOf(c) >= 0 {
		return false
	}
	s.items = append(s.items, SelectedCrime{Crime: c, Multiplier: 1})
	return true
}

// Remove deletes c, if selected. Crimes match the way Add matches them.
func (s *Selection) Remove(c models.Crime) bool {
	i := s.indexOf(c)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// SetMultiplier sets the multiplier of c from a loosely typed input (form
// text or number). See Multiplier for the rule.
func (s *Selection) SetMultiplier(c models.Crime, value any) bool {
	i := s.indexOf(c)
	if i < 0 {
		return false
	}
	s.items[i].Multiplier = Multiplier(value)
	return true
}

// Multiplier coerces value to a whole count. Anything that is not a
// positive number after truncation counts once.
func Multiplier(value any) int {
	f := coerce.Number(value)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 1
	}
	return max(coerce.Whole(f), 1)
}

// Items returns a copy of the selected crimes in insertion order.
func (s *Selection) Items() []SelectedCrime {
	out := make([]SelectedCrime, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Selection) Len() int { return len(s.items) }

// Contains reports whether c is selected.
func (s *Selection) Contains(c models.Crime) bool { return s.indexOf(c) >= 0 }
