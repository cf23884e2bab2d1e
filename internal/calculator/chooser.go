package calculator

import "github.com/AlostXD/police-lumos-rp/internal/models"

// Chooser is the autocomplete list under the search box: the crimes
// matching the current query and the highlighted row.
type Chooser struct {
	crimes   []models.Crime
	query    string
	filtered []models.Crime
	active   int
	open     bool
}

func NewChooser(crimes []models.Crime) *Chooser {
	return &Chooser{crimes: crimes, filtered: Filter(crimes, "")}
}

// SetCrimes replaces the searchable list, keeping the current query.
func (c *Chooser) SetCrimes(crimes []models.Crime) {
	c.crimes = crimes
	c.filtered = Filter(crimes, c.query)
	c.active = 0
}

// SetQuery refilters, opens the list and moves the highlight to the top.
func (c *Chooser) SetQuery(query string) {
	c.query = query
	c.filtered = Filter(c.crimes, query)
	c.active = 0
	c.open = true
}

func (c *Chooser) Query() string           { return c.query }
func (c *Chooser) Results() []models.Crime { return c.filtered }
func (c *Chooser) Active() int             { return c.active }

// IsOpen reports whether the list is shown; an empty result list is never shown.
func (c *Chooser) IsOpen() bool { return c.open && len(c.filtered) > 0 }

func (c *Chooser) Open() { c.open = true }

// Next moves the highlight down, wrapping to the first row.
func (c *Chooser) Next() {
	if !c.IsOpen() {
		return
	}
	c.active = (c.active + 1) % len(c.filtered)
}

// Prev moves the highlight up, wrapping to the last row.
func (c *Chooser) Prev() {
	if !c.IsOpen() {
		return
	}
	if c.active == 0 {
		c.active = len(c.filtered) - 1
		return
	}
	c.active--
}

// Confirm returns the highlighted crime and resets the chooser (query
// cleared, list closed). ok is false when nothing is highlighted.
func (c *Chooser) Confirm() (crime models.Crime, ok bool) {
	if !c.IsOpen() || c.active >= len(c.filtered) {
		return models.Crime{}, false
	}
	crime = c.filtered[c.active]
	c.reset()
	return crime, true
}

// Cancel closes the list without touching the query.
func (c *Chooser) Cancel() {
	c.open = false
	c.active = 0
}

func (c *Chooser) reset() {
	c.query = ""
	c.filtered = Filter(c.crimes, "")
	c.active = 0
	c.open = false
}
