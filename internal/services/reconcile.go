package services

import (
	"strings"
	"unicode/utf8"

	"github.com/AlostXD/police-lumos-rp/internal/coerce"
	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// Resolve returns the value of the first key present in raw with a non-nil value.
func Resolve(raw models.RawCrime, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func resolveString(raw models.RawCrime, keys []string) string {
	v, ok := Resolve(raw, keys...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(coerce.String(v))
}

func resolveNumber(raw models.RawCrime, keys []string) float64 {
	v, ok := Resolve(raw, keys...)
	if !ok {
		return 0
	}
	return coerce.FiniteOr(coerce.Number(v), 0)
}

// NormalizeCrime maps a raw dataset row onto a Crime. Missing or
// non-numeric values become zero; time is truncated to whole months.
func NormalizeCrime(raw models.RawCrime) models.Crime {
	fiance := resolveNumber(raw, models.FianceKeys)

	return models.Crime{
		Article:     resolveString(raw, models.ArticleKeys),
		Title:       resolveString(raw, models.TitleKeys),
		Description: resolveString(raw, models.DescriptionKeys),
		Time:        coerce.Whole(resolveNumber(raw, models.TimeKeys)),
		Fine:        resolveNumber(raw, models.FineKeys),
		Fiance:      fiance,
		Financable:  fiance > 0,
	}
}

// MergeCrime combines two rows describing the same article, keeping the
// richer value of each field. a wins ties.
func MergeCrime(a, b models.Crime) models.Crime {
	merged := models.Crime{
		Article:     firstNonEmpty(a.Article, b.Article),
		Title:       firstNonEmpty(a.Title, b.Title),
		Description: a.Description,
		Time:        max(a.Time, b.Time),
		Fine:        max(a.Fine, b.Fine),
		Fiance:      max(a.Fiance, b.Fiance),
		Financable:  a.Fiance > 0 || b.Fiance > 0,
	}
	if utf8.RuneCountInString(b.Description) > utf8.RuneCountInString(a.Description) {
		merged.Description = b.Description
	}
	return merged
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Reconciliation is the outcome of folding the datasets by article.
type Reconciliation struct {
	Crimes []models.Crime
	// Inputs counts every raw row read, Dropped the rows without an article.
	Inputs  int
	Dropped int
	// Merged lists the articles that appeared more than once, in first-seen order.
	Merged []string
}

// ReconcileCrimes normalizes every row of every source, drops rows without
// an article and merges rows sharing one. Crimes keep first-seen order.
func ReconcileCrimes(sources ...[]models.RawCrime) Reconciliation {
	var rec Reconciliation
	byArticle := make(map[string]int)
	mergedSeen := make(map[string]bool)

	for _, source := range sources {
		for _, raw := range source {
			rec.Inputs++
			c := NormalizeCrime(raw)
			if c.Article == "" {
				rec.Dropped++
				continue
			}

			idx, ok := byArticle[c.Article]
			if !ok {
				byArticle[c.Article] = len(rec.Crimes)
				rec.Crimes = append(rec.Crimes, c)
				continue
			}

			rec.Crimes[idx] = MergeCrime(rec.Crimes[idx], c)
			if !mergedSeen[c.Article] {
				mergedSeen[c.Article] = true
				rec.Merged = append(rec.Merged, c.Article)
			}
		}
	}
	return rec
}
