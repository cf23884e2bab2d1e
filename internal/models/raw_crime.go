package models

// RawCrime is an untyped record read from one of the reference datasets.
// Keys are either the Portuguese ones used by the source spreadsheets
// ("Artigo", "Crime", "Descrição", "Pena", "Multa", "Fiança") or the
// canonical English column names.
type RawCrime map[string]any

// Source keys for each canonical field, in lookup order.
var (
	ArticleKeys     = []string{"Artigo", "article"}
	TitleKeys       = []string{"Crime", "title"}
	DescriptionKeys = []string{"Descrição", "description"}
	TimeKeys        = []string{"Pena", "time"}
	FineKeys        = []string{"Multa", "fine"}
	FianceKeys      = []string{"Fiança", "fiance"}
)
