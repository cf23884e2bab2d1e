package models

// SentenceRequest is the JSON body of POST /sentences. Multipliers and
// reductions are taken as typed by the user and coerced server-side.
type SentenceRequest struct {
	Items           []SentenceItem `json:"items"`
	BailPaid        bool           `json:"bail_paid"`
	ReductionMonths any            `json:"reduction_months"`
	ReductionFine   any            `json:"reduction_fine"`
}

type SentenceItem struct {
	CrimeID    uint `json:"crime_id"`
	Multiplier any  `json:"multiplier"`
}
