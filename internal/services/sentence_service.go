package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlostXD/police-lumos-rp/internal/calculator"
	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// ErrUnknownCrime is returned when a request references a crime id that is not in the table.
var ErrUnknownCrime = errors.New("unknown crime")

// SentenceResult is the computed sentence for one request.
type SentenceResult struct {
	Items    []calculator.SelectedCrime `json:"items"`
	Summary  calculator.Summary         `json:"summary"`
	Citation string                     `json:"citation"`
}

// SentenceService computes sentences for clients that do not embed the calculator.
type SentenceService interface {
	Calculate(ctx context.Context, req *models.SentenceRequest) (*SentenceResult, error)
}

type sentenceService struct {
	crimes CrimeService
}

func NewSentenceService(crimes CrimeService) SentenceService {
	return &sentenceService{crimes: crimes}
}

// Calculate replays the request as a selection session. Repeated crime ids
// are ignored after the first, like picking an already selected crime.
func (s *sentenceService) Calculate(ctx context.Context, req *models.SentenceRequest) (*SentenceResult, error) {
	crimes, err := s.crimes.ListCrimes(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Crime, len(crimes))
	for _, c := range crimes {
		byID[c.ID] = c
	}

	var sel calculator.Selection
	for _, item := range req.Items {
		crime, ok := byID[item.CrimeID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrUnknownCrime, item.CrimeID)
		}
		if sel.Add(crime) {
			sel.SetMultiplier(crime, item.Multiplier)
		}
	}

	opts := calculator.Options{
		BailPaid:        req.BailPaid,
		ReductionMonths: calculator.ParseReduction(req.ReductionMonths),
		ReductionFine:   calculator.ParseReduction(req.ReductionFine),
	}

	return &SentenceResult{
		Items:    sel.Items(),
		Summary:  sel.Compute(opts),
		Citation: sel.Citation(),
	}, nil
}
