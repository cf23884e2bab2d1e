package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/AlostXD/police-lumos-rp/internal/calculator"
	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// CrimeService defines the contract for reading the penal code table.
// Any implementation (the GORM one, the cached wrapper, test fakes) must
// offer these methods.
type CrimeService interface {
	// ListCrimes returns every crime, ordered by id.
	ListCrimes(ctx context.Context) ([]models.Crime, error)
	// SearchCrimes returns the crimes whose title or article contains query,
	// ignoring case. An empty query returns everything.
	SearchCrimes(ctx context.Context, query string) ([]models.Crime, error)
}

// crimeService is the concrete implementation of CrimeService.
// It wraps the GORM dependency used to reach the database.
type crimeService struct {
	db *gorm.DB
}

// NewCrimeService injects the *gorm.DB dependency and returns a
// CrimeService ready for use.
func NewCrimeService(db *gorm.DB) CrimeService {
	return &crimeService{db: db}
}

// ListCrimes reads every crime from the database.
//   - Takes ctx so callers control timeouts and cancellation.
//   - Uses db.WithContext(ctx) to hand the context to GORM.
//   - Orders by id so the list is stable between calls.
func (s *crimeService) ListCrimes(ctx context.Context) ([]models.Crime, error) {
	var crimes []models.Crime

	// SELECT * FROM crimes ORDER BY id
	if err := s.db.WithContext(ctx).Order("id").Find(&crimes).Error; err != nil {
		return nil, err
	}

	return crimes, nil
}

// SearchCrimes filters in memory so the matching rule is the one the
// calculator uses on the client side.
func (s *crimeService) SearchCrimes(ctx context.Context, query string) ([]models.Crime, error) {
	return searchWith(ctx, s, query)
}

func searchWith(ctx context.Context, s CrimeService, query string) ([]models.Crime, error) {
	crimes, err := s.ListCrimes(ctx)
	if err != nil {
		return nil, err
	}
	return calculator.Filter(crimes, query), nil
}
