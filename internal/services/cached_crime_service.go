package services

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

const crimeListKey = "crimes:all"

// cachedCrimeService keeps the crime list in memory. The table only changes
// when the seed runs, so a short TTL is enough to pick up a new seed.
type cachedCrimeService struct {
	next  CrimeService
	cache *gocache.Cache
}

// NewCachedCrimeService wraps next with an in-memory cache of the full list.
// A ttl of zero or less disables expiry.
func NewCachedCrimeService(next CrimeService, ttl time.Duration) CrimeService {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &cachedCrimeService{
		next:  next,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *cachedCrimeService) ListCrimes(ctx context.Context) ([]models.Crime, error) {
	if v, found := s.cache.Get(crimeListKey); found {
		return v.([]models.Crime), nil
	}

	crimes, err := s.next.ListCrimes(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(crimeListKey, crimes)
	return crimes, nil
}

func (s *cachedCrimeService) SearchCrimes(ctx context.Context, query string) ([]models.Crime, error) {
	return searchWith(ctx, s, query)
}
