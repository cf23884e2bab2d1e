package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

// ReconcileService writes the reconciled penal code into the crimes table.
type ReconcileService interface {
	// Upsert inserts each crime or overwrites the row with the same article.
	// It stops at the first failure; rows written before it stay written.
	Upsert(ctx context.Context, crimes []models.Crime) (int, error)
	// Run reconciles the given datasets and upserts the result.
	Run(ctx context.Context, sources ...[]models.RawCrime) (*ReconcileResult, error)
}

// ReconcileResult summarizes one seed run.
type ReconcileResult struct {
	RunID string
	Reconciliation
	Upserted int
	Elapsed  time.Duration
}

type reconcileService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewReconcileService(db *gorm.DB, logger *zap.Logger) ReconcileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reconcileService{db: db, logger: logger}
}

func (s *reconcileService) Upsert(ctx context.Context, crimes []models.Crime) (int, error) {
	upserted := 0
	for _, c := range crimes {
		row := c
		row.ID = 0

		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "article"}},
			DoUpdates: clause.AssignmentColumns(models.UpsertColumns),
		}).Create(&row).Error
		if err != nil {
			return upserted, fmt.Errorf("upsert article %q: %w", c.Article, err)
		}
		upserted++
	}
	return upserted, nil
}

func (s *reconcileService) Run(ctx context.Context, sources ...[]models.RawCrime) (*ReconcileResult, error) {
	start := time.Now()
	result := &ReconcileResult{RunID: uuid.NewString()}
	logger := s.logger.With(zap.String("run_id", result.RunID))

	result.Reconciliation = ReconcileCrimes(sources...)
	logger.Info("datasets reconciled",
		zap.Int("inputs", result.Inputs),
		zap.Int("dropped", result.Dropped),
		zap.Int("merged", len(result.Merged)),
		zap.Int("crimes", len(result.Crimes)))

	n, err := s.Upsert(ctx, result.Crimes)
	result.Upserted = n
	result.Elapsed = time.Since(start)
	if err != nil {
		logger.Error("upsert failed", zap.Int("upserted", n), zap.Error(err))
		return result, err
	}

	logger.Info("seed complete", zap.Int("upserted", n), zap.Duration("elapsed", result.Elapsed))
	return result, nil
}
