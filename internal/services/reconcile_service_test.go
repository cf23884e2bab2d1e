package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

func seedSources() ([]models.RawCrime, []models.RawCrime) {
	crimes := []models.RawCrime{
		{"Artigo": "157", "Crime": "Roubo", "Descrição": "Subtrair coisa alheia", "Pena": 48, "Multa": 1000},
		{"Artigo": "155", "Crime": "Furto", "Pena": 12, "Multa": 500, "Fiança": 300},
		{"Artigo": "", "Crime": "linha sem artigo"},
	}
	fines := []models.RawCrime{
		{"article": "157", "title": "Roubo (multa)", "fine": 1500},
		{"article": "28", "title": "Porte de drogas", "fine": 200, "fiance": 100},
	}
	return crimes, fines
}

func loadTable(t *testing.T, svc CrimeService) []models.Crime {
	t.Helper()
	crimes, err := svc.ListCrimes(context.Background())
	require.NoError(t, err)
	return crimes
}

var ignoreRowMeta = cmpopts.IgnoreFields(models.Crime{}, "ID", "CreatedAt", "UpdatedAt")

func TestReconcileService_Run(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReconcileService(db, zaptest.NewLogger(t))
	crimes, fines := seedSources()

	result, err := svc.Run(context.Background(), crimes, fines)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 3, result.Upserted)
	assert.Equal(t, 5, result.Inputs)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, []string{"157"}, result.Merged)

	table := loadTable(t, NewCrimeService(db))
	require.Len(t, table, 3)

	assert.Equal(t, "157", table[0].Article)
	assert.Equal(t, "Roubo", table[0].Title)
	assert.InDelta(t, 1500, table[0].Fine, 1e-9)
	assert.NotZero(t, table[0].ID)
}

func TestReconcileService_IsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReconcileService(db, nil)
	crimeSvc := NewCrimeService(db)
	crimes, fines := seedSources()

	_, err := svc.Run(context.Background(), crimes, fines)
	require.NoError(t, err)
	first := loadTable(t, crimeSvc)

	_, err = svc.Run(context.Background(), crimes, fines)
	require.NoError(t, err)
	second := loadTable(t, crimeSvc)

	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(models.Crime{}, "CreatedAt", "UpdatedAt")); diff != "" {
		t.Errorf("table changed on re-run (-first +second):\n%s", diff)
	}
}

func TestReconcileService_UpsertOverwritesExistingArticle(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Crime{Article: "157", Title: "antigo", Time: 1, Fine: 1}).Error)

	svc := NewReconcileService(db, nil)
	n, err := svc.Upsert(context.Background(), []models.Crime{
		{Article: "157", Title: "Roubo", Description: "novo", Time: 48, Fine: 1000, Fiance: 0},
		{Article: "155", Title: "Furto", Time: 12, Fine: 500, Fiance: 300, Financable: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	want := []models.Crime{
		{Article: "157", Title: "Roubo", Description: "novo", Time: 48, Fine: 1000},
		{Article: "155", Title: "Furto", Time: 12, Fine: 500, Fiance: 300, Financable: true},
	}
	if diff := cmp.Diff(want, loadTable(t, NewCrimeService(db)), ignoreRowMeta); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestReconcileService_UpsertFailsFast(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReconcileService(db, nil)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	n, err := svc.Upsert(context.Background(), []models.Crime{{Article: "1"}, {Article: "2"}})
	assert.Error(t, err)
	assert.Zero(t, n)
}
