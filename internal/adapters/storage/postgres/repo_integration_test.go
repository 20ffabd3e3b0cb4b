//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"pet-weight-tracker/internal/domain/pets"
	"pet-weight-tracker/internal/domain/weights"
)

const schema = `
CREATE TABLE IF NOT EXISTS pets (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS weights (
	id        TEXT PRIMARY KEY,
	pet_id    TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
	weight_kg DOUBLE PRECISION NOT NULL,
	date      DATE NOT NULL
);
`

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pwt_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, schema)
	require.NoError(t, err)

	return db
}

func TestPetsRepo_SaveAndFindByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupDB(t)
	repo := NewPetsRepo(db)
	ctx := context.Background()

	p, err := pets.New("Buddy")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, p.ID(), got.ID())
	assert.Equal(t, "Buddy", got.Name())
}

func TestPetsRepo_FindByID_Missing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupDB(t)
	repo := NewPetsRepo(db)

	_, err := repo.FindByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestPetsRepo_Save_UpsertsName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupDB(t)
	repo := NewPetsRepo(db)
	ctx := context.Background()

	p, err := pets.New("Buddy")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, p.Rename("Milo"))
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Milo", got.Name())
}

func TestWeightsRepo_FindByPetID_OrdersByDateDesc(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupDB(t)
	petsRepo := NewPetsRepo(db)
	weightsRepo := NewWeightsRepo(db)
	ctx := context.Background()

	p, err := pets.New("Buddy")
	require.NoError(t, err)
	require.NoError(t, petsRepo.Save(ctx, p))

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	// Insertados en orden arbitrario
	for _, in := range []struct {
		kg   float64
		date time.Time
	}{
		{24.0, day(2024, 1, 10)},
		{25.5, day(2024, 4, 10)},
		{23.2, day(2024, 1, 1)},
	} {
		w, err := weights.New(p.ID(), in.kg, in.date)
		require.NoError(t, err)
		require.NoError(t, weightsRepo.Save(ctx, w))
	}

	out, err := weightsRepo.FindByPetID(ctx, p.ID())
	require.NoError(t, err)
	require.Len(t, out, 3)

	wantDates := []string{"2024-04-10", "2024-01-10", "2024-01-01"}
	for i, w := range out {
		assert.Equal(t, wantDates[i], w.Date().Format("2006-01-02"))
		assert.Equal(t, p.ID(), w.PetID())
	}
}

func TestWeightsRepo_DeletePetCascadesToWeights(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := setupDB(t)
	petsRepo := NewPetsRepo(db)
	weightsRepo := NewWeightsRepo(db)
	ctx := context.Background()

	p, err := pets.New("Buddy")
	require.NoError(t, err)
	require.NoError(t, petsRepo.Save(ctx, p))

	w, err := weights.New(p.ID(), 10, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, weightsRepo.Save(ctx, w))

	// El borrado es responsabilidad del storage; la FK cascadea.
	_, err = db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, p.ID())
	require.NoError(t, err)

	out, err := weightsRepo.FindByPetID(ctx, p.ID())
	require.NoError(t, err)
	assert.Empty(t, out)
}
