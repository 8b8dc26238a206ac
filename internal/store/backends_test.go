package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
)

// newSQLiteStorages opens a migrated durable store in a temporary file.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	ctx := context.Background()
	db, err := NewConnect(ctx, config.DB{
		DSN:    filepath.Join(t.TempDir(), "careers.db"),
		Driver: config.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	s := NewSQLStorages(db, bcrypt.MinCost, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func bothBackends(t *testing.T) map[models.StorageMode]*Storages {
	return map[models.StorageMode]*Storages{
		models.StorageModeDurable: newSQLiteStorages(t),
		models.StorageModeMemory:  NewMemoryStorages(),
	}
}

func TestBackends_SearchCareersBySkillAgree(t *testing.T) {
	ctx := context.Background()

	for mode, s := range bothBackends(t) {
		t.Run(string(mode), func(t *testing.T) {
			_, err := s.Careers.CreateCareer(ctx, testCareer("c-1", "Lab Manager", "R&D", "Éclairage", "<html>"))
			require.NoError(t, err)
			_, err = s.Careers.CreateCareer(ctx, testCareer("c-2", "Clerk", "typing"))
			require.NoError(t, err)

			for _, skill := range []string{"R&D", "r&d", "éclairage", "ÉCLAIRAGE", "<HTML>"} {
				found, err := s.Careers.SearchCareersBySkill(ctx, skill)
				require.NoError(t, err)
				require.Len(t, found, 1, skill)
				assert.Equal(t, "c-1", found[0].ID)
			}

			found, err := s.Careers.SearchCareersBySkill(ctx, "R&")
			require.NoError(t, err)
			assert.Empty(t, found)
		})
	}
}

func TestBackends_EmptyListsSerializeAlike(t *testing.T) {
	ctx := context.Background()

	career := testCareer("c-1", "Curator")
	career.Requirements = nil
	career.Skills = nil
	career.Industries = nil

	for mode, s := range bothBackends(t) {
		t.Run(string(mode), func(t *testing.T) {
			created, err := s.Careers.CreateCareer(ctx, career)
			require.NoError(t, err)
			got, err := s.Careers.GetCareerByID(ctx, "c-1")
			require.NoError(t, err)

			for _, c := range []models.Career{created, got} {
				b, err := json.Marshal(c)
				require.NoError(t, err)
				assert.Contains(t, string(b), `"requirements":[]`)
				assert.Contains(t, string(b), `"skills":[]`)
				assert.Contains(t, string(b), `"industries":[]`)
			}
		})
	}
}
