package repositories_test

import (
	"testing"

	"watchstore/internal/models"
	"watchstore/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMSettingRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.Setting{}))
	repo := repositories.NewGORMSettingRepository(db)

	require.NoError(t, repo.Upsert("maintenanceMode", "true"))
	require.NoError(t, repo.Upsert("maintenanceMode", "false")) // same key, new value
	require.NoError(t, repo.Upsert("lowStockAlerts", "true"))

	settings, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, settings, 2)

	values := map[string]string{}
	for _, s := range settings {
		values[s.Key] = s.Value
	}
	assert.Equal(t, "false", values["maintenanceMode"])
	assert.Equal(t, "true", values["lowStockAlerts"])
}
