package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/axis-portal/internal/types"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractorRowColumns = []string{
	"id", "name", "description", "type", "location", "rating", "projects_completed",
	"certifications", "contact_email", "website", "is_verified",
}

func TestListContractors(t *testing.T) {
	store, mock := newMock(t)

	mock.ExpectQuery(`SELECT id::text, name, .* FROM contractors ORDER BY rating DESC NULLS LAST, name`).
		WillReturnRows(pgxmock.NewRows(contractorRowColumns).
			AddRow("c-1", "SolarTech Egypt", "Solar installs", "renewable_energy", "Cairo",
				4.8, 120, []string{"ISO 14001"}, "info@solartech.eg", "https://solartech.eg", true).
			AddRow("c-2", "Nile Water", "", "water_management", "",
				0.0, 0, []string{}, "", "", false))

	list, err := store.ListContractors(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "SolarTech Egypt", list[0].Name)
	assert.Equal(t, types.CategoryRenewableEnergy, list[0].Category)
	assert.InDelta(t, 4.8, list[0].Rating, 0.001)
	assert.Equal(t, []string{"ISO 14001"}, list[0].Certifications)
	assert.True(t, list[0].Verified)
	assert.Equal(t, types.CategoryWaterManagement, list[1].Category)
	assert.False(t, list[1].Verified)
}

func TestListContractors_Empty(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectQuery(`FROM contractors`).WillReturnRows(pgxmock.NewRows(contractorRowColumns))

	list, err := store.ListContractors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListContractors_QueryError(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectQuery(`FROM contractors`).WillReturnError(errors.New("connection reset"))

	_, err := store.ListContractors(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db: list contractors")
}

func TestUpsertContractor(t *testing.T) {
	store, mock := newMock(t)
	c := &types.Contractor{
		Name:     "EcoBuild Partners",
		Category: types.CategoryGreenBuilding,
		Rating:   4.5,
	}

	mock.ExpectQuery(`INSERT INTO contractors .* ON CONFLICT \(name\) DO UPDATE`).
		WithArgs(c.Name, c.Description, "green_building", c.Location, c.Rating, c.ProjectsCompleted,
			c.Certifications, c.ContactEmail, c.Website, c.Verified).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("c-9"))

	id, err := store.UpsertContractor(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, "c-9", id)
}

func TestUpsertContractor_Error(t *testing.T) {
	store, mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO contractors`).WillReturnError(errors.New("invalid enum"))

	_, err := store.UpsertContractor(context.Background(), &types.Contractor{Name: "Broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}
