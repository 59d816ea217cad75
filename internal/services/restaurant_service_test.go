package services

import (
	"testing"

	"resto_backend/internal/models"
	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRestaurantFixture(t *testing.T) (*gorm.DB, RestaurantService, *models.Category) {
	t.Helper()

	db := newTestDB(t)
	category := createTestCategory(t, db, "Mexican")
	svc := NewRestaurantService(db, repositories.NewRestaurantRepository(), repositories.NewCategoryRepository())
	return db, svc, category
}

func TestCreateRestaurant_UserSubmissionStartsPending(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	user := createTestUser(t, db, "submitter", models.UserRoleUser)

	created, err := svc.CreateRestaurant(user.ID, models.UserRoleUser, &dto.CreateRestaurantRequest{
		Name:        "Taqueria",
		Description: "Street tacos",
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RestaurantStatusPending), created.Status)

	// Pending submissions stay out of the public catalogue.
	listed, err := svc.ListRestaurants(nil)
	require.NoError(t, err)
	assert.Empty(t, listed)

	pending, err := svc.ListPendingRestaurants()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)
}

func TestCreateRestaurant_AdminSubmissionGoesLive(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	admin := createTestUser(t, db, "admin", models.UserRoleAdmin)

	created, err := svc.CreateRestaurant(admin.ID, models.UserRoleAdmin, &dto.CreateRestaurantRequest{
		Name:        "Cantina",
		Description: "Admin-curated",
		CategoryID:  category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RestaurantStatusApproved), created.Status)

	listed, err := svc.ListRestaurants(nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Cantina", listed[0].Name)
	assert.Equal(t, "Mexican", listed[0].Category)
}

func TestCreateRestaurant_DuplicateName(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	admin := createTestUser(t, db, "admin", models.UserRoleAdmin)

	req := &dto.CreateRestaurantRequest{
		Name:        "Cantina",
		Description: "first",
		CategoryID:  category.ID,
	}
	_, err := svc.CreateRestaurant(admin.ID, models.UserRoleAdmin, req)
	require.NoError(t, err)

	_, err = svc.CreateRestaurant(admin.ID, models.UserRoleAdmin, req)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestCreateRestaurant_UnknownCategory(t *testing.T) {
	db, svc, _ := newRestaurantFixture(t)
	user := createTestUser(t, db, "submitter", models.UserRoleUser)

	_, err := svc.CreateRestaurant(user.ID, models.UserRoleUser, &dto.CreateRestaurantRequest{
		Name:        "Orphan",
		Description: "no category",
		CategoryID:  "68b6f5a9-0000-4000-8000-000000000000",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetRestaurant_PendingVisibility(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	owner := createTestUser(t, db, "owner", models.UserRoleUser)
	stranger := createTestUser(t, db, "stranger", models.UserRoleUser)
	admin := createTestUser(t, db, "admin", models.UserRoleAdmin)

	created, err := svc.CreateRestaurant(owner.ID, models.UserRoleUser, &dto.CreateRestaurantRequest{
		Name:        "Hidden Gem",
		Description: "pending",
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	// Owner and admin see the pending entry.
	_, err = svc.GetRestaurant(created.ID, owner.ID, models.UserRoleUser)
	assert.NoError(t, err)
	_, err = svc.GetRestaurant(created.ID, admin.ID, models.UserRoleAdmin)
	assert.NoError(t, err)

	// Everyone else gets NotFound, same as the anonymous case.
	_, err = svc.GetRestaurant(created.ID, stranger.ID, models.UserRoleUser)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	_, err = svc.GetRestaurant(created.ID, "", models.UserRoleUser)
	assert.Error(t, err)
}

func TestSetRestaurantStatus_ApproveMakesPublic(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	owner := createTestUser(t, db, "owner", models.UserRoleUser)

	created, err := svc.CreateRestaurant(owner.ID, models.UserRoleUser, &dto.CreateRestaurantRequest{
		Name:        "Soon Open",
		Description: "pending",
		CategoryID:  category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetRestaurantStatus(created.ID, models.RestaurantStatusApproved))

	listed, err := svc.ListRestaurants(nil)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	require.NoError(t, svc.SetRestaurantStatus(created.ID, models.RestaurantStatusRejected))
	listed, err = svc.ListRestaurants(nil)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestListRestaurants_CategoryFilter(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	other := createTestCategory(t, db, "Thai")
	admin := createTestUser(t, db, "admin", models.UserRoleAdmin)

	_, err := svc.CreateRestaurant(admin.ID, models.UserRoleAdmin, &dto.CreateRestaurantRequest{
		Name: "Cantina", Description: "mexican", CategoryID: category.ID,
	})
	require.NoError(t, err)
	_, err = svc.CreateRestaurant(admin.ID, models.UserRoleAdmin, &dto.CreateRestaurantRequest{
		Name: "Bangkok House", Description: "thai", CategoryID: other.ID,
	})
	require.NoError(t, err)

	listed, err := svc.ListRestaurants(&dto.RestaurantFilterRequest{CategoryID: other.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Bangkok House", listed[0].Name)
}

func TestUpdateRestaurant_ChangesFields(t *testing.T) {
	db, svc, category := newRestaurantFixture(t)
	admin := createTestUser(t, db, "admin", models.UserRoleAdmin)

	created, err := svc.CreateRestaurant(admin.ID, models.UserRoleAdmin, &dto.CreateRestaurantRequest{
		Name: "Cantina", Description: "old", CategoryID: category.ID,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateRestaurant(created.ID, &dto.UpdateRestaurantRequest{
		Description: strPtr("new description"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new description", updated.Description)
	assert.Equal(t, "Cantina", updated.Name)
}

func TestDeleteRestaurant_Missing(t *testing.T) {
	_, svc, _ := newRestaurantFixture(t)

	err := svc.DeleteRestaurant("4f2b0e6d-0000-4000-8000-000000000000")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
