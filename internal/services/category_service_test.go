package services

import (
	"testing"

	"resto_backend/internal/repositories"
	"resto_backend/internal/services/dto"
	"resto_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) CategoryService {
	t.Helper()
	return NewCategoryService(newTestDB(t), repositories.NewCategoryRepository())
}

func TestCategoryCRUD(t *testing.T) {
	svc := newCategoryService(t)

	created, err := svc.CreateCategory(&dto.CreateCategoryRequest{Name: "Sushi", Description: "Raw fish"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.GetCategory(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sushi", got.Name)

	updated, err := svc.UpdateCategory(created.ID, &dto.UpdateCategoryRequest{Description: strPtr("Japanese cuisine")})
	require.NoError(t, err)
	assert.Equal(t, "Japanese cuisine", updated.Description)
	assert.Equal(t, "Sushi", updated.Name)

	all, err := svc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.DeleteCategory(created.ID))

	_, err = svc.GetCategory(created.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.CreateCategory(&dto.CreateCategoryRequest{Name: "Sushi"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(&dto.CreateCategoryRequest{Name: "Sushi"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestUpdateCategory_Missing(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.UpdateCategory("0b6de7c2-0000-4000-8000-000000000000", &dto.UpdateCategoryRequest{Name: strPtr("Ghost")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
