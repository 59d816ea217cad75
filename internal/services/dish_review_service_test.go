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

func newDishReviewFixture(t *testing.T) (*gorm.DB, DishReviewService, *models.User, *models.Dish) {
	t.Helper()

	db := newTestDB(t)
	author := createTestUser(t, db, "author", models.UserRoleUser)
	category := createTestCategory(t, db, "Japanese")
	restaurant := createTestRestaurant(t, db, "Izakaya", category.ID, author.ID)
	dish := createTestDish(t, db, restaurant.ID, "Ramen")

	svc := NewDishReviewService(db, repositories.NewDishReviewRepository(), repositories.NewDishRepository())
	return db, svc, author, dish
}

func TestCreateDishReview_UpdatesDishSummary(t *testing.T) {
	db, svc, author, dish := newDishReviewFixture(t)

	resp, err := svc.CreateReview(dish.ID, author.ID, &dto.CreateReviewRequest{Rating: 5, Comment: "best ramen"})
	require.NoError(t, err)
	assert.Equal(t, dish.ID, resp.DishID)

	got := loadDish(t, db, dish.ID)
	assert.Equal(t, int64(5), got.TotalRatingSum)
	assert.Equal(t, int64(1), got.ReviewCount)
	assert.Equal(t, 5.0, got.AverageRating())
}

func TestUpdateDishReview_RatingEditShiftsSum(t *testing.T) {
	db, svc, author, dish := newDishReviewFixture(t)

	created, err := svc.CreateReview(dish.ID, author.ID, &dto.CreateReviewRequest{Rating: 5, Comment: "best ramen"})
	require.NoError(t, err)

	_, err = svc.UpdateReview(created.ID, author.ID, &dto.UpdateReviewRequest{Rating: intPtr(2)})
	require.NoError(t, err)

	got := loadDish(t, db, dish.ID)
	assert.Equal(t, int64(2), got.TotalRatingSum)
	assert.Equal(t, int64(1), got.ReviewCount)
}

func TestUpdateDishReview_NonAuthorForbidden(t *testing.T) {
	db, svc, author, dish := newDishReviewFixture(t)
	stranger := createTestUser(t, db, "stranger", models.UserRoleUser)

	created, err := svc.CreateReview(dish.ID, author.ID, &dto.CreateReviewRequest{Rating: 3, Comment: "ok"})
	require.NoError(t, err)

	_, err = svc.UpdateReview(created.ID, stranger.ID, &dto.UpdateReviewRequest{Comment: strPtr("hijacked")})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestDeleteDishReview_SubtractsSummary(t *testing.T) {
	db, svc, author, dish := newDishReviewFixture(t)

	created, err := svc.CreateReview(dish.ID, author.ID, &dto.CreateReviewRequest{Rating: 4, Comment: "good"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(created.ID, author.ID, models.UserRoleUser))

	got := loadDish(t, db, dish.ID)
	assert.Equal(t, int64(0), got.TotalRatingSum)
	assert.Equal(t, int64(0), got.ReviewCount)
}

func TestListDishReviews_MissingDish(t *testing.T) {
	_, svc, _, _ := newDishReviewFixture(t)

	_, err := svc.ListReviews("0e9f6a1c-0000-4000-8000-000000000000")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
