package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetReviewSummaryQueryIsNotConstructed = errors.New(
	"GetReviewSummaryQuery must be created via NewGetReviewSummaryQuery constructor",
)

// GetReviewSummaryQuery retrieves a restaurant's review statistics: count,
// mean rating, a 1-to-5 histogram, and the five most recent reviews.
type GetReviewSummaryQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewSummaryQuery creates a review summary query.
func NewGetReviewSummaryQuery(restaurantID kernel.UUID) (GetReviewSummaryQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetReviewSummaryQuery{}, err
	}

	return GetReviewSummaryQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReviewSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewSummaryQueryIsNotConstructed)
}

// ReviewSummaryResponse aggregates a restaurant's reviews.
type ReviewSummaryResponse struct {
	RestaurantID  kernel.UUID
	TotalReviews  int
	AverageRating float64
	RatingCounts  map[int]int
	RecentReviews []ReviewResponse
}

// GetReviewSummaryQueryHandler serves the review summary read model.
type GetReviewSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewSummaryQueryHandler creates a handler for review summaries.
func NewGetReviewSummaryQueryHandler(db *gorm.DB) GetReviewSummaryQueryHandler {
	return GetReviewSummaryQueryHandler{db: db}
}

// Handle returns the summary. The restaurant must exist; with no reviews the
// summary is all zeros with an empty histogram.
func (h GetReviewSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetReviewSummaryQuery,
) (ReviewSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewSummaryResponse{}, err
	}

	var exists bool
	if err := h.db.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = ?)`,
		query.restaurantID.String()).Scan(&exists).Error; err != nil {
		return ReviewSummaryResponse{}, err
	}
	if !exists {
		return ReviewSummaryResponse{}, errs.NewObjectNotFoundError("restaurant", query.restaurantID)
	}

	summary := ReviewSummaryResponse{
		RestaurantID: query.restaurantID,
		RatingCounts: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE restaurant_id = ?
		GROUP BY rating
	`, query.restaurantID.String()).Rows()
	if err != nil {
		return ReviewSummaryResponse{}, err
	}
	defer rows.Close()

	ratingSum := 0
	for rows.Next() {
		var rating, count int
		if err = rows.Scan(&rating, &count); err != nil {
			return ReviewSummaryResponse{}, err
		}
		summary.RatingCounts[rating] = count
		summary.TotalReviews += count
		ratingSum += rating * count
	}
	if err = rows.Err(); err != nil {
		return ReviewSummaryResponse{}, err
	}
	rows.Close()

	if summary.TotalReviews > 0 {
		summary.AverageRating = float64(ratingSum) / float64(summary.TotalReviews)
	}

	recent := NewGetRestaurantReviewsQueryHandler(h.db)
	recentQuery, err := NewGetRestaurantReviewsQuery(query.restaurantID, 0, 5)
	if err != nil {
		return ReviewSummaryResponse{}, err
	}
	if summary.RecentReviews, err = recent.Handle(ctx, recentQuery); err != nil {
		return ReviewSummaryResponse{}, err
	}

	return summary, nil
}
