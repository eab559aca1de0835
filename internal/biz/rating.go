package biz

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

const (
	MinRating       = 0.0
	MaxRating       = 10.0
	MaxReviewLength = 250
)

var (
	ErrInvalidRating = errors.BadRequest("INVALID_RATING", fmt.Sprintf("rating must be between %.0f and %.0f", MinRating, MaxRating))
	ErrInvalidReview = errors.BadRequest("INVALID_REVIEW", fmt.Sprintf("review must be at most %d characters", MaxReviewLength))
)

// RatingUseCase handles the user's rating and review of a stored movie
type RatingUseCase struct {
	repo MovieRepo
	log  *log.Helper
}

// NewRatingUseCase creates a new RatingUseCase instance
func NewRatingUseCase(repo MovieRepo, logger log.Logger) *RatingUseCase {
	return &RatingUseCase{
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// Edit sets the rating of a stored movie, and its review when review is
// not nil.
func (uc *RatingUseCase) Edit(ctx context.Context, id int64, rating float64, review *string) (*Movie, error) {
	if rating < MinRating || rating > MaxRating || math.IsNaN(rating) {
		return nil, ErrInvalidRating
	}
	if review != nil && utf8.RuneCountInString(*review) > MaxReviewLength {
		return nil, ErrInvalidReview
	}

	movie, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	movie.Rating = rating
	if review != nil {
		movie.Review = *review
	}
	if err := uc.repo.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	uc.log.WithContext(ctx).Debugf("rated movie %d: %.1f", id, rating)

	return movie, nil
}
