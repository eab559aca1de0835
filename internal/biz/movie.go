package biz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

var (
	ErrMovieNotFound = errors.NotFound("MOVIE_NOT_FOUND", "movie not found")
	ErrMovieExists   = errors.Conflict("MOVIE_EXISTS", "movie already in the collection")
	ErrInvalidTitle  = errors.BadRequest("INVALID_TITLE", "title is required")
)

// MovieUseCase handles listing, searching, adding and deleting movies
type MovieUseCase struct {
	repo   MovieRepo
	search SearchClient
	log    *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(repo MovieRepo, search SearchClient, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		repo:   repo,
		search: search,
		log:    log.NewHelper(logger),
	}
}

// ListRanked loads every stored movie and ranks it by rating.
func (uc *MovieUseCase) ListRanked(ctx context.Context) ([]*Movie, error) {
	movies, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return Rank(movies), nil
}

// Get retrieves a stored movie by id
func (uc *MovieUseCase) Get(ctx context.Context, id int64) (*Movie, error) {
	movie, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}

// Search queries the external movie database by title.
func (uc *MovieUseCase) Search(ctx context.Context, title string) ([]*SearchResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	results, err := uc.search.SearchByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return results, nil
}

// AddFromSearch stores the movie the user picked from a search. The caller
// passes the external id it got from Search; nothing is remembered between
// the two steps.
func (uc *MovieUseCase) AddFromSearch(ctx context.Context, tmdbID int64) (*Movie, error) {
	if _, err := uc.repo.Get(ctx, tmdbID); err == nil {
		return nil, ErrMovieExists
	} else if !errors.Is(err, ErrMovieNotFound) {
		return nil, fmt.Errorf("failed to check movie %d: %w", tmdbID, err)
	}

	details, err := uc.search.Details(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", tmdbID, err)
	}

	movie := &Movie{
		ID:          details.ID,
		Title:       details.Title,
		Year:        releaseYear(details.ReleaseDate),
		Description: details.Overview,
		ImgURL:      details.PosterURL,
	}
	if movie.ID == 0 {
		movie.ID = tmdbID
	}

	if err := uc.repo.Add(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to add movie: %w", err)
	}
	uc.log.WithContext(ctx).Infof("added movie %d %q", movie.ID, movie.Title)

	return movie, nil
}

// Delete removes a stored movie
func (uc *MovieUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}

// releaseYear extracts the year from a YYYY-MM-DD date, 0 when unknown.
func releaseYear(date string) int {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	return t.Year()
}
