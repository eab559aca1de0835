package service

import (
	"context"

	"movieshelf/internal/biz"

	"github.com/go-kratos/kratos/v2/errors"
)

// MovieService implements the movie API
type MovieService struct {
	movieUC  *biz.MovieUseCase
	ratingUC *biz.RatingUseCase
}

// NewMovieService creates a new MovieService
func NewMovieService(movieUC *biz.MovieUseCase, ratingUC *biz.RatingUseCase) *MovieService {
	return &MovieService{
		movieUC:  movieUC,
		ratingUC: ratingUC,
	}
}

// ListMovies returns every stored movie ranked by rating
func (s *MovieService) ListMovies(ctx context.Context, req *ListMoviesRequest) (*ListMoviesReply, error) {
	movies, err := s.movieUC.ListRanked(ctx)
	if err != nil {
		return nil, err
	}

	reply := &ListMoviesReply{
		Movies: make([]*MovieItem, 0, len(movies)),
	}
	for _, m := range movies {
		reply.Movies = append(reply.Movies, movieToItem(m))
	}
	return reply, nil
}

// GetMovie returns a single stored movie
func (s *MovieService) GetMovie(ctx context.Context, req *GetMovieRequest) (*MovieItem, error) {
	if req.Id <= 0 {
		return nil, errors.BadRequest("INVALID_ID", "id must be positive")
	}
	movie, err := s.movieUC.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return movieToItem(movie), nil
}

// SearchMovies looks a title up in the external movie database
func (s *MovieService) SearchMovies(ctx context.Context, req *SearchMoviesRequest) (*SearchMoviesReply, error) {
	results, err := s.movieUC.Search(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	reply := &SearchMoviesReply{
		Results: make([]*SearchResultItem, 0, len(results)),
	}
	for _, r := range results {
		reply.Results = append(reply.Results, &SearchResultItem{
			Id:          r.ID,
			Title:       r.Title,
			ReleaseDate: r.ReleaseDate,
			Overview:    r.Overview,
			PosterPath:  r.PosterPath,
			PosterUrl:   r.PosterURL,
		})
	}
	return reply, nil
}

// AddMovie stores the selected search result
func (s *MovieService) AddMovie(ctx context.Context, req *AddMovieRequest) (*MovieItem, error) {
	if req.TmdbId <= 0 {
		return nil, errors.BadRequest("INVALID_ID", "tmdb_id is required")
	}
	movie, err := s.movieUC.AddFromSearch(ctx, req.TmdbId)
	if err != nil {
		return nil, err
	}
	return movieToItem(movie), nil
}

// EditMovie updates the rating and review of a stored movie
func (s *MovieService) EditMovie(ctx context.Context, req *EditMovieRequest) (*MovieItem, error) {
	if req.Id <= 0 {
		return nil, errors.BadRequest("INVALID_ID", "id must be positive")
	}
	if req.Rating == nil {
		return nil, errors.BadRequest("INVALID_RATING", "rating is required")
	}
	movie, err := s.ratingUC.Edit(ctx, req.Id, *req.Rating, req.Review)
	if err != nil {
		return nil, err
	}
	return movieToItem(movie), nil
}

// DeleteMovie removes a stored movie
func (s *MovieService) DeleteMovie(ctx context.Context, req *DeleteMovieRequest) (*DeleteMovieReply, error) {
	if req.Id <= 0 {
		return nil, errors.BadRequest("INVALID_ID", "id must be positive")
	}
	if err := s.movieUC.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return &DeleteMovieReply{}, nil
}

// HealthCheck implements health check
func (s *MovieService) HealthCheck(ctx context.Context, req *HealthCheckRequest) (*HealthCheckReply, error) {
	return &HealthCheckReply{
		Status: "ok",
	}, nil
}

func movieToItem(m *biz.Movie) *MovieItem {
	return &MovieItem{
		Id:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Description: m.Description,
		Rating:      m.Rating,
		Ranking:     m.Ranking,
		Review:      m.Review,
		ImgUrl:      m.ImgURL,
	}
}
