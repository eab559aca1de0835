package data

import (
	"context"
	"errors"
	"fmt"

	"movieshelf/internal/biz"
	"movieshelf/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type movieRepo struct {
	data        *Data
	orderByRank bool
	log         *log.Helper
}

// NewMovieRepo creates a new movie repository. With the "query" ranking
// strategy rows come back ordered by rating; otherwise in insertion order.
func NewMovieRepo(data *Data, c *conf.Ranking, logger log.Logger) biz.MovieRepo {
	return &movieRepo{
		data:        data,
		orderByRank: c != nil && c.Strategy == conf.RankingQuery,
		log:         log.NewHelper(logger),
	}
}

func movieCacheKey(id int64) string {
	return fmt.Sprintf("movie:%d", id)
}

func (r *movieRepo) ListAll(ctx context.Context) ([]*biz.Movie, error) {
	var dbMovies []Movie
	if err := r.data.db.WithContext(ctx).Clauses(listOrder(r.orderByRank)).Find(&dbMovies).Error; err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	movies := make([]*biz.Movie, 0, len(dbMovies))
	for i := range dbMovies {
		movies = append(movies, modelToBiz(&dbMovies[i]))
	}
	return movies, nil
}

// listOrder keeps insertion order as the final tie breaker so equal
// ratings stay stable between requests.
func listOrder(byRating bool) clause.OrderBy {
	columns := []clause.OrderByColumn{
		{Column: clause.Column{Name: "created_at"}},
		{Column: clause.Column{Name: "id"}},
	}
	if byRating {
		columns = append([]clause.OrderByColumn{
			{Column: clause.Column{Name: "rating"}, Desc: true},
		}, columns...)
	}
	return clause.OrderBy{Columns: columns}
}

func (r *movieRepo) Get(ctx context.Context, id int64) (*biz.Movie, error) {
	var cached biz.Movie
	if r.data.cacheGet(ctx, movieCacheKey(id), &cached) {
		r.log.Debugf("cache hit for movie: %d", id)
		return &cached, nil
	}

	var dbMovie Movie
	if err := r.data.db.WithContext(ctx).First(&dbMovie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, biz.ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	movie := modelToBiz(&dbMovie)
	r.data.cacheSet(ctx, movieCacheKey(id), movie)
	return movie, nil
}

func (r *movieRepo) Add(ctx context.Context, movie *biz.Movie) error {
	dbMovie := bizToModel(movie)
	if err := r.data.db.WithContext(ctx).Create(dbMovie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return biz.ErrMovieExists
		}
		return fmt.Errorf("failed to create movie: %w", err)
	}
	movie.CreatedAt = dbMovie.CreatedAt
	movie.UpdatedAt = dbMovie.UpdatedAt

	r.data.cacheDel(ctx, movieCacheKey(movie.ID))
	return nil
}

// Update and Delete drop the cache entry on both sides of the write. A Get
// that read the old row before the write and stores it after the second
// delete can still leave a stale entry until cacheTTL expires.
func (r *movieRepo) Update(ctx context.Context, movie *biz.Movie) error {
	r.data.cacheDel(ctx, movieCacheKey(movie.ID))

	dbMovie := bizToModel(movie)
	result := r.data.db.WithContext(ctx).
		Model(&Movie{ID: movie.ID}).
		Select("title", "year", "description", "rating", "review", "img_url", "updated_at").
		Updates(dbMovie)
	if result.Error != nil {
		return fmt.Errorf("failed to update movie %d: %w", movie.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return biz.ErrMovieNotFound
	}
	movie.UpdatedAt = dbMovie.UpdatedAt

	r.data.cacheDel(ctx, movieCacheKey(movie.ID))
	return nil
}

func (r *movieRepo) Delete(ctx context.Context, id int64) error {
	r.data.cacheDel(ctx, movieCacheKey(id))

	result := r.data.db.WithContext(ctx).Delete(&Movie{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return biz.ErrMovieNotFound
	}

	r.data.cacheDel(ctx, movieCacheKey(id))
	return nil
}

// Helper: Convert biz.Movie to data.Movie. Ranking is never stored.
func bizToModel(m *biz.Movie) *Movie {
	return &Movie{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Description: m.Description,
		Rating:      m.Rating,
		Review:      m.Review,
		ImgURL:      m.ImgURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Helper: Convert data.Movie to biz.Movie
func modelToBiz(m *Movie) *biz.Movie {
	return &biz.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Year:        m.Year,
		Description: m.Description,
		Rating:      m.Rating,
		Review:      m.Review,
		ImgURL:      m.ImgURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
