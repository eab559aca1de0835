package biz

import (
	"context"
	"time"
)

// Movie domain model. ID is the external movie database identifier and is
// never generated locally. Ranking is derived on every listing.
type Movie struct {
	ID          int64
	Title       string
	Year        int
	Description string
	Rating      float64
	Ranking     int
	Review      string
	ImgURL      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SearchResult is one hit from the external movie database.
type SearchResult struct {
	ID          int64
	Title       string
	ReleaseDate string
	Overview    string
	PosterPath  string
	// PosterURL is PosterPath resolved against the image base URL.
	PosterURL string
}

// MovieRepo defines the repository interface for movies
type MovieRepo interface {
	ListAll(ctx context.Context) ([]*Movie, error)
	Get(ctx context.Context, id int64) (*Movie, error)
	Add(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int64) error
}

// SearchClient defines the interface for the external movie database client
type SearchClient interface {
	SearchByTitle(ctx context.Context, title string) ([]*SearchResult, error)
	Details(ctx context.Context, id int64) (*SearchResult, error)
}
