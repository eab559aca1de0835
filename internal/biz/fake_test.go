package biz

import (
	"context"
	"fmt"
)

type fakeMovieRepo struct {
	movies  map[int64]*Movie
	order   []int64
	listErr error
}

func newFakeMovieRepo(movies ...*Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{movies: map[int64]*Movie{}}
	for _, m := range movies {
		r.movies[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

func (r *fakeMovieRepo) ListAll(ctx context.Context) ([]*Movie, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*Movie, 0, len(r.order))
	for _, id := range r.order {
		m := *r.movies[id]
		out = append(out, &m)
	}
	return out, nil
}

func (r *fakeMovieRepo) Get(ctx context.Context, id int64) (*Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, fmt.Errorf("movie %d: %w", id, ErrMovieNotFound)
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMovieRepo) Add(ctx context.Context, movie *Movie) error {
	if _, ok := r.movies[movie.ID]; ok {
		return ErrMovieExists
	}
	cp := *movie
	r.movies[movie.ID] = &cp
	r.order = append(r.order, movie.ID)
	return nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *Movie) error {
	if _, ok := r.movies[movie.ID]; !ok {
		return ErrMovieNotFound
	}
	cp := *movie
	r.movies[movie.ID] = &cp
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.movies[id]; !ok {
		return ErrMovieNotFound
	}
	delete(r.movies, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeSearchClient struct {
	results  []*SearchResult
	details  map[int64]*SearchResult
	err      error
	searched []string
}

func (c *fakeSearchClient) SearchByTitle(ctx context.Context, title string) ([]*SearchResult, error) {
	c.searched = append(c.searched, title)
	if c.err != nil {
		return nil, c.err
	}
	return c.results, nil
}

func (c *fakeSearchClient) Details(ctx context.Context, id int64) (*SearchResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	d, ok := c.details[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return d, nil
}
