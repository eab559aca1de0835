package data

import (
	"testing"
	"time"

	"movieshelf/internal/biz"
	"movieshelf/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"
)

func TestListOrder(t *testing.T) {
	names := func(o clause.OrderBy) []string {
		var out []string
		for _, c := range o.Columns {
			name := c.Column.Name
			if c.Desc {
				name += " desc"
			}
			out = append(out, name)
		}
		return out
	}

	assert.Equal(t, []string{"created_at", "id"}, names(listOrder(false)))
	assert.Equal(t, []string{"rating desc", "created_at", "id"}, names(listOrder(true)))
}

func TestNewMovieRepoStrategy(t *testing.T) {
	data := &Data{}
	assert.False(t, NewMovieRepo(data, nil, log.DefaultLogger).(*movieRepo).orderByRank)
	assert.False(t, NewMovieRepo(data, &conf.Ranking{Strategy: conf.RankingMerge}, log.DefaultLogger).(*movieRepo).orderByRank)
	assert.True(t, NewMovieRepo(data, &conf.Ranking{Strategy: conf.RankingQuery}, log.DefaultLogger).(*movieRepo).orderByRank)
}

func TestModelConversion(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	in := &biz.Movie{
		ID:          438631,
		Title:       "Dune",
		Year:        2021,
		Description: "A noble family becomes embroiled in a war.",
		Rating:      8.0,
		Ranking:     3,
		Review:      "This is a fantastic movie!",
		ImgURL:      "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
		CreatedAt:   created,
	}

	out := modelToBiz(bizToModel(in))

	// ranking is derived on read and does not survive storage
	assert.Zero(t, out.Ranking)
	out.Ranking = in.Ranking
	assert.Equal(t, in, out)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "movie:603", movieCacheKey(603))
	assert.Equal(t, "tmdb:movie:603", detailsCacheKey(603))
	assert.Equal(t, "tmdb:search:the matrix", searchCacheKey("The Matrix"))
}
