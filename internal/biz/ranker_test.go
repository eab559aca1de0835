package biz

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moviesWithRatings(ratings ...float64) []*Movie {
	movies := make([]*Movie, len(ratings))
	for i, r := range ratings {
		movies[i] = &Movie{ID: int64(i + 1), Rating: r}
	}
	return movies
}

type ranked struct {
	ID      int64
	Rating  float64
	Ranking int
}

func summarize(movies []*Movie) []ranked {
	out := make([]ranked, len(movies))
	for i, m := range movies {
		out[i] = ranked{ID: m.ID, Rating: m.Rating, Ranking: m.Ranking}
	}
	return out
}

func TestRank(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    []ranked
	}{
		{
			name:    "descending order",
			ratings: []float64{7.3, 0.0, 8.0},
			want:    []ranked{{3, 8.0, 1}, {1, 7.3, 2}, {2, 0.0, 3}},
		},
		{
			name:    "ties keep input order",
			ratings: []float64{5.0, 5.0, 9.0},
			want:    []ranked{{3, 9.0, 1}, {1, 5.0, 2}, {2, 5.0, 3}},
		},
		{
			name:    "single movie",
			ratings: []float64{4.2},
			want:    []ranked{{1, 4.2, 1}},
		},
		{
			name:    "all equal",
			ratings: []float64{6, 6, 6, 6},
			want:    []ranked{{1, 6, 1}, {2, 6, 2}, {3, 6, 3}, {4, 6, 4}},
		},
		{
			name:    "already sorted",
			ratings: []float64{9, 8, 7},
			want:    []ranked{{1, 9, 1}, {2, 8, 2}, {3, 7, 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(moviesWithRatings(tt.ratings...))
			if diff := cmp.Diff(tt.want, summarize(got)); diff != "" {
				t.Errorf("Rank() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRankEmpty(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]*Movie{}))
}

func TestRankLeavesInputOrder(t *testing.T) {
	in := moviesWithRatings(1, 3, 2)
	Rank(in)
	assert.Equal(t, []int64{1, 2, 3}, []int64{in[0].ID, in[1].ID, in[2].ID})
	// rankings are written through the shared records
	assert.Equal(t, []int{3, 1, 2}, []int{in[0].Ranking, in[1].Ranking, in[2].Ranking})
}

func TestRankProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		n := rng.Intn(40)
		ratings := make([]float64, n)
		for i := range ratings {
			// few distinct values so ties are common
			ratings[i] = float64(rng.Intn(6)) / 2
		}
		in := moviesWithRatings(ratings...)
		got := Rank(in)

		require.Len(t, got, n)
		seen := make(map[int64]bool, n)
		for i, m := range got {
			require.False(t, seen[m.ID], "movie %d emitted twice", m.ID)
			seen[m.ID] = true
			assert.Equal(t, i+1, m.Ranking)
			if i == 0 {
				continue
			}
			prev := got[i-1]
			require.GreaterOrEqual(t, prev.Rating, m.Rating)
			if prev.Rating == m.Rating {
				// ids follow input order
				require.Less(t, prev.ID, m.ID)
			}
		}

		again := Rank(got)
		if diff := cmp.Diff(summarize(got), summarize(again)); diff != "" {
			t.Fatalf("ranking is not idempotent (-first +second):\n%s", diff)
		}
	}
}
