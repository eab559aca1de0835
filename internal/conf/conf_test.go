package conf

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"string", `"1.5s"`, 1500 * time.Millisecond},
		{"minutes", `"15m"`, 15 * time.Minute},
		{"seconds as number", `2`, 2 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, d.AsDuration())
		})
	}
}

func TestDurationUnmarshalInvalid(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestBootstrapFromJSON(t *testing.T) {
	raw := `{
		"server": {"http": {"addr": "0.0.0.0:8000", "timeout": "1s"}},
		"data": {"redis": {"addr": "127.0.0.1:6379", "cache_ttl": "15m"}},
		"ranking": {"strategy": "query"}
	}`
	var bc Bootstrap
	require.NoError(t, json.Unmarshal([]byte(raw), &bc))

	assert.Equal(t, "0.0.0.0:8000", bc.Server.Http.Addr)
	assert.Equal(t, time.Second, bc.Server.Http.Timeout.AsDuration())
	assert.Equal(t, 15*time.Minute, bc.Data.Redis.CacheTTL.AsDuration())
	assert.Nil(t, bc.Data.Redis.ReadTimeout)
	assert.Zero(t, bc.Data.Redis.ReadTimeout.AsDuration())
	assert.Equal(t, RankingQuery, bc.Ranking.Strategy)
}
