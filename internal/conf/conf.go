package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server  *Server  `json:"server"`
	Data    *Data    `json:"data"`
	Tmdb    *Tmdb    `json:"tmdb"`
	Ranking *Ranking `json:"ranking"`
	Log     *Log     `json:"log"`
}

type Server struct {
	Http      *Server_HTTP      `json:"http"`
	Grpc      *Server_GRPC      `json:"grpc"`
	RateLimit *Server_RateLimit `json:"rate_limit"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

type Server_GRPC struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Server_RateLimit configures the per client IP token bucket.
// A zero Rps disables limiting.
type Server_RateLimit struct {
	Rps   float64 `json:"rps"`
	Burst int     `json:"burst"`
}

type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

type Data_Database struct {
	Driver       string `json:"driver"`
	Source       string `json:"source"`
	AutoMigrate  bool   `json:"auto_migrate"`
	MaxIdleConns int    `json:"max_idle_conns"`
	MaxOpenConns int    `json:"max_open_conns"`
}

type Data_Redis struct {
	Addr         string    `json:"addr"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
	CacheTTL     *Duration `json:"cache_ttl"`
}

// Tmdb configures the external movie database client. AccessToken is the
// v4 read access token, sent as a bearer token.
type Tmdb struct {
	Url          string    `json:"url"`
	ImageBaseUrl string    `json:"image_base_url"`
	AccessToken  string    `json:"access_token"`
	Timeout      *Duration `json:"timeout"`
	MaxRetries   int32     `json:"max_retries"`
}

const (
	RankingMerge = "merge"
	RankingQuery = "query"
)

type Ranking struct {
	// Strategy is either "merge" or "query".
	Strategy string `json:"strategy"`
}

type Log struct {
	Level string `json:"level"`
}

// Duration is a time.Duration read from a string such as "1.5s".
// Plain numbers are taken as seconds.
type Duration struct {
	time.Duration
}

func NewDuration(d time.Duration) *Duration {
	return &Duration{Duration: d}
}

// AsDuration returns the wrapped value; a nil receiver yields zero.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
