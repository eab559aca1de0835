package data

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"movieshelf/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewMovieRepo,
	NewTmdbClient,
)

const defaultCacheTTL = 15 * time.Minute

// Data encapsulates database and cache connections
type Data struct {
	db       *gorm.DB
	rdb      *redis.Client
	cacheTTL time.Duration
	log      *log.Helper
}

// NewData creates Data instance with database and Redis connections
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)

	if c == nil || c.Database == nil {
		return nil, nil, errors.New("missing data.database config")
	}

	db, err := gorm.Open(postgres.Open(c.Database.Source), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		l.Errorf("failed to connect to database: %v", err)
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		l.Errorf("failed to get database instance: %v", err)
		return nil, nil, err
	}

	maxIdle, maxOpen := c.Database.MaxIdleConns, c.Database.MaxOpenConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	if maxOpen <= 0 {
		maxOpen = 100
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if c.Database.AutoMigrate {
		if err := db.AutoMigrate(&Movie{}); err != nil {
			l.Errorf("failed to migrate database: %v", err)
			_ = sqlDB.Close()
			return nil, nil, err
		}
	}

	l.Info("database connected successfully")

	var rdb *redis.Client
	ttl := defaultCacheTTL
	if c.Redis != nil && c.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})
		if d := c.Redis.CacheTTL.AsDuration(); d > 0 {
			ttl = d
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			// Redis is optional, continue without it
			l.Warnf("failed to connect to redis: %v", err)
			_ = rdb.Close()
			rdb = nil
		} else {
			l.Info("redis connected successfully")
		}
	}

	data := &Data{
		db:       db,
		rdb:      rdb,
		cacheTTL: ttl,
		log:      l,
	}

	cleanup := func() {
		l.Info("closing data resources")
		if data.rdb != nil {
			if err := data.rdb.Close(); err != nil {
				l.Errorf("failed to close redis: %v", err)
			}
		}
		if err := sqlDB.Close(); err != nil {
			l.Errorf("failed to close database: %v", err)
		}
	}

	return data, cleanup, nil
}

// Ping reports whether the database answers.
func (d *Data) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// cacheGet decodes the JSON value stored under key into v. It reports false
// on a miss, when Redis is disabled, or when the entry is unreadable.
func (d *Data) cacheGet(ctx context.Context, key string, v interface{}) bool {
	if d.rdb == nil {
		return false
	}
	cached, err := d.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			d.log.Warnf("cache get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(cached, v); err != nil {
		d.log.Warnf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (d *Data) cacheSet(ctx context.Context, key string, v interface{}) {
	if d.rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := d.rdb.Set(ctx, key, b, d.cacheTTL).Err(); err != nil {
		d.log.Warnf("cache set %s: %v", key, err)
	}
}

func (d *Data) cacheDel(ctx context.Context, keys ...string) {
	if d.rdb == nil {
		return
	}
	if err := d.rdb.Del(ctx, keys...).Err(); err != nil {
		d.log.Warnf("cache del %v: %v", keys, err)
	}
}
