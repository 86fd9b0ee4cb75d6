package redis_test

import (
	"testing"

	"homestay/config"
	"homestay/infras/redis"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache"
	cfg.Cache.Redis.Primary.Port = "6379"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2

	opts := redis.Options(cfg)

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}
