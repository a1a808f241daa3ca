package config

const (
	redisAddrVar      = "REDIS_ADDR"
	redisKeyPrefixVar = "REDIS_KEY_PREFIX"
)

type Redis struct{}

var _ RedisConfig = Redis{}

// GetRedisAddr returns the Redis host:port. An empty value selects the
// in-memory repositories instead.
func (Redis) GetRedisAddr() string {
	return GetEnv(redisAddrVar, "")
}

func (Redis) GetRedisKeyPrefix() string {
	return GetEnv(redisKeyPrefixVar, "storefront:")
}
