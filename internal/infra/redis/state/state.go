package infra_state_store

import (
	"context"

	"github.com/go-redis/redis"
)

// Driver keeps session state in redis under a shared key prefix.
// Values live until overwritten; the engine owns their lifecycle.
type Driver struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Driver {
	return &Driver{
		client: client,
		prefix: prefix,
	}
}

func (d *Driver) Read(_ context.Context, key string) (string, bool, error) {
	val, err := d.client.Get(d.fullKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (d *Driver) Write(_ context.Context, key string, value string) error {
	return d.client.Set(d.fullKey(key), value, 0).Err()
}

func (d *Driver) fullKey(key string) string {
	if d.prefix != "" {
		return d.prefix + ":" + key
	}
	return key
}
