package errx

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps redis.Nil to CodeNotFound and every other Redis failure to CodeStore.
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, redis.Nil) {
		return New(err, CodeNotFound, NotFoundMessage)
	}
	return New(err, CodeStore, StoreErrorMessage)
}
