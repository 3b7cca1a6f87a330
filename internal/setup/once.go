package setup

import (
	"context"
	"sync"

	"github.com/bornholm/rentor/internal/config"
	"github.com/pkg/errors"
)

type fromConfigFunc[T any] func(ctx context.Context, conf *config.Config) (T, error)

// createFromConfigOnce memoizes factory so that every caller shares the
// same instance.
func createFromConfigOnce[T any](factory fromConfigFunc[T]) fromConfigFunc[T] {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = factory(ctx, conf)
		})
		if err != nil {
			return *new(T), errors.WithStack(err)
		}

		return value, nil
	}
}
