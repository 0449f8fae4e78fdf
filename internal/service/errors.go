package service

import (
	"context"
	"fmt"

	"backoffice/internal/cache"
	apperrors "backoffice/internal/errors"
)

const statsCacheKey = "stats:dashboard"

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

// dropStats forgets the cached dashboard figures after a write.
func dropStats(ctx context.Context, c *cache.Client) {
	_ = c.Delete(ctx, statsCacheKey)
}
