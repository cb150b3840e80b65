// Package metadata stores small key/value settings, such as the access
// token, in the client's SQLite database.
package metadata

import (
	"context"
)

type Repository interface {
	// Get reports ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
