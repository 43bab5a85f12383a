package ports

import (
	"context"
	"time"
)

// RunLocker candado de ejecución exclusiva (una sola limpieza de duplicados a la vez).
// ok=false sin error significa que otro proceso tiene el candado.
type RunLocker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (unlock func(), ok bool, err error)
}
