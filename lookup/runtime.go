package lookup

import (
	"context"
	"os"
	"sync"

	"github.com/casualjim/tryget"
)

// SyncMap looks key up in m.
func SyncMap(m *sync.Map, key any) tryget.Dynamic {
	return tryget.FromPair(m.Load(key))
}

// Env looks up an environment variable. A variable that is set to the empty
// string is found.
func Env(key string) tryget.Result[string] {
	return tryget.FromPair(os.LookupEnv(key))
}

// Context looks key up in ctx and narrows the value to T.
// A key with no value in ctx, or a nil value, is not found.
func Context[T any](ctx context.Context, key any) tryget.Result[T] {
	return tryget.As[T](tryget.Found(ctx.Value(key)))
}
