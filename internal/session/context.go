package session

import "context"

type storeContextKey string

const storeKey storeContextKey = "session_store"

func WithStore(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey, store)
}

func StoreFromContext(ctx context.Context) (*Store, bool) {
	store, ok := ctx.Value(storeKey).(*Store)
	return store, ok
}
