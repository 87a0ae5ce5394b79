package persist

import "context"

// Store is the durable key-value contract the user store mirrors itself to.
// Values are JSON documents; a missing key is reported with ok=false rather
// than an error.
type Store interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Keys of the two records kept per storefront session.
func UserKey(sessionID string) string   { return "user:" + sessionID }
func OrdersKey(sessionID string) string { return "orders:" + sessionID }
