package interfaces

import "context"

// IKeyLocker serializes work per key across callers.
//
// Lock blocks until the key is held or ctx ends; the returned func releases it.
type IKeyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
