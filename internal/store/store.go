// Package store is the persistence boundary: named JSON blobs behind a
// key-value interface, write-through, last-write-wins. Consumers decode the
// blobs themselves and fall back to built-in defaults when a value is absent
// or malformed.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Persisted keys. The order list and every singleton lives under exactly one
// of these.
const (
	KeyAdminAuth    = "adminAuth"
	KeyAgentConfig  = "agentConfig"
	KeyOrders       = "orders"
	KeyLastCustomer = "lastCustomer"
	KeyPriceList    = "priceList"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
