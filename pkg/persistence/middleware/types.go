// Package middleware provides composable wrappers around a
// ports.HistoryStore, such as encryption at rest and outcome filtering.
package middleware

import "github.com/hardikgohil73253/SEP-D3/pkg/ports"

// Middleware allows wrapping a HistoryStore to add behavior.
type Middleware func(ports.HistoryStore) ports.HistoryStore

// Chain wraps store so that the first middleware listed sees calls first.
func Chain(store ports.HistoryStore, mws ...Middleware) ports.HistoryStore {
	for i := len(mws) - 1; i >= 0; i-- {
		store = mws[i](store)
	}
	return store
}
