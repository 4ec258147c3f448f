// Package surface is the single access point views consume: snapshot
// reads plus every store mutation, bound to one store instance and
// carried through a context.Context. Reaching for the surface outside a
// provider scope is a programmer error and fails loudly.
package surface

import (
	"context"

	"github.com/taskerhq/tasker/internal/store"
)

// Surface bundles the read snapshots and mutation operations of one
// store. Consumers hold a Surface, never the store's collections.
type Surface struct {
	*store.Store
}

// New binds a surface to a store.
func New(s *store.Store) *Surface {
	return &Surface{Store: s}
}

type ctxKey struct{}

// NewContext returns a context carrying the surface.
func NewContext(ctx context.Context, s *Surface) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the surface carried by ctx. It panics when ctx
// has no surface.
func FromContext(ctx context.Context) *Surface {
	s, ok := ctx.Value(ctxKey{}).(*Surface)
	if !ok {
		panic("surface.FromContext: no surface in context; wrap the context with surface.NewContext first")
	}
	return s
}
