// Package repository implements the repository ports over the local sqlite
// cache and the delivery API. Streams re-run their query after every
// committed local write and only yield results that differ from the
// previous one.
package repository

import (
	"context"
	"reflect"

	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// changeFeed is satisfied by *sqlite.DB.
type changeFeed interface {
	Changes() <-chan struct{}
}

// watch yields query's current result, then every distinct result after a
// change. The change channel is taken before the query runs so a write
// landing in between is never missed. A query error is yielded once and
// ends the stream; a done ctx ends it silently.
func watch[T any](ctx context.Context, feed changeFeed, query func(context.Context) (T, error)) ports.Stream[T] {
	return func(yield func(T, error) bool) {
		var (
			last    T
			yielded bool
		)
		for {
			changed := feed.Changes()

			v, err := query(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yielded || !reflect.DeepEqual(v, last) {
				if !yield(v, nil) {
					return
				}
				last, yielded = v, true
			}

			select {
			case <-ctx.Done():
				return
			case <-changed:
			}
		}
	}
}
