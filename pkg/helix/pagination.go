package helix

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/streamkit-io/helix-client/internal/constants"
)

// Converter maps one raw server item to a caller-facing value. The default
// converter decodes the raw JSON into T directly.
type Converter[T any] func(ctx context.Context, raw json.RawMessage) (T, error)

// JSONConverter decodes each raw item into T via encoding/json. It is the
// converter used when none is supplied.
func JSONConverter[T any](ctx context.Context, raw json.RawMessage) (T, error) {
	var value T

	err := json.Unmarshal(raw, &value)
	if err != nil {
		return value, fmt.Errorf("converting paginated item: %w", err)
	}

	return value, nil
}

// cursorState distinguishes "haven't fetched yet" from "server said stop".
// Collapsing the two into one empty-string state would re-fetch the first
// page forever on endpoints that never return a cursor.
type cursorState int

const (
	cursorNotStarted cursorState = iota
	cursorContinue
	cursorExhausted
)

type pageCursor struct {
	state cursorState
	token string
}

// Iterator is a lazy, cursor-following sequence of converted items. It
// buffers one page at a time: a new page is fetched only when the buffer is
// empty, items preserve server order, and once the server stops returning a
// cursor (or the max-results budget is spent) no further pages are fetched.
//
// An Iterator is not safe for concurrent consumption from multiple
// goroutines. Independent iterators sharing one underlying client are fine.
type Iterator[T any] struct {
	client  PageRequester
	route   Route
	cursor  pageCursor
	limited bool
	budget  int
	convert Converter[T]
	buffer  []T
}

// IteratorOption configures an Iterator.
type IteratorOption[T any] func(*Iterator[T])

// WithMaxResults caps the total number of items yielded across all pages.
// Zero means stop immediately; use no option for an unbounded iteration.
func WithMaxResults[T any](limit int) IteratorOption[T] {
	return func(it *Iterator[T]) {
		it.limited = true
		it.budget = limit
	}
}

// WithConverter replaces the default JSON converter.
func WithConverter[T any](converter Converter[T]) IteratorOption[T] {
	return func(it *Iterator[T]) {
		it.convert = converter
	}
}

// NewIterator creates a paginated iterator over the given route.
//
// The page size is taken from the route's existing "first" parameter, or the
// Helix default of 20; when a max-results budget smaller than the page size
// is set, the page size is clamped down so the final page is not over-fetched.
func NewIterator[T any](client PageRequester, route Route, opts ...IteratorOption[T]) *Iterator[T] {
	it := &Iterator[T]{
		client:  client,
		route:   route,
		convert: JSONConverter[T],
	}

	for _, opt := range opts {
		opt(it)
	}

	first := constants.DefaultPageSize
	if v, ok := route.Params.Get("first"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			first = n
		}
	}

	if it.limited && it.budget < first {
		it.route = it.route.WithParam("first", it.budget)
	}

	return it
}

// Next produces the oldest undelivered item, fetching the next page when the
// buffer is empty. It returns ErrNoMoreItems once the sequence is exhausted,
// and again on every subsequent call.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T

	if len(it.buffer) == 0 {
		err := it.fetchNext(ctx)
		if err != nil {
			return zero, err
		}
	}

	if len(it.buffer) == 0 {
		return zero, ErrNoMoreItems
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

// Page flattens the current buffer, fetching exactly one page first if the
// buffer is empty. It is a one-page shortcut, not the full result set: an
// exhausted iterator yields an empty slice without error.
func (it *Iterator[T]) Page(ctx context.Context) ([]T, error) {
	if len(it.buffer) == 0 {
		err := it.fetchNext(ctx)
		if err != nil && !errors.Is(err, ErrNoMoreItems) {
			return nil, err
		}
	}

	page := make([]T, len(it.buffer))
	copy(page, it.buffer)

	return page, nil
}

// All drains the iterator and returns every remaining item as a slice.
func (it *Iterator[T]) All(ctx context.Context) ([]T, error) {
	var items []T

	for {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return items, nil
			}

			return nil, err
		}

		items = append(items, item)
	}
}

// ForEach calls fn for each remaining item, stopping at the first error.
func (it *Iterator[T]) ForEach(ctx context.Context, fn func(item T) error) error {
	for {
		item, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}
}

// fetchNext retrieves and buffers one page. A failed request leaves the
// cursor and buffer untouched, so previously buffered items still deliver.
func (it *Iterator[T]) fetchNext(ctx context.Context) error {
	if it.cursor.state == cursorExhausted {
		return ErrNoMoreItems
	}

	if it.limited && it.budget <= 0 {
		return ErrNoMoreItems
	}

	route := it.route

	switch it.cursor.state {
	case cursorNotStarted:
		route = route.WithParam("after", nil)
	case cursorContinue:
		route = route.WithParam("after", it.cursor.token)
	case cursorExhausted:
	}

	page, err := it.client.RequestPage(ctx, route)
	if err != nil {
		return err
	}

	if page.Pagination == nil || page.Pagination.Cursor == "" {
		it.cursor = pageCursor{state: cursorExhausted}
	} else {
		it.cursor = pageCursor{state: cursorContinue, token: page.Pagination.Cursor}
	}

	if page.Data == nil {
		return fmt.Errorf("paginated response for %s: %w", route, ErrMissingData)
	}

	for _, raw := range page.Data {
		if it.limited {
			it.budget--
			if it.budget < 0 {
				// The budget is spent mid-page: the overshoot item is
				// neither converted nor buffered, and iteration is not
				// resumable past it.
				return nil
			}
		}

		item, err := it.convert(ctx, raw)
		if err != nil {
			return err
		}

		it.buffer = append(it.buffer, item)
	}

	return nil
}
