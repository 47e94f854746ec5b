package client

import (
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// applyFirst sets the page size parameter when one was requested.
func applyFirst(params *helix.Params, page *helix.PageOptions) *helix.Params {
	if page != nil && page.First > 0 {
		params.Set("first", page.First)
	}

	return params
}

// maxResults translates a result cap into iterator options.
func maxResults[T any](page *helix.PageOptions) []helix.IteratorOption[T] {
	if page != nil && page.MaxResults > 0 {
		return []helix.IteratorOption[T]{helix.WithMaxResults[T](page.MaxResults)}
	}

	return nil
}

// tokenKey extracts the requested token identity, empty for the app token.
func tokenKey(page *helix.PageOptions) string {
	if page != nil {
		return page.TokenFor
	}

	return ""
}

// userTokenKey resolves the token identity for an endpoint that requires a
// user token, defaulting to the conventional "user:<id>" key.
func userTokenKey(userID string, page *helix.PageOptions) string {
	if key := tokenKey(page); key != "" {
		return key
	}

	return "user:" + userID
}
