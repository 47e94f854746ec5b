// Package helix provides types, interfaces, and helpers for working with the
// Twitch Helix API.
//
// # Overview
//
// The helix package defines the domain types (e.g., Stream, Game, Clip,
// Video, Conduit) and the interfaces for resource-oriented clients (e.g.,
// StreamsClient, GamesClient). A concrete implementation of these clients is
// provided by the twitchclient package, which wires configuration, transport,
// authentication, and caching. Most consumers should import twitchclient to
// construct a client and then interact with the resource client interfaces
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/streamkit-io/helix-client/pkg/helix"
//	  "github.com/streamkit-io/helix-client/pkg/twitchclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := twitchclient.New(&helix.Config{ClientID: "abc", AccessToken: "xyz"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Collect the top 10 games
//	  games, err := cli.Games().Top(&helix.PageOptions{MaxResults: 10}).All(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = games
//	}
//
// # Routes and pagination
//
// Requests are described by immutable Route values built from a method, a
// path, and ordered query parameters. List endpoints return an Iterator that
// walks the API's cursor-based pages lazily:
//
//	it := cli.Streams().List(&helix.ListStreamsOptions{GameIDs: []string{"509658"}})
//	for {
//	  stream, err := it.Next(ctx)
//	  if errors.Is(err, helix.ErrNoMoreItems) { break }
//	  if err != nil { /* handle error */ }
//	  _ = stream
//	}
//
// or fetch a bounded result set at once:
//
//	streams, err := cli.Streams().List(opts).All(ctx)
//
// # Errors
//
// API errors are represented by HTTPError, which carries the status code and
// the decoded Twitch error body. Helpers such as IsNotFound, IsUnauthorized,
// and IsRateLimited make it easy to branch on common cases. A paginated
// response missing its "data" key fails with ErrMissingData.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging, auth headers, metrics, rate limiting, circuit
// breaking) and a pluggable Cache abstraction with memory and NATS KV
// backends. The twitchclient package composes these pieces for a sensible
// default client; applications with advanced needs can also use these
// primitives directly.
package helix
