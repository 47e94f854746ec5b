// Package twitchclient provides the primary entry point for constructing a
// Twitch Helix API client that implements the helix.Client interface.
//
// It layers configuration, HTTP transport, token selection, and response
// caching on top of the resource interfaces and types defined in the helix
// package. Most applications should import twitchclient to build a client,
// then use the returned helix.Client to access resource-specific clients, for
// example Streams(), Games(), Clips(), etc.
//
// Quick start
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
//
//	  cli, err := twitchclient.NewWithToken("my-client-id", "my-app-token")
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  // Use resource clients via the helix.Client interface
//	  games, err := cli.Games().Top(&helix.PageOptions{MaxResults: 10}).All(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = games
//	}
//
// # User tokens
//
// Endpoints acting on behalf of a user resolve their token through the
// identity key on the route, conventionally "user:<id>". Seed those tokens
// through Config.UserTokens or NewWithUserTokens.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithUserTokens that wrap New with the appropriate configuration.
package twitchclient
