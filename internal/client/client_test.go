package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamkit-io/helix-client/internal/auth"
	"github.com/streamkit-io/helix-client/internal/client"
	internalhttp "github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServerClient points a full client at a local server and records every
// request the resource clients make.
func newServerClient(t *testing.T, handler http.HandlerFunc) (*client.Client, *[]*http.Request) {
	t.Helper()

	var requests []*http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Clone(r.Context()))
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	store := auth.NewTokenStore("app-token", map[string]string{
		"user:123": "user-token",
	})

	httpClient := internalhttp.NewClient("test-client-id", store,
		internalhttp.WithBaseURL(server.URL),
		internalhttp.WithIDBaseURL(server.URL))

	c := client.NewWithHTTPClient(httpClient)
	t.Cleanup(func() { _ = c.Close() })

	return c, &requests
}

func serveJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestNew_RequiresClientID(t *testing.T) {
	t.Parallel()

	_, err := client.New(&helix.Config{})
	require.ErrorIs(t, err, client.ErrClientIDRequired)
}

func TestNew_InitializesResourceClients(t *testing.T) {
	t.Parallel()

	c, err := client.New(&helix.Config{ClientID: "abc", AccessToken: "token"})
	require.NoError(t, err)

	defer func() { _ = c.Close() }()

	assert.NotNil(t, c.Streams())
	assert.NotNil(t, c.Games())
	assert.NotNil(t, c.Clips())
	assert.NotNil(t, c.Videos())
	assert.NotNil(t, c.Search())
	assert.NotNil(t, c.Channels())
	assert.NotNil(t, c.Chat())
	assert.NotNil(t, c.Bits())
	assert.NotNil(t, c.Conduits())
	assert.NotNil(t, c.Tokens())
}

func TestStreamsClient_ListBuildsRoute(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[]}`))

	opts := &helix.ListStreamsOptions{
		GameIDs:   []string{"509658"},
		Languages: []string{"en", "de"},
		Type:      "live",
	}
	opts.First = 50

	_, err := c.Streams().List(opts).All(context.Background())
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, "/streams", got.URL.Path)
	assert.Equal(t, "game_id=509658&type=live&language=en&language=de&first=50", got.URL.RawQuery)
	assert.Equal(t, "Bearer app-token", got.Header.Get("Authorization"))
}

func TestStreamsClient_FollowedStreamsUsesUserToken(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[]}`))

	_, err := c.Streams().FollowedStreams("123", nil).All(context.Background())
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, "/streams/followed", got.URL.Path)
	assert.Equal(t, "user_id=123", got.URL.RawQuery)
	assert.Equal(t, "Bearer user-token", got.Header.Get("Authorization"))
}

func TestStreamsClient_CreateMarker(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[{"id":"m1","position_seconds":300}]}`))

	marker, err := c.Streams().CreateMarker(context.Background(), "123", "good play")
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.Equal(t, "m1", marker.ID)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/streams/markers", got.URL.Path)
	assert.Equal(t, "Bearer user-token", got.Header.Get("Authorization"))
}

func TestGamesClient_TopPaginates(t *testing.T) {
	t.Parallel()

	page := 0

	c, requests := newServerClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		page++
		if page == 1 {
			_, _ = w.Write([]byte(`{"data":[{"id":"1","name":"Fortnite"}],"pagination":{"cursor":"cur1"}}`))
		} else {
			_, _ = w.Write([]byte(`{"data":[{"id":"2","name":"Chess"}],"pagination":{}}`))
		}
	})

	games, err := c.Games().Top(nil).All(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "Fortnite", games[0].Name)
	assert.Equal(t, "Chess", games[1].Name)

	require.Len(t, *requests, 2)
	assert.Equal(t, "after=cur1", (*requests)[1].URL.RawQuery)
}

func TestGamesClient_GetValidatesQuery(t *testing.T) {
	t.Parallel()

	c, _ := newServerClient(t, serveJSON(`{"data":[]}`))

	_, err := c.Games().Get(context.Background(), helix.GamesQuery{})
	require.ErrorIs(t, err, client.ErrEmptyGamesQuery)
}

func TestGamesClient_GetBuildsRoute(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[{"id":"1","name":"Fortnite"}]}`))

	games, err := c.Games().Get(context.Background(), helix.GamesQuery{
		IDs:   []string{"1", "2"},
		Names: []string{"Chess"},
	})
	require.NoError(t, err)
	assert.Len(t, games, 1)

	require.Len(t, *requests, 1)
	assert.Equal(t, "id=1&id=2&name=Chess", (*requests)[0].URL.RawQuery)
}

func TestVideosClient_Delete(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":["v1","v2"]}`))

	deleted, err := c.Videos().Delete(context.Background(), []string{"v1", "v2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, deleted)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "id=v1&id=v2", got.URL.RawQuery)
}

func TestVideosClient_ListByUserFilters(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[]}`))

	_, err := c.Videos().ListByUser("123", &helix.ListVideosOptions{
		Type:   "archive",
		Sort:   "views",
		Period: "week",
	}).All(context.Background())
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	assert.Equal(t, "user_id=123&period=week&sort=views&type=archive", (*requests)[0].URL.RawQuery)
}

func TestSearchClient_ChannelsLiveOnly(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[]}`))

	_, err := c.Search().Channels("just chatting", &helix.SearchChannelsOptions{LiveOnly: true}).
		All(context.Background())
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, "/search/channels", got.URL.Path)
	assert.Equal(t, "query=just+chatting&live_only=true", got.URL.RawQuery)
}

func TestChannelsClient_Update(t *testing.T) {
	t.Parallel()

	var gotBody map[string]interface{}

	c, requests := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusNoContent)
	})

	title := "New title"
	err := c.Channels().Update(context.Background(), "123", &helix.ChannelUpdateRequest{
		Title: &title,
	})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "broadcaster_id=123", got.URL.RawQuery)
	assert.Equal(t, "Bearer user-token", got.Header.Get("Authorization"))
	assert.Equal(t, "New title", gotBody["title"])
}

func TestBitsClient_Leaderboard(t *testing.T) {
	t.Parallel()

	c, requests := newServerClient(t, serveJSON(`{"data":[{"user_id":"123","rank":1,"score":500}],"total":1}`))

	entries, err := c.Bits().Leaderboard(context.Background(), &helix.BitsLeaderboardOptions{
		Count:    10,
		Period:   "week",
		TokenFor: "user:123",
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Rank)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, "/bits/leaderboard", got.URL.Path)
	assert.Equal(t, "count=10&period=week", got.URL.RawQuery)
	assert.Equal(t, "Bearer user-token", got.Header.Get("Authorization"))
}

func TestConduitsClient_Create(t *testing.T) {
	t.Parallel()

	var gotBody map[string]interface{}

	c, requests := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"c1","shard_count":5}]}`))
	})

	conduit, err := c.Conduits().Create(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, conduit)
	assert.Equal(t, "c1", conduit.ID)
	assert.Equal(t, 5, conduit.ShardCount)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/eventsub/conduits", got.URL.Path)
	assert.InDelta(t, float64(5), gotBody["shard_count"], 0.001)

	// Conduits are app-token scoped
	assert.Equal(t, "Bearer app-token", got.Header.Get("Authorization"))
}
