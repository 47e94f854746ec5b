package helix_test

import (
	"testing"

	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_SetScalarTypes(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("game_id", "509658")
	params.Set("first", 25)
	params.Set("is_featured", true)

	v, ok := params.Get("game_id")
	require.True(t, ok)
	assert.Equal(t, "509658", v)

	v, ok = params.Get("first")
	require.True(t, ok)
	assert.Equal(t, "25", v)

	v, ok = params.Get("is_featured")
	require.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestParams_NilEntryNotEmitted(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("before", nil)
	params.Set("first", 20)

	// Nil entries exist but never reach the URL
	assert.True(t, params.Has("before"))

	route := helix.NewRoute("GET", "streams", params)
	assert.Equal(t, "https://api.twitch.tv/helix/streams?first=20", route.URL())
}

func TestParams_InsertionOrderPreserved(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("c", "3")
	params.Set("a", "1")
	params.Set("b", "2")

	assert.Equal(t, []string{"c", "a", "b"}, params.Keys())

	route := helix.NewRoute("GET", "streams", params)
	assert.Equal(t, "https://api.twitch.tv/helix/streams?c=3&a=1&b=2", route.URL())
}

func TestParams_SetReplacesWithoutReordering(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("a", "1")
	params.Set("b", "2")
	params.Set("a", "9")

	assert.Equal(t, []string{"a", "b"}, params.Keys())

	v, _ := params.Get("a")
	assert.Equal(t, "9", v)
}

func TestRoute_ListDuplicatesKeysOnAPIHost(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.SetList("id", "123", "456", "789")

	route := helix.NewRoute("GET", "games", params)
	assert.Equal(t, "https://api.twitch.tv/helix/games?id=123&id=456&id=789", route.URL())
}

func TestRoute_ListJoinsWithPlusOnIDHost(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.SetList("scope", "chat:read", "chat:edit")

	route := helix.NewIDRoute("POST", "oauth2/token", params)
	assert.Equal(t, "https://id.twitch.tv/oauth2/token?scope=chat%3Aread+chat%3Aedit", route.URL())
}

func TestRoute_PathTrimming(t *testing.T) {
	t.Parallel()

	route := helix.NewRoute("GET", "/streams/followed/", nil)
	assert.Equal(t, "https://api.twitch.tv/helix/streams/followed", route.URL())
}

func TestRoute_WithParamReturnsCopy(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("first", 20)

	original := helix.NewRoute("GET", "streams", params)
	modified := original.WithParam("after", "cursor123")

	assert.Equal(t, "https://api.twitch.tv/helix/streams?first=20", original.URL())
	assert.Equal(t, "https://api.twitch.tv/helix/streams?first=20&after=cursor123", modified.URL())
}

func TestRoute_WithParamNilDeletes(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("first", 20)
	params.Set("after", "cursor123")

	route := helix.NewRoute("GET", "streams", params)
	cleared := route.WithParam("after", nil)

	assert.Equal(t, "https://api.twitch.tv/helix/streams?first=20", cleared.URL())

	// The source route keeps its cursor
	assert.Equal(t, "https://api.twitch.tv/helix/streams?first=20&after=cursor123", route.URL())
}

func TestRoute_WithHeadersMerges(t *testing.T) {
	t.Parallel()

	route := helix.NewRoute("GET", "streams", nil)
	route = route.WithHeaders(map[string]string{"X-First": "1"})
	route = route.WithHeaders(map[string]string{"X-Second": "2", "X-First": "override"})

	assert.Equal(t, "override", route.Headers["X-First"])
	assert.Equal(t, "2", route.Headers["X-Second"])
}

func TestRoute_String(t *testing.T) {
	t.Parallel()

	route := helix.NewRoute("GET", "streams", nil)
	assert.Equal(t, "GET[https://api.twitch.tv/helix/streams]", route.String())
}

func TestEncodeComponent_Basic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "just+chatting", helix.EncodeComponent("just chatting", "+", true))
	assert.Equal(t, "caf%C3%A9", helix.EncodeComponent("café", "+", true))
	assert.Equal(t, "a%26b%3Dc", helix.EncodeComponent("a&b=c", "+", true))
}

func TestEncodeComponent_SafeCharacters(t *testing.T) {
	t.Parallel()

	// '+' in the safe set passes through untouched
	assert.Equal(t, "chat:read+chat:edit", helix.EncodeComponent("chat:read chat:edit", "+:", true))
}

func TestEncodeComponent_Idempotent(t *testing.T) {
	t.Parallel()

	once := helix.EncodeComponent("just chatting", "+", true)
	twice := helix.EncodeComponent(once, "+", true)
	assert.Equal(t, once, twice)

	// Pre-encoded input is recognized and left alone
	assert.Equal(t, "caf%C3%A9", helix.EncodeComponent("caf%C3%A9", "+", true))
}

func TestQueryString_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, helix.QueryString(helix.NewRoute("GET", "streams", nil), true))
	assert.Empty(t, helix.QueryString(helix.NewRoute("GET", "streams", helix.NewParams()), true))
}

func TestQueryString_ScalarEncoding(t *testing.T) {
	t.Parallel()

	params := helix.NewParams()
	params.Set("query", "just chatting")

	qs := helix.QueryString(helix.NewRoute("GET", "search/categories", params), true)
	assert.Equal(t, "?query=just+chatting", qs)
}
