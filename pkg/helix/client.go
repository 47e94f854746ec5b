package helix

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/streamkit-io/helix-client/pkg/twitchclient.New to create a client")
)

// BroadcastClients provides access to broadcast-oriented resource clients.
type BroadcastClients interface {
	Streams() StreamsClient
	Games() GamesClient
	Clips() ClipsClient
	Videos() VideosClient
	Search() SearchClient
}

// ChannelScopedClients provides access to channel-scoped resource clients.
type ChannelScopedClients interface {
	Channels() ChannelsClient
	Chat() ChatClient
	Bits() BitsClient
}

// EventClients provides access to event delivery resource clients.
type EventClients interface {
	Conduits() ConduitsClient
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	// Composite interfaces for resource groups
	BroadcastClients
	ChannelScopedClients
	EventClients
}

type Client interface {
	ResourceClients

	// Close tears down the underlying HTTP session. Teardown failures are
	// logged and suppressed.
	Close() error
}

// StreamsClient provides access to live stream listings.
type StreamsClient interface {
	List(opts *ListStreamsOptions) *Iterator[Stream]
	FollowedStreams(userID string, opts *PageOptions) *Iterator[Stream]
	CreateMarker(ctx context.Context, userID, description string) (*StreamMarker, error)
}

// GamesClient provides access to game and category lookups.
type GamesClient interface {
	Top(opts *PageOptions) *Iterator[Game]
	Get(ctx context.Context, query GamesQuery) ([]Game, error)
}

// ClipsClient provides access to clip listings.
type ClipsClient interface {
	ListByBroadcaster(broadcasterID string, opts *ListClipsOptions) *Iterator[Clip]
	ListByGame(gameID string, opts *ListClipsOptions) *Iterator[Clip]
	Get(clipIDs []string, opts *ListClipsOptions) *Iterator[Clip]
}

// VideosClient provides access to published videos.
type VideosClient interface {
	ListByUser(userID string, opts *ListVideosOptions) *Iterator[Video]
	ListByGame(gameID string, opts *ListVideosOptions) *Iterator[Video]
	Get(videoIDs []string) *Iterator[Video]
	Delete(ctx context.Context, videoIDs []string) ([]string, error)
}

// SearchClient provides access to category and channel search.
type SearchClient interface {
	Categories(query string, opts *PageOptions) *Iterator[Game]
	Channels(query string, opts *SearchChannelsOptions) *Iterator[SearchChannel]
}

// ChannelsClient provides access to channel information and management.
type ChannelsClient interface {
	Info(ctx context.Context, broadcasterIDs []string) ([]ChannelInfo, error)
	Update(ctx context.Context, broadcasterID string, update *ChannelUpdateRequest) error
	Editors(ctx context.Context, broadcasterID string) ([]ChannelEditor, error)
	Followed(userID string, opts *PageOptions) *Iterator[FollowedChannel]
	Followers(broadcasterID string, opts *PageOptions) *Iterator[ChannelFollower]
	AdSchedule(ctx context.Context, broadcasterID string) (*AdSchedule, error)
	SnoozeNextAd(ctx context.Context, broadcasterID string) (*AdSnooze, error)
	StartCommercial(ctx context.Context, broadcasterID string, length int) (*Commercial, error)
	ContentClassificationLabels(ctx context.Context, locale string) ([]ContentClassificationLabel, error)
}

// ChatClient provides access to chat resources over the REST surface.
type ChatClient interface {
	ChatterColors(ctx context.Context, userIDs []string) ([]ChatterColor, error)
	UpdateChatterColor(ctx context.Context, userID, color string) error
	GlobalEmotes(ctx context.Context) ([]Emote, error)
	ChannelEmotes(ctx context.Context, broadcasterID string) ([]Emote, error)
	EmoteSets(ctx context.Context, setIDs []string) ([]Emote, error)
	GlobalBadges(ctx context.Context) ([]ChatBadgeSet, error)
	ChannelBadges(ctx context.Context, broadcasterID string) ([]ChatBadgeSet, error)
	Settings(ctx context.Context, broadcasterID, moderatorID string) (*ChatSettings, error)
	UpdateSettings(ctx context.Context, broadcasterID, moderatorID string, update *ChatSettingsUpdate) (*ChatSettings, error)
	SendAnnouncement(ctx context.Context, broadcasterID, moderatorID, message, color string) error
	SendShoutout(ctx context.Context, fromBroadcasterID, toBroadcasterID, moderatorID string) error
}

// BitsClient provides access to bits and monetization resources.
type BitsClient interface {
	Cheermotes(ctx context.Context, broadcasterID string) ([]Cheermote, error)
	Leaderboard(ctx context.Context, opts *BitsLeaderboardOptions) ([]BitsLeaderboardEntry, error)
	ExtensionTransactions(extensionID string, transactionIDs []string, opts *PageOptions) *Iterator[ExtensionTransaction]
}

// ConduitsClient provides access to EventSub conduit management.
type ConduitsClient interface {
	List(ctx context.Context) ([]Conduit, error)
	Create(ctx context.Context, shardCount int) (*Conduit, error)
	Update(ctx context.Context, conduitID string, shardCount int) (*Conduit, error)
	Delete(ctx context.Context, conduitID string) error
	Shards(conduitID, status string, opts *PageOptions) *Iterator[ConduitShard]
	UpdateShards(ctx context.Context, conduitID string, updates []ConduitShardUpdate) ([]ConduitShard, error)
}

// PageOptions controls pagination for list endpoints that take no
// endpoint-specific filters.
type PageOptions struct {
	// First is the page size requested from the API per fetch. Zero means
	// the API default of 20. Clamped down when MaxResults is smaller.
	First int
	// MaxResults caps the total number of items the iterator yields. Zero
	// means unbounded.
	MaxResults int
	// TokenFor selects a stored user token by identity key instead of the
	// configured app token.
	TokenFor string
}

// ListStreamsOptions filters live stream listings.
type ListStreamsOptions struct {
	PageOptions

	UserIDs    []string
	UserLogins []string
	GameIDs    []string
	Type       string
	Languages  []string
}

// ListClipsOptions filters clip listings.
type ListClipsOptions struct {
	PageOptions

	StartedAt  *time.Time
	EndedAt    *time.Time
	IsFeatured *bool
}

// ListVideosOptions filters video listings.
type ListVideosOptions struct {
	PageOptions

	Language string
	Period   string
	Sort     string
	Type     string
}

// SearchChannelsOptions filters channel search results.
type SearchChannelsOptions struct {
	PageOptions

	// LiveOnly restricts results to channels currently live.
	LiveOnly bool
}

// GamesQuery identifies games by ID, name, or IGDB ID. At least one field
// must be non-empty.
type GamesQuery struct {
	IDs     []string
	Names   []string
	IGDBIDs []string
}

// BitsLeaderboardOptions filters the bits leaderboard.
type BitsLeaderboardOptions struct {
	Count     int
	Period    string
	StartedAt *time.Time
	UserID    string
	TokenFor  string
}

// ChatSettingsUpdate represents a request to patch chat settings. Nil fields
// are left unchanged.
type ChatSettingsUpdate struct {
	EmoteMode                     *bool `json:"emote_mode,omitempty"`
	FollowerMode                  *bool `json:"follower_mode,omitempty"`
	FollowerModeDuration          *int  `json:"follower_mode_duration,omitempty"`
	SlowMode                      *bool `json:"slow_mode,omitempty"`
	SlowModeWaitTime              *int  `json:"slow_mode_wait_time,omitempty"`
	SubscriberMode                *bool `json:"subscriber_mode,omitempty"`
	UniqueChatMode                *bool `json:"unique_chat_mode,omitempty"`
	NonModeratorChatDelay         *bool `json:"non_moderator_chat_delay,omitempty"`
	NonModeratorChatDelayDuration *int  `json:"non_moderator_chat_delay_duration,omitempty"`
}

// StreamMarker represents a marker created on a live stream.
type StreamMarker struct {
	ID              string    `json:"id"               yaml:"id"`
	CreatedAt       time.Time `json:"created_at"       yaml:"created_at"`
	PositionSeconds int       `json:"position_seconds" yaml:"position_seconds"`
	Description     string    `json:"description"      yaml:"description"`
}

// NewClient creates a new Helix API client
// Deprecated: Use github.com/streamkit-io/helix-client/pkg/twitchclient.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
