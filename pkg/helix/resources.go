package helix

import "time"

// Stream represents a live broadcast.
type Stream struct {
	ID           string    `json:"id"            yaml:"id"`
	UserID       string    `json:"user_id"       yaml:"user_id"`
	UserLogin    string    `json:"user_login"    yaml:"user_login"`
	UserName     string    `json:"user_name"     yaml:"user_name"`
	GameID       string    `json:"game_id"       yaml:"game_id"`
	GameName     string    `json:"game_name"     yaml:"game_name"`
	Type         string    `json:"type"          yaml:"type"`
	Title        string    `json:"title"         yaml:"title"`
	ViewerCount  int       `json:"viewer_count"  yaml:"viewer_count"`
	StartedAt    time.Time `json:"started_at"    yaml:"started_at"`
	Language     string    `json:"language"      yaml:"language"`
	ThumbnailURL string    `json:"thumbnail_url" yaml:"thumbnail_url"`
	IsMature     bool      `json:"is_mature"     yaml:"is_mature"`
	Tags         []string  `json:"tags"          yaml:"tags"`
}

// Game represents a game or category.
type Game struct {
	ID        string `json:"id"          yaml:"id"`
	Name      string `json:"name"        yaml:"name"`
	BoxArtURL string `json:"box_art_url" yaml:"box_art_url"`
	IGDBID    string `json:"igdb_id"     yaml:"igdb_id"`
}

// Clip represents a clip taken from a broadcast.
type Clip struct {
	ID              string    `json:"id"               yaml:"id"`
	URL             string    `json:"url"              yaml:"url"`
	EmbedURL        string    `json:"embed_url"        yaml:"embed_url"`
	BroadcasterID   string    `json:"broadcaster_id"   yaml:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name" yaml:"broadcaster_name"`
	CreatorID       string    `json:"creator_id"       yaml:"creator_id"`
	CreatorName     string    `json:"creator_name"     yaml:"creator_name"`
	VideoID         string    `json:"video_id"         yaml:"video_id"`
	GameID          string    `json:"game_id"          yaml:"game_id"`
	Language        string    `json:"language"         yaml:"language"`
	Title           string    `json:"title"            yaml:"title"`
	ViewCount       int       `json:"view_count"       yaml:"view_count"`
	CreatedAt       time.Time `json:"created_at"       yaml:"created_at"`
	ThumbnailURL    string    `json:"thumbnail_url"    yaml:"thumbnail_url"`
	Duration        float64   `json:"duration"         yaml:"duration"`
	IsFeatured      bool      `json:"is_featured"      yaml:"is_featured"`
}

// Video represents a published video on a channel.
type Video struct {
	ID            string    `json:"id"             yaml:"id"`
	StreamID      string    `json:"stream_id"      yaml:"stream_id"`
	UserID        string    `json:"user_id"        yaml:"user_id"`
	UserLogin     string    `json:"user_login"     yaml:"user_login"`
	UserName      string    `json:"user_name"      yaml:"user_name"`
	Title         string    `json:"title"          yaml:"title"`
	Description   string    `json:"description"    yaml:"description"`
	CreatedAt     time.Time `json:"created_at"     yaml:"created_at"`
	PublishedAt   time.Time `json:"published_at"   yaml:"published_at"`
	URL           string    `json:"url"            yaml:"url"`
	ThumbnailURL  string    `json:"thumbnail_url"  yaml:"thumbnail_url"`
	Viewable      string    `json:"viewable"       yaml:"viewable"`
	ViewCount     int       `json:"view_count"     yaml:"view_count"`
	Language      string    `json:"language"       yaml:"language"`
	Type          string    `json:"type"           yaml:"type"`
	Duration      string    `json:"duration"       yaml:"duration"`
	MutedSegments []struct {
		Duration int `json:"duration" yaml:"duration"`
		Offset   int `json:"offset"   yaml:"offset"`
	} `json:"muted_segments" yaml:"muted_segments"`
}

// SearchChannel represents one result from a channel search.
type SearchChannel struct {
	ID              string    `json:"id"                 yaml:"id"`
	BroadcasterLogin string   `json:"broadcaster_login"  yaml:"broadcaster_login"`
	DisplayName     string    `json:"display_name"       yaml:"display_name"`
	GameID          string    `json:"game_id"            yaml:"game_id"`
	GameName        string    `json:"game_name"          yaml:"game_name"`
	IsLive          bool      `json:"is_live"            yaml:"is_live"`
	Language        string    `json:"broadcaster_language" yaml:"broadcaster_language"`
	Tags            []string  `json:"tags"               yaml:"tags"`
	ThumbnailURL    string    `json:"thumbnail_url"      yaml:"thumbnail_url"`
	Title           string    `json:"title"              yaml:"title"`
	StartedAt       string    `json:"started_at"         yaml:"started_at"`
}

// ChannelInfo represents the editable information of a channel.
type ChannelInfo struct {
	BroadcasterID       string   `json:"broadcaster_id"       yaml:"broadcaster_id"`
	BroadcasterLogin    string   `json:"broadcaster_login"    yaml:"broadcaster_login"`
	BroadcasterName     string   `json:"broadcaster_name"     yaml:"broadcaster_name"`
	BroadcasterLanguage string   `json:"broadcaster_language" yaml:"broadcaster_language"`
	GameID              string   `json:"game_id"              yaml:"game_id"`
	GameName            string   `json:"game_name"            yaml:"game_name"`
	Title               string   `json:"title"                yaml:"title"`
	Delay               int      `json:"delay"                yaml:"delay"`
	Tags                []string `json:"tags"                 yaml:"tags"`
	IsBrandedContent    bool     `json:"is_branded_content"   yaml:"is_branded_content"`
}

// ChannelUpdateRequest represents a request to patch channel information.
// Nil fields are left unchanged.
type ChannelUpdateRequest struct {
	GameID              *string  `json:"game_id,omitempty"              yaml:"game_id,omitempty"`
	BroadcasterLanguage *string  `json:"broadcaster_language,omitempty" yaml:"broadcaster_language,omitempty"`
	Title               *string  `json:"title,omitempty"                yaml:"title,omitempty"`
	Delay               *int     `json:"delay,omitempty"                yaml:"delay,omitempty"`
	Tags                []string `json:"tags,omitempty"                 yaml:"tags,omitempty"`
	IsBrandedContent    *bool    `json:"is_branded_content,omitempty"   yaml:"is_branded_content,omitempty"`

	ContentClassificationLabels []ContentClassificationUpdate `json:"content_classification_labels,omitempty" yaml:"content_classification_labels,omitempty"`
}

// ContentClassificationUpdate toggles a single classification label.
type ContentClassificationUpdate struct {
	ID        string `json:"id"         yaml:"id"`
	IsEnabled bool   `json:"is_enabled" yaml:"is_enabled"`
}

// ContentClassificationLabel describes one available classification label.
type ContentClassificationLabel struct {
	ID          string `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// ChannelEditor represents a user allowed to edit a channel.
type ChannelEditor struct {
	UserID    string    `json:"user_id"    yaml:"user_id"`
	UserName  string    `json:"user_name"  yaml:"user_name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// FollowedChannel represents one channel a user follows.
type FollowedChannel struct {
	BroadcasterID    string    `json:"broadcaster_id"    yaml:"broadcaster_id"`
	BroadcasterLogin string    `json:"broadcaster_login" yaml:"broadcaster_login"`
	BroadcasterName  string    `json:"broadcaster_name"  yaml:"broadcaster_name"`
	FollowedAt       time.Time `json:"followed_at"       yaml:"followed_at"`
}

// ChannelFollower represents one follower of a channel.
type ChannelFollower struct {
	UserID     string    `json:"user_id"     yaml:"user_id"`
	UserLogin  string    `json:"user_login"  yaml:"user_login"`
	UserName   string    `json:"user_name"   yaml:"user_name"`
	FollowedAt time.Time `json:"followed_at" yaml:"followed_at"`
}

// AdSchedule represents the ad schedule of a channel.
type AdSchedule struct {
	NextAdAt      int `json:"next_ad_at"      yaml:"next_ad_at"`
	LastAdAt      int `json:"last_ad_at"      yaml:"last_ad_at"`
	Duration      int `json:"duration"        yaml:"duration"`
	PrerollFreeTime int `json:"preroll_free_time" yaml:"preroll_free_time"`
	SnoozeCount   int `json:"snooze_count"    yaml:"snooze_count"`
	SnoozeRefresh int `json:"snooze_refresh_at" yaml:"snooze_refresh_at"`
}

// AdSnooze is the result of snoozing the next scheduled ad.
type AdSnooze struct {
	SnoozeCount   int `json:"snooze_count"      yaml:"snooze_count"`
	SnoozeRefresh int `json:"snooze_refresh_at" yaml:"snooze_refresh_at"`
	NextAdAt      int `json:"next_ad_at"        yaml:"next_ad_at"`
}

// Commercial is the result of starting a commercial break.
type Commercial struct {
	Length     int    `json:"length"      yaml:"length"`
	Message    string `json:"message"     yaml:"message"`
	RetryAfter int    `json:"retry_after" yaml:"retry_after"`
}

// Emote represents a chat emote, global or channel-scoped.
type Emote struct {
	ID     string `json:"id"   yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Images struct {
		URL1x string `json:"url_1x" yaml:"url_1x"`
		URL2x string `json:"url_2x" yaml:"url_2x"`
		URL4x string `json:"url_4x" yaml:"url_4x"`
	} `json:"images" yaml:"images"`
	Tier       string   `json:"tier,omitempty"       yaml:"tier,omitempty"`
	EmoteType  string   `json:"emote_type,omitempty" yaml:"emote_type,omitempty"`
	EmoteSetID string   `json:"emote_set_id,omitempty" yaml:"emote_set_id,omitempty"`
	Format     []string `json:"format"               yaml:"format"`
	Scale      []string `json:"scale"                yaml:"scale"`
	ThemeMode  []string `json:"theme_mode"           yaml:"theme_mode"`
}

// ChatBadgeSet represents a badge set and its versions.
type ChatBadgeSet struct {
	SetID    string `json:"set_id" yaml:"set_id"`
	Versions []struct {
		ID          string `json:"id"          yaml:"id"`
		ImageURL1x  string `json:"image_url_1x" yaml:"image_url_1x"`
		ImageURL2x  string `json:"image_url_2x" yaml:"image_url_2x"`
		ImageURL4x  string `json:"image_url_4x" yaml:"image_url_4x"`
		Title       string `json:"title"       yaml:"title"`
		Description string `json:"description" yaml:"description"`
	} `json:"versions" yaml:"versions"`
}

// ChatterColor represents the chat color of a user.
type ChatterColor struct {
	UserID    string `json:"user_id"    yaml:"user_id"`
	UserLogin string `json:"user_login" yaml:"user_login"`
	UserName  string `json:"user_name"  yaml:"user_name"`
	Color     string `json:"color"      yaml:"color"`
}

// ChatSettings represents the chat settings of a broadcaster.
type ChatSettings struct {
	BroadcasterID                 string `json:"broadcaster_id"                    yaml:"broadcaster_id"`
	EmoteMode                     bool   `json:"emote_mode"                        yaml:"emote_mode"`
	FollowerMode                  bool   `json:"follower_mode"                     yaml:"follower_mode"`
	FollowerModeDuration          int    `json:"follower_mode_duration"            yaml:"follower_mode_duration"`
	SlowMode                      bool   `json:"slow_mode"                         yaml:"slow_mode"`
	SlowModeWaitTime              int    `json:"slow_mode_wait_time"               yaml:"slow_mode_wait_time"`
	SubscriberMode                bool   `json:"subscriber_mode"                   yaml:"subscriber_mode"`
	UniqueChatMode                bool   `json:"unique_chat_mode"                  yaml:"unique_chat_mode"`
	NonModeratorChatDelay         bool   `json:"non_moderator_chat_delay"          yaml:"non_moderator_chat_delay"`
	NonModeratorChatDelayDuration int    `json:"non_moderator_chat_delay_duration" yaml:"non_moderator_chat_delay_duration"`
}

// Cheermote represents a cheer emote and its bit tiers.
type Cheermote struct {
	Prefix       string          `json:"prefix"       yaml:"prefix"`
	Tiers        []CheermoteTier `json:"tiers"        yaml:"tiers"`
	Type         string          `json:"type"         yaml:"type"`
	Order        int             `json:"order"        yaml:"order"`
	LastUpdated  time.Time       `json:"last_updated" yaml:"last_updated"`
	IsCharitable bool            `json:"is_charitable" yaml:"is_charitable"`
}

// CheermoteTier represents one bit tier of a cheermote.
type CheermoteTier struct {
	MinBits        int    `json:"min_bits"          yaml:"min_bits"`
	ID             string `json:"id"                yaml:"id"`
	Color          string `json:"color"             yaml:"color"`
	CanCheer       bool   `json:"can_cheer"         yaml:"can_cheer"`
	ShowInBitsCard bool   `json:"show_in_bits_card" yaml:"show_in_bits_card"`
}

// BitsLeaderboardEntry represents one row of the bits leaderboard.
type BitsLeaderboardEntry struct {
	UserID    string `json:"user_id"    yaml:"user_id"`
	UserLogin string `json:"user_login" yaml:"user_login"`
	UserName  string `json:"user_name"  yaml:"user_name"`
	Rank      int    `json:"rank"       yaml:"rank"`
	Score     int    `json:"score"      yaml:"score"`
}

// ExtensionTransaction represents a monetized extension transaction.
type ExtensionTransaction struct {
	ID              string    `json:"id"               yaml:"id"`
	Timestamp       time.Time `json:"timestamp"        yaml:"timestamp"`
	BroadcasterID   string    `json:"broadcaster_id"   yaml:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name" yaml:"broadcaster_name"`
	UserID          string    `json:"user_id"          yaml:"user_id"`
	UserName        string    `json:"user_name"        yaml:"user_name"`
	ProductType     string    `json:"product_type"     yaml:"product_type"`
	ProductData     struct {
		SKU  string `json:"sku"  yaml:"sku"`
		Cost struct {
			Amount int    `json:"amount" yaml:"amount"`
			Type   string `json:"type"   yaml:"type"`
		} `json:"cost" yaml:"cost"`
		DisplayName   string `json:"displayName"   yaml:"displayName"`
		InDevelopment bool   `json:"inDevelopment" yaml:"inDevelopment"`
	} `json:"product_data" yaml:"product_data"`
}

// Conduit represents an EventSub conduit.
type Conduit struct {
	ID         string `json:"id"          yaml:"id"`
	ShardCount int    `json:"shard_count" yaml:"shard_count"`
}

// ConduitShard represents one shard of an EventSub conduit.
type ConduitShard struct {
	ID        string `json:"id"     yaml:"id"`
	Status    string `json:"status" yaml:"status"`
	Transport struct {
		Method    string `json:"method"               yaml:"method"`
		Callback  string `json:"callback,omitempty"   yaml:"callback,omitempty"`
		SessionID string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	} `json:"transport" yaml:"transport"`
}

// ConduitShardUpdate describes the desired transport of one shard.
type ConduitShardUpdate struct {
	ID        string `json:"id" yaml:"id"`
	Transport struct {
		Method    string `json:"method"               yaml:"method"`
		Callback  string `json:"callback,omitempty"   yaml:"callback,omitempty"`
		SessionID string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	} `json:"transport" yaml:"transport"`
}
