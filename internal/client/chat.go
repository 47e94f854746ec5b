package client

import (
	"context"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// ChatClient implements helix.ChatClient.
type ChatClient struct {
	httpClient *http.Client
}

// NewChatClient creates a new chat client.
func NewChatClient(httpClient *http.Client) *ChatClient {
	return &ChatClient{
		httpClient: httpClient,
	}
}

// ChatterColors implements helix.ChatClient.ChatterColors.
func (c *ChatClient) ChatterColors(ctx context.Context, userIDs []string) ([]helix.ChatterColor, error) {
	params := helix.NewParams().SetList("user_id", userIDs...)

	route := helix.NewRoute("GET", "chat/color", params)

	var result helix.DataResponse[helix.ChatterColor]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting chatter colors: %w", err)
	}

	return result.Data, nil
}

// UpdateChatterColor implements helix.ChatClient.UpdateChatterColor.
func (c *ChatClient) UpdateChatterColor(ctx context.Context, userID, color string) error {
	params := helix.NewParams().
		Set("user_id", userID).
		Set("color", color)

	route := helix.NewRoute("PUT", "chat/color", params)
	route.TokenFor = userTokenKey(userID, nil)

	_, err := c.httpClient.Do(ctx, route)
	if err != nil {
		return fmt.Errorf("updating chatter color: %w", err)
	}

	return nil
}

// GlobalEmotes implements helix.ChatClient.GlobalEmotes.
func (c *ChatClient) GlobalEmotes(ctx context.Context) ([]helix.Emote, error) {
	route := helix.NewRoute("GET", "chat/emotes/global", nil)

	var result helix.DataResponse[helix.Emote]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting global emotes: %w", err)
	}

	return result.Data, nil
}

// ChannelEmotes implements helix.ChatClient.ChannelEmotes.
func (c *ChatClient) ChannelEmotes(ctx context.Context, broadcasterID string) ([]helix.Emote, error) {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("GET", "chat/emotes", params)

	var result helix.DataResponse[helix.Emote]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting channel emotes: %w", err)
	}

	return result.Data, nil
}

// EmoteSets implements helix.ChatClient.EmoteSets.
func (c *ChatClient) EmoteSets(ctx context.Context, setIDs []string) ([]helix.Emote, error) {
	params := helix.NewParams().SetList("emote_set_id", setIDs...)

	route := helix.NewRoute("GET", "chat/emotes/set", params)

	var result helix.DataResponse[helix.Emote]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting emote sets: %w", err)
	}

	return result.Data, nil
}

// GlobalBadges implements helix.ChatClient.GlobalBadges.
func (c *ChatClient) GlobalBadges(ctx context.Context) ([]helix.ChatBadgeSet, error) {
	route := helix.NewRoute("GET", "chat/badges/global", nil)

	var result helix.DataResponse[helix.ChatBadgeSet]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting global badges: %w", err)
	}

	return result.Data, nil
}

// ChannelBadges implements helix.ChatClient.ChannelBadges.
func (c *ChatClient) ChannelBadges(ctx context.Context, broadcasterID string) ([]helix.ChatBadgeSet, error) {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("GET", "chat/badges", params)

	var result helix.DataResponse[helix.ChatBadgeSet]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting channel badges: %w", err)
	}

	return result.Data, nil
}

// Settings implements helix.ChatClient.Settings. ModeratorID is optional;
// when set, moderator-only settings are included and a moderator token is
// used.
func (c *ChatClient) Settings(ctx context.Context, broadcasterID, moderatorID string) (*helix.ChatSettings, error) {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("GET", "chat/settings", params)

	if moderatorID != "" {
		route = route.WithParam("moderator_id", moderatorID)
		route.TokenFor = userTokenKey(moderatorID, nil)
	}

	var result helix.DataResponse[helix.ChatSettings]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting chat settings: %w", err)
	}

	return result.First(), nil
}

// UpdateSettings implements helix.ChatClient.UpdateSettings.
func (c *ChatClient) UpdateSettings(ctx context.Context, broadcasterID, moderatorID string, update *helix.ChatSettingsUpdate) (*helix.ChatSettings, error) {
	params := helix.NewParams().
		Set("broadcaster_id", broadcasterID).
		Set("moderator_id", moderatorID)

	route := helix.NewRoute("PATCH", "chat/settings", params)
	route.Body = update
	route.TokenFor = userTokenKey(moderatorID, nil)

	var result helix.DataResponse[helix.ChatSettings]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("updating chat settings: %w", err)
	}

	return result.First(), nil
}

// SendAnnouncement implements helix.ChatClient.SendAnnouncement.
func (c *ChatClient) SendAnnouncement(ctx context.Context, broadcasterID, moderatorID, message, color string) error {
	params := helix.NewParams().
		Set("broadcaster_id", broadcasterID).
		Set("moderator_id", moderatorID)

	body := map[string]string{"message": message}
	if color != "" {
		body["color"] = color
	}

	route := helix.NewRoute("POST", "chat/announcements", params)
	route.Body = body
	route.TokenFor = userTokenKey(moderatorID, nil)

	_, err := c.httpClient.Do(ctx, route)
	if err != nil {
		return fmt.Errorf("sending announcement: %w", err)
	}

	return nil
}

// SendShoutout implements helix.ChatClient.SendShoutout.
func (c *ChatClient) SendShoutout(ctx context.Context, fromBroadcasterID, toBroadcasterID, moderatorID string) error {
	params := helix.NewParams().
		Set("from_broadcaster_id", fromBroadcasterID).
		Set("to_broadcaster_id", toBroadcasterID).
		Set("moderator_id", moderatorID)

	route := helix.NewRoute("POST", "chat/shoutouts", params)
	route.TokenFor = userTokenKey(moderatorID, nil)

	_, err := c.httpClient.Do(ctx, route)
	if err != nil {
		return fmt.Errorf("sending shoutout: %w", err)
	}

	return nil
}
