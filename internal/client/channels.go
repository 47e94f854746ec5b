package client

import (
	"context"
	"fmt"

	"github.com/streamkit-io/helix-client/internal/http"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// ChannelsClient implements helix.ChannelsClient.
type ChannelsClient struct {
	httpClient *http.Client
}

// NewChannelsClient creates a new channels client.
func NewChannelsClient(httpClient *http.Client) *ChannelsClient {
	return &ChannelsClient{
		httpClient: httpClient,
	}
}

// Info implements helix.ChannelsClient.Info.
func (c *ChannelsClient) Info(ctx context.Context, broadcasterIDs []string) ([]helix.ChannelInfo, error) {
	params := helix.NewParams().SetList("broadcaster_id", broadcasterIDs...)

	route := helix.NewRoute("GET", "channels", params)

	var result helix.DataResponse[helix.ChannelInfo]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting channel information: %w", err)
	}

	return result.Data, nil
}

// Update implements helix.ChannelsClient.Update. Requires a broadcaster
// token with the channel:manage:broadcast scope.
func (c *ChannelsClient) Update(ctx context.Context, broadcasterID string, update *helix.ChannelUpdateRequest) error {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("PATCH", "channels", params)
	route.Body = update
	route.TokenFor = userTokenKey(broadcasterID, nil)

	_, err := c.httpClient.Do(ctx, route)
	if err != nil {
		return fmt.Errorf("updating channel: %w", err)
	}

	return nil
}

// Editors implements helix.ChannelsClient.Editors.
func (c *ChannelsClient) Editors(ctx context.Context, broadcasterID string) ([]helix.ChannelEditor, error) {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("GET", "channels/editors", params)
	route.TokenFor = userTokenKey(broadcasterID, nil)

	var result helix.DataResponse[helix.ChannelEditor]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting channel editors: %w", err)
	}

	return result.Data, nil
}

// Followed implements helix.ChannelsClient.Followed.
func (c *ChannelsClient) Followed(userID string, opts *helix.PageOptions) *helix.Iterator[helix.FollowedChannel] {
	params := applyFirst(helix.NewParams().Set("user_id", userID), opts)

	route := helix.NewRoute("GET", "channels/followed", params)
	route.TokenFor = userTokenKey(userID, opts)

	return helix.NewIterator[helix.FollowedChannel](c.httpClient, route, maxResults[helix.FollowedChannel](opts)...)
}

// Followers implements helix.ChannelsClient.Followers.
func (c *ChannelsClient) Followers(broadcasterID string, opts *helix.PageOptions) *helix.Iterator[helix.ChannelFollower] {
	params := applyFirst(helix.NewParams().Set("broadcaster_id", broadcasterID), opts)

	route := helix.NewRoute("GET", "channels/followers", params)
	route.TokenFor = userTokenKey(broadcasterID, opts)

	return helix.NewIterator[helix.ChannelFollower](c.httpClient, route, maxResults[helix.ChannelFollower](opts)...)
}

// AdSchedule implements helix.ChannelsClient.AdSchedule.
func (c *ChannelsClient) AdSchedule(ctx context.Context, broadcasterID string) (*helix.AdSchedule, error) {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("GET", "channels/ads", params)
	route.TokenFor = userTokenKey(broadcasterID, nil)

	var result helix.DataResponse[helix.AdSchedule]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting ad schedule: %w", err)
	}

	return result.First(), nil
}

// SnoozeNextAd implements helix.ChannelsClient.SnoozeNextAd.
func (c *ChannelsClient) SnoozeNextAd(ctx context.Context, broadcasterID string) (*helix.AdSnooze, error) {
	params := helix.NewParams().Set("broadcaster_id", broadcasterID)

	route := helix.NewRoute("POST", "channels/ads/schedule/snooze", params)
	route.TokenFor = userTokenKey(broadcasterID, nil)

	var result helix.DataResponse[helix.AdSnooze]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("snoozing next ad: %w", err)
	}

	return result.First(), nil
}

// StartCommercial implements helix.ChannelsClient.StartCommercial.
func (c *ChannelsClient) StartCommercial(ctx context.Context, broadcasterID string, length int) (*helix.Commercial, error) {
	route := helix.NewRoute("POST", "channels/commercial", nil)
	route.Body = map[string]interface{}{
		"broadcaster_id": broadcasterID,
		"length":         length,
	}
	route.TokenFor = userTokenKey(broadcasterID, nil)

	var result helix.DataResponse[helix.Commercial]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("starting commercial: %w", err)
	}

	return result.First(), nil
}

// ContentClassificationLabels implements helix.ChannelsClient.ContentClassificationLabels.
func (c *ChannelsClient) ContentClassificationLabels(ctx context.Context, locale string) ([]helix.ContentClassificationLabel, error) {
	params := helix.NewParams()
	if locale != "" {
		params.Set("locale", locale)
	}

	route := helix.NewRoute("GET", "content_classification_labels", params)

	var result helix.DataResponse[helix.ContentClassificationLabel]

	err := c.httpClient.JSON(ctx, route, &result)
	if err != nil {
		return nil, fmt.Errorf("getting content classification labels: %w", err)
	}

	return result.Data, nil
}
