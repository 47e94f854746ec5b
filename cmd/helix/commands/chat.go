package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix-client/internal/constants"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// NewChatCommand creates the chat command group.
func NewChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Inspect chat emotes, badges, and settings",
	}

	cmd.AddCommand(newChatEmotesCommand())
	cmd.AddCommand(newChatBadgesCommand())
	cmd.AddCommand(newChatColorsCommand())
	cmd.AddCommand(newChatSettingsCommand())

	return cmd
}

func newChatEmotesCommand() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "emotes",
		Short: "List chat emotes",
		Long:  "List global chat emotes, or a channel's emotes with --channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			var emotes []helix.Emote
			if channel != "" {
				emotes, err = client.Chat().ChannelEmotes(cmd.Context(), channel)
			} else {
				emotes, err = client.Chat().GlobalEmotes(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list emotes: %w", err)
			}

			return outputEmotes(emotes)
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "broadcaster ID for channel emotes")

	return cmd
}

func newChatBadgesCommand() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List chat badges",
		Long:  "List global chat badges, or a channel's badges with --channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			var badges []helix.ChatBadgeSet
			if channel != "" {
				badges, err = client.Chat().ChannelBadges(cmd.Context(), channel)
			} else {
				badges, err = client.Chat().GlobalBadges(cmd.Context())
			}

			if err != nil {
				return fmt.Errorf("failed to list badges: %w", err)
			}

			return outputBadges(badges)
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "broadcaster ID for channel badges")

	return cmd
}

func newChatColorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "colors USER_ID...",
		Short: "Show chat colors for users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			colors, err := client.Chat().ChatterColors(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("failed to get chatter colors: %w", err)
			}

			return outputChatterColors(colors)
		},
	}
}

func newChatSettingsCommand() *cobra.Command {
	var moderator string

	cmd := &cobra.Command{
		Use:   "settings BROADCASTER_ID",
		Short: "Show a channel's chat settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			settings, err := client.Chat().Settings(cmd.Context(), args[0], moderator)
			if err != nil {
				return fmt.Errorf("failed to get chat settings: %w", err)
			}

			return outputChatSettings(settings)
		},
	}

	cmd.Flags().StringVar(&moderator, "moderator", "", "moderator user ID (includes moderator-only settings)")

	return cmd
}

func outputEmotes(emotes []helix.Emote) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(emotes)
	case OutputFormatYAML:
		return outputYAML(emotes)
	default:
		return outputEmotesTable(emotes)
	}
}

func outputEmotesTable(emotes []helix.Emote) error {
	if len(emotes) == 0 {
		_, _ = os.Stdout.WriteString("No emotes found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Tier")

	for _, emote := range emotes {
		emoteType := emote.EmoteType
		if emoteType == "" {
			emoteType = constants.NotAvailable
		}

		tier := emote.Tier
		if tier == "" {
			tier = constants.NotAvailable
		}

		_ = table.Append(emote.ID, emote.Name, emoteType, tier)
	}

	_ = table.Render()

	return nil
}

func outputBadges(badges []helix.ChatBadgeSet) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(badges)
	case OutputFormatYAML:
		return outputYAML(badges)
	default:
		return outputBadgesTable(badges)
	}
}

func outputBadgesTable(badges []helix.ChatBadgeSet) error {
	if len(badges) == 0 {
		_, _ = os.Stdout.WriteString("No badges found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Set", "Version", "Title")

	for _, set := range badges {
		for _, version := range set.Versions {
			_ = table.Append(set.SetID, version.ID, version.Title)
		}
	}

	_ = table.Render()

	return nil
}

func outputChatterColors(colors []helix.ChatterColor) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(colors)
	case OutputFormatYAML:
		return outputYAML(colors)
	default:
		return outputChatterColorsTable(colors)
	}
}

func outputChatterColorsTable(colors []helix.ChatterColor) error {
	if len(colors) == 0 {
		_, _ = os.Stdout.WriteString("No colors found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("User", "Login", "Color")

	for _, color := range colors {
		hex := color.Color
		if hex == "" {
			hex = constants.NotAvailable
		}

		_ = table.Append(color.UserName, color.UserLogin, hex)
	}

	_ = table.Render()

	return nil
}

func outputChatSettings(settings *helix.ChatSettings) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(settings)
	case OutputFormatYAML:
		return outputYAML(settings)
	default:
		return outputChatSettingsTable(settings)
	}
}

func outputChatSettingsTable(settings *helix.ChatSettings) error {
	if settings == nil {
		_, _ = os.Stdout.WriteString("No settings found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Setting", "Value")

	_ = table.Append("Emote mode", boolString(settings.EmoteMode))
	_ = table.Append("Follower mode", boolString(settings.FollowerMode))
	_ = table.Append("Follower mode duration (min)", strconv.Itoa(settings.FollowerModeDuration))
	_ = table.Append("Slow mode", boolString(settings.SlowMode))
	_ = table.Append("Slow mode wait (sec)", strconv.Itoa(settings.SlowModeWaitTime))
	_ = table.Append("Subscriber mode", boolString(settings.SubscriberMode))
	_ = table.Append("Unique chat mode", boolString(settings.UniqueChatMode))

	_ = table.Render()

	return nil
}

func boolString(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}
