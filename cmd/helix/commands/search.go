package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix-client/internal/constants"
	"github.com/streamkit-io/helix-client/pkg/helix"
)

// NewSearchCommand creates the search command group.
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search categories and channels",
	}

	cmd.AddCommand(newSearchCategoriesCommand())
	cmd.AddCommand(newSearchChannelsCommand())

	return cmd
}

func newSearchCategoriesCommand() *cobra.Command {
	var first, max int

	cmd := &cobra.Command{
		Use:   "categories QUERY",
		Short: "Search game categories by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFirst(first); err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			opts := &helix.PageOptions{First: first, MaxResults: max}

			games, err := client.Search().Categories(args[0], opts).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to search categories: %w", err)
			}

			return outputGames(games)
		},
	}

	cmd.Flags().IntVar(&first, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")

	return cmd
}

func newSearchChannelsCommand() *cobra.Command {
	var (
		liveOnly   bool
		first, max int
	)

	cmd := &cobra.Command{
		Use:   "channels QUERY",
		Short: "Search channels by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFirst(first); err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			opts := &helix.SearchChannelsOptions{LiveOnly: liveOnly}
			opts.First = first
			opts.MaxResults = max

			channels, err := client.Search().Channels(args[0], opts).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to search channels: %w", err)
			}

			return outputSearchChannels(channels)
		},
	}

	cmd.Flags().BoolVar(&liveOnly, "live", false, "only return channels that are currently live")
	cmd.Flags().IntVar(&first, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")

	return cmd
}

func outputSearchChannels(channels []helix.SearchChannel) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(channels)
	case OutputFormatYAML:
		return outputYAML(channels)
	default:
		return outputSearchChannelsTable(channels)
	}
}

func outputSearchChannelsTable(channels []helix.SearchChannel) error {
	if len(channels) == 0 {
		_, _ = os.Stdout.WriteString("No channels found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Channel", "Game", "Live", "Language", "Title")

	for _, channel := range channels {
		live := constants.BooleanFalse
		if channel.IsLive {
			live = constants.BooleanTrue
		}

		game := channel.GameName
		if game == "" {
			game = constants.NotAvailable
		}

		_ = table.Append(
			channel.BroadcasterLogin,
			game,
			live,
			channel.Language,
			truncate(channel.Title, constants.TitleDisplayLength),
		)
	}

	_ = table.Render()

	return nil
}
