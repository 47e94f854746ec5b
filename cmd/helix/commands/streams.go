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

// NewStreamsCommand creates the streams command group.
func NewStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "streams",
		Aliases: []string{"stream"},
		Short:   "Browse live streams",
		Long:    "List live Twitch streams with optional filters",
	}

	cmd.AddCommand(newStreamsListCommand())

	return cmd
}

// StreamsListOptions holds the options for listing streams.
type StreamsListOptions struct {
	GameIDs    []string
	UserLogins []string
	Languages  []string
	Type       string
	First      int
	Max        int
}

func newStreamsListCommand() *cobra.Command {
	var opts StreamsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List live streams",
		Long:  "List live streams, most viewers first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStreamsListCommand(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.GameIDs, "game-id", nil, "filter by game ID")
	cmd.Flags().StringSliceVar(&opts.UserLogins, "user-login", nil, "filter by broadcaster login")
	cmd.Flags().StringSliceVar(&opts.Languages, "language", nil, "filter by broadcast language")
	cmd.Flags().StringVar(&opts.Type, "type", "", "stream type (all or live)")
	cmd.Flags().IntVar(&opts.First, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&opts.Max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")

	return cmd
}

func runStreamsListCommand(cmd *cobra.Command, opts StreamsListOptions) error {
	if err := validateFirst(opts.First); err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	defer func() { _ = client.Close() }()

	listOpts := &helix.ListStreamsOptions{
		GameIDs:    opts.GameIDs,
		UserLogins: opts.UserLogins,
		Languages:  opts.Languages,
		Type:       opts.Type,
	}
	listOpts.First = opts.First
	listOpts.MaxResults = opts.Max

	streams, err := client.Streams().List(listOpts).All(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list streams: %w", err)
	}

	return outputStreams(streams)
}

func outputStreams(streams []helix.Stream) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(streams)
	case OutputFormatYAML:
		return outputYAML(streams)
	default:
		return outputStreamsTable(streams)
	}
}

func outputStreamsTable(streams []helix.Stream) error {
	if len(streams) == 0 {
		_, _ = os.Stdout.WriteString("No live streams found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Channel", "Game", "Viewers", "Language", "Title")

	for _, stream := range streams {
		_ = table.Append(
			stream.UserLogin,
			stream.GameName,
			strconv.Itoa(stream.ViewerCount),
			stream.Language,
			truncate(stream.Title, constants.TitleDisplayLength),
		)
	}

	_ = table.Render()

	return nil
}
