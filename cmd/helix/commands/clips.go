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

// NewClipsCommand creates the clips command group.
func NewClipsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clips",
		Aliases: []string{"clip"},
		Short:   "Browse clips",
		Long:    "List clips for a broadcaster or game",
	}

	cmd.AddCommand(newClipsBroadcasterCommand())
	cmd.AddCommand(newClipsGameCommand())

	return cmd
}

func newClipsBroadcasterCommand() *cobra.Command {
	var (
		first    int
		max      int
		featured bool
	)

	cmd := &cobra.Command{
		Use:   "broadcaster BROADCASTER_ID",
		Short: "List clips for a broadcaster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFirst(first); err != nil {
				return err
			}

			opts := &helix.ListClipsOptions{}
			opts.First = first
			opts.MaxResults = max

			if featured {
				opts.IsFeatured = &featured
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			clips, err := client.Clips().ListByBroadcaster(args[0], opts).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list clips: %w", err)
			}

			return outputClips(clips)
		},
	}

	cmd.Flags().IntVar(&first, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured clips")

	return cmd
}

func newClipsGameCommand() *cobra.Command {
	var (
		first int
		max   int
	)

	cmd := &cobra.Command{
		Use:   "game GAME_ID",
		Short: "List clips for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFirst(first); err != nil {
				return err
			}

			opts := &helix.ListClipsOptions{}
			opts.First = first
			opts.MaxResults = max

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			clips, err := client.Clips().ListByGame(args[0], opts).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list clips: %w", err)
			}

			return outputClips(clips)
		},
	}

	cmd.Flags().IntVar(&first, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")

	return cmd
}

func outputClips(clips []helix.Clip) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(clips)
	case OutputFormatYAML:
		return outputYAML(clips)
	default:
		return outputClipsTable(clips)
	}
}

func outputClipsTable(clips []helix.Clip) error {
	if len(clips) == 0 {
		_, _ = os.Stdout.WriteString("No clips found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Broadcaster", "Creator", "Views", "URL")

	for _, clip := range clips {
		_ = table.Append(
			truncate(clip.Title, constants.TitleDisplayLength),
			clip.BroadcasterName,
			clip.CreatorName,
			strconv.Itoa(clip.ViewCount),
			clip.URL,
		)
	}

	_ = table.Render()

	return nil
}
