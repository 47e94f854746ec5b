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

// NewVideosCommand creates the videos command group.
func NewVideosCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "videos",
		Aliases: []string{"video", "vods"},
		Short:   "Browse videos",
		Long:    "List published videos for a user or game",
	}

	cmd.AddCommand(newVideosUserCommand())
	cmd.AddCommand(newVideosGameCommand())
	cmd.AddCommand(newVideosDeleteCommand())

	return cmd
}

func newVideosDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete VIDEO_ID [VIDEO_ID...]",
		Short: "Delete videos you own",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			deleted, err := client.Videos().Delete(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("failed to delete videos: %w", err)
			}

			for _, id := range deleted {
				fmt.Printf("Deleted video %s\n", id)
			}

			return nil
		},
	}

	return cmd
}

// VideosListOptions holds the options for listing videos.
type VideosListOptions struct {
	Type   string
	Sort   string
	Period string
	First  int
	Max    int
}

func videoListFlags(cmd *cobra.Command, opts *VideosListOptions) {
	cmd.Flags().StringVar(&opts.Type, "type", "", "video type (archive, highlight, upload)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort order (time, trending, views)")
	cmd.Flags().StringVar(&opts.Period, "period", "", "period (day, week, month, all)")
	cmd.Flags().IntVar(&opts.First, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&opts.Max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")
}

func (o *VideosListOptions) toHelix() *helix.ListVideosOptions {
	opts := &helix.ListVideosOptions{
		Type:   o.Type,
		Sort:   o.Sort,
		Period: o.Period,
	}
	opts.First = o.First
	opts.MaxResults = o.Max

	return opts
}

func newVideosUserCommand() *cobra.Command {
	var opts VideosListOptions

	cmd := &cobra.Command{
		Use:   "user USER_ID",
		Short: "List videos for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFirst(opts.First); err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			videos, err := client.Videos().ListByUser(args[0], opts.toHelix()).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list videos: %w", err)
			}

			return outputVideos(videos)
		},
	}

	videoListFlags(cmd, &opts)

	return cmd
}

func newVideosGameCommand() *cobra.Command {
	var opts VideosListOptions

	cmd := &cobra.Command{
		Use:   "game GAME_ID",
		Short: "List videos for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFirst(opts.First); err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			videos, err := client.Videos().ListByGame(args[0], opts.toHelix()).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list videos: %w", err)
			}

			return outputVideos(videos)
		},
	}

	videoListFlags(cmd, &opts)

	return cmd
}

func outputVideos(videos []helix.Video) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(videos)
	case OutputFormatYAML:
		return outputYAML(videos)
	default:
		return outputVideosTable(videos)
	}
}

func outputVideosTable(videos []helix.Video) error {
	if len(videos) == 0 {
		_, _ = os.Stdout.WriteString("No videos found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Title", "Channel", "Type", "Duration", "Views", "Published")

	for _, video := range videos {
		_ = table.Append(
			truncate(video.Title, constants.TitleDisplayLength),
			video.UserLogin,
			video.Type,
			video.Duration,
			strconv.Itoa(video.ViewCount),
			video.PublishedAt.Format("2006-01-02"),
		)
	}

	_ = table.Render()

	return nil
}
