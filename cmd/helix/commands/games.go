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

// NewGamesCommand creates the games command group.
func NewGamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "games",
		Aliases: []string{"game", "categories"},
		Short:   "Browse games and categories",
		Long:    "List top games and look up games by ID or name",
	}

	cmd.AddCommand(newGamesTopCommand())
	cmd.AddCommand(newGamesGetCommand())

	return cmd
}

func newGamesTopCommand() *cobra.Command {
	var (
		first int
		max   int
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List top games",
		Long:  "List the games with the most current viewers",
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

			games, err := client.Games().Top(opts).All(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list top games: %w", err)
			}

			return outputGames(games)
		},
	}

	cmd.Flags().IntVar(&first, "first", 0, "page size per API fetch")
	cmd.Flags().IntVar(&max, "max", constants.DefaultPageSize, "maximum number of results (0 for unbounded)")

	return cmd
}

func newGamesGetCommand() *cobra.Command {
	var (
		ids     []string
		names   []string
		igdbIDs []string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up games",
		Long:  "Look up games by ID, name, or IGDB ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			defer func() { _ = client.Close() }()

			games, err := client.Games().Get(cmd.Context(), helix.GamesQuery{
				IDs:     ids,
				Names:   names,
				IGDBIDs: igdbIDs,
			})
			if err != nil {
				return fmt.Errorf("failed to get games: %w", err)
			}

			return outputGames(games)
		},
	}

	cmd.Flags().StringSliceVar(&ids, "id", nil, "game ID")
	cmd.Flags().StringSliceVar(&names, "name", nil, "exact game name")
	cmd.Flags().StringSliceVar(&igdbIDs, "igdb-id", nil, "IGDB ID")

	return cmd
}

func outputGames(games []helix.Game) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(games)
	case OutputFormatYAML:
		return outputYAML(games)
	default:
		return outputGamesTable(games)
	}
}

func outputGamesTable(games []helix.Game) error {
	if len(games) == 0 {
		_, _ = os.Stdout.WriteString("No games found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "IGDB ID")

	for _, game := range games {
		igdbID := game.IGDBID
		if igdbID == "" {
			igdbID = constants.NotAvailable
		}

		_ = table.Append(game.ID, game.Name, igdbID)
	}

	_ = table.Render()

	return nil
}
