package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamkit-io/helix-client/internal/constants"
	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/streamkit-io/helix-client/pkg/twitchclient"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		clientID string
		token    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Helix API credentials",
		Long: `Store a Twitch application client ID and app access token in the
configuration file. The token is validated with a test request before
it is saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID == "" {
				clientID = viper.GetString("client-id")
			}

			if clientID == "" {
				fmt.Print("Client ID: ")
				_, err := fmt.Scanln(&clientID)
				if err != nil {
					return fmt.Errorf("reading client ID: %w", err)
				}
			}

			if token == "" {
				fmt.Print("App access token: ")

				tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}

				token = string(tokenBytes)
			}

			err := verifyCredentials(cmd.Context(), clientID, token)
			if err != nil {
				return err
			}

			viper.Set("client-id", clientID)
			viper.Set("token", token)

			err = viper.WriteConfig()
			if err != nil {
				err = viper.SafeWriteConfig()
			}

			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Println("Credentials saved.")

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "Twitch application client ID")
	cmd.Flags().StringVar(&token, "token", "", "app access token (prompted if omitted)")

	return cmd
}

// verifyCredentials issues a cheap request to confirm the token works.
func verifyCredentials(ctx context.Context, clientID, token string) error {
	cli, err := twitchclient.NewWithToken(clientID, token)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	defer func() { _ = cli.Close() }()

	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	_, err = cli.Games().Top(&helix.PageOptions{MaxResults: 1}).Page(ctx)
	if err != nil {
		return fmt.Errorf("verifying credentials: %w", err)
	}

	return nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			err := viper.WriteConfig()
			if err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Credentials removed.")

			return nil
		},
	}
}
