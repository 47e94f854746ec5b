package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/streamkit-io/helix-client/internal/constants"
	"github.com/streamkit-io/helix-client/pkg/helix"
	"github.com/streamkit-io/helix-client/pkg/twitchclient"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = constants.FormatJSON
	OutputFormatYAML = constants.FormatYAML
)

// ValidateOutputFormat checks that format names a supported output mode.
func ValidateOutputFormat(format string) error {
	switch format {
	case "table", OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

// validateFirst rejects page sizes outside what the API accepts.
func validateFirst(first int) error {
	if first < 0 || first > constants.MaxPageSize {
		return fmt.Errorf("%w: %d", constants.ErrInvalidFirst, first)
	}

	return nil
}

// CreateClient builds a helix client from the active configuration.
func CreateClient() (helix.Client, error) {
	clientID := viper.GetString("client-id")
	if clientID == "" {
		return nil, constants.ErrNoClientIDConfigured
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	config := &helix.Config{
		ClientID:    clientID,
		AccessToken: token,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	cli, err := twitchclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return cli, nil
}

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) log(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "[%s] %s %v\n", level, msg, fields)
}

func (l stderrLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l stderrLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l stderrLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l stderrLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	if max <= 3 {
		return s[:max]
	}

	return s[:max-3] + "..."
}
