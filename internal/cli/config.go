package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/deptree/internal/config"
	"github.com/matzehuels/deptree/pkg/integrations/rosette"
)

// configCommand creates the config command for inspecting configuration.
func (c *CLI) configCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect deptree configuration",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/deptree/config.toml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(configPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration (the API key is masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfigShow(configPath)
		},
	})

	return cmd
}

func resolveConfigPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return config.Path()
}

func (c *CLI) runConfigShow(configPath string) error {
	path, err := resolveConfigPath(configPath)
	if err != nil {
		return err
	}
	file, err := config.Load(path)
	if err != nil {
		return err
	}

	keyLine := "not set"
	if key, source := config.ResolveKey("", file, c.getenv); key != "" {
		keyLine = maskKey(key) + " (" + source + ")"
	}

	apiURL := strings.TrimSpace(file.APIURL)
	if apiURL == "" {
		apiURL = rosette.DefaultBaseURL
	}
	language := strings.TrimSpace(file.Language)
	if language == "" {
		language = "auto"
	}

	printKeyValue(c.stdout, "config", path)
	printKeyValue(c.stdout, "key", keyLine)
	printKeyValue(c.stdout, "api_url", apiURL)
	printKeyValue(c.stdout, "language", language)
	return nil
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
