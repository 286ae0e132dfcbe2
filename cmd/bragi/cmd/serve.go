package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bragi-io/bragi/pkg/api"
	"github.com/bragi-io/bragi/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the bragi REST API server.

Configuration is read from --config (or the default config path when it
exists); flags override file values. When no API key is configured one
is generated and printed at startup.

Examples:
  bragi serve --api-key=mysecretkey --port=8080
  bragi serve --config=./bragi.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		bind, _ := cmd.Flags().GetString("bind")
		apiKey, _ := cmd.Flags().GetString("api-key")
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := resolveConfig(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind = bind
		}
		if apiKey != "" {
			cfg.Security.APIKey = apiKey
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			generated, err := config.GenerateSecureKey(32)
			if err != nil {
				return fmt.Errorf("failed to generate API key: %w", err)
			}
			cfg.Security.APIKey = generated
			cmd.Printf("Generated API key: %s\n", generated)
		}

		return api.StartServer(api.ServerConfig{
			Port:   cfg.Port,
			Bind:   cfg.Bind,
			APIKey: cfg.Security.APIKey,
		})
	},
}

// resolveConfig loads the named config file, falls back to the default path
// when one exists there, and otherwise starts from defaults.
func resolveConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	defaultPath := config.GetDefaultConfigPath()
	if config.ConfigExists(defaultPath) {
		cfg, err := config.LoadConfig(defaultPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key protecting /api/v1 routes")
	serveCmd.Flags().String("config", "", "Path to a YAML config file")
}
