package commands

import (
	"github.com/spf13/cobra"

	"github.com/nexus4812/php-class-gen/config"
	"github.com/nexus4812/php-class-gen/logger"
	"github.com/nexus4812/php-class-gen/server"
)

var serveConfigPath string

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP tool server on stdio",
	Long: `Start a Model Context Protocol server exposing the scaffolding
pipeline as tools (phpgen_scaffold, phpgen_preview). The server speaks MCP
over stdin/stdout, so it is meant to be launched by an MCP client such as an
editor or agent runtime, not interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *config.Config
		var err error
		if serveConfigPath != "" {
			cfg, err = config.LoadFromFile(serveConfigPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}

		s, err := server.NewMCPServer(cfg)
		if err != nil {
			return err
		}

		logger.Logger.Infow("starting MCP server on stdio")
		return s.Serve()
	},
}

func init() {
	ServeCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to phpgen.yaml (default: walk up from the working directory)")
}
