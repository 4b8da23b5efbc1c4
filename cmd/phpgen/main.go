package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexus4812/php-class-gen/cmd/phpgen/commands"
	"github.com/nexus4812/php-class-gen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "phpgen",
	Short: "phpgen - PHP class scaffolding from the command line",
	Long: `phpgen - Generate PHP classes, interfaces, traits, and enums.

phpgen renders idiomatic PHP source from compact descriptions and places the
files where PSR-4 autoloading expects them, using composer.json mappings or
explicit configuration from phpgen.yaml.

Available commands:
  make    - Generate an artifact and write it to the source tree
  preview - Render an artifact to stdout without writing
  serve   - Start the MCP tool server on stdio
  version - Show version information

Examples:
  phpgen make class 'App\Models\User' --fields 'id:int,name:string'
  phpgen make enum 'App\Status' --cases "Active:'active'" --backing string
  phpgen preview interface 'App\Contracts\HasId' --fields id:int
  phpgen serve`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.InitializeWithVerbosity(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Structured JSON log output")

	rootCmd.AddCommand(commands.MakeCmd)
	rootCmd.AddCommand(commands.PreviewCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
