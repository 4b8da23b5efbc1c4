package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nexus4812/php-class-gen/gen"
	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/writer"
)

var previewFlags scaffoldFlags

// PreviewCmd represents the preview command
var PreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a PHP artifact to stdout without writing",
	Long: `Render a PHP class, interface, trait, or enum and print the source
along with the path it would be written to. Nothing touches the filesystem.

With --output-json the preview is emitted as a JSON object carrying the
target path, namespace, primary type, and content, for editor integration.

Examples:
  phpgen preview class 'App\Models\User' --fields 'id:int,name:string'
  phpgen preview enum 'App\Status' --cases "Active:'active'" --backing string
  phpgen preview class 'App\Dto\Point' --fields 'x:float,y:float' --output-json`,
}

func init() {
	for _, kind := range []php.Kind{php.KindClass, php.KindInterface, php.KindTrait, php.KindEnum} {
		PreviewCmd.AddCommand(newPreviewSubcommand(kind))
	}
	addScaffoldFlags(PreviewCmd, &previewFlags)
	PreviewCmd.PersistentFlags().Bool("output-json", false, "Emit the preview as JSON")
}

func newPreviewSubcommand(kind php.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " <name>",
		Short: "Preview a PHP " + string(kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("output-json")
			return runPreview(kind, args[0], previewFlags, asJSON)
		},
	}
}

func runPreview(kind php.Kind, name string, flags scaffoldFlags, asJSON bool) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	spec := flags.spec(kind, name)
	if err := spec.Validate(); err != nil {
		return err
	}

	resolver, err := cfg.BuildResolver()
	if err != nil {
		return err
	}

	assembler := gen.NewAssembler(cfg.Php.StrictTypes).SetHeader(cfg.Php.Header)
	artifacts, err := gen.NewProject().Add(spec.Builder()).Build(assembler)
	if err != nil {
		return err
	}

	w := writer.New(resolver).WithBaseDir(cfg.Output.BaseDir)
	preview := w.Preview(artifacts[0].File)

	if asJSON {
		output, err := json.MarshalIndent(preview, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	pterm.Info.Printf("%s %s -> %s\n", kind, name, preview.FilePath)
	pterm.Println()
	fmt.Print(preview.Content)
	return nil
}
