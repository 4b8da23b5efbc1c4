package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/nexus4812/php-class-gen/config"
	"github.com/nexus4812/php-class-gen/gen"
	"github.com/nexus4812/php-class-gen/php"
	"github.com/nexus4812/php-class-gen/writer"
)

// scaffoldFlags collects the structural flags shared by make and preview.
type scaffoldFlags struct {
	fields      string
	extends     string
	implements  []string
	traits      []string
	cases       string
	backing     string
	final       bool
	abstract    bool
	getters     bool
	constructor bool
	configPath  string
	dryRun      bool
}

var makeFlags scaffoldFlags

// MakeCmd represents the make command
var MakeCmd = &cobra.Command{
	Use:   "make",
	Short: "Generate a PHP artifact and write it to the source tree",
	Long: `Generate a PHP class, interface, trait, or enum.

The output path follows PSR-4 autoloading: mappings come from composer.json
and from phpgen.yaml, with the configured fallback root catching unmapped
namespaces. Fields use a compact name:type notation where types may nest
generics and callables, e.g. 'items:array<Item>,find:callable(int):?User'.

Examples:
  phpgen make class 'App\Models\User' --fields 'id:int,name:string'
  phpgen make class 'App\Dto\Point' --fields 'x:float,y:float' --final
  phpgen make interface 'App\Contracts\HasId' --fields 'id:int'
  phpgen make enum 'App\Status' --cases "Active:'active'" --backing string`,
}

func init() {
	for _, kind := range []php.Kind{php.KindClass, php.KindInterface, php.KindTrait, php.KindEnum} {
		MakeCmd.AddCommand(newMakeSubcommand(kind))
	}
	addScaffoldFlags(MakeCmd, &makeFlags)
	MakeCmd.PersistentFlags().BoolVar(&makeFlags.dryRun, "dry-run", false, "Report target paths without writing files")
}

// addScaffoldFlags registers the structural flags on a command's persistent
// flag set so every kind subcommand inherits them.
func addScaffoldFlags(cmd *cobra.Command, flags *scaffoldFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.fields, "fields", "f", "", "Field list as name:type pairs, e.g. 'id:int,name:string'")
	pf.StringVarP(&flags.extends, "extends", "e", "", "Fully qualified base type")
	pf.StringSliceVarP(&flags.implements, "implements", "i", nil, "Fully qualified interfaces to implement")
	pf.StringSliceVarP(&flags.traits, "traits", "t", nil, "Fully qualified traits to use")
	pf.StringVar(&flags.cases, "cases", "", "Enum cases as name:literal pairs, e.g. \"Active:'active'\"")
	pf.StringVar(&flags.backing, "backing", "", "Enum backing type: int or string")
	pf.BoolVar(&flags.final, "final", false, "Mark the class final")
	pf.BoolVar(&flags.abstract, "abstract", false, "Mark the class abstract")
	pf.BoolVar(&flags.getters, "getters", true, "Emit a getter per field")
	pf.BoolVar(&flags.constructor, "constructor", true, "Emit a constructor assigning every field")
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to phpgen.yaml (default: walk up from the working directory)")
}

func newMakeSubcommand(kind php.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " <name>",
		Short: "Generate a PHP " + string(kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMake(kind, args[0], makeFlags)
		},
	}
}

// spec translates flag values into a ScaffoldSpec for the given kind and name.
func (f scaffoldFlags) spec(kind php.Kind, name string) gen.ScaffoldSpec {
	return gen.ScaffoldSpec{
		Kind:       kind,
		Name:       name,
		Fields:     gen.ParseFieldList(f.fields),
		Extends:    f.extends,
		Implements: trimAll(f.implements),
		Traits:     trimAll(f.traits),
		Cases:      gen.ParseFieldList(f.cases),
		Backing:    f.backing,
		Final:      f.final,
		Abstract:   f.abstract,
		Getters:    f.getters,
		Construct:  f.constructor,
	}
}

func trimAll(names []string) []string {
	var out []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// loadConfig resolves the effective configuration for a command run.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func runMake(kind php.Kind, name string, flags scaffoldFlags) error {
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
		pterm.Error.Printf("Failed to assemble %s: %v\n", name, err)
		return err
	}

	w := writer.New(resolver).WithBaseDir(cfg.Output.BaseDir)
	dryRun := flags.dryRun || cfg.Output.DryRun

	if dryRun {
		pterm.Warning.Println("DRY RUN MODE: No files will be written")
	}

	for _, artifact := range artifacts {
		path, err := w.Write(artifact.File, dryRun)
		if err != nil {
			pterm.Error.Printf("Failed to write %s: %v\n", artifact.Key, err)
			return err
		}
		if dryRun {
			pterm.Info.Printf("Would write %s %s to %s\n", kind, artifact.Key, path)
		} else {
			pterm.Success.Printf("Generated %s %s at %s\n", kind, artifact.Key, path)
		}
	}

	return nil
}
