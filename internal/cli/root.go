// Package cli implements the errnogen command surface.
package cli

import (
	"context"
	"os"

	"github.com/errtools/errnogen/internal/config"
	"github.com/errtools/errnogen/internal/errno"
	"github.com/spf13/cobra"
)

var (
	toolPath   string
	inputPath  string
	configPath string
	typeName   string
	entryName  string
)

// Execute runs the CLI application.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command. Running it with no recognized
// subcommand emits the gap-filled initializer table; the original generator
// treated every mode word other than decls and defs the same way, and builds
// depend on that fall-through.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errnogen [mode]",
		Short: "Generate errnos.inc fragments from the system error table",
		Long: `errnogen reads the host error-number table from the errno utility and
emits source fragments for the ioerr error type: forward declarations
(decls), constant definitions (defs), or the dense initializer table
included as errnos.inc (the default; the table body is printed twice,
matching the shape existing consumers include).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			em, err := newEmitter()
			if err != nil {
				return err
			}
			entries, err := loadEntries(cmd.Context())
			if err != nil {
				return err
			}
			return em.WriteTable(cmd.OutOrStdout(), entries)
		},
	}

	cmd.PersistentFlags().StringVar(&toolPath, "tool", "", `path to the errno enumeration tool (default "errno", env ERRNOGEN_TOOL)`)
	cmd.PersistentFlags().StringVar(&inputPath, "input", "", `read raw errno lines from a file instead of running the tool ("-" for stdin)`)
	cmd.PersistentFlags().StringVar(&configPath, "config", "", `config file (default "`+config.DefaultPath+`")`)
	cmd.PersistentFlags().StringVar(&typeName, "type", "", `error type name in declarations and definitions (default "`+errno.DefaultType+`")`)
	cmd.PersistentFlags().StringVar(&entryName, "entry", "", `initializer name used in table entries (default "`+errno.DefaultEntry+`")`)

	cmd.AddCommand(
		NewDeclsCmd(),
		NewDefsCmd(),
		NewListCmd(),
		NewCheckCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// toolFromEnv resolves the enumeration tool path.
// Checks --tool flag first, then ERRNOGEN_TOOL env var, defaults to "errno".
func toolFromEnv() string {
	if toolPath != "" {
		return toolPath
	}
	if envPath := os.Getenv("ERRNOGEN_TOOL"); envPath != "" {
		return envPath
	}
	return errno.DefaultTool
}

// newSource picks the data source: --input wins over running the tool.
func newSource() errno.Source {
	if inputPath == "-" {
		return errno.ReaderSource{R: os.Stdin}
	}
	if inputPath != "" {
		return errno.FileSource{Path: inputPath}
	}
	return errno.ToolSource{Path: toolFromEnv()}
}

// loadEntries reads the raw table and parses it into sorted entries.
func loadEntries(ctx context.Context) ([]errno.Entry, error) {
	raw, err := newSource().Raw(ctx)
	if err != nil {
		return nil, err
	}
	return errno.Parse(raw)
}

// newEmitter builds the emitter from config file and flag overrides.
func newEmitter() (errno.Emitter, error) {
	path := configPath
	explicit := path != ""
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path, explicit, config.Config{
		Type:  errno.DefaultType,
		Entry: errno.DefaultEntry,
	})
	if err != nil {
		return errno.Emitter{}, err
	}
	if typeName != "" {
		cfg.Type = typeName
	}
	if entryName != "" {
		cfg.Entry = entryName
	}
	return errno.Emitter{Type: cfg.Type, Entry: cfg.Entry}, nil
}
