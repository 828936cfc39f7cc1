package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"accessor-generator/internal/binding"
)

// CheckOptions holds the flags of the check command.
type CheckOptions struct {
	Write string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Check a binding manifest",
		Long: `Resolve every variable of a binding manifest and validate its layout.

Reports unknown types, attributes and converters, types without a native
representation, invalid initial values, and storage that overlaps or leaves
the region. Narrowing storage is reported as a warning.

With --write, a valid manifest is saved with its region size and every
offset filled in (TOML for .toml files, YAML otherwise).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Write, "write", "w", "", "save the manifest with computed offsets and size to this path")

	return cmd
}

func runCheck(rootOpts *RootOptions, opts *CheckOptions, path string, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	c, err := loadAndCheck(path, newEnv(rootOpts, cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	f.VerboseLog("Checked %d variable(s) of %s", len(c.manifest.Variables), c.manifest.Library)

	if !c.diags.IsValid() {
		return c.failure(f)
	}

	if opts.Write != "" {
		if err := binding.WriteFile(c.layout.Pin(c.manifest), opts.Write); err != nil {
			return WrapExitError(ExitCommandError, "writing manifest", err)
		}

		f.VerboseLog("Wrote %s", opts.Write)
	}

	if f.IsYAML() {
		return f.YAML(c.result())
	}

	fmt.Fprintf(f.Writer, "✓ %s: %d variable(s) in %d bytes\n", c.manifest.Library, len(c.layout.Bindings), c.layout.Size)
	writeDiagnostics(f.Writer, c.diags)

	return nil
}
