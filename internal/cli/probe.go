package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"accessor-generator/accessor"
	"accessor-generator/internal/binding"
	"accessor-generator/utils"
)

// ProbeOptions holds the flags of the probe command.
type ProbeOptions struct {
	Sets []string
}

// ProbeResult is the YAML form of a probed library.
type ProbeResult struct {
	Library string          `yaml:"library"`
	Base    string          `yaml:"base"`
	Size    int64           `yaml:"size"`
	Values  []binding.Value `yaml:"values"`
}

// NewProbeCommand creates the probe command.
func NewProbeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProbeOptions{}

	cmd := &cobra.Command{
		Use:   "probe <manifest>",
		Short: "Bind a manifest to a scratch region and read it back",
		Long: `Bind every manifest variable to a scratch region, write the initial values,
apply the --set assignments in order and print what the accessors read back.

Values given to --set are parsed like manifest init values, e.g.
--set counter=0x10 --set timeout=250ms.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Sets, "set", nil, "assign a variable after binding (name=value, repeatable)")

	return cmd
}

// parseAssignment splits "name=value".
func parseAssignment(arg string) (name, value string, err error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return "", "", fmt.Errorf("invalid assignment %q: want name=value", arg)
	}

	name, value = utils.Unpack2(parts)

	return strings.TrimSpace(name), value, nil
}

func runProbe(rootOpts *RootOptions, opts *ProbeOptions, path string, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	env := newEnv(rootOpts, cmd.ErrOrStderr())

	c, err := loadAndCheck(path, env)
	if err != nil {
		return err
	}

	if !c.diags.IsValid() {
		return c.failure(f)
	}

	buf, env := scratch(c.layout, env, accessor.DefaultConfig())

	lib, err := binding.BindLayout(cmd.Context(), c.layout, buf.Address(), env)
	if err != nil {
		return WrapExitError(ExitFailure, "binding "+c.manifest.Library, err)
	}

	for _, arg := range opts.Sets {
		name, value, err := parseAssignment(arg)
		if err != nil {
			return WrapExitError(ExitCommandError, "parsing --set", err)
		}

		if err := lib.Set(name, value); err != nil {
			return WrapExitError(ExitFailure, "setting "+name, err)
		}

		f.VerboseLog("Set %s = %s", name, value)
	}

	values, err := lib.Snapshot()
	if err != nil {
		return WrapExitError(ExitFailure, "reading "+lib.Name(), err)
	}

	f.VerboseDump(values)

	if f.IsYAML() {
		return f.YAML(ProbeResult{
			Library: lib.Name(),
			Base:    fmt.Sprintf("%#x", lib.Base()),
			Size:    lib.Size(),
			Values:  values,
		})
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tKIND\tOFFSET\tVALUE")

	for _, v := range values {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%v\n", v.Name, v.Type, v.Kind, v.Offset, v.Value)
	}

	return tw.Flush()
}
