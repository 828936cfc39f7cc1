package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"accessor-generator/accessor"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <manifest>",
		Short: "Print the generated accessors of a manifest",
		Long: `Generate the accessor of every manifest variable against a scratch
region and print its listing: the bound address, native kind, storage op,
coercion and converters, followed by the equivalent Get and Set functions.

Variables carrying the notrace attribute are generated but not printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(rootOpts, args[0], cmd)
		},
	}
}

func runTrace(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    "text",
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	env := newEnv(opts, cmd.ErrOrStderr())

	c, err := loadAndCheck(path, env)
	if err != nil {
		return err
	}

	if !c.diags.IsValid() {
		return c.failure(f)
	}

	config := accessor.DefaultConfig()
	config.Debug = true
	config.Trace = f.Writer

	buf, env := scratch(c.layout, env, config)
	f.VerboseLog("Scratch region of %d bytes at %#x", buf.Size(), buf.Address())

	// one at a time so the listings do not interleave
	for i := range c.layout.Bindings {
		b := &c.layout.Bindings[i]

		if i > 0 {
			fmt.Fprintln(f.Writer)
		}

		_, err := env.Synthesizer.GenerateRequest(accessor.Request{
			Owner:      c.layout.Library,
			Address:    buf.Address() + uintptr(b.Offset),
			Type:       b.Logical,
			Attributes: b.Attributes,
			Converters: b.Converters,
		})
		if err != nil {
			return WrapExitError(ExitFailure, "generating "+b.Name, err)
		}
	}

	return nil
}
