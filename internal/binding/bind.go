package binding

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"accessor-generator/accessor"
)

var ErrInvalidManifest = errors.New("invalid manifest")

// Bind checks m and binds every variable to the region starting at base.
// Warnings are logged, any error diagnostic fails the whole manifest.
func Bind(ctx context.Context, m *Manifest, base uintptr, env Env) (*Library, error) {
	env = env.withDefaults()

	layout, diags := Check(m, env)
	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	for _, w := range diags.Warnings {
		env.Logger.Warn("manifest warning", "library", layout.Library, "diagnostic", w.String())
	}

	return BindLayout(ctx, layout, base, env)
}

// BindLayout generates the accessors of a checked layout concurrently,
// then writes the initial values in declaration order. All of them are
// converted first, so a rejected init value leaves the region untouched.
func BindLayout(ctx context.Context, layout *Layout, base uintptr, env Env) (*Library, error) {
	env = env.withDefaults()

	accs := make([]*accessor.Accessor, len(layout.Bindings))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range layout.Bindings {
		b := &layout.Bindings[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			acc, err := env.Synthesizer.GenerateRequest(accessor.Request{
				Owner:      layout.Library,
				Address:    base + uintptr(b.Offset),
				Type:       b.Logical,
				Attributes: b.Attributes,
				Converters: b.Converters,
			})
			if err != nil {
				return fmt.Errorf("binding %s: %w", b.Name, err)
			}

			accs[i] = acc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// every init value is converted before the first one is written
	var commits []func() error

	for i := range layout.Bindings {
		b := &layout.Bindings[i]
		if init, ok := b.Init.Get(); ok {
			commit, err := accs[i].Prepare(init)
			if err != nil {
				return nil, fmt.Errorf("initializing %s: %w", b.Name, err)
			}

			commits = append(commits, commit)
		}
	}

	for _, commit := range commits {
		if err := commit(); err != nil {
			return nil, fmt.Errorf("initializing %s: %w", layout.Library, err)
		}
	}

	env.Logger.Info("library bound",
		"library", layout.Library,
		"variables", len(accs),
		"size", layout.Size,
		"base", fmt.Sprintf("%#x", base),
	)

	return newLibrary(layout, base, accs), nil
}
