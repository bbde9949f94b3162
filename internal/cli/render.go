package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fcviz/pkg/errors"
	"github.com/matzehuels/fcviz/pkg/model"
	"github.com/matzehuels/fcviz/pkg/pipeline"
	"github.com/matzehuels/fcviz/pkg/render/nodelink"
)

// stdoutPath is the --output value that writes the artifact to stdout.
const stdoutPath = "-"

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags optionFlags
	var output string

	cmd := &cobra.Command{
		Use:   "render MODEL",
		Short: "Render a model file as a node-link diagram",
		Long: `Render a model file (.json, .toml or .safetensors) as a diagram with one
node per neuron and one edge per weight.

Settings are read from the config file first; flags given on the command
line take precedence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, or - for stdout (default: model name with format extension)")
	flags.register(cmd, true)

	return cmd
}

// outputPath derives the output file from the model path when output is empty.
// A derived name that would replace the model gets a ".graph" infix; an
// explicit output naming the model is rejected.
func outputPath(output, input string, f nodelink.Format) (string, error) {
	if output != "" {
		if filepath.Clean(output) == filepath.Clean(input) {
			return "", errors.New(errors.ErrCodeInvalidConfig, "output %s would overwrite the model file", output)
		}
		return output, nil
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	path := base + f.Ext()
	if filepath.Clean(path) == filepath.Clean(input) {
		path = base + ".graph" + f.Ext()
	}
	return path, nil
}

// runRender loads the model, runs the pipeline and writes the artifact.
func (c *CLI) runRender(ctx context.Context, input, output string, opts pipeline.Options) error {
	prog := newProgress(c.Logger)

	toStdout := output == stdoutPath
	var path string
	if !toStdout {
		p, err := outputPath(output, input, opts.OutputFormat())
		if err != nil {
			return err
		}
		path = p
	}

	m, err := c.openModel(input)
	if err != nil {
		return err
	}

	var spinner *Spinner
	if !toStdout {
		spinner = newSpinner(ctx, "Rendering "+filepath.Base(input))
		spinner.Start()
	}
	result, err := pipeline.Run(ctx, m, opts)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return err
	}

	if toStdout {
		if _, err := os.Stdout.Write(result.Artifact); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		prog.done(fmt.Sprintf("Rendered %d nodes", result.Stats.NodeCount))
		if opts.Display {
			c.Logger.Warn("nothing to display when writing to stdout")
		}
		return nil
	}

	if err := os.WriteFile(path, result.Artifact, 0o644); err != nil {
		spinner.Stop()
		return fmt.Errorf("write %s: %w", path, err)
	}
	spinner.StopWithSuccess("Rendered " + StyleHighlight.Render(input))
	printFile(path)
	printStats(result.Stats.LayerCount, result.Stats.NodeCount, result.Stats.EdgeCount)
	prog.done(fmt.Sprintf("Rendered %d nodes", result.Stats.NodeCount))

	if opts.Display {
		if err := browser.OpenFile(path); err != nil {
			printWarning("could not open %s: %v", path, err)
		}
	}
	return nil
}

// openModel reads a model file, warning when activations cannot be detected.
func (c *CLI) openModel(path string) (*model.Static, error) {
	src, err := model.Detect(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("reading model", "path", path, "source", src.Type())

	m, err := model.Open(path, src)
	if err != nil {
		return nil, err
	}
	if m.SyntheticModules {
		c.Logger.Warn("model has no module listing; activations cannot be detected", "path", path)
	}
	c.Logger.Debug("read model", "parameters", len(m.Params), "modules", len(m.Mods))
	return m, nil
}
