package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/ini.v1"

	"github.com/matzehuels/fcviz/pkg/errors"
	"github.com/matzehuels/fcviz/pkg/pipeline"
)

const (
	configFile         = "config.ini"
	sectionRender      = "render"
	sectionActivations = "activations"
	keyExtra           = "extra"
)

// optionFlags holds flags shared by commands that build a pipeline.
type optionFlags struct {
	config      string
	format      string
	direction   string
	values      bool
	display     bool
	activations []string
}

// register adds the flags. Rendering flags are only added when render is set.
func (f *optionFlags) register(cmd *cobra.Command, render bool) {
	cmd.Flags().StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/fcviz/config.ini)")
	cmd.Flags().StringSliceVar(&f.activations, "activation", nil, "extra activation module type(s) to recognise")
	if !render {
		return
	}
	cmd.Flags().StringVarP(&f.format, "format", "f", string(pipeline.DefaultFormat), "output format: svg, png, jpg, gif, dot, json")
	cmd.Flags().StringVarP(&f.direction, "direction", "d", string(pipeline.DefaultDirection), "layout direction: LR, TB")
	cmd.Flags().BoolVar(&f.values, "values", true, "show weights, biases and activation parameters")
	cmd.Flags().BoolVar(&f.display, "display", false, "open the rendered file in the system viewer")
}

// resolveOptions merges defaults, the config file and explicitly set flags,
// in that order, and validates the result.
func (c *CLI) resolveOptions(cmd *cobra.Command, f *optionFlags) (pipeline.Options, error) {
	opts, err := loadConfig(f.config)
	if err != nil {
		return opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Format = f.format
	}
	if flags.Changed("direction") {
		opts.Direction = f.direction
	}
	if flags.Changed("values") {
		opts.ShowValues = f.values
	}
	if flags.Changed("display") {
		opts.Display = f.display
	}
	opts.Activations = opts.Activations.With(f.activations...)
	opts.Logger = c.Logger

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	c.Logger.Debug("options",
		"format", opts.OutputFormat(),
		"direction", opts.LayoutDirection(),
		"values", opts.ShowValues,
		"allowlist", opts.Activations.Version)
	return opts, nil
}

// loadConfig reads pipeline defaults from an INI file.
//
// An empty path selects the default location; a missing default file is
// not an error. A path given explicitly must exist.
func loadConfig(path string) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return opts, nil
		}
		path = filepath.Join(dir, configFile)
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		UnescapeValueCommentSymbols: true,
	}, path)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if err := cfg.Section(sectionRender).StrictMapTo(&opts); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidConfig, err, "map [%s] section", sectionRender)
	}
	extra := strings.Fields(cfg.Section(sectionActivations).Key(keyExtra).String())
	opts.Activations = opts.Activations.With(extra...)
	return opts, nil
}

// configDir returns the config directory using XDG standard (~/.config/fcviz/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
