package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/geom/internal/config"
	"github.com/vango-dev/geom/internal/errors"
)

func initCmd() *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write an example scene file",
		Long: `Write an example scene to scene.yaml (or scene.json) in dir.

Examples:
  geom init
  geom init shapes --format=json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, format, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "File format: yaml or json")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scene file")

	return cmd
}

func runInit(cmd *cobra.Command, dir, format string, force bool) error {
	var name string
	switch format {
	case "yaml":
		name = config.DefaultFileName
	case "json":
		name = "scene.json"
	default:
		return errors.New("G103").
			WithDetail("Unknown scene format " + format + "; use yaml or json")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("G100").Wrap(err)
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New("G301").
			WithDetail(path + " already exists").
			WithSuggestion("Pass --force to overwrite it")
	}

	if err := config.Example().SaveTo(path); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "Wrote %s", path)
	info(out, "Run 'geom inspect %s' to see the report", path)
	return nil
}
