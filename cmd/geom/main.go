package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vango-dev/geom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// logFlags override the scene file's log section when set.
type logFlags struct {
	level  string
	format string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		errors.Fprint(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logs logFlags

	rootCmd := &cobra.Command{
		Use:   "geom",
		Short: "Inspect observable 2D scenes",
		Long: `geom builds a scene of observable points, lines, rays and gradients
from a YAML or JSON file, applies the file's edits and reports the
resulting geometry.

  • Named points shared by every shape that uses them
  • Line intersections and ray hits
  • Gradient samples as hex colors
  • Change notification counts per shape group`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logs.level, "log-level", "", "Log level: debug, info, warn or error (default from scene file)")
	rootCmd.PersistentFlags().StringVar(&logs.format, "log-format", "", "Log format: text or json (default from scene file)")

	rootCmd.AddCommand(
		inspectCmd(&logs),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
