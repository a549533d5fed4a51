package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/vista"
	"github.com/zoobzio/vista/pkg/layout"
)

// watchCmd waits for a target element to become visible.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Wait until an element is visible",
	Long: `Watch a layout file and print one line when the target element first
overlaps the viewport. Writes to the layout file are treated as scrolls and
debounced before each visibility check.

Exit codes:
  0 - Target became visible
  1 - Timed out, interrupted, or the layout could not be read

Example:
  vista watch -l layout.yaml -t hero
  vista watch -l layout.yaml -t hero --debounce 100ms --timeout 30s`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringP("layout", "l", "", "path to layout file (required)")
	watchCmd.Flags().StringP("target", "t", "", "element to watch (required)")
	watchCmd.Flags().StringP("config", "c", "", "path to config file")
	watchCmd.Flags().Duration("debounce", vista.DefaultDebounce, "scroll quiescence period")
	watchCmd.Flags().Duration("timeout", 0, "give up after this long (0 waits forever)")
	watchCmd.Flags().BoolP("verbose", "v", false, "print every detection attempt")
	_ = watchCmd.MarkFlagRequired("layout")
	_ = watchCmd.MarkFlagRequired("target")
}

// watchConfig merges the config file, if any, with explicitly set flags.
func watchConfig(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("debounce") {
		d, _ := cmd.Flags().GetDuration("debounce")
		cfg.Debounce = Duration(d)
	}
	if cmd.Flags().Changed("timeout") {
		d, _ := cmd.Flags().GetDuration("timeout")
		cfg.Timeout = Duration(d)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
	}
	return cfg, nil
}

func runWatch(cmd *cobra.Command, _ []string) error {
	layoutPath, _ := cmd.Flags().GetString("layout")
	target, _ := cmd.Flags().GetString("target")

	cfg, err := watchConfig(cmd)
	if err != nil {
		return err
	}

	host := layout.New(layoutPath)
	if err := host.Load(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, ok := host.Current().Elements[target]; !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not in %s yet\n", target, layoutPath)
	}

	if cfg.Verbose {
		hookVerbose(out)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout.Duration())
		defer cancel()
	}

	seen := make(chan vista.Notice, 1)
	latch := vista.New(target, host,
		func(_ context.Context, n vista.Notice) error {
			seen <- n
			return nil
		},
		cfg.Options()...,
	).Debounce(cfg.Debounce.Duration())
	defer latch.Dispose()

	if err := latch.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch %s: %w", layoutPath, err)
	}

	select {
	case n := <-seen:
		fmt.Fprintf(out, "%s visible (%s, viewport %g) via %s at %s\n",
			n.Target, n.Bounds, n.ViewportHeight, n.Strategy, n.FiredAt.Format(time.RFC3339))
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%s not visible within %s", target, cfg.Timeout.Duration())
		}
		return fmt.Errorf("interrupted before %s became visible", target)
	}
}

// hookVerbose prints detection attempts and layout reloads.
func hookVerbose(out io.Writer) {
	capitan.Hook(vista.LatchDetection, func(_ context.Context, e *capitan.Event) {
		bounds, _ := vista.KeyBounds.From(e)
		visible, _ := vista.KeyVisible.From(e)
		strategy, _ := vista.KeyStrategy.From(e)
		fmt.Fprintf(out, "[CHECK] %s %s visible=%s\n", strategy, bounds, visible)
	})
	capitan.Hook(layout.LayoutRejected, func(_ context.Context, e *capitan.Event) {
		errMsg, _ := layout.KeyError.From(e)
		fmt.Fprintf(out, "[REJECTED] %s\n", errMsg)
	})
}
