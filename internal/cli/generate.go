package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/svgoverlay/internal/config"
	"github.com/danieljhkim/svgoverlay/internal/engine"
)

func runGenerate(cmd *cobra.Command, opts *options, inputPath string) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	// Keep stdout clean for JSON; diagnostics move to stderr.
	var log io.Writer = cmd.OutOrStdout()
	if opts.jsonOutput {
		log = cmd.ErrOrStderr()
	}
	if opts.quiet {
		log = io.Discard
	}

	eng := newEngine(settings, log)
	result, err := eng.Run(cmd.Context(), &engine.RunRequest{
		InputPath:       inputPath,
		OnExportFailure: settings.OnExportFailure,
		ExportTimeout:   settings.ExportTimeout,
		Verify:          settings.Verify,
		Prune:           settings.Prune,
		PruneDryRun:     settings.PruneDryRun,
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return outputJSON(cmd.OutOrStdout(), result)
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// resolveSettings layers changed flags over environment defaults.
func resolveSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	settings, err := config.DefaultSettings()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("inkscape") {
		settings.Inkscape = opts.inkscape
	}
	if flags.Changed("dpi") {
		settings.DPI = opts.dpi
	}
	policy, err := config.ParsePolicy(opts.onExportFailure)
	if err != nil {
		return nil, err
	}
	settings.OnExportFailure = policy
	settings.ExportTimeout = opts.exportTimeout
	settings.Verify = opts.verify
	settings.Prune = opts.prune
	settings.PruneDryRun = opts.pruneDryRun

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func printResult(w io.Writer, result *engine.RunResult) {
	PrintSection(w, "Overlay")
	PrintLabelValue(w, "Output", result.TexPath)
	PrintLabelValue(w, "Layers", PrintCount(result.Emitted(), "block", "blocks"))
	if result.Unlabeled > 0 {
		PrintLabelValue(w, "Unlabeled", PrintCount(result.Unlabeled, "group skipped", "groups skipped"))
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, msg := range result.Warnings {
			PrintWarning(w, msg)
		}
	}

	if len(result.Pruned) > 0 {
		fmt.Fprintln(w)
		stale := PrintCount(len(result.Pruned), "stale export", "stale exports")
		if result.PruneDryRun {
			PrintInfo(w, fmt.Sprintf("Would prune %s:", stale))
		} else {
			PrintInfo(w, fmt.Sprintf("Pruned %s:", stale))
		}
		PrintList(w, result.Pruned, 1)
		if result.PruneDryRun {
			fmt.Fprintln(w)
			PrintWarning(w, "Run with --prune to actually delete these files.")
		}
	}

	fmt.Fprintln(w)
	if len(result.Layers) == 0 {
		PrintEmptyState(w, "No labeled layers found.")
		return
	}
	PrintSuccess(w, fmt.Sprintf("Wrote %s in %s", result.TexPath, result.Duration.Round(time.Millisecond)))
}
