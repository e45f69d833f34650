package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// options holds the flag values of one root command.
type options struct {
	jsonOutput      bool
	quiet           bool
	inkscape        string
	dpi             int
	onExportFailure string
	exportTimeout   time.Duration
	verify          bool
	prune           bool
	pruneDryRun     bool
}

// rootCmd is the root command for svgoverlay.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "svgoverlay FILENAME",
		Version: "dev",
		Short:   "Generate beamer overlay slides from a layered SVG",
		Long: `svgoverlay turns the layers of an Inkscape SVG into beamer overlays.

Every labeled layer is exported to its own PDF and gets a block in
overlay.tex that reveals it at the steps written between < and > in its
label (default: +-). For FILENAME foo.svg the output goes to ./foo/;
include it in your slides with \input{./foo/overlay.tex}.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0])
		},
	}

	cmd.SetHelpFunc(customHelpFunc)

	flags := cmd.Flags()
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output the run result in JSON format")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress per-layer diagnostic lines")
	flags.StringVar(&opts.inkscape, "inkscape", "", "Export binary (default $SVGOVERLAY_INKSCAPE or inkscape)")
	flags.IntVar(&opts.dpi, "dpi", 0, "Export resolution (default $SVGOVERLAY_DPI or 200)")
	flags.StringVar(&opts.onExportFailure, "on-export-failure", "continue",
		"What to do when a layer export fails: continue, skip, or abort")
	flags.DurationVar(&opts.exportTimeout, "export-timeout", 0, "Timeout per layer export (0 disables)")
	flags.BoolVar(&opts.verify, "verify", false, "Verify every exported PDF")
	flags.BoolVar(&opts.prune, "prune", false, "Remove exported PDFs that no current layer references")
	flags.BoolVar(&opts.pruneDryRun, "prune-dry-run", false, "List exported PDFs --prune would remove without deleting them")
	cmd.MarkFlagsMutuallyExclusive("prune", "prune-dry-run")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	hasCommands := false
	for _, c := range cmd.Commands() {
		if c.Hidden {
			continue
		}
		if !hasCommands {
			help.WriteString(sectionTitleColor.Sprint("Commands:"))
			help.WriteString("\n")
			hasCommands = true
		}
		fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
	}
	if hasCommands {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the svgoverlay CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate the autocompletion script for the specified shell",
		Long: `Generate the autocompletion script for svgoverlay for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(os.Stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		},
	})
	return completionCmd
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
