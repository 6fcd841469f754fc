package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ember/internal/logger"
	"ember/internal/runner"
)

// rootOptions are the leading long options. Everything after them is
// handed to the runner untouched, because the order of the short flags
// matters and pflag would reorder or reject them.
type rootOptions struct {
	debug    bool
	noColor  bool
	help     bool
	manifest string
	report   string
}

// rootCmd is the base command for the CLI tool `ember`.
var rootCmd = newRootCmd()

// newRootCmd builds the command. Streams come from cobra so tests can run
// the whole CLI in-process.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ember [--options] [-o file] {[input args] files}*",
		Short: "Turn files into C char array declarations",
		Long:  usage,

		// Short flags are positional state changes, not cobra flags.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,

		RunE: func(cmd *cobra.Command, args []string) error {
			leading, tokens := splitLongOptions(cmd.Flags(), args)
			if err := cmd.Flags().Parse(leading); err != nil {
				return err
			}

			logger.Init(cmd.ErrOrStderr(), opts.debug)
			if opts.noColor {
				logger.DisableColor()
			}

			if opts.help || (len(tokens) == 0 && opts.manifest == "") {
				_, err := cmd.ErrOrStderr().Write([]byte(usage))
				return err
			}

			tokens, err := withManifest(opts.manifest, tokens)
			if err != nil {
				return err
			}

			rep, err := runner.Run(tokens, runner.Options{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			if opts.report != "" {
				return rep.Save(opts.report)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")
	flags.BoolVar(&opts.help, "help", false, "Show usage")
	flags.StringVar(&opts.manifest, "manifest", "", "YAML manifest of inputs to embed")
	flags.StringVar(&opts.report, "report", "", "Write a JSON summary of the declarations")

	return cmd
}

// splitLongOptions returns the leading run of "--name[=value]" tokens
// (plus the separate value of non-boolean options) and the rest. A bare
// "--" ends the run and is kept for pflag to consume.
func splitLongOptions(flags *pflag.FlagSet, args []string) ([]string, []string) {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			return args[:i+1], args[i+1:]
		}
		if !strings.HasPrefix(arg, "--") {
			break
		}

		name := arg[2:]
		if strings.Contains(name, "=") {
			i++
			continue
		}
		if f := flags.Lookup(name); f != nil && f.NoOptDefVal == "" && i+1 < len(args) {
			i += 2
			continue
		}
		i++
	}
	return args[:i], args[i:]
}

// Execute runs the root command and exits non-zero on any failure.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(1)
	}
}
