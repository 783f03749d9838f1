// Package cli implements the identicon command.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/askiada/go-identicon/internal/build"
	"github.com/askiada/go-identicon/internal/config"
	"github.com/askiada/go-identicon/internal/logging"
	"github.com/askiada/go-identicon/pkg/storage"
)

type rootOptions struct {
	configFile string
	cfg        config.Config
	setupLog   func(cfg config.Log) (func(), error)
	closeLog   func()
}

func (o *rootOptions) close() {
	if o.closeLog != nil {
		o.closeLog()
		o.closeLog = nil
	}
}

// Execute runs the identicon command with args and logs its error. The log file, if any, is closed before it
// returns, even when the command fails.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, &rootOptions{setupLog: logging.Setup}, args)
}

func execute(ctx context.Context, opts *rootOptions, args []string) error {
	defer opts.close()

	rootCmd := newRootCommand(opts)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("identicon failed")
	}

	return err
}

// Root returns the identicon command with all its sub commands. The caller owns the log file opened by the command,
// use Execute to have it closed.
func Root() *cobra.Command {
	return newRootCommand(&rootOptions{setupLog: logging.Setup})
}

func newRootCommand(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "identicon",
		Short:         "Deterministic identicon generator",
		Long:          `Generate a 250x250 symmetric PNG from the MD5 of any string`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd, opts.configFile)
			if err != nil {
				return err
			}
			closeLog, err := opts.setupLog(cfg.Log)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.closeLog = closeLog

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to a JSON, TOML or YAML config file")
	rootCmd.PersistentFlags().String(config.FlagNames["log.level"], "info", "set the log level: trace, debug, info, warn, error, fatal or none")
	rootCmd.PersistentFlags().String(config.FlagNames["log.file"], "", "write logs to a file instead of stdout")

	rootCmd.AddCommand(generateCommand(opts), inspectCommand(opts), versionCommand())

	return rootCmd
}

func generateCommand(opts *rootOptions) *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [input...]",
		Short: "Write the identicon of every input",
		Long:  `Write <input>.png for every input. Use - to read one input per line from stdin`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			res, err := Generate(cmd.Context(), opts.cfg, inputs)
			if err != nil {
				return err
			}
			log.Debug().Int64("written", res.Written).Msg("generation finished")

			return nil
		},
	}
	generateCmd.Flags().String(config.FlagNames["out_dir"], ".", "directory the images are written to")
	generateCmd.Flags().Int(config.FlagNames["concurrency"], 4, "number of images rendered at once")
	generateCmd.Flags().Bool(config.FlagNames["raw_names"], false, "name files after the raw input, even when it contains path separators")
	generateCmd.Flags().String(config.FlagNames["graph_file"], "", "write a Graphviz description of the pipeline to this file")
	generateCmd.Flags().String(config.FlagNames["manifest_file"], "", "write a JSON manifest of the generated files to this file")
	generateCmd.Flags().Bool(config.FlagNames["measure"], false, "log the average duration of every step")

	return generateCmd
}

func inspectCommand(opts *rootOptions) *cobra.Command {
	var manifestFile string

	inspectCmd := &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print the stages of an identicon",
		Long:  `Print the hash, the colour, the grid and the pixel map of an input without writing anything`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var manifest *storage.Manifest
			if manifestFile != "" {
				var err error
				manifest, err = storage.LoadManifest(manifestFile)
				if err != nil {
					return err
				}
			}

			return Inspect(cmd.OutOrStdout(), args[0], fileNamer(opts.cfg), manifest)
		},
	}
	inspectCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "manifest to look the input up in")
	inspectCmd.Flags().Bool(config.FlagNames["raw_names"], false, "show the file name generate uses with --raw-names")

	return inspectCmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "identicon v%s (Go version: %s)\n", build.Version, runtime.Version())
		},
	}
}

// readInputs replaces a "-" argument by the lines of in. Empty lines are kept, the empty string is a valid input.
func readInputs(in io.Reader, args []string) ([]string, error) {
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "-" {
			inputs = append(inputs, arg)

			continue
		}

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			inputs = append(inputs, strings.TrimSuffix(scanner.Text(), "\r"))
		}
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "unable to read inputs from stdin")
		}
	}

	return inputs, nil
}
