package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"yaml-inventory/internal/app"
	"yaml-inventory/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "YAML_INVENTORY"

type rootOptions struct {
	List     bool
	Host     string
	File     string
	Dir      string
	Pretty   bool
	Verbose  bool
	LogLevel string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	opts := rootOptions{}
	cmd := &cobra.Command{
		Use:     "yaml-inventory",
		Short:   "Aggregate YAML inventory sources into one dynamic inventory document",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig()
			setupLogging(viper.GetString("log_level"), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.List, "list", false, "Print the full inventory document")
	cmd.Flags().StringVar(&opts.Host, "host", "", "Print merged variables for one host")
	cmd.Flags().StringVar(&opts.File, "file", "", "Read a single inventory source file")
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "Root directory to scan for inventory sources")
	cmd.Flags().BoolVar(&opts.Pretty, "pretty", false, "Indent the JSON output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	return cmd
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
}

// setupLogging writes to stderr: stdout is reserved for the JSON
// document the consumer parses.
func setupLogging(level string, verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func runRoot(ctx context.Context, cmd *cobra.Command, opts rootOptions) error {
	mode, path := resolveSource(cmd, opts)
	service := app.NewService()

	switch {
	case strings.TrimSpace(opts.Host) != "":
		result, err := service.HostVars(ctx, app.HostVarsRequest{
			Mode: mode,
			Path: path,
			Host: strings.TrimSpace(opts.Host),
		})
		if err != nil {
			return err
		}
		return writeJSON(cmd, result.Vars, opts.Pretty)
	case opts.List:
		result, err := service.List(ctx, app.ListRequest{Mode: mode, Path: path})
		if err != nil {
			return err
		}
		return writeJSON(cmd, result.Document, opts.Pretty)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("either --list or --host is required")
	}
}

// resolveSource picks single-file mode when --file or the
// YAML_INVENTORY_FILE environment variable names a source, and falls
// back to scanning --dir otherwise.
func resolveSource(cmd *cobra.Command, opts rootOptions) (types.SourceMode, string) {
	file := resolveString(cmd, opts.File, "file", "file")
	if strings.TrimSpace(file) != "" {
		return types.SourceModeFile, file
	}
	dir := resolveString(cmd, opts.Dir, "dir", "dir")
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return types.SourceModeScan, dir
}

func writeJSON(cmd *cobra.Command, value any, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode inventory document").
			WithCause(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if fromConfig := viper.GetString(key); fromConfig != "" {
		return fromConfig
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
