package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/castle-arcade/internal/config"
	"github.com/vovakirdan/castle-arcade/internal/registry"
)

var flagWatch bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate game configs",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <game> [file]",
	Short: "Check a game config file",
	Long: `Load a config file over the built-in defaults and report every problem.
Without a file, the user config in ~/.arcade is checked.

With --watch the file is checked again every time it changes, which is
handy while editing levels.

Examples:
  arcade config validate castle ./my-castle.yaml
  arcade config validate shadowlands ./levels.yaml --watch`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show <game>",
	Short: "Print the built-in default config",
	Long: `Print the default YAML for a game. Use it as a starting point:

  arcade config show castle > ~/.arcade/castle.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfigShow,
}

func init() {
	configValidateCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-validate whenever the file changes")
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown game %q", gameID)
	}
	path := ""
	if len(args) == 2 {
		path = args[1]
	}

	ok := validateOnce(gameID, path)
	if !flagWatch {
		if !ok {
			os.Exit(1)
		}
		return
	}
	if path == "" {
		fail("--watch needs a config file")
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching config", "path", path)
	err = config.WatchFile(ctx, path, func() {
		logger.Info("config changed", "path", path)
		validateOnce(gameID, path)
	})
	if err != nil {
		fail("%v", err)
	}
}

// validateOnce prints the result of one validation and reports success.
func validateOnce(gameID, path string) bool {
	name := path
	if name == "" {
		name = "user config"
	}
	if err := config.ValidateFile(gameID, path); err != nil {
		fmt.Fprintf(os.Stderr, "%s: invalid\n%v\n", name, err)
		return false
	}
	fmt.Printf("%s: ok\n", name)
	return true
}

func runConfigShow(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fail("no default config for %q", args[0])
	}
	os.Stdout.Write(data)
}
