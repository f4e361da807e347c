// fleetctl operates the coordination engine from the command line: manual
// checkpoints, recovery, task decomposition, and fleet status. It opens the
// same local store as fleetd.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/core"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/version"
)

// Exit codes per the CLI contract.
const (
	exitOK          = 0
	exitValidation  = 2
	exitUnavailable = 3
	exitConfig      = 4
)

// configError marks configuration failures so they exit with their own code.
type configError struct{ err error }

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

type rootOptions struct {
	ConfigDir string
	JSON      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "fleetctl",
		Short:         "Operate the fleet coordination engine",
		Version:       version.Full(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", ".",
		"directory containing fleet.yaml")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "JSON output")

	cmd.AddCommand(newCheckpointCommand(opts))
	cmd.AddCommand(newResumeCommand(opts))
	cmd.AddCommand(newCheckpointsCommand(opts))
	cmd.AddCommand(newDecomposeCommand(opts))
	cmd.AddCommand(newStatusCommand(opts))

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps the error taxonomy to the CLI contract.
func exitCode(err error) int {
	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return exitConfig
	}
	switch faults.KindOf(err) {
	case faults.KindValidation, faults.KindPrecondition, faults.KindCyclic, faults.KindNotFound:
		return exitValidation
	case faults.KindTransient:
		return exitUnavailable
	default:
		return 1
	}
}

// withCore loads configuration, opens the store, runs fn, and closes the
// store without the daemon's shutdown checkpointing.
func withCore(opts *rootOptions, fn func(ctx context.Context, c *core.Core) error) error {
	ctx := context.Background()

	cfg, err := config.Initialize(opts.ConfigDir)
	if err != nil {
		return &configError{err: err}
	}

	engine, err := core.New(ctx, cfg)
	if err != nil {
		return faults.Wrap(faults.KindTransient, "cannot open coordination store", err)
	}
	defer func() {
		_ = engine.DB.Close()
	}()

	return fn(ctx, engine)
}

// emit prints v as indented JSON when --json is set, otherwise via text,
// a human line formatter.
func emit(opts *rootOptions, v any, text func() string) error {
	if opts.JSON {
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	}
	fmt.Println(text())
	return nil
}
