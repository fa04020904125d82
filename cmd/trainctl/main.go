package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pingponglab/traintracker/internal/config"
	"github.com/pingponglab/traintracker/internal/runs"
	"github.com/pingponglab/traintracker/internal/store"
	"github.com/spf13/cobra"
)

type cliState struct {
	configPath string
}

var (
	osExit                 = os.Exit
	stderrWriter io.Writer = os.Stderr

	loadConfig = config.Load
	openStore  = store.Open
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderrWriter, err)
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	st := &cliState{configPath: config.DefaultPath}

	root := &cobra.Command{
		Use:           "trainctl",
		Short:         "Inspect training runs from the terminal",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", st.configPath, "path to config file")

	root.AddCommand(newRunsCmd(st))
	root.AddCommand(newResultsCmd(st))
	return root
}

// openService wires config, store and the runs service for one command
// invocation. The returned func closes the store.
func openService(st *cliState) (*runs.Service, func(), error) {
	cfg, err := loadConfig(st.configPath)
	if err != nil {
		return nil, nil, err
	}
	s, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	return runs.NewService(s), func() { _ = s.Close() }, nil
}
