package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd opens the interactive simulator.
var rootCmd = &cobra.Command{
	Use:   "qsim",
	Short: "Simulate a small qubit register.",
	Long: `Simulate a register of qubits as a dense state vector, apply H, X and
CNOT gates to it and sample measurement outcomes.

Without a subcommand an interactive terminal view is opened.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("interactive mode needs a terminal, use `qsim run` instead")
		}
		return runInteractive(cfg)
	},
}

var runCmd = &cobra.Command{
	Use:   "run [flags] op...",
	Short: "Apply a sequence of operations and print the resulting probabilities.",
	Long: `Apply operations in order to a fresh register and print the basis-state
probabilities afterwards. Operations are:

  h:Q      Hadamard on qubit Q
  x:Q      Pauli-X (NOT) on qubit Q
  cx:C,T   controlled-NOT with control C and target T
  measure  measure all qubits and print the outcome
  state    print the current probabilities`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromFlags(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), cfg)

		ops, err := parseOps(args)
		if err != nil {
			return err
		}
		sess := NewSession(logger, cfg.Source())
		if err := sess.CreateCircuit(cfg.NumQubits, cfg.Excited); err != nil {
			return err
		}
		return runOps(sess, ops, cmd.OutOrStdout())
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntP("qubits", "n", defaultConfig().NumQubits, "number of qubits in the register")
	rootCmd.PersistentFlags().IntSliceP("excite", "e", nil, "qubits initialised to |1⟩")
	rootCmd.PersistentFlags().Uint64("seed", 0, "measurement seed (0 picks a random one)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.AddCommand(runCmd)
}

func configFromFlags(cmd *cobra.Command) (Config, error) {
	var cfg Config
	var err error

	flags := cmd.Flags()
	if cfg.NumQubits, err = flags.GetInt("qubits"); err != nil {
		return cfg, err
	}
	if cfg.Excited, err = flags.GetIntSlice("excite"); err != nil {
		return cfg, err
	}
	if cfg.Seed, err = flags.GetUint64("seed"); err != nil {
		return cfg, err
	}
	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func newLogger(out io.Writer, cfg Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(out)
	logger.SetFormatter(plainFormatter{})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func runInteractive(cfg Config) error {
	logs := &logBuffer{}
	logger := newLogger(logs, cfg)

	sess := NewSession(logger, cfg.Source())
	if err := sess.CreateCircuit(cfg.NumQubits, cfg.Excited); err != nil {
		return err
	}

	p := tea.NewProgram(initialModel(sess, logs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
