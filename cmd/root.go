// Package cmd is the introscore command line: serve the HTTP scorer, score
// transcript files locally or remotely, and print the rubric.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/config"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/logging"
)

// app is the state shared by subcommands once configuration is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Root
	logger *logrus.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent
// tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	var cfgPath string

	root := &cobra.Command{
		Use:           "introscore",
		Short:         "Score self-introduction transcripts against a weighted rubric",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadInto(a.v, cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.Log)
			a.logger.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default config/$CONFIG_ENV/config.yaml, then ./config.yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text or json)")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", pf.Lookup("log-format"))

	root.AddCommand(
		newServeCmd(a),
		newScoreCmd(a),
		newRubricCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
