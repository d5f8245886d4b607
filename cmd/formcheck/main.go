// Command formcheck validates form snapshots against declarative rule
// documents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/config"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errInvalid makes the process exit non-zero when a form or date fails.
var errInvalid = errors.New("validation failed")

// appConfig is read from FORMCHECK_* environment variables and .env.
type appConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Rules     string `env:"RULES"`
	Locale    string `env:"LOCALE"`
}

type app struct {
	cfg appConfig
	log *slog.Logger
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	cmd := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate form snapshots against rule documents",
		Long: `formcheck runs declarative field rules against a form snapshot.

Rule documents (YAML, JSON or TOML) declare formsets, forms and the rules of
each field. Snapshots (YAML or JSON) describe the fields of one form and their
current values.

ENVIRONMENT:
  FORMCHECK_LOG_LEVEL   debug, info, warn or error (default info)
  FORMCHECK_LOG_FORMAT  text or json (default text)
  FORMCHECK_RULES       default rule document for validate
  FORMCHECK_LOCALE      default locale for validate`,
		Version: fmt.Sprintf("%s (%s) %s", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("formcheck %s (%s) %s\n", version, commit, date))

	cmd.AddCommand(validateCmd(a))
	cmd.AddCommand(dateCmd(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg, config.WithPrefix("FORMCHECK_")); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(
			logger.Component("formcheck"),
			logger.RunID(uuid.NewString()),
		),
	)
	return nil
}
