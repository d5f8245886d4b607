package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formrules/pkg/form"
	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/reporter"
	"github.com/dmitrymomot/formrules/pkg/rules"
	"github.com/dmitrymomot/formrules/pkg/ruleset"
)

func validateCmd(a *app) *cobra.Command {
	var (
		rulesPath string
		formName  string
		locale    string
	)

	cmd := &cobra.Command{
		Use:   "validate SNAPSHOT",
		Short: "Validate a form snapshot",
		Long: `Validate a form snapshot against the rules of one form.

Failure messages are printed to stderr in rule order, followed by the field
that should receive focus. The exit status is non-zero when any rule fails.`,
		Example: `  formcheck validate --rules rules.yaml --form signup signup.yaml
  formcheck validate --rules rules.toml --locale fr-CA signup.json
  FORMCHECK_RULES=rules.yaml formcheck validate signup.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesPath == "" {
				rulesPath = a.cfg.Rules
			}
			if locale == "" {
				locale = a.cfg.Locale
			}
			if rulesPath == "" {
				return errors.New("no rule document: use --rules or FORMCHECK_RULES")
			}

			res, err := ruleset.Load(rulesPath)
			if err != nil {
				return err
			}
			snapshot, err := form.Load(args[0])
			if err != nil {
				return err
			}
			if formName == "" {
				formName = snapshot.Name()
			}

			tag := language.Und
			if locale != "" {
				if tag, err = language.Parse(locale); err != nil {
					return fmt.Errorf("locale %q: %w", locale, err)
				}
			}

			set, err := res.RuleSetFor(formName, tag)
			if err != nil {
				return err
			}

			log := a.log.With(logger.Form(formName))
			engine := rules.New(
				rules.WithLogger(log),
				rules.WithReporter(reporter.Multi(
					reporter.NewWriter(cmd.ErrOrStderr()),
					reporter.NewLog(log, slog.LevelInfo),
				)),
			)

			result := engine.Validate(snapshot, set)
			if !result.Valid {
				return fmt.Errorf("%w: %d of %d rules failed", errInvalid, len(result.Failures), set.Len())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d rules)\n", formName, set.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Rule document (YAML, JSON or TOML)")
	cmd.Flags().StringVar(&formName, "form", "", "Form name (defaults to the snapshot name)")
	cmd.Flags().StringVar(&locale, "locale", "", "Locale used to pick a formset, e.g. fr-CA")

	return cmd
}
