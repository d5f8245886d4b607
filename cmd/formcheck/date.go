package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formrules/pkg/datepattern"
	"github.com/dmitrymomot/formrules/pkg/logger"
)

func dateCmd(a *app) *cobra.Command {
	var (
		layout string
		loose  bool
	)

	cmd := &cobra.Command{
		Use:   "date VALUE...",
		Short: "Check values against a date pattern",
		Long: `Check values against a date pattern built from MM, dd and yyyy.

In strict mode (the default) day and month must have two digits; --loose
accepts one or two.`,
		Example: `  formcheck date --pattern MM/dd/yyyy 02/29/2024 02/29/2023
  formcheck date --pattern yyyyMMdd 20230230
  formcheck date --pattern dd.MM.yyyy --loose 1.2.2024`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := datepattern.Compile(layout, !loose)
			if err != nil {
				return err
			}
			a.log.Debug("date pattern compiled",
				logger.Group("pattern",
					slog.String("layout", p.Layout()),
					slog.String("order", p.Order().String()),
					slog.Bool("strict", p.Strict()),
					slog.String("expr", p.Expr()),
				),
			)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			failed := 0
			for _, value := range args {
				d, ok := p.Extract(value)
				switch {
				case !ok:
					failed++
					fmt.Fprintf(w, "%s\tinvalid\tno match for %s\n", value, p.Layout())
				case !d.Valid():
					failed++
					fmt.Fprintf(w, "%s\tinvalid\tno such date %s\n", value, d)
				default:
					fmt.Fprintf(w, "%s\tvalid\t%s\n", value, d)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d values", errInvalid, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&layout, "pattern", "", "Date pattern, e.g. MM/dd/yyyy")
	cmd.Flags().BoolVar(&loose, "loose", false, "Accept one-digit day and month")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}
