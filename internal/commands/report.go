package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/track2success-dev/track2success/internal/render"
	"github.com/track2success-dev/track2success/internal/report"
)

func newReportCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate weekly and summary reports",
	}
	cmd.AddCommand(newReportWeeklyCommand(dir))
	cmd.AddCommand(newReportSummaryCommand(dir))
	return cmd
}

func newReportWeeklyCommand(dir *string) *cobra.Command {
	var week string
	var write bool

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Report each week's expenses and incomes by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}

			var docs []report.Document
			if week != "" {
				start, err := time.Parse(flagDateFormat, week)
				if err != nil {
					return fmt.Errorf("parsing week %q: %w", week, err)
				}
				docs = []report.Document{s.reports().Weekly(start)}
			} else {
				docs = s.reports().AllWeekly()
			}

			rend := s.renderer()
			for i, doc := range docs {
				if i > 0 {
					cmd.Println()
				}
				cmd.Print(rend.WeeklyText(doc))
			}

			if write {
				if err := writeReports(s.reportsDir(), rend, docs); err != nil {
					return err
				}
				cmd.Printf("Wrote %d report(s) to %s\n", len(docs), s.reportsDir())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "report only the week containing this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&write, "write", false, "write reports to the reports directory")

	return cmd
}

func newReportSummaryCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Report total income, total expense, and net savings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(*dir)
			if err != nil {
				return err
			}
			cmd.Print(s.renderer().SummaryText(s.reports().Summarize()))
			return nil
		},
	}
}

func writeReports(dir string, rend *render.Renderer, docs []report.Document) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}
	for _, doc := range docs {
		path := filepath.Join(dir, render.WeeklyFileName(doc.WeekStart))
		if err := os.WriteFile(path, []byte(rend.WeeklyText(doc)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
