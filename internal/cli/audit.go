package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/discordify-go"
	"github.com/riverfjs/discordify-go/internal/article"
)

// AuditCmd reports which images of a document will still embed after the
// rewrite.
func AuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit [file]",
		Short: "Report how images fare in the rewrite",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAudit,
	}
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := configFrom(cmd.Context())
	if err != nil {
		return err
	}
	raw, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	a, err := article.Parse(name, raw, cfg.Article.StripFrontMatter)
	if err != nil {
		return err
	}

	report := discordify.Audit(a.Body, discordify.WithConfig(cfg.SplitOptions()))
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "images:    %d\n", report.Images)
	fmt.Fprintf(w, "rewritten: %d\n", report.Rewritten)
	fmt.Fprintf(w, "embedded:  %d\n", len(report.Embedded))
	for _, dest := range report.Embedded {
		fmt.Fprintf(w, "  %s\n", dest)
	}
	return nil
}
