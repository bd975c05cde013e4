package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/riverfjs/discordify-go"
	"github.com/riverfjs/discordify-go/internal/article"
	"github.com/riverfjs/discordify-go/internal/deliver"
	"github.com/riverfjs/discordify-go/internal/logger"
)

// SplitCmd converts a local markdown file (or stdin) into messages.
func SplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Rewrite and split a markdown document into messages",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSplit,
	}
	cmd.Flags().Bool("trace", false, "Prefix every message with its segment and part")
	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)
	cfg, err := configFrom(ctx)
	if err != nil {
		return err
	}
	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}

	raw, name, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	a, err := article.Parse(name, raw, cfg.Article.StripFrontMatter)
	if err != nil {
		return err
	}

	messages := discordify.Messages(a.Body, discordify.WithConfig(cfg.SplitOptions()))
	log.Debug("split document", "source", name, "messages", len(messages))

	out := deliver.NewWriterSender(cmd.OutOrStdout(), cfg.Delivery.Separator)
	for _, m := range messages {
		text := m.Text
		if trace {
			text = fmt.Sprintf("[%d.%d len=%d] %s", m.Trace.Segment, m.Trace.Part, m.Len(), text)
		}
		if err := out.Send(ctx, text); err != nil {
			return err
		}
	}
	return nil
}
