package cli

import (
	"github.com/spf13/cobra"

	"github.com/riverfjs/discordify-go/internal/article"
	"github.com/riverfjs/discordify-go/internal/deliver"
	"github.com/riverfjs/discordify-go/internal/logger"
	"github.com/riverfjs/discordify-go/internal/service"
)

// FetchCmd fetches a wiki article and prints the messages it would post.
func FetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <article>",
		Short: "Fetch a wiki article and print its messages",
		Args:  cobra.ExactArgs(1),
		RunE:  runFetch,
	}
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := configFrom(ctx)
	if err != nil {
		return err
	}

	fetcher := article.NewFetcher(article.FetcherConfig{
		BaseURL:          cfg.Article.BaseURL,
		Timeout:          cfg.Article.Timeout,
		StripFrontMatter: cfg.Article.StripFrontMatter,
	})
	sender := deliver.NewWriterSender(cmd.OutOrStdout(), cfg.Delivery.Separator)
	deliverer := deliver.New(sender, deliver.Options{
		Interval: cfg.Delivery.Interval,
		Burst:    cfg.Delivery.Burst,
	})

	svc := service.New(fetcher, deliverer, cfg.SplitOptions(), logger.FromContext(ctx))
	_, err = svc.PostArticle(ctx, args[0])
	return err
}
