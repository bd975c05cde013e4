// Package service wires fetching, splitting and delivery into the single
// "post an article" operation the CLI exposes.
package service

import (
	"context"
	"errors"

	"github.com/riverfjs/discordify-go"
	"github.com/riverfjs/discordify-go/internal/article"
	"github.com/riverfjs/discordify-go/internal/logger"
	"github.com/riverfjs/discordify-go/internal/types"
)

// ErrPostFailed is the only error callers see. Its text is what gets shown
// to the person who asked for the article.
var ErrPostFailed = errors.New("Something went wrong, sorry!")

// ArticleSource provides articles by name.
type ArticleSource interface {
	Fetch(ctx context.Context, name string) (*article.Article, error)
}

// Deliverer sends prepared chunks in order.
type Deliverer interface {
	Deliver(ctx context.Context, chunks []string) (int, error)
}

// Result describes a successful post.
type Result struct {
	Article *article.Article
	Chunks  []string
	Sent    int
	Report  discordify.Report
}

// Service posts wiki articles.
type Service struct {
	source ArticleSource
	sender Deliverer
	split  types.SplitConfig
	log    logger.Logger
}

// New creates a Service. A nil log falls back to the default logger.
func New(source ArticleSource, sender Deliverer, split *types.SplitConfig, log logger.Logger) *Service {
	cfg := types.DefaultSplitConfig()
	if split != nil {
		cfg = split
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Service{source: source, sender: sender, split: cfg.Normalized(), log: log}
}

// PostArticle fetches the article called name, converts it and delivers the
// chunks in order. Any failure is logged and reported as ErrPostFailed.
func (s *Service) PostArticle(ctx context.Context, name string) (*Result, error) {
	log := s.log.With("article", name)

	a, err := s.source.Fetch(ctx, name)
	if err != nil {
		log.Error("fetch failed", "error", err)
		return nil, ErrPostFailed
	}

	opts := discordify.WithConfig(&s.split)
	report := discordify.Audit(a.Body, opts)
	log.Debug("image audit",
		"images", report.Images,
		"rewritten", report.Rewritten,
		"embedded", len(report.Embedded),
	)

	chunks := discordify.ConvertAndSplit(a.Body, opts)
	if len(chunks) == 0 {
		log.Error("empty article", "name", a.Name)
		return nil, ErrPostFailed
	}
	sent, err := s.sender.Deliver(ctx, chunks)
	if err != nil {
		log.Error("delivery failed", "sent", sent, "total", len(chunks), "error", err)
		return nil, ErrPostFailed
	}

	log.Info("article posted", "messages", sent)
	return &Result{Article: a, Chunks: chunks, Sent: sent, Report: report}, nil
}
