package koine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyzeAll analyzes independent sentences in parallel. Passes share only
// the read-only store, so there is no locking; cancellation is handled at
// this boundary by skipping sentences once ctx is done (a single pass is
// short and never blocks, so it is not interrupted mid-flight).
func (a *Analyzer) AnalyzeAll(ctx context.Context, sentences []string) ([]*AnalysisResult, error) {
	results := make([]*AnalysisResult, len(sentences))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range sentences {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = a.Analyze(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// AnalyzeText splits text into sentences and analyzes them in parallel.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) ([]*AnalysisResult, error) {
	return a.AnalyzeAll(ctx, SplitSentences(text))
}
