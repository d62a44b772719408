package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/clients"
	"github.com/Theheerpatel/AI-based-student-introduction-analyzer/scoring"
)

type scoreOpts struct {
	duration    int
	concurrency int
	pretty      bool
	out         string
}

// scoreFunc scores one transcript.
type scoreFunc func(ctx context.Context, text string) (*scoring.Result, error)

func newScoreCmd(a *app) *cobra.Command {
	var o scoreOpts
	cmd := &cobra.Command{
		Use:   "score [file...]",
		Short: "Score transcript files, or stdin when no file or - is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			score, err := a.scorer(o, cmd.Flags().Changed("duration"))
			if err != nil {
				return err
			}
			results, err := scoreAll(cmd.Context(), args, cmd.InOrStdin(), o.concurrency, score)
			if err != nil {
				return err
			}

			var v any = results
			if len(results) == 1 {
				v = results[0]
			}
			if o.out != "" {
				return writeJSONFile(o.out, v)
			}
			return writeJSON(cmd.OutOrStdout(), v, o.pretty)
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.duration, "duration", 0, "speaking time in seconds (default from scoring.default_duration)")
	f.String("remote", "", "score with the server at this base URL instead of locally (client.url)")
	_ = a.v.BindPFlag("client.url", f.Lookup("remote"))
	f.IntVar(&o.concurrency, "concurrency", 4, "transcripts scored at once")
	f.BoolVar(&o.pretty, "pretty", false, "indent JSON output")
	f.StringVarP(&o.out, "out", "o", "", "write JSON to this file instead of stdout")
	return cmd
}

// scorer picks the local pipeline or the remote client. An unset duration
// becomes the configured default locally and is left to the server
// remotely.
func (a *app) scorer(o scoreOpts, durationSet bool) (scoreFunc, error) {
	if remote := a.cfg.Client.URL; remote != "" {
		c := clients.NewHTTP(a.cfg.Client.Timeout)
		var d *int
		if durationSet {
			d = &o.duration
		}
		return func(ctx context.Context, text string) (*scoring.Result, error) {
			return c.Score(ctx, remote, clients.ScoreReq{Transcript: text, Duration: d})
		}, nil
	}

	p, err := a.newPipeline()
	if err != nil {
		return nil, err
	}
	duration := a.cfg.Scoring.DefaultDuration
	if durationSet {
		duration = o.duration
	}
	return func(_ context.Context, text string) (*scoring.Result, error) {
		return p.Score(text, duration)
	}, nil
}

// scoreAll scores every input with at most limit running at once. Results
// keep input order; the first failure cancels the rest.
func scoreAll(ctx context.Context, inputs []string, stdin io.Reader, limit int, score scoreFunc) ([]*scoring.Result, error) {
	texts := make([]string, len(inputs))
	for i, in := range inputs {
		b, err := readInput(in, stdin)
		if err != nil {
			return nil, err
		}
		texts[i] = string(b)
	}

	results := make([]*scoring.Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range texts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := score(gctx, texts[i])
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(inputs[i]), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}
