// Command sepaxis resolves scene files with the separating-axis test and
// prints the displacement found on every evaluated axis.
//
// Usage:
//
//	sepaxis [-v] [-offset d] [-exhaustive] scene.yaml...
//
// The log level defaults to SEPAXIS_LOG_LEVEL (warn if unset); -v forces debug.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/collide"
	"github.com/gogpu/collide/internal/config"
	"github.com/gogpu/collide/internal/scene"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sepaxis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose    = fs.Bool("v", false, "log resolver decisions")
		offset     = fs.Float64("offset", 0, "shift arrow anchors along each axis normal")
		exhaustive = fs.Bool("exhaustive", false, "evaluate every axis instead of stopping at the first separating one")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sepaxis [-v] [-offset d] [-exhaustive] scene.yaml...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	level, err := config.GetLevel("SEPAXIS_LOG_LEVEL", slog.LevelWarn)
	if err != nil {
		fmt.Fprintf(stderr, "sepaxis: %v\n", err)
		return 2
	}
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	collide.SetLogger(logger)
	defer collide.SetLogger(nil)

	opts := []collide.Option{collide.WithArrowOffset(*offset)}
	if *exhaustive {
		opts = append(opts, collide.WithExhaustive())
	}

	// Scenes are resolved concurrently; reports and errors keep argument
	// order, and one failing file does not hide another.
	reports := make([]string, fs.NArg())
	errs := make([]error, fs.NArg())
	var g errgroup.Group
	for i, path := range fs.Args() {
		g.Go(func() error {
			reports[i], errs[i] = resolveFile(logger, path, opts)
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range reports {
		io.WriteString(stdout, r)
	}
	code := 0
	for _, err := range errs {
		if err != nil {
			fmt.Fprintf(stderr, "sepaxis: %v\n", err)
			code = 1
		}
	}
	return code
}

func resolveFile(logger *slog.Logger, path string, opts []collide.Option) (string, error) {
	s, err := scene.Load(path)
	if err != nil {
		return "", err
	}
	res, err := s.Resolve(opts...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("resolved", "scene", s.Name, "colliding", res.Colliding)

	var b strings.Builder
	writeReport(&b, s, res)
	return b.String(), nil
}

func writeReport(w io.Writer, s scene.Scene, res collide.Result) {
	verdict := "separated"
	if res.Colliding {
		verdict = "colliding"
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", s.Name, verdict, s.Strategy)

	for _, d := range res.Displacements {
		fmt.Fprintf(w, "  axis %s: overlap %.3f, push %s at %s\n",
			vec(d.Axis.Unit()), d.Overlap.Length(), vec(d.Vector), vec(d.Point))
	}
	for _, a := range res.Separating {
		fmt.Fprintf(w, "  axis %s: separating\n", vec(a.Unit()))
	}
	if res.Colliding {
		fmt.Fprintf(w, "  mtv %s\n", vec(res.MTV.Vector))
	}
}

func vec(v collide.Vector) string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
