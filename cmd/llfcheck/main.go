// Command llfcheck validates LLF GeoJSON forecast files.
//
//	llfcheck [flags] <file> [file...]
//
// Each file is decoded (JSON, or YAML for .yaml/.yml), validated against the
// LLF schema and optionally rendered. Issues are printed as
// "<file>: <code> at <path>: <message>". The exit status is 1 when any file
// fails and 2 on usage errors.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/metno/llfschema"
	"github.com/metno/llfschema/decode"
	"github.com/metno/llfschema/i18n"
	"github.com/metno/llfschema/llf"
	"github.com/metno/llfschema/render"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	collectAll bool
	strict     bool
	maxDepth   int
	lang       string
	format     string
	out        string
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (config, []string, error) {
	fs := flag.NewFlagSet("llfcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.BoolVar(&cfg.collectAll, "all", false, "report every issue instead of stopping at the first")
	fs.BoolVar(&cfg.strict, "strict", false, "reject keys the schema does not declare")
	fs.IntVar(&cfg.maxDepth, "max-depth", 0, "maximum nesting depth (0 = default)")
	fs.StringVar(&cfg.lang, "lang", "en", "message language (en, nb)")
	fs.StringVar(&cfg.format, "format", "none", "output format for valid files (none, text, yaml)")
	fs.StringVar(&cfg.out, "o", "", "output file (default stdout)")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logs")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: llfcheck [flags] <LLF file> [LLF file...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return cfg, nil, fmt.Errorf("no input files")
	}
	return cfg, fs.Args(), nil
}

func (c config) options() llfschema.Options {
	opt := llfschema.Options{CollectAll: c.collectAll, MaxDepth: c.maxDepth}
	if c.strict {
		opt.Unknown = llfschema.UnknownStrict
	}
	return opt
}

func newLogger(verbose bool, w io.Writer) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	encCfg := zap.NewProductionEncoderConfig()
	if verbose {
		level = zapcore.DebugLevel
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, files, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	renderer, err := render.ByName(cfg.format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := newLogger(cfg.verbose, stderr)
	defer func() { _ = log.Sync() }()

	i18n.SetLanguage(cfg.lang)

	out := stdout
	if cfg.out != "" && renderer != nil {
		f, err := os.Create(cfg.out)
		if err != nil {
			log.Errorw("cannot create output", "path", cfg.out, "error", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	schema := llf.NewSchema()
	opt := cfg.options()
	failed := 0
	for _, path := range files {
		log.Debugw("validating", "path", path, "collectAll", opt.CollectAll, "strict", cfg.strict)
		file, err := readFile(ctx, schema, path, opt)
		if err != nil {
			failed++
			report(stderr, path, err)
			log.Infow("invalid", "path", path)
			continue
		}
		log.Infow("valid", "path", path, "timesteps", file.Len(), "areas", file.Areas())
		if renderer == nil {
			continue
		}
		if err := renderer.Render(out, file); err != nil {
			failed++
			log.Errorw("render failed", "path", path, "error", err)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func readFile(ctx context.Context, schema *llf.Schema, path string, opt llfschema.Options) (*llf.File, error) {
	raw, err := decode.File(path)
	if err != nil {
		return nil, err
	}
	return schema.Validate(ctx, raw, opt)
}

func report(w io.Writer, path string, err error) {
	iss, ok := llfschema.AsIssues(err)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", path, err)
		return
	}
	for _, it := range iss {
		fmt.Fprintf(w, "%s: %s\n", path, it)
	}
}
