package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	schemax "github.com/schemax/schemax"
	"github.com/schemax/schemax/cache"
	"github.com/schemax/schemax/config"
	"github.com/schemax/schemax/output"
	"github.com/schemax/schemax/schema"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(2)
	}

	paths := args
	if len(paths) == 0 {
		paths = readPathsFromStdin(cc.In)
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w: validate requires at least one file path", cli.ErrUsage)
	}

	conf, err := resolveConfig(cfg)
	if err != nil {
		return err
	}

	model := schema.Build(conf.Overrides())
	names := schemax.SelectRules(conf.RuleApply, conf.RuleIgnore)
	rules, err := schemax.BuildRules(names, model)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	pipe := schemax.NewPipeline(rules, nil)

	sum := schemax.NewSummary()
	printer := output.NewPrinter(conf, sum, cc.Out, os.Stderr)

	// Cached outcomes are only sound for stateless rule sets: the fqn
	// registry and dependency graphs depend on the whole batch.
	useCache := stateless(names)
	var results *cache.Cache
	var scope string
	if useCache && (!conf.NoCacheRead || !conf.NoCacheWrite) {
		results = cache.Open(cache.DefaultPath())
		scope = cache.Scope(struct {
			Rules  []string
			Root   []string
			Column map[string][]string
		}{names, conf.ModelRequiredAttributes, conf.ColumnRequiredAttributes})
	}

	for _, p := range paths {
		var out schemax.Outcome
		hit := false
		if results != nil && !conf.NoCacheRead {
			out, hit = results.Get(p, scope)
		}
		if !hit {
			out = pipe.ValidateFile(p)
			if results != nil && !conf.NoCacheWrite {
				results.Put(p, scope, out)
			}
		}
		if stop := printer.Print(out); stop {
			break
		}
	}
	if results != nil && !conf.NoCacheWrite {
		if err := results.Save(); err != nil {
			fmt.Fprintln(os.Stderr, "warning: saving result cache:", err)
		}
	}

	if err := printer.Finish(); err != nil {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func resolveConfig(cfg *ValidateConfig) (*config.Config, error) {
	conf := config.Default()
	if cfg.ConfigFile != "" {
		if err := conf.LoadFile(cfg.ConfigFile, true); err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
	} else if err := conf.LoadFile(config.DefaultFile, false); err != nil {
		return nil, err
	}
	if err := conf.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	if err := conf.SetOutputFormat(cfg.Out, cfg.JSON); err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	conf.SetOutputLevel(cfg.Verbose, cfg.Silent)
	conf.SetFailMode(cfg.FailFast, cfg.FailNever)
	conf.SetCache(cfg.NoCacheRead, cfg.NoCacheWrite, cfg.NoCache)
	if cfg.RuleApply != "" {
		conf.RuleApply = splitCSV(cfg.RuleApply)
	}
	if cfg.RuleIgnore != "" {
		conf.RuleIgnore = splitCSV(cfg.RuleIgnore)
	}
	return conf, nil
}

func stateless(names []string) bool {
	for _, n := range names {
		if n != schemax.RuleSchema {
			return false
		}
	}
	return true
}

// readPathsFromStdin accepts newline-separated paths when stdin is piped.
func readPathsFromStdin(in io.Reader) []string {
	if f, isFile := in.(*os.File); isFile && isatty.IsTerminal(f.Fd()) {
		return nil
	}
	var paths []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
