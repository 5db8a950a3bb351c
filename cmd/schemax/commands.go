package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "schemax").
		WithSynopsis("schemax [opts] command [opts]").
		WithDescription("schemax validates dataset schema definition files (JSON/YAML) against a standardized structure.").
		WithRun(func(cc *cli.Context, args []string) error {
			cfg.Main.Usage(cc, nil)
			return cli.ExitCodeErr(2)
		}).
		WithSubs(ValidateCommand(cfg))
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("val").
		WithSynopsis("validate [opts] [files...]").
		WithDescription(validateDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

const validateDescription = `Validate schema files against the dataset schema structure.

Files may be JSON (.json) or YAML (.yaml/.yml). When no paths are given and
stdin is a pipe, newline-separated paths are read from stdin.

Rules: schema (structural, default), unique_fqn, depends_on, dependents.
An explicit -rule-ignore always wins over -rule-apply.

Exit codes: 0 all valid (or -fail-never), 1 validation failures, 2 usage.

Environment:
  SCHEMAX_VALIDATE_OUTPUT_FORMAT   text|json
  SCHEMAX_VALIDATE_OUTPUT_LEVEL    silent|quiet|verbose
  SCHEMAX_VALIDATE_FAIL_MODE       fail_fast|fail_never|fail_after
  SCHEMAX_VALIDATE_RULE_APPLY      comma separated rule names
  SCHEMAX_VALIDATE_RULE_IGNORE     comma separated rule names`
