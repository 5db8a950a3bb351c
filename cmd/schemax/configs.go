package main

import (
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Main *cli.Command
}

type ValidateConfig struct {
	*MainConfig

	Out          string `cli:"name=out desc='output format: text or json'"`
	JSON         bool   `cli:"name=json desc='output results in JSON, overrides -out'"`
	Verbose      bool   `cli:"name=verbose desc='show valid files as well as invalid ones'"`
	Silent       bool   `cli:"name=silent desc='suppress output, exit code only, overrides -verbose'"`
	FailFast     bool   `cli:"name=fail-fast desc='stop at the first invalid file'"`
	FailNever    bool   `cli:"name=fail-never desc='always exit zero, useful for CI'"`
	RuleApply    string `cli:"name=rule-apply desc='comma separated rules to apply'"`
	RuleIgnore   string `cli:"name=rule-ignore desc='comma separated rules to ignore'"`
	ConfigFile   string `cli:"name=config desc='config file path'"`
	NoCache      bool   `cli:"name=no-cache desc='disable the result cache'"`
	NoCacheRead  bool   `cli:"name=no-cache-read desc='do not read cached results'"`
	NoCacheWrite bool   `cli:"name=no-cache-write desc='do not write cached results'"`

	Validate *cli.Command
}
