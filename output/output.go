// Package output renders validation outcomes as colored text or JSON lines
// and drives batch-level exit control.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"

	schemax "github.com/schemax/schemax"
	"github.com/schemax/schemax/config"
)

// ErrValidationFailed signals that the batch finished with at least one
// invalid file and the fail mode demands a non-zero exit.
var ErrValidationFailed = errors.New("Validation completed with errors!")

// Printer writes per-file outcomes and feeds the batch summary.
type Printer struct {
	cfg    *config.Config
	sum    *schemax.Summary
	out    io.Writer
	errOut io.Writer

	ok   *color.Color
	fail *color.Color
	dim  *color.Color
}

// NewPrinter builds a renderer over out/errOut. Colors are enabled only
// when out is a terminal.
func NewPrinter(cfg *config.Config, sum *schemax.Summary, out, errOut io.Writer) *Printer {
	p := &Printer{
		cfg:    cfg,
		sum:    sum,
		out:    out,
		errOut: errOut,
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed),
		dim:    color.New(color.FgHiBlack),
	}
	if f, isFile := out.(*os.File); isFile && isatty.IsTerminal(f.Fd()) {
		p.ok.EnableColor()
		p.fail.EnableColor()
		p.dim.EnableColor()
	} else {
		p.ok.DisableColor()
		p.fail.DisableColor()
		p.dim.DisableColor()
	}
	return p
}

// Print records one outcome and renders it per the configured format and
// level. It reports whether the batch should stop (fail-fast on an invalid
// outcome).
func (p *Printer) Print(o schemax.Outcome) bool {
	p.sum.Add(o.Valid, o.SourceID)

	show := false
	switch p.cfg.OutputLevel {
	case config.LevelVerbose:
		show = true
	case config.LevelQuiet:
		show = !o.Valid
	}
	if show {
		if p.cfg.OutputFormat == config.FormatJSON {
			p.printJSON(o)
		} else {
			p.printText(o)
		}
	}
	return p.cfg.FailMode == config.FailFast && !o.Valid
}

func (p *Printer) printJSON(o schemax.Outcome) {
	b, err := json.Marshal(o)
	if err != nil {
		fmt.Fprintln(p.errOut, "error encoding outcome:", err)
		return
	}
	fmt.Fprintln(p.out, string(b))
}

func (p *Printer) printText(o schemax.Outcome) {
	if o.Valid {
		p.ok.Fprintf(p.out, "✅ %s\n", o.SourceID)
		return
	}
	p.fail.Fprintf(p.out, "❌ %s\n", o.SourceID)
	for _, e := range o.Errors {
		p.dim.Fprintf(p.out, "    - %s : %s\n", e.ErrorAt, e.Message)
	}
}

// Finish applies the end-of-batch policy: a completion message on errOut
// and ErrValidationFailed when invalid outcomes were seen and the fail mode
// is not fail-never.
func (p *Printer) Finish() error {
	if p.sum.InvalidFileCount > 0 {
		fmt.Fprintln(p.errOut, "Validation completed with errors!")
		if p.cfg.FailMode == config.FailNever {
			return nil
		}
		return ErrValidationFailed
	}
	fmt.Fprintln(p.errOut, "Validation completed successfully!")
	return nil
}
