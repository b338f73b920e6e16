package codegen

import (
	"context"
	"strings"

	"scheme-console/internal/domain/scheme"
	"scheme-console/internal/pkg/clock"
	"scheme-console/internal/pkg/errs"
)

// CodeLookup reports whether a scheme code is already stored.
type CodeLookup interface {
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// Generator produces scheme codes of the form PREFIX-YYYYMMDD-NNN. Sequence
// values whose code is already stored are skipped, so a counter that restarts
// or lags behind manually entered codes never hands out a used code.
type Generator struct {
	seq    Sequencer
	codes  CodeLookup
	clock  clock.Clock
	prefix string
}

func NewGenerator(seq Sequencer, codes CodeLookup, clk clock.Clock, prefix string) *Generator {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = scheme.DefaultCodePrefix
	}
	return &Generator{seq: seq, codes: codes, clock: clk, prefix: prefix}
}

func (g *Generator) Generate(ctx context.Context) (string, error) {
	day := clock.Today(g.clock)
	for {
		n, err := g.seq.Next(ctx, scheme.CodeDay(day))
		if err != nil {
			return "", err
		}
		// Exhaustion ends the loop: the sequence is bounded by the daily maximum.
		code, err := scheme.FormatCode(g.prefix, day, n)
		if err != nil {
			return "", err
		}
		taken, err := g.codes.ExistsByCode(ctx, code)
		if err != nil {
			return "", errs.Wrapf(err, "check scheme code %s", code)
		}
		if !taken {
			return code, nil
		}
	}
}
