package calculator

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AlostXD/police-lumos-rp/internal/coerce"
)

// Options are the user toggles applied on top of the selection.
type Options struct {
	BailPaid bool `json:"bail_paid"`
	// Reductions are percentages; nil, zero or negative means no reduction.
	ReductionMonths *float64 `json:"reduction_months"`
	ReductionFine   *float64 `json:"reduction_fine"`
}

// ParseReduction reads a percentage typed by the user. Blank or
// non-numeric input yields nil (no reduction).
func ParseReduction(value any) *float64 {
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	f := coerce.Number(value)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// Summary holds the derived totals. Time values are months.
type Summary struct {
	TotalTime     int     `json:"total_time"`
	TotalFine     float64 `json:"total_fine"`
	TotalFiance   float64 `json:"total_fiance"`
	TimeAfterBail int     `json:"time_after_bail"`
	FinalTime     float64 `json:"final_time"`
	FinalFine     float64 `json:"final_fine"`

	BailPaid        bool    `json:"bail_paid"`
	ReductionMonths float64 `json:"reduction_months"`
	ReductionFine   float64 `json:"reduction_fine"`
}

// effectiveReduction returns the percentage to apply, capped at 100.
// Zero means none.
func effectiveReduction(p *float64) float64 {
	if p == nil || *p <= 0 {
		return 0
	}
	return math.Min(*p, 100)
}

// clampMonths keeps month totals inside the int32 range.
func clampMonths(n int64) int {
	return int(min(max(n, math.MinInt32), math.MaxInt32))
}

// Compute derives the summary from scratch for the given selection.
//
// Paying bail waives the whole sentence of every bailable crime and adds
// its bail to the amount due; non-bailable crimes keep their months.
func Compute(items []SelectedCrime, opts Options) Summary {
	var (
		totalTime     int64
		timeAfterBail int64
		totalFine     = decimal.Zero
		totalFiance   = decimal.Zero
	)

	for _, c := range items {
		mult := decimal.NewFromInt(int64(c.Multiplier))
		months := int64(c.Time) * int64(c.Multiplier)

		totalTime += months
		totalFine = totalFine.Add(decimal.NewFromFloat(c.Fine).Mul(mult))

		if opts.BailPaid && c.Financable {
			totalFiance = totalFiance.Add(decimal.NewFromFloat(c.Fiance).Mul(mult))
			continue
		}
		timeAfterBail += months
	}

	sum := Summary{
		TotalTime:       clampMonths(totalTime),
		TotalFine:       totalFine.InexactFloat64(),
		TotalFiance:     totalFiance.InexactFloat64(),
		TimeAfterBail:   clampMonths(timeAfterBail),
		FinalTime:       float64(clampMonths(timeAfterBail)),
		FinalFine:       totalFine.InexactFloat64(),
		BailPaid:        opts.BailPaid,
		ReductionMonths: effectiveReduction(opts.ReductionMonths),
		ReductionFine:   effectiveReduction(opts.ReductionFine),
	}

	if sum.ReductionMonths > 0 {
		sum.FinalTime = float64(sum.TimeAfterBail) * (1 - sum.ReductionMonths/100)
	}
	if sum.ReductionFine > 0 {
		keep := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(sum.ReductionFine).Div(decimal.NewFromInt(100)))
		sum.FinalFine = totalFine.Mul(keep).InexactFloat64()
	}
	return sum
}

// Compute is a shorthand for Compute(s.Items(), opts).
func (s *Selection) Compute(opts Options) Summary {
	return Compute(s.items, opts)
}
