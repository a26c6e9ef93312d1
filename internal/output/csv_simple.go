package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per phase, chain order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(plan *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Phase", "StartAge", "EndAge", "YearsToTarget", "StartingWealth", "TargetAmount", "FinalWealth", "TotalContributed", "TotalReturn", "PercentageReturn", "InflationDrag", "SavingsRate", "WithinBand"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range SummarizePhases(plan) {
		drag, rate, within := "", "", ""
		if r.InflationDrag != nil {
			drag = r.InflationDrag.StringFixed(0)
		}
		if r.Feedback != nil {
			rate = r.Feedback.Rate.StringFixed(2)
			within = boolToString(r.Feedback.WithinBand)
		}
		row := []string{
			string(r.Phase),
			intToString(r.StartAge),
			intToString(r.EndAge),
			intToString(r.Years),
			r.StartingWealth.StringFixed(0),
			r.TargetAmount.StringFixed(0),
			r.FinalWealth.StringFixed(0),
			r.TotalContributed.StringFixed(0),
			r.TotalReturn.StringFixed(0),
			r.ReturnPercent.StringFixed(2),
			drag,
			rate,
			within,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
