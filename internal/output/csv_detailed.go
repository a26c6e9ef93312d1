package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// CSVDetailedExporter writes one row per combined timeline year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "timeline-csv" }

func (c CSVDetailedExporter) Format(plan *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Year", "Age", "Phase", "PhaseYear", "Wealth", "TotalContributed", "WealthWithoutInflation"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	// Shadow wealth lives on the phase trajectories, keyed by phase-local year.
	shadows := make(map[domain.PhaseName][]domain.YearPoint, len(plan.Phases))
	for _, r := range plan.Results() {
		shadows[r.Phase] = r.Trajectory
	}

	for _, p := range plan.Timeline.Points {
		shadow := ""
		if traj := shadows[p.Phase]; p.PhaseYear-1 < len(traj) {
			if s := traj[p.PhaseYear-1].WealthWithoutInflation; s != nil {
				shadow = s.StringFixed(0)
			}
		}
		row := []string{
			intToString(p.YearIndex),
			intToString(TimelineAge(plan, p)),
			string(p.Phase),
			intToString(p.PhaseYear),
			p.Wealth.StringFixed(0),
			p.TotalContributed.StringFixed(0),
			shadow,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
