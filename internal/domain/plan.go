package domain

import "time"

// PhaseReport pairs a phase projection with its savings-rate feedback, if the phase has a band.
type PhaseReport struct {
	Result   PhaseResult      `json:"result"`
	Feedback *SavingsFeedback `json:"savings_feedback,omitempty"`
}

// PlanResult is everything the surrounding application persists or displays for one run.
type PlanResult struct {
	Settings Settings         `json:"settings"`
	Phases   []PhaseReport    `json:"phases"`
	Timeline CombinedTimeline `json:"timeline"`

	// Age when the final phase begins.
	AbundantPhaseAge int `json:"abundant_phase_age"`
	// Age when the final phase's target is reached.
	TargetAge int `json:"target_age"`

	Insights    []string  `json:"insights"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Phase finds a phase report by name.
func (p *PlanResult) Phase(name PhaseName) (*PhaseReport, bool) {
	for i := range p.Phases {
		if p.Phases[i].Result.Phase == name {
			return &p.Phases[i], true
		}
	}
	return nil, false
}

// Results returns the phase results in chain order.
func (p *PlanResult) Results() []PhaseResult {
	out := make([]PhaseResult, len(p.Phases))
	for i, r := range p.Phases {
		out[i] = r.Result
	}
	return out
}
