package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/wealth-planner/internal/domain"
	money "github.com/rpgo/wealth-planner/pkg/decimal"
)

// PlanEngine turns persisted settings into a full multi-phase plan. Every call recomputes
// all phases synchronously and in order; nothing is cached or deferred.
type PlanEngine struct {
	Logger Logger
	now    func() time.Time
}

// NewPlanEngine creates a new plan engine with a no-op logger.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{
		Logger: NopLogger{},
		now:    time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	pe.Logger = orNop(l)
}

// SetNowFunc overrides the clock used for PlanResult.GeneratedAt.
func (pe *PlanEngine) SetNowFunc(fn func() time.Time) {
	if fn == nil {
		fn = time.Now
	}
	pe.now = fn
}

// ValidateSettings checks the settings fields the planner consumes.
func ValidateSettings(s *domain.Settings) error {
	if s == nil {
		return fmt.Errorf("%w: settings are required", ErrInvalidParameters)
	}
	if s.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative, got %d", ErrInvalidParameters, s.Age)
	}
	if s.AnnualSalary.IsNegative() {
		return fmt.Errorf("%w: salary cannot be negative, got %s", ErrInvalidParameters, s.AnnualSalary)
	}
	if !s.AnnualExpense.IsPositive() {
		return fmt.Errorf("%w: annual expense must be positive, got %s", ErrInvalidParameters, s.AnnualExpense)
	}
	if s.AnnualInflationPercent.IsNegative() {
		return fmt.Errorf("%w: inflation cannot be negative, got %s%%", ErrInvalidParameters, s.AnnualInflationPercent)
	}
	if s.StartingWealth.IsNegative() {
		return fmt.Errorf("%w: starting wealth cannot be negative, got %s", ErrInvalidParameters, s.StartingWealth)
	}
	if len(s.OrderedPhases()) == 0 {
		return fmt.Errorf("%w: at least one phase is required", ErrInvalidParameters)
	}
	for name := range s.Phases {
		if !knownPhase(name) {
			return fmt.Errorf("%w: unknown phase %q", ErrInvalidParameters, name)
		}
	}
	return nil
}

// PhaseInputs maps settings onto ordered chain inputs. Inflation applies only when enabled.
func PhaseInputs(s *domain.Settings) []PhaseInput {
	inflation := s.EffectiveInflationPercent()
	var inputs []PhaseInput
	for _, name := range s.OrderedPhases() {
		ps := s.Phases[name]
		inputs = append(inputs, PhaseInput{
			Phase: name,
			Params: domain.PhaseParameters{
				Expense:                 s.AnnualExpense,
				MonthlyContribution:     ps.MonthlyContribution,
				AnnualReturnRatePercent: ps.AnnualReturnRatePercent,
				TargetMultiple:          ps.TargetMultiple,
				AnnualInflationPercent:  inflation,
			},
		})
	}
	return inputs
}

// BuildPlan runs the whole chain for settings and classifies each phase's savings rate.
func (pe *PlanEngine) BuildPlan(ctx context.Context, s *domain.Settings) (*domain.PlanResult, error) {
	if err := ValidateSettings(s); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := orNop(pe.Logger)

	inputs := PhaseInputs(s)
	results, err := Chain(inputs, s.StartingWealth)
	if err != nil {
		log.Warnf("plan rejected: %v", err)
		return nil, err
	}

	monthlySalary := money.NewMoneyFromDecimal(s.AnnualSalary).Monthly().Decimal
	plan := &domain.PlanResult{
		Settings: *s,
		Phases:   make([]domain.PhaseReport, len(results)),
		Timeline: CombineTimelines(results),
	}

	for i, r := range results {
		plan.Phases[i] = domain.PhaseReport{Result: r}
		log.Debugf("%s: start=%s years=%d final=%s target=%s",
			r.Phase, r.Params.StartingWealth, r.YearsToTarget, r.FinalWealth, r.FinalTargetAmount)

		band, ok := bandFor(s, r.Phase)
		if !ok {
			continue
		}
		fb, err := SavingsRateFeedback(monthlySalary, r.Params.MonthlyContribution, band)
		if err != nil {
			// A zero salary only removes the savings-rate insight; the projection stands.
			log.Warnf("%s: savings rate unavailable: %v", r.Phase, err)
			continue
		}
		plan.Phases[i].Feedback = &fb
	}

	plan.AbundantPhaseAge, plan.TargetAge = phaseAges(s.Age, results)
	plan.Insights = Insights(plan)
	plan.GeneratedAt = pe.now().UTC()

	log.Infof("plan built: %d phases, %d years, combined net worth %s",
		len(results), plan.Timeline.Years(), plan.Timeline.CombinedNetWorth())
	return plan, nil
}

// phaseAges returns the age the final phase begins at and the age its target is reached.
func phaseAges(age int, results []domain.PhaseResult) (int, int) {
	start := age
	for i, r := range results {
		if i == len(results)-1 {
			return start, start + r.YearsToTarget
		}
		start += r.YearsToTarget
	}
	return start, start
}

func bandFor(s *domain.Settings, name domain.PhaseName) (domain.SavingsBand, bool) {
	if ps, ok := s.Phases[name]; ok && ps.SavingsBand != nil {
		return *ps.SavingsBand, true
	}
	band, ok := DefaultSavingsBands[name]
	return band, ok
}

func knownPhase(name domain.PhaseName) bool {
	for _, p := range domain.PhaseOrder {
		if p == name {
			return true
		}
	}
	return false
}
