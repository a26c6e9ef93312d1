package server

import (
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
	StoredPlanID           string `json:"stored_plan_id,omitempty"`
}

type PlanResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Plan                *domain.PlanResult  `json:"plan"`
}

type ProjectResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	Result              *domain.PhaseResult `json:"result"`
}

type SavingsRateRequest struct {
	MonthlySalary       decimal.Decimal     `json:"monthly_salary"`
	MonthlyContribution decimal.Decimal     `json:"monthly_contribution"`
	Phase               domain.PhaseName    `json:"phase,omitempty"`
	Band                *domain.SavingsBand `json:"band,omitempty"`
}

type SavingsRateResponse struct {
	CalculationMetadata CalculationMetadata    `json:"calculation_metadata"`
	Feedback            domain.SavingsFeedback `json:"feedback"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	// Set only when a calculation was attempted and failed.
	CalculationMetadata *CalculationMetadata `json:"calculation_metadata,omitempty"`
}
