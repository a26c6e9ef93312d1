package calculation

import "errors"

var (
	// ErrInvalidParameters reports a violated input constraint; nothing was computed.
	ErrInvalidParameters = errors.New("invalid parameters")
	// ErrNonConvergent reports a target that is not reached within MaxSimulationYears.
	ErrNonConvergent = errors.New("projection does not converge")
	// ErrDivisionByZero reports a savings rate requested against a zero salary.
	ErrDivisionByZero = errors.New("division by zero")
)

// Error kinds exposed to callers that cannot use errors.Is, such as the HTTP API.
const (
	KindInvalidParameters = "invalid_parameters"
	KindNonConvergent     = "non_convergent"
	KindDivisionByZero    = "division_by_zero"
	KindInternal          = "internal"
)

// ErrorKind maps an error to a stable kind string.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidParameters):
		return KindInvalidParameters
	case errors.Is(err, ErrNonConvergent):
		return KindNonConvergent
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	default:
		return KindInternal
	}
}
