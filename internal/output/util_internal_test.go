//go:build unit

package output

import (
	"testing"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/shopspring/decimal"
)

func TestIntToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}

func TestBandLabel(t *testing.T) {
	fixed := domain.SavingsBand{Min: decimal.NewFromInt(20)}
	if got, want := bandLabel(fixed), "20.00%"; got != want {
		t.Errorf("bandLabel(fixed) = %q, want %q", got, want)
	}
	rng := domain.SavingsBand{Min: decimal.NewFromInt(50), Max: decimal.NewFromInt(75)}
	if got, want := bandLabel(rng), "50.00% - 75.00%"; got != want {
		t.Errorf("bandLabel(range) = %q, want %q", got, want)
	}
}
