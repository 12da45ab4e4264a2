package validator

import (
	"context"
	"testing"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

func hints(in ...[]int) []domain.Hints {
	out := make([]domain.Hints, len(in))
	for i, h := range in {
		out[i] = domain.Hints(h)
	}
	return out
}

func TestValidateOK(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(),
		hints([]int{1, 1}, []int{3}, []int{1}),
		hints([]int{2}, []int{1}, []int{3}))
	if err != nil || !ok {
		t.Fatalf("valid hint set rejected: ok=%v conf=%v err=%v", ok, conf, err)
	}
}

func TestValidateOverlongLine(t *testing.T) {
	// 2+2 blocks plus the gap need 5 cells; the grid is only 3 wide.
	ok, conf, err := New().Validate(context.Background(),
		hints([]int{2, 2}),
		hints([]int{1}, []int{1}, []int{1}))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("overlong row must be rejected")
	}
	if len(conf) != 1 || conf[0].Kind != domain.RowLine || conf[0].Index != 0 {
		t.Fatalf("wrong conflicts: %v", conf)
	}
}

func TestValidateNonPositiveBlock(t *testing.T) {
	ok, conf, _ := New().Validate(context.Background(),
		hints([]int{1}),
		hints([]int{0}))
	if ok || len(conf) != 1 || conf[0].Kind != domain.ColLine {
		t.Fatalf("zero-length block must be flagged: ok=%v conf=%v", ok, conf)
	}
}

func TestValidateTotalsDisagree(t *testing.T) {
	ok, _, _ := New().Validate(context.Background(),
		hints([]int{1}),
		hints([]int{1}, []int{1}))
	if ok {
		t.Fatal("rows demand 1 filled cell, columns 2; must be rejected")
	}
}
