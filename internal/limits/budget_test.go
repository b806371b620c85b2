package limits

import "testing"

func TestBudgetCharges(t *testing.T) {
	b := NewBudget(3)
	for i := 0; i < 3; i++ {
		if err := b.Charge(); err != nil {
			t.Fatalf("charge %d failed: %v", i, err)
		}
	}
	if err := b.Charge(); err != ErrBudgetExceeded {
		t.Fatalf("expected ErrBudgetExceeded, got %v", err)
	}
	if b.Steps() != 4 {
		t.Errorf("steps = %d", b.Steps())
	}
}

func TestZeroBudgetIsUnlimited(t *testing.T) {
	b := NewBudget(0)
	for i := 0; i < 10000; i++ {
		if err := b.Charge(); err != nil {
			t.Fatalf("unlimited budget failed at %d: %v", i, err)
		}
	}
}
