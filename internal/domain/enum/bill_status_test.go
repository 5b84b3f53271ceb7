package enum

import "testing"

func TestBillStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BillStatus
		want     bool
	}{
		{BillStatusPending, BillStatusCompleted, true},
		{BillStatusPending, BillStatusDelivered, true},
		{BillStatusCompleted, BillStatusDelivered, true},
		{BillStatusCompleted, BillStatusPending, false},
		{BillStatusDelivered, BillStatusPending, false},
		{BillStatusDelivered, BillStatusCompleted, false},
		{BillStatusPending, BillStatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseBillStatus(t *testing.T) {
	if _, err := ParseBillStatus("pending"); err != nil {
		t.Errorf("ParseBillStatus(pending): %v", err)
	}
	if _, err := ParseBillStatus("lost"); err == nil {
		t.Errorf("ParseBillStatus accepted unknown status")
	}
}

func TestParseWashType(t *testing.T) {
	for _, w := range AllWashTypes {
		if _, err := ParseWashType(w.String()); err != nil {
			t.Errorf("ParseWashType(%s): %v", w, err)
		}
	}
	if _, err := ParseWashType("wash"); err == nil {
		t.Errorf("wash types are case-sensitive, lowercase accepted")
	}
}
