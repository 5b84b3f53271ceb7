package enum

import (
	"encoding/json"
	"fmt"
)

// BillStatus represents the lifecycle status of a persisted bill.
// Transitions are one-directional: pending -> completed -> delivered,
// with pending -> delivered allowed as a shortcut. Delivered is terminal.
type BillStatus string

const (
	BillStatusPending   BillStatus = "pending"
	BillStatusCompleted BillStatus = "completed"
	BillStatusDelivered BillStatus = "delivered"
)

// Valid reports whether the value is one of the known statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case BillStatusPending, BillStatusCompleted, BillStatusDelivered:
		return true
	}
	return false
}

func (s BillStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Consuming a bill into a new order is deletion, not a transition, and is
// deliberately not representable here.
func (s BillStatus) CanTransitionTo(next BillStatus) bool {
	switch s {
	case BillStatusPending:
		return next == BillStatusCompleted || next == BillStatusDelivered
	case BillStatusCompleted:
		return next == BillStatusDelivered
	default:
		return false
	}
}

// ParseBillStatus converts a string into a BillStatus, rejecting unknown values.
func ParseBillStatus(str string) (BillStatus, error) {
	s := BillStatus(str)
	if !s.Valid() {
		return "", fmt.Errorf("unknown bill status %q", str)
	}
	return s, nil
}

func (s *BillStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseBillStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
