package enum

import (
	"encoding/json"
	"fmt"
)

// WashType represents the service category applied to a garment.
type WashType string

const (
	WashTypeWash     WashType = "WASH"
	WashTypeIron     WashType = "IRON"
	WashTypeWashIron WashType = "WASH+IRON"
	WashTypeDryClean WashType = "DRY CLEAN"
)

// AllWashTypes lists every valid wash type, in display order.
var AllWashTypes = []WashType{WashTypeWash, WashTypeIron, WashTypeWashIron, WashTypeDryClean}

// Valid reports whether the value is one of the known wash types.
func (w WashType) Valid() bool {
	switch w {
	case WashTypeWash, WashTypeIron, WashTypeWashIron, WashTypeDryClean:
		return true
	}
	return false
}

func (w WashType) String() string {
	return string(w)
}

// ParseWashType converts a string into a WashType, rejecting unknown values.
func ParseWashType(s string) (WashType, error) {
	w := WashType(s)
	if !w.Valid() {
		return "", fmt.Errorf("unknown wash type %q", s)
	}
	return w, nil
}

func (w *WashType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseWashType(str)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
