package oms

import (
	"encoding/json"
	"fmt"
)

// ProductOptions is the typed shape of an item's free-form ProductOptions
// field. Only attributes_info is carried over onto re-order items.
type ProductOptions struct {
	AttributesInfo []AttributeInfo `json:"attributes_info"`
}

type AttributeInfo struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParseProductOptions decodes the nested options JSON. Malformed input is an
// error, not a silently empty result.
func ParseProductOptions(raw string) (*ProductOptions, error) {
	if raw == "" {
		return &ProductOptions{}, nil
	}
	var opts ProductOptions
	if err := json.Unmarshal([]byte(raw), &opts); err != nil {
		return nil, fmt.Errorf("malformed product options: %w", err)
	}
	return &opts, nil
}
