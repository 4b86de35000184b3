package repositories

import (
	"encoding/json"
	"fmt"

	"tour-planner-service/internal/domain"
)

// Tours are stored as a JSON array of {"x","y"} objects.
func encodeTour(t domain.Tour) (string, error) {
	if t == nil {
		t = domain.Tour{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("encode tour: %w", err)
	}
	return string(b), nil
}

func decodeTour(s string) (domain.Tour, error) {
	var t domain.Tour
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return nil, fmt.Errorf("decode tour: %w", err)
	}
	return t, nil
}
