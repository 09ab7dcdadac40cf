package routes

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var numericRun = regexp.MustCompile(`\d+`)

// StopNames maps GTFS stop IDs to display names. The Adelaide Metro feed
// uses several ID conventions, so lookups fall through a chain of
// normalizations before giving up.
type StopNames struct {
	byID map[string]string
}

// NewStopNames wraps an existing ID-to-name map.
func NewStopNames(byID map[string]string) *StopNames {
	if byID == nil {
		byID = map[string]string{}
	}
	return &StopNames{byID: byID}
}

// LoadStopNames reads a JSON object of stop ID to name from path. An empty
// path yields an empty table; lookups then fall back to formatted IDs.
func LoadStopNames(path string) (*StopNames, error) {
	if path == "" {
		return NewStopNames(nil), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stop names: %w", err)
	}
	byID := map[string]string{}
	if err := json.Unmarshal(raw, &byID); err != nil {
		return nil, fmt.Errorf("parse stop names %s: %w", path, err)
	}
	return NewStopNames(byID), nil
}

// Len reports the number of known stop IDs.
func (s *StopNames) Len() int { return len(s.byID) }

// Lookup resolves a stop ID to a display name. Tries exact, uppercase,
// zero-stripped and embedded-numeric forms before formatting the raw ID.
func (s *StopNames) Lookup(stopID string) string {
	if stopID == "" {
		return "Unknown"
	}

	if name, ok := s.byID[stopID]; ok {
		return name
	}
	if name, ok := s.byID[strings.ToUpper(stopID)]; ok {
		return name
	}
	if name, ok := s.byID[strings.TrimLeft(stopID, "0")]; ok {
		return name
	}

	if num := numericRun.FindString(stopID); num != "" {
		if name, ok := s.byID[num]; ok {
			return name
		}
		if name, ok := s.byID[strings.TrimLeft(num, "0")]; ok {
			return name
		}
	}

	if len(stopID) > 20 {
		stopID = stopID[:20]
	}
	return "Stop " + stopID
}
