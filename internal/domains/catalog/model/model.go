package model

import "strings"

const (
	EntityName = "train"
)

// Train is a catalog entry. Immutable after creation; the availability shown
// against it is quoted fresh per request, never stored here.
type Train struct {
	ID            string   `json:"id"`
	TrainNo       string   `json:"trainNo"`
	Name          string   `json:"name"`
	Source        string   `json:"source"`
	Destination   string   `json:"destination"`
	DepartureTime string   `json:"departureTime"`
	ArrivalTime   string   `json:"arrivalTime"`
	Duration      string   `json:"duration"`
	Classes       []string `json:"classes"`
}

// MatchesRoute reports whether the train runs the given route. Station names
// compare case-insensitively and exactly, no substring matching.
func (t Train) MatchesRoute(source, destination string) bool {
	return strings.EqualFold(t.Source, source) && strings.EqualFold(t.Destination, destination)
}

// ParseClasses splits a comma-separated class string into trimmed, non-empty
// class codes, preserving order.
func ParseClasses(raw string) []string {
	parts := strings.Split(raw, ",")

	classes := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			classes = append(classes, c)
		}
	}

	return classes
}
