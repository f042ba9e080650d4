package planner

import "rotaplan/entities"

// SharesPest reports whether a and b have at least one pest tag in common.
func SharesPest(a, b entities.Crop) bool { return intersects(a.Pests, b.Pests) }

// SharesDisease reports whether a and b have at least one disease tag in common.
func SharesDisease(a, b entities.Crop) bool { return intersects(a.Diseases, b.Diseases) }

// Conflicts reports whether b may not follow a in the same division.
func Conflicts(a, b entities.Crop) bool { return SharesPest(a, b) || SharesDisease(a, b) }

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, t := range a {
		seen[t] = struct{}{}
	}
	for _, t := range b {
		if _, ok := seen[t]; ok {
			return true
		}
	}
	return false
}
