package planner

import "rotaplan/entities"

// Cell addresses one division in one year.
type Cell struct {
	Year     int `json:"year"`
	Division int `json:"division"`
}

// UnplantedCells lists the grid cells of r that hold no entry, by year then division.
func UnplantedCells(r *entities.Rotation) []Cell {
	planted := make(map[Cell]struct{}, len(r.Entries))
	for _, e := range r.Entries {
		planted[Cell{Year: e.Year, Division: e.Division}] = struct{}{}
	}
	var out []Cell
	for y := 1; y <= r.MaxYears; y++ {
		for d := 1; d <= r.NumberOfDivisions; d++ {
			c := Cell{Year: y, Division: d}
			if _, ok := planted[c]; !ok {
				out = append(out, c)
			}
		}
	}
	return out
}
