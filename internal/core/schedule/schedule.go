// Package schedule contains the pure roster logic for daily day/night
// shift membership.
package schedule

// Shift names.
const (
	ShiftDay   = "day"
	ShiftNight = "night"
)

// Team names.
const (
	TeamTesters    = "testers"
	TeamAssistants = "assistants"
)

// Schedule holds the four disjoint id lists for one date.
type Schedule struct {
	Date            string
	DayTesters      []string
	NightTesters    []string
	DayAssistants   []string
	NightAssistants []string
}

// Assign adds the person to the named shift's list for their team and
// removes them from the opposite shift's list for the same team: one
// person cannot work both shifts of the same day.
func (s *Schedule) Assign(personID, team, shift string) {
	target, opposite := s.lists(team, shift)
	*opposite = remove(*opposite, personID)
	if !contains(*target, personID) {
		*target = append(*target, personID)
	}
}

// Remove deletes the person from the named shift's list only.
func (s *Schedule) Remove(personID, team, shift string) {
	target, _ := s.lists(team, shift)
	*target = remove(*target, personID)
}

// OnShift reports whether the person is on the named shift for their team.
func (s *Schedule) OnShift(personID, team, shift string) bool {
	target, _ := s.lists(team, shift)
	return contains(*target, personID)
}

func (s *Schedule) lists(team, shift string) (target, opposite *[]string) {
	if team == TeamAssistants {
		if shift == ShiftNight {
			return &s.NightAssistants, &s.DayAssistants
		}
		return &s.DayAssistants, &s.NightAssistants
	}
	if shift == ShiftNight {
		return &s.NightTesters, &s.DayTesters
	}
	return &s.DayTesters, &s.NightTesters
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
