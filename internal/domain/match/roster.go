package match

import "sort"

var laneOrder = map[string]int{
	"TOP":     0,
	"JUNGLE":  1,
	"MIDDLE":  2,
	"BOTTOM":  3,
	"UTILITY": 4,
}

const unmappedLaneOrder = 5

// OrderRoster sorts a full roster by team then lane (top to support, unknown lanes last).
// Rosters that are not exactly ten seats are returned in their existing order.
func OrderRoster(participants []Participant) []Participant {
	out := append([]Participant(nil), participants...)
	if len(out) != StandardRosterSize {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TeamID != out[j].TeamID {
			return out[i].TeamID < out[j].TeamID
		}
		return laneRank(out[i].TeamPosition) < laneRank(out[j].TeamPosition)
	})
	return out
}

func laneRank(position string) int {
	if rank, ok := laneOrder[position]; ok {
		return rank
	}
	return unmappedLaneOrder
}
