package attendance

import "clanops/internal/domain/entities"

// ActualMissions accumulates the time spent on each (mission, terrain) pair.
// Time is only counted between two consecutive snapshots reporting the same
// pair, so a mission seen once contributes nothing.
func ActualMissions(snapshots []entities.Snapshot) []entities.ActualMission {
	type key struct{ mission, terrain string }

	seconds := make(map[key]float64)
	var order []key
	var last *entities.Snapshot

	for i := range snapshots {
		snap := &snapshots[i]
		k := key{snap.Game, snap.Map}
		if last != nil && last.Game == snap.Game && last.Map == snap.Map {
			if _, ok := seconds[k]; !ok {
				order = append(order, k)
			}
			seconds[k] += snap.CreatedAt.Sub(last.CreatedAt).Seconds()
		}
		last = snap
	}

	out := make([]entities.ActualMission, 0, len(order))
	for _, k := range order {
		out = append(out, entities.ActualMission{Mission: k.mission, Terrain: k.terrain, Seconds: seconds[k]})
	}
	return out
}
