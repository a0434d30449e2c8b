// Package attendance derives per-user attendance and played missions from the
// raw presence snapshots recorded by the game server poller.
package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"clanops/internal/domain/entities"
)

// MergeTolerance is how far apart two interval starts may be and still be
// treated as the same connection.
const MergeTolerance = 5 * time.Second

// Resolver maps an in-game name to the user who held it at a given time.
// It returns nil when nobody did.
type Resolver interface {
	ResolveArmaName(ctx context.Context, name string, at time.Time) (*entities.User, error)
}

type interval struct {
	start, end time.Time
}

type presence struct {
	userID    string
	name      string
	intervals []interval
}

// Aggregate sums the connected time of every player seen in snapshots, which
// must be ordered by CreatedAt. A raw name is resolved once, the first time it
// is seen; unresolved names are reported under the raw name.
func Aggregate(ctx context.Context, snapshots []entities.Snapshot, resolver Resolver) ([]entities.Attendance, error) {
	identities := make(map[string]string) // raw name -> identity key
	players := make(map[string]*presence)
	var order []string

	for _, snap := range snapshots {
		for _, p := range snap.Players {
			end := snap.CreatedAt
			start := end.Add(-time.Duration(p.Duration * float64(time.Second)))

			key, seen := identities[p.Name]
			if !seen {
				user, err := resolver.ResolveArmaName(ctx, StripTags(p.Name), snap.CreatedAt)
				if err != nil {
					return nil, fmt.Errorf("resolve arma name %q: %w", p.Name, err)
				}
				key = "name:" + p.Name
				userID := ""
				if user != nil {
					key = "user:" + user.ID
					userID = user.ID
				}
				identities[p.Name] = key
				if _, ok := players[key]; !ok {
					players[key] = &presence{userID: userID, name: p.Name}
					order = append(order, key)
				}
			}
			players[key].add(start, end)
		}
	}

	out := make([]entities.Attendance, 0, len(order))
	for _, key := range order {
		pr := players[key]
		out = append(out, entities.Attendance{
			UserID:  pr.userID,
			Name:    pr.name,
			Minutes: pr.minutes(),
		})
	}
	return out, nil
}

func (p *presence) add(start, end time.Time) {
	for i := range p.intervals {
		iv := &p.intervals[i]
		if start.Sub(iv.start).Abs() <= MergeTolerance {
			if end.After(iv.end) {
				iv.end = end
			}
			return
		}
	}
	p.intervals = append(p.intervals, interval{start: start, end: end})
}

func (p *presence) minutes() int {
	var total time.Duration
	for _, iv := range p.intervals {
		total += iv.end.Sub(iv.start)
	}
	return int(math.Round(total.Minutes()))
}
