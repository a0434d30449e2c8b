package entities

import "time"

// User is a clan user. Membership is held through a rank; users without one
// are non-members for capacity purposes.
type User struct {
	ID        string
	SteamID   string
	DiscordID string
	Email     string
	Name      string
	ArmaNames []ArmaName
	RankID    string
	CreatedAt time.Time
}

// ArmaName is an in-game name a user held from Created onward.
type ArmaName struct {
	Name    string
	Created time.Time
}

func (u *User) IsMember() bool {
	return u.RankID != ""
}

// ArmaName returns the most recent in-game name.
func (u *User) ArmaName() string {
	var latest ArmaName
	for _, n := range u.ArmaNames {
		if latest.Name == "" || n.Created.After(latest.Created) {
			latest = n
		}
	}
	return latest.Name
}

// ArmaNameAt returns the in-game name held at t, or "" if none.
func (u *User) ArmaNameAt(t time.Time) string {
	var at ArmaName
	for _, n := range u.ArmaNames {
		if n.Created.After(t) {
			continue
		}
		if at.Name == "" || n.Created.After(at.Created) {
			at = n
		}
	}
	return at.Name
}
