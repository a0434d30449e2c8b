package entities

import "time"

// Snapshot is one poll of the game server: who was connected and for how
// long, as reported by the server at CreatedAt.
type Snapshot struct {
	ID         string
	CreatedAt  time.Time
	ServerAddr string
	ServerPort int
	Game       string
	Map        string
	ServerName string
	Players    []PlayerPresence
}

type PlayerPresence struct {
	Name     string
	Duration float64 // seconds connected at the time of the poll
	Score    int
}
