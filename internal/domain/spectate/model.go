package spectate

import "time"

// Spectate records the observer handle of a live game.
type Spectate struct {
	ID            int64
	GameID        int64
	Region        string
	PlatformID    string
	EncryptionKey string
	CreatedAt     time.Time
}
