package models

import "time"

// Speaker identifies which side of the conversation produced a turn.
const (
	SpeakerBot  = "bot"
	SpeakerUser = "user"
)

// Turn is one exchanged message. Turns are append-only: once recorded they
// are never reordered or mutated.
type Turn struct {
	ID        string    `json:"id"`
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
