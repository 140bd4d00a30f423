package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// Player is the authoritative record for one connected session. The relay is
// the only writer; clients only ever see JSON copies of it.
type Player struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	HP    int     `json:"hp"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	RY    float64 `json:"ry"`
	Kills int     `json:"kills"`

	// Cosmetic movement hints, forwarded to other clients for animation
	// blending. Never read by server logic.
	VX        float64            `json:"vx,omitempty"`
	VY        float64            `json:"vy,omitempty"`
	VZ        float64            `json:"vz,omitempty"`
	Speed     float64            `json:"speed,omitempty"`
	Animation map[string]float64 `json:"animation,omitempty"`
}

// NewPlayer returns the default record inserted at connection open: full HP,
// zero pose, placeholder name derived from the id.
func NewPlayer(id string) *Player {
	return &Player{
		ID:   id,
		Name: DefaultName(id),
		HP:   MaxHP,
	}
}

func DefaultName(id string) string {
	return fmt.Sprintf("Player_%s", id)
}

// SanitizeName trims and length-caps a client-supplied name. Empty after
// trimming falls back to the placeholder for the given id.
func SanitizeName(name, id string) string {
	if runes := []rune(name); len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName(id)
	}
	return name
}

// ClampScore coerces a client-reported score to a non-negative kill count.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

// RespawnPosition picks a small randomized offset near the origin for an
// automatic respawn. The y coordinate stays on the ground plane.
func RespawnPosition(rng *rand.Rand) (x, y, z float64) {
	x = (rng.Float64()*2 - 1) * SpawnSpread
	z = (rng.Float64()*2 - 1) * SpawnSpread
	return x, 0, z
}
