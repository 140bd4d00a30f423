package game

import "time"

// Combat and session tuning. Compile-time constants; not runtime-configurable.
const (
	// MaxHP is the hit-point ceiling a player spawns and respawns with.
	MaxHP = 100

	// HitDamage is subtracted from the victim on every confirmed hit.
	// Always server-fixed; never taken from client input.
	HitDamage = 20

	// MaxNameLen caps client-supplied display names.
	MaxNameLen = 24

	// PoseMinInterval is the minimum spacing between accepted pose updates
	// from one session. Faster updates are dropped outright.
	PoseMinInterval = 50 * time.Millisecond

	// RespawnDelay is how long a dead player waits before the relay
	// respawns them.
	RespawnDelay = 1500 * time.Millisecond

	// SpawnSpread bounds the random x/z offset of a respawn point.
	SpawnSpread = 3.0
)
