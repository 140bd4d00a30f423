package net

import "fpsrelay/internal/game"

// Message type tags. One flat JSON object per frame, discriminated by "type".
const (
	// Client → Server
	MsgSetName   = "setName"
	MsgSetScore  = "setScore"
	MsgSpawn     = "spawn"
	MsgPose      = "pose"
	MsgFire      = "fire"
	MsgClientHit = "clientHit"

	// Server → Client
	MsgHello     = "hello"
	MsgJoin      = "join"
	MsgLeave     = "leave"
	MsgName      = "name"
	MsgHit       = "hit"
	MsgDeath     = "death"
	MsgKill      = "player-kill"
	MsgRespawn   = "respawn"
	MsgHighscore = "highscore-update"
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Client → Server messages

type SetNameMessage struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type SetScoreMessage struct {
	Type  string `json:"type"`
	Score int    `json:"score"`
}

type SpawnRequest struct {
	Type     string  `json:"type"`
	Position *Vec3   `json:"position,omitempty"`
	RY       float64 `json:"ry"`
}

type PoseMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	RY   float64 `json:"ry"`

	// Advisory animation hints, forwarded verbatim.
	VX        float64            `json:"vx,omitempty"`
	VY        float64            `json:"vy,omitempty"`
	VZ        float64            `json:"vz,omitempty"`
	Speed     float64            `json:"speed,omitempty"`
	Animation map[string]float64 `json:"animation,omitempty"`
}

type FireMessage struct {
	Type   string `json:"type"`
	Origin Vec3   `json:"origin"`
	Dir    Vec3   `json:"dir"`
}

type ClientHitMessage struct {
	Type     string `json:"type"`
	VictimID string `json:"victimId"`
}

// Server → Client messages

type HelloMessage struct {
	Type    string         `json:"type"`
	YourID  string         `json:"yourId"`
	Players []*game.Player `json:"players"`
}

type JoinMessage struct {
	Type   string       `json:"type"`
	Player *game.Player `json:"player"`
}

type LeaveMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type NameMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SpawnMessage carries the full player record after a spawn or respawn.
type SpawnMessage struct {
	Type   string       `json:"type"`
	Player *game.Player `json:"player"`
}

type PoseBroadcast struct {
	Type      string             `json:"type"`
	ID        string             `json:"id"`
	X         float64            `json:"x"`
	Y         float64            `json:"y"`
	Z         float64            `json:"z"`
	RY        float64            `json:"ry"`
	VX        float64            `json:"vx"`
	VY        float64            `json:"vy"`
	VZ        float64            `json:"vz"`
	Speed     float64            `json:"speed"`
	Animation map[string]float64 `json:"animation"`
}

type FireBroadcast struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Origin Vec3   `json:"origin"`
	Dir    Vec3   `json:"dir"`
	T      int64  `json:"t"` // server unix millis
}

type HitMessage struct {
	Type     string `json:"type"`
	VictimID string `json:"victimId"`
	By       string `json:"by"`
	HP       int    `json:"hp"`
}

type DeathMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	By   string `json:"by"`
}

type KillMessage struct {
	Type     string `json:"type"`
	KillerID string `json:"killerId"`
	VictimID string `json:"victimId"`
}

// HighscoreEntry is one leaderboard row.
type HighscoreEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kills int    `json:"kills"`
}

type HighscoreMessage struct {
	Type    string           `json:"type"`
	Players []HighscoreEntry `json:"players"`
}
