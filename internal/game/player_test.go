package game

import (
	"math/rand"
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Rex", "Rex"},
		{"trimmed", "  Rex  ", "Rex"},
		{"empty falls back", "", "Player_ab12cd34"},
		{"whitespace falls back", "   \t ", "Player_ab12cd34"},
		{"capped", strings.Repeat("x", 50), strings.Repeat("x", MaxNameLen)},
		{"capped then trimmed", strings.Repeat("y", 23) + "   ", strings.Repeat("y", 23)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in, "ab12cd34"); got != tt.want {
				t.Fatalf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct{ in, want int }{
		{-10, 0},
		{-1, 0},
		{0, 0},
		{7, 7},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.in); got != tt.want {
			t.Fatalf("ClampScore(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewPlayerDefaults(t *testing.T) {
	p := NewPlayer("ab12cd34")
	if p.ID != "ab12cd34" {
		t.Fatalf("id = %q", p.ID)
	}
	if p.Name != "Player_ab12cd34" {
		t.Fatalf("name = %q, want placeholder", p.Name)
	}
	if p.HP != MaxHP {
		t.Fatalf("hp = %d, want %d", p.HP, MaxHP)
	}
	if p.X != 0 || p.Y != 0 || p.Z != 0 || p.RY != 0 {
		t.Fatalf("pose not zeroed: (%f, %f, %f, ry %f)", p.X, p.Y, p.Z, p.RY)
	}
	if p.Kills != 0 {
		t.Fatalf("kills = %d, want 0", p.Kills)
	}
}

func TestRespawnPositionBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		x, y, z := RespawnPosition(rng)
		if y != 0 {
			t.Fatalf("y = %f, want ground plane", y)
		}
		if x < -SpawnSpread || x > SpawnSpread || z < -SpawnSpread || z > SpawnSpread {
			t.Fatalf("respawn (%f, %f) outside ±%f", x, z, SpawnSpread)
		}
	}
}

func TestDamageKillsInFiveHits(t *testing.T) {
	if MaxHP%HitDamage != 0 {
		t.Fatalf("MaxHP %d not a multiple of HitDamage %d", MaxHP, HitDamage)
	}
	if MaxHP/HitDamage != 5 {
		t.Fatalf("kill takes %d hits, want 5", MaxHP/HitDamage)
	}
}
