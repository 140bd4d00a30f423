package server

import (
	"encoding/json"
	"log"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fpsrelay/internal/game"
	"fpsrelay/internal/net"
)

// Conn is the write side of one client connection. Send must not block;
// the websocket glue buffers and drops, test fakes record frames.
type Conn interface {
	Send(data []byte) error
	Close() error
}

// Tuning holds the relay's timing knobs. Production uses the game package
// constants; tests shrink the windows.
type Tuning struct {
	PoseMinInterval time.Duration
	RespawnDelay    time.Duration
}

func defaultTuning() Tuning {
	return Tuning{
		PoseMinInterval: game.PoseMinInterval,
		RespawnDelay:    game.RespawnDelay,
	}
}

type session struct {
	player       *game.Player
	conn         Conn
	lastPoseAt   time.Time
	respawnTimer *time.Timer
}

// Relay owns the player table and is the sole arbiter of game-affecting
// events. All mutation happens under one mutex: inbound messages, connection
// lifecycle, and respawn timer callbacks all funnel through it.
type Relay struct {
	mu       sync.Mutex
	sessions map[string]*session
	tuning   Tuning
	rng      *rand.Rand
	now      func() time.Time
}

func NewRelay() *Relay {
	return &Relay{
		sessions: make(map[string]*session),
		tuning:   defaultTuning(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// newID returns a fresh 8-hex-char id unique among open sessions.
// Caller holds r.mu.
func (r *Relay) newID() string {
	for {
		id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
		if _, taken := r.sessions[id]; !taken {
			return id
		}
	}
}

// Connect registers a new session: assigns an id, inserts the default player,
// greets the new client with the full roster, and announces the join to
// everyone else. Returns the assigned id.
func (r *Relay) Connect(conn Conn) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	p := game.NewPlayer(id)
	r.sessions[id] = &session{player: p, conn: conn}

	r.sendTo(conn, &net.HelloMessage{
		Type:    net.MsgHello,
		YourID:  id,
		Players: r.rosterLocked(),
	})
	r.broadcastExcept(id, &net.JoinMessage{Type: net.MsgJoin, Player: p})
	r.broadcastHighscoreLocked()

	log.Printf("[relay] %s connected (%d players)", id, len(r.sessions))
	return id
}

// Disconnect removes the session, cancels any pending respawn, and announces
// the departure. Safe to call for an already-removed id.
func (r *Relay) Disconnect(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return
	}
	if s.respawnTimer != nil {
		s.respawnTimer.Stop()
		s.respawnTimer = nil
	}
	delete(r.sessions, id)
	_ = s.conn.Close()

	r.broadcast(&net.LeaveMessage{Type: net.MsgLeave, ID: id})
	r.broadcastHighscoreLocked()

	log.Printf("[relay] %s disconnected (%d players)", id, len(r.sessions))
}

// HandleMessage dispatches one inbound frame from the session that owns id.
// Malformed or unknown frames are dropped without reply.
func (r *Relay) HandleMessage(id string, data []byte) {
	msg, err := net.DecodeInbound(data)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return
	}

	switch m := msg.(type) {
	case *net.SetNameMessage:
		r.handleSetName(s, m)
	case *net.SetScoreMessage:
		r.handleSetScore(s, m)
	case *net.SpawnRequest:
		r.handleSpawn(s, m)
	case *net.PoseMessage:
		r.handlePose(s, m)
	case *net.FireMessage:
		r.handleFire(s, m)
	case *net.ClientHitMessage:
		r.handleClientHit(s, m)
	}
}

func (r *Relay) handleSetName(s *session, m *net.SetNameMessage) {
	clean := game.SanitizeName(m.Name, s.player.ID)
	s.player.Name = clean
	r.broadcast(&net.NameMessage{Type: net.MsgName, ID: s.player.ID, Name: clean})
}

func (r *Relay) handleSetScore(s *session, m *net.SetScoreMessage) {
	s.player.Kills = game.ClampScore(m.Score)
	r.broadcastHighscoreLocked()
}

// handleSpawn resets hp and adopts the client's navmesh-snapped placement.
// Kills are not reset; the relay's own counter is the record.
func (r *Relay) handleSpawn(s *session, m *net.SpawnRequest) {
	p := s.player
	if m.Position != nil && finite(m.Position.X, m.Position.Y, m.Position.Z) {
		p.X, p.Y, p.Z = m.Position.X, m.Position.Y, m.Position.Z
	}
	if finite(m.RY) {
		p.RY = m.RY
	}
	p.HP = game.MaxHP
	r.broadcast(&net.SpawnMessage{Type: net.MsgSpawn, Player: p})
}

func (r *Relay) handlePose(s *session, m *net.PoseMessage) {
	now := r.now()
	if now.Sub(s.lastPoseAt) < r.tuning.PoseMinInterval {
		return // throttled, dropped outright
	}
	if !finite(m.X, m.Y, m.Z, m.RY) {
		return
	}

	p := s.player
	p.X, p.Y, p.Z, p.RY = m.X, m.Y, m.Z, m.RY
	if finite(m.VX, m.VY, m.VZ, m.Speed) {
		p.VX, p.VY, p.VZ, p.Speed = m.VX, m.VY, m.VZ, m.Speed
	}
	if m.Animation != nil {
		p.Animation = m.Animation
	}
	s.lastPoseAt = now

	anim := p.Animation
	if anim == nil {
		anim = map[string]float64{"idle": 1, "walk": 0, "run": 0}
	}
	r.broadcastExcept(p.ID, &net.PoseBroadcast{
		Type: net.MsgPose,
		ID:   p.ID,
		X:    p.X, Y: p.Y, Z: p.Z, RY: p.RY,
		VX: p.VX, VY: p.VY, VZ: p.VZ, Speed: p.Speed,
		Animation: anim,
	})
}

// handleFire relays the shot for cosmetic bullet rendering. Fire events are
// never interpreted as hits.
func (r *Relay) handleFire(s *session, m *net.FireMessage) {
	r.broadcast(&net.FireBroadcast{
		Type:   net.MsgFire,
		ID:     s.player.ID,
		Origin: m.Origin,
		Dir:    m.Dir,
		T:      r.now().UnixMilli(),
	})
}

// handleClientHit is the authoritative damage path. The damage amount is the
// server's constant; the client only names the victim.
func (r *Relay) handleClientHit(s *session, m *net.ClientHitMessage) {
	v, ok := r.sessions[m.VictimID]
	if !ok || v.player.HP <= 0 || m.VictimID == s.player.ID {
		return
	}

	v.player.HP -= game.HitDamage
	if v.player.HP < 0 {
		v.player.HP = 0
	}
	r.broadcast(&net.HitMessage{
		Type:     net.MsgHit,
		VictimID: v.player.ID,
		By:       s.player.ID,
		HP:       v.player.HP,
	})

	if v.player.HP > 0 {
		return
	}

	s.player.Kills++
	log.Printf("[relay] %s killed %s (%d kills)", s.player.Name, v.player.Name, s.player.Kills)

	r.broadcast(&net.DeathMessage{Type: net.MsgDeath, ID: v.player.ID, By: s.player.ID})
	r.broadcast(&net.KillMessage{Type: net.MsgKill, KillerID: s.player.ID, VictimID: v.player.ID})
	r.broadcastHighscoreLocked()

	victimID := v.player.ID
	v.respawnTimer = time.AfterFunc(r.tuning.RespawnDelay, func() {
		r.respawn(victimID)
	})
}

// respawn fires from the timer scheduled on death. The session may have
// closed in the meantime, so existence is re-checked under the lock.
func (r *Relay) respawn(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return
	}
	s.respawnTimer = nil

	p := s.player
	p.HP = game.MaxHP
	p.X, p.Y, p.Z = game.RespawnPosition(r.rng)
	r.broadcast(&net.SpawnMessage{Type: net.MsgRespawn, Player: p})
}

// Roster returns a copy of every connected player, for the status API.
func (r *Relay) Roster() []game.Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]game.Player, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, *s.player)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Relay) rosterLocked() []*game.Player {
	out := make([]*game.Player, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.player)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Relay) broadcastHighscoreLocked() {
	entries := make([]net.HighscoreEntry, 0, len(r.sessions))
	for _, s := range r.sessions {
		entries = append(entries, net.HighscoreEntry{
			ID:    s.player.ID,
			Name:  s.player.Name,
			Kills: s.player.Kills,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kills != entries[j].Kills {
			return entries[i].Kills > entries[j].Kills
		}
		return entries[i].ID < entries[j].ID
	})
	r.broadcast(&net.HighscoreMessage{Type: net.MsgHighscore, Players: entries})
}

// Broadcast primitives: serialize once, skip sessions whose send fails,
// never queue or retry.

func (r *Relay) sendTo(conn Conn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[relay] marshal error: %v", err)
		return
	}
	_ = conn.Send(data)
}

func (r *Relay) broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[relay] marshal error: %v", err)
		return
	}
	for _, s := range r.sessions {
		_ = s.conn.Send(data)
	}
}

func (r *Relay) broadcastExcept(exceptID string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[relay] marshal error: %v", err)
		return
	}
	for id, s := range r.sessions {
		if id == exceptID {
			continue
		}
		_ = s.conn.Send(data)
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
