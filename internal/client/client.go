// Package client is a headless relay client: it speaks the full wire
// protocol but renders nothing. The debug CLI uses it to watch live traffic.
package client

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"fpsrelay/internal/net"
)

// Event is one decoded server broadcast: the type tag plus the raw frame for
// callers that want the full payload.
type Event struct {
	Type string
	Raw  []byte
}

type Client struct {
	conn   *websocket.Conn
	mu     sync.Mutex // guards writes
	Events chan Event

	// ID is the server-assigned player id, known once the hello arrives.
	ID string
}

// Dial connects to the relay and blocks until the welcome hello arrives, so
// callers always know their own id.
func Dial(addr string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		conn:   conn,
		Events: make(chan Event, 64),
	}

	hello := make(chan string, 1)
	go c.readPump(hello)

	select {
	case id := <-hello:
		c.ID = id
		return c, nil
	case <-time.After(5 * time.Second):
		conn.Close()
		return nil, fmt.Errorf("no hello from %s within 5s", addr)
	}
}

func (c *Client) readPump(hello chan<- string) {
	defer func() {
		c.conn.Close()
		close(c.Events)
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var tag struct {
			Type   string `json:"type"`
			YourID string `json:"yourId"`
		}
		if err := json.Unmarshal(message, &tag); err != nil {
			continue
		}
		if tag.Type == net.MsgHello {
			select {
			case hello <- tag.YourID:
			default:
			}
		}

		select {
		case c.Events <- Event{Type: tag.Type, Raw: message}:
		default:
			// drop rather than stall the read loop
		}
	}
}

func (c *Client) send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *Client) SetName(name string) error {
	return c.send(&net.SetNameMessage{Type: net.MsgSetName, Name: name})
}

func (c *Client) Spawn() error {
	return c.send(&net.SpawnRequest{Type: net.MsgSpawn})
}

func (c *Client) Pose(x, y, z, ry float64, animation map[string]float64) error {
	return c.send(&net.PoseMessage{
		Type: net.MsgPose,
		X:    x, Y: y, Z: z, RY: ry,
		Animation: animation,
	})
}

func (c *Client) Fire(origin, dir net.Vec3) error {
	return c.send(&net.FireMessage{Type: net.MsgFire, Origin: origin, Dir: dir})
}

func (c *Client) ReportHit(victimID string) error {
	return c.send(&net.ClientHitMessage{Type: net.MsgClientHit, VictimID: victimID})
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
