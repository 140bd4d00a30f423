package net

import (
	"encoding/json"
	"fmt"
)

// Inbound is implemented by every client → server message. Decoding happens
// once at the connection boundary; the relay dispatches on the concrete type.
type Inbound interface {
	inbound()
}

func (*SetNameMessage) inbound()   {}
func (*SetScoreMessage) inbound()  {}
func (*SpawnRequest) inbound()     {}
func (*PoseMessage) inbound()      {}
func (*FireMessage) inbound()      {}
func (*ClientHitMessage) inbound() {}

// DecodeInbound parses one client frame. Unknown tags and malformed payloads
// are errors; callers drop the frame without replying.
func DecodeInbound(data []byte) (Inbound, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}

	var msg Inbound
	switch tag.Type {
	case MsgSetName:
		msg = &SetNameMessage{}
	case MsgSetScore:
		msg = &SetScoreMessage{}
	case MsgSpawn:
		msg = &SpawnRequest{}
	case MsgPose:
		msg = &PoseMessage{}
	case MsgFire:
		msg = &FireMessage{}
	case MsgClientHit:
		msg = &ClientHitMessage{}
	default:
		return nil, fmt.Errorf("unknown message type %q", tag.Type)
	}

	if err := json.Unmarshal(data, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
