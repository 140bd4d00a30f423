package net

import "testing"

func TestDecodeInbound(t *testing.T) {
	tests := []struct {
		name  string
		frame string
		check func(t *testing.T, msg Inbound)
	}{
		{
			name:  "setName",
			frame: `{"type":"setName","name":"Rex"}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*SetNameMessage)
				if !ok || m.Name != "Rex" {
					t.Fatalf("got %#v", msg)
				}
			},
		},
		{
			name:  "setScore",
			frame: `{"type":"setScore","score":12}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*SetScoreMessage)
				if !ok || m.Score != 12 {
					t.Fatalf("got %#v", msg)
				}
			},
		},
		{
			name:  "spawn with position",
			frame: `{"type":"spawn","position":{"x":1,"y":2,"z":3},"ry":0.5}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*SpawnRequest)
				if !ok || m.Position == nil || m.Position.Z != 3 || m.RY != 0.5 {
					t.Fatalf("got %#v", msg)
				}
			},
		},
		{
			name:  "spawn without position",
			frame: `{"type":"spawn"}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*SpawnRequest)
				if !ok || m.Position != nil {
					t.Fatalf("got %#v", msg)
				}
			},
		},
		{
			name:  "pose with animation",
			frame: `{"type":"pose","x":1,"y":2,"z":3,"ry":4,"speed":2.5,"animation":{"walk":1}}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*PoseMessage)
				if !ok || m.X != 1 || m.Speed != 2.5 || m.Animation["walk"] != 1 {
					t.Fatalf("got %#v", msg)
				}
			},
		},
		{
			name:  "fire",
			frame: `{"type":"fire","origin":{"x":1,"y":2,"z":3},"dir":{"x":0,"y":0,"z":1}}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*FireMessage)
				if !ok || m.Origin.Y != 2 || m.Dir.Z != 1 {
					t.Fatalf("got %#v", msg)
				}
			},
		},
		{
			name:  "clientHit",
			frame: `{"type":"clientHit","victimId":"ab12cd34"}`,
			check: func(t *testing.T, msg Inbound) {
				m, ok := msg.(*ClientHitMessage)
				if !ok || m.VictimID != "ab12cd34" {
					t.Fatalf("got %#v", msg)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := DecodeInbound([]byte(tt.frame))
			if err != nil {
				t.Fatalf("DecodeInbound: %v", err)
			}
			tt.check(t, msg)
		})
	}
}

func TestDecodeInboundRejects(t *testing.T) {
	frames := []string{
		`{broken`,
		`{}`,
		`{"type":"warp"}`,
		`{"type":"hello"}`, // server-to-client tags are not valid inbound
		`{"type":"pose","x":"not a number"}`,
		`{"type":"pose","x":1e999}`,
	}
	for _, frame := range frames {
		if msg, err := DecodeInbound([]byte(frame)); err == nil {
			t.Fatalf("DecodeInbound(%q) accepted as %#v", frame, msg)
		}
	}
}

func TestMessageTags(t *testing.T) {
	if MsgKill != "player-kill" {
		t.Fatalf("MsgKill = %q, want %q", MsgKill, "player-kill")
	}
	if MsgHighscore != "highscore-update" {
		t.Fatalf("MsgHighscore = %q, want %q", MsgHighscore, "highscore-update")
	}
}
