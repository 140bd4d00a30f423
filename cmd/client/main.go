// Headless debug client: connects to the relay, announces a name, spawns,
// optionally walks a slow circle, and logs every event the server broadcasts.
// Handy for watching live traffic without opening the browser client.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"fpsrelay/internal/client"
	"fpsrelay/internal/net"
)

func main() {
	addr := flag.String("addr", "ws://localhost:8080/ws", "relay websocket address")
	name := flag.String("name", "observer", "display name")
	walk := flag.Bool("walk", true, "send pose updates walking a circle")
	flag.Parse()

	c, err := client.Dial(*addr)
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer c.Close()
	log.Printf("connected as %s", c.ID)

	if err := c.SetName(*name); err != nil {
		log.Fatalf("setName: %v", err)
	}
	if err := c.Spawn(); err != nil {
		log.Fatalf("spawn: %v", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case ev, ok := <-c.Events:
			if !ok {
				log.Println("connection closed")
				return
			}
			if ev.Type == net.MsgPose {
				continue // too chatty to log
			}
			log.Printf("%s: %s", ev.Type, ev.Raw)
		case <-interrupt:
			return
		case <-ticker.C:
			if !*walk {
				continue
			}
			t := time.Since(start).Seconds() * 0.5
			anim := map[string]float64{"idle": 0, "walk": 1, "run": 0}
			if err := c.Pose(math.Cos(t)*4, 0, math.Sin(t)*4, t+math.Pi/2, anim); err != nil {
				log.Printf("pose: %v", err)
				return
			}
		}
	}
}
