package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"fpsrelay/internal/config"
	"fpsrelay/internal/server"
)

func main() {
	config.Load()

	relay := server.NewRelay()

	// Serve the browser client if its bundle is present. The relay itself
	// only needs /ws.
	webDir := config.WebDir()
	if _, err := os.Stat(webDir); err == nil {
		log.Printf("serving static files from %s", webDir)
		fs := http.FileServer(http.Dir(webDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/" {
				http.ServeFile(w, r, filepath.Join(webDir, "index.html"))
				return
			}
			fs.ServeHTTP(w, r)
		})
	} else {
		log.Printf("web directory %s not found, static hosting disabled", webDir)
	}

	http.HandleFunc("/ws", server.HandleWebSocket(relay))
	http.HandleFunc("/api/status", server.HandleStatus(relay))

	port := config.Port()
	log.Printf("relay listening on :%s (ws endpoint: ws://localhost:%s/ws)", port, port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal("server error:", err)
	}
}
