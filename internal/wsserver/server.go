// Package wsserver exposes simulator sessions over websockets. Every
// connection gets its own table and robot.
package wsserver

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"toyrobot/internal/interpreter"
)

// Request is one command line sent by a client. A missing or null Command
// is executed as a null input.
type Request struct {
	Command *string `json:"command"`
}

// Response carries everything produced by a single Request.
type Response struct {
	Output []string `json:"output,omitempty"`
	Log    []string `json:"log,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type Server struct {
	width, height int
	upgrader      websocket.Upgrader
}

func New(width, height int) *Server {
	return &Server{
		width:  width,
		height: height,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveSession)
	mux.HandleFunc("/commands", serveCommands)
	return mux
}

func serveCommands(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(interpreter.CommandsWithParameters()); err != nil {
		log.Printf("Failed to write command list: %v", err)
	}
}

func (s *Server) serveSession(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()

	var out, logs bytes.Buffer
	sim, err := interpreter.New(s.width, s.height, &out, &logs)
	if err != nil {
		log.Printf("Failed to create simulator for %s: %v", r.RemoteAddr, err)
		return
	}
	log.Printf("Session %s started on a %s table", r.RemoteAddr, sim.Table())
	defer log.Printf("Session %s closed", r.RemoteAddr)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Session %s read failed: %v", r.RemoteAddr, err)
			}
			return
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(msg, &req); err != nil {
			resp.Error = "malformed request: " + err.Error()
		} else if err := sim.ExecuteInput(req.Command); err != nil {
			resp.Error = err.Error()
		}
		resp.Output = lines(&out)
		resp.Log = lines(&logs)

		if err := conn.WriteJSON(resp); err != nil {
			log.Printf("Session %s write failed: %v", r.RemoteAddr, err)
			return
		}
	}
}

// lines drains b into its newline-terminated lines.
func lines(b *bytes.Buffer) []string {
	text := strings.TrimSuffix(b.String(), "\n")
	b.Reset()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
