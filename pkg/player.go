package pkg

import (
	"bufio"
	"log"
	"net"

	"github.com/qnkhuat/uchess/pkg/engine"
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Viewer
	Unknown
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	case Viewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}

// EngineColor maps a seat to the side it plays. Viewers play no side.
func (pc PlayerColor) EngineColor() (engine.Color, bool) {
	switch pc {
	case White:
		return engine.White, true
	case Black:
		return engine.Black, true
	default:
		return 0, false
	}
}

type Player struct {
	Conn  net.Conn
	Color PlayerColor
	Out   chan MessageInterface
	Id    int
	Name  string
}

func NewPlayer(conn net.Conn, name string) *Player {
	Out := make(chan MessageInterface, ConnQueueSize)

	p := &Player{
		Conn:  conn,
		Out:   Out,
		Name:  Nickname(name),
		Color: Unknown,
	}
	return p
}

// HandleRead forwards everything the player sends to the match, tagged with
// the player id, and reports the disconnect when the connection ends.
func (p *Player) HandleRead(In chan<- MatchEvent, done <-chan struct{}) {
	forward := func(ev MatchEvent) bool {
		select {
		case In <- ev:
			return true
		case <-done:
			return false
		}
	}

	scanner := bufio.NewScanner(p.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		if err := Decode(scanner.Bytes(), &messageTransport); err != nil {
			log.Printf("Player %d sent garbage: %v", p.Id, err)
			continue
		}
		message, err := Unwrap(messageTransport)
		if err != nil {
			log.Printf("Player %d: %v", p.Id, err)
			continue
		}
		if !forward(MatchEvent{PlayerId: p.Id, Message: message}) {
			return
		}
	}
	forward(MatchEvent{PlayerId: p.Id, Leave: true})
}

func (p *Player) HandleWrite() {
	for message := range p.Out {
		if err := WriteMessage(p.Conn, message, p.Id); err != nil {
			log.Printf("Failed to write: %v Error: %v", message.Type(), err)
		}
	}
}

func (p *Player) Disconnect() {
	p.Conn.Close()
}
