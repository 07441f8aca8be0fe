package pkg

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/qnkhuat/uchess/pkg/engine"
)

type MatchConfig struct {
	// Clock is the time each side gets. Zero means untimed.
	Clock     time.Duration
	Increment time.Duration
}

// MatchEvent is everything a match reacts to. Exactly one of Join, Leave,
// Elapsed or Message is set.
type MatchEvent struct {
	PlayerId int
	Message  MessageInterface
	Join     *Player
	Leave    bool
	Elapsed  time.Duration
}

// Match seats two players around one game. All game state is owned by the
// Run goroutine; everything else talks to it through In.
type Match struct {
	Id      string
	Game    *engine.Game
	Players map[int]*Player
	Seats   [2]*Player
	Clocks  [2]*Clock
	In      chan MatchEvent

	nextId int
	notice string
	done   chan struct{}
	once   sync.Once

	mu           sync.Mutex
	seated       int
	connected    int
	lastActivity time.Time
}

func NewMatch(id string, cfg MatchConfig) *Match {
	m := &Match{
		Id:           id,
		Game:         engine.NewGame(),
		Players:      make(map[int]*Player),
		In:           make(chan MatchEvent, MessageQueueSize),
		done:         make(chan struct{}),
		lastActivity: time.Now(),
	}
	if cfg.Clock > 0 {
		m.Clocks = [2]*Clock{
			NewClock(cfg.Clock, cfg.Increment),
			NewClock(cfg.Clock, cfg.Increment),
		}
	}
	return m
}

// AddPlayer queues p to be seated. White and Black are filled first, then
// everyone else watches.
func (m *Match) AddPlayer(p *Player) {
	select {
	case m.In <- MatchEvent{Join: p}:
	case <-m.done:
		p.Disconnect()
	}
}

func (m *Match) Run() {
	var tick <-chan time.Time
	if m.Clocks[0] != nil {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		tick = ticker.C
	}
	for {
		select {
		case ev := <-m.In:
			m.handle(ev)
		case <-tick:
			m.handle(MatchEvent{Elapsed: time.Second})
		case <-m.done:
			for id := range m.Players {
				m.remove(id)
			}
			return
		}
	}
}

func (m *Match) Stop() {
	m.once.Do(func() { close(m.done) })
}

// HasSeat reports whether White or Black is still free.
func (m *Match) HasSeat() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seated < 2
}

// Idle reports whether nobody has been connected for longer than timeout.
func (m *Match) Idle(now time.Time, timeout time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected == 0 && now.Sub(m.lastActivity) > timeout
}

func (m *Match) handle(ev MatchEvent) {
	m.mu.Lock()
	m.lastActivity = time.Now()
	m.mu.Unlock()

	switch {
	case ev.Join != nil:
		m.join(ev.Join)
	case ev.Leave:
		if p, ok := m.Players[ev.PlayerId]; ok {
			m.remove(ev.PlayerId)
			m.notice = fmt.Sprintf("%s has left", p.Name)
			m.broadcastState()
		}
	case ev.Elapsed > 0:
		m.advanceClock(ev.Elapsed)
	default:
		p, ok := m.Players[ev.PlayerId]
		if !ok {
			return
		}
		switch msg := ev.Message.(type) {
		case MessageSelect:
			m.selectSquare(p, msg.Square)
		case MessageAction:
			m.act(p, msg.Action)
		case MessageChat:
			m.broadcast(MessageChat{Name: p.Name, Message: msg.Message})
		default:
			log.Printf("Match %s: unexpected %s from player %d", m.Id, ev.Message.Type(), p.Id)
		}
	}
}

func (m *Match) join(p *Player) {
	m.nextId++
	p.Id = m.nextId
	switch {
	case m.Seats[White] == nil:
		p.Color = White
		m.Seats[White] = p
	case m.Seats[Black] == nil:
		p.Color = Black
		m.Seats[Black] = p
	default:
		p.Color = Viewer
	}
	m.Players[p.Id] = p
	m.count()

	go p.HandleWrite()
	go p.HandleRead(m.In, m.done)

	m.deliver(p, MessageConnect{
		MatchId: m.Id,
		Name:    p.Name,
		Color:   p.Color,
		State:   m.Game.Snapshot(),
	})
	m.notice = fmt.Sprintf("%s has joined as %s", p.Name, p.Color)
	log.Printf("Match %s: %s", m.Id, m.notice)
	m.broadcastState()
}

func (m *Match) remove(id int) {
	p := m.Players[id]
	delete(m.Players, id)
	if p.Color == White || p.Color == Black {
		m.Seats[p.Color] = nil
	}
	m.count()
	close(p.Out)
	p.Disconnect()
	log.Printf("Match %s: player %d (%s) removed", m.Id, id, p.Name)
}

func (m *Match) count() {
	seated := 0
	for _, p := range m.Seats {
		if p != nil {
			seated++
		}
	}
	m.mu.Lock()
	m.seated = seated
	m.connected = len(m.Players)
	m.mu.Unlock()
}

func (m *Match) selectSquare(p *Player, sq engine.Pos) {
	color, ok := p.Color.EngineColor()
	if !ok || color != m.Game.Turn() || !sq.InBounds() {
		return
	}
	result := m.Game.Select(sq)
	if result == engine.Moved {
		history := m.Game.MoveHistory()
		log.Printf("Match %s: %s played %s", m.Id, color, history[len(history)-1])
		m.notice = ""
		m.switchClocks(color)
		if winner, over := m.Game.Winner(); over {
			m.notice = fmt.Sprintf("Checkmate, %s wins", winner)
			log.Printf("Match %s: %s", m.Id, m.notice)
		}
	}
	m.broadcastState()
}

func (m *Match) act(p *Player, a Action) {
	color, seated := p.Color.EngineColor()
	switch a {
	case ActionReset:
		if !seated {
			return
		}
		m.Game.Reset()
		for _, cl := range m.Clocks {
			if cl != nil {
				cl.Reset()
			}
		}
		m.notice = fmt.Sprintf("%s started a new game", p.Name)
	case ActionResign:
		if !seated || !m.Game.Resign(color) {
			return
		}
		m.pauseClocks()
		m.notice = fmt.Sprintf("%s resigned", color)
	case ActionExit:
		m.remove(p.Id)
		m.notice = fmt.Sprintf("%s has left", p.Name)
	default:
		return
	}
	log.Printf("Match %s: %s", m.Id, m.notice)
	m.broadcastState()
}

func (m *Match) switchClocks(mover engine.Color) {
	if m.Clocks[0] == nil {
		return
	}
	m.Clocks[mover].Press()
	if m.Game.IsOver() {
		m.pauseClocks()
		return
	}
	m.Clocks[mover.Other()].Start()
}

func (m *Match) pauseClocks() {
	for _, cl := range m.Clocks {
		if cl != nil {
			cl.Pause()
		}
	}
}

func (m *Match) advanceClock(d time.Duration) {
	if m.Clocks[0] == nil || m.Game.IsOver() {
		return
	}
	turn := m.Game.Turn()
	if m.Clocks[turn].Advance(d) {
		m.Game.Resign(turn)
		m.pauseClocks()
		m.notice = fmt.Sprintf("%s ran out of time", turn)
		log.Printf("Match %s: %s", m.Id, m.notice)
	}
	m.broadcastState()
}

func (m *Match) state() MessageState {
	msg := MessageState{State: m.Game.Snapshot(), Notice: m.notice}
	for i, p := range m.Seats {
		if p != nil {
			msg.Players[i] = p.Name
		}
		if m.Clocks[i] != nil {
			msg.Clocks[i] = m.Clocks[i].String()
		}
	}
	return msg
}

func (m *Match) broadcastState() {
	m.broadcast(m.state())
}

func (m *Match) broadcast(msg MessageInterface) {
	for _, p := range m.Players {
		m.deliver(p, msg)
	}
}

// deliver never blocks the match; a player that stops reading loses updates.
func (m *Match) deliver(p *Player, msg MessageInterface) {
	select {
	case p.Out <- msg:
	default:
		log.Printf("Match %s: dropped %s for player %d", m.Id, msg.Type(), p.Id)
	}
}
