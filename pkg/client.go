package pkg

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/uchess/pkg/engine"
	"github.com/qnkhuat/uchess/pkg/gui"
	"github.com/rivo/tview"
)

// Backend is where the client sends the user's clicks.
type Backend interface {
	Select(sq engine.Pos)
	Act(a Action)
}

// LocalBackend plays both sides of a game in-process.
type LocalBackend struct {
	Game   *engine.Game
	update func(MessageState)
}

func NewLocalBackend(g *engine.Game, update func(MessageState)) *LocalBackend {
	lb := &LocalBackend{Game: g, update: update}
	lb.publish("")
	return lb
}

func (lb *LocalBackend) Select(sq engine.Pos) {
	notice := ""
	if lb.Game.Select(sq) == engine.Moved {
		if winner, ok := lb.Game.Winner(); ok {
			notice = fmt.Sprintf("Checkmate, %s wins", winner)
		}
	}
	lb.publish(notice)
}

func (lb *LocalBackend) Act(a Action) {
	notice := ""
	switch a {
	case ActionReset:
		lb.Game.Reset()
		notice = "New game"
	case ActionResign:
		turn := lb.Game.Turn()
		if lb.Game.Resign(turn) {
			notice = fmt.Sprintf("%s resigned", turn)
		}
	default:
		return
	}
	lb.publish(notice)
}

func (lb *LocalBackend) publish(notice string) {
	lb.update(MessageState{State: lb.Game.Snapshot(), Notice: notice})
}

// RemoteBackend forwards clicks to a match server.
type RemoteBackend struct {
	Out chan<- MessageInterface
}

func (rb *RemoteBackend) Select(sq engine.Pos) {
	send(rb.Out, MessageSelect{Square: sq})
}

func (rb *RemoteBackend) Act(a Action) {
	send(rb.Out, MessageAction{Action: a})
}

// send queues m without blocking the UI. A full queue drops m.
func send(out chan<- MessageInterface, m MessageInterface) bool {
	select {
	case out <- m:
		return true
	default:
		log.Printf("Dropped %s, send queue is full", m.Type())
		return false
	}
}

type Client struct {
	App      *tview.Application
	Board    *tview.Table
	Moves    *tview.TextView
	Captured *tview.TextView
	Status   *tview.TextView
	Chat     *tview.TextView
	ChatBox  *tview.InputField
	Layout   *tview.Grid

	Theme   gui.Theme
	Color   PlayerColor
	MatchId string
	Backend Backend

	conn    net.Conn
	out     chan MessageInterface
	state   MessageState
	focus   []tview.Primitive
	focused int
}

func NewClient(theme gui.Theme) *Client {
	cl := &Client{
		App:      tview.NewApplication(),
		Board:    tview.NewTable(),
		Moves:    tview.NewTextView(),
		Captured: tview.NewTextView(),
		Status:   tview.NewTextView(),
		Chat:     tview.NewTextView(),
		ChatBox:  tview.NewInputField(),
		Theme:    theme,
		Color:    Unknown,
	}

	cl.Moves.SetTextColor(theme.MoveBox).SetBorder(true).SetTitle("Moves")
	cl.Captured.SetBorder(true).SetTitle("Captured")
	cl.Status.SetTextColor(theme.Status)
	cl.Chat.SetScrollable(true).SetBorder(true).SetTitle("Chat")
	cl.ChatBox.SetLabel("> ").SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		text := strings.TrimSpace(cl.ChatBox.GetText())
		cl.ChatBox.SetText("")
		if text != "" && cl.out != nil {
			send(cl.out, MessageChat{Message: text})
		}
	})

	resetBtn := tview.NewButton("Reset").SetSelectedFunc(func() {
		cl.Backend.Act(ActionReset)
	})
	resignBtn := tview.NewButton("Resign").SetSelectedFunc(func() {
		cl.Backend.Act(ActionResign)
	})
	exitBtn := tview.NewButton("Exit").SetSelectedFunc(cl.Stop)

	gameOptions := tview.NewGrid().
		SetColumns(10, 10, 10).
		SetRows(1, 1, -1).
		AddItem(resetBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(resignBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(exitBtn, 0, 2, 1, 1, 0, 0, false).
		AddItem(cl.Status, 2, 0, 1, 3, 0, 0, false)

	cl.Layout = tview.NewGrid().
		SetRows(-1, 12, 6, 8, 1, -1).
		SetColumns(-1, 30, 34, -1).
		AddItem(cl.Board, 1, 1, 2, 1, 0, 0, true).
		AddItem(cl.Moves, 1, 2, 1, 1, 0, 0, false).
		AddItem(cl.Captured, 2, 2, 1, 1, 0, 0, false).
		AddItem(gameOptions, 3, 1, 1, 1, 0, 0, false).
		AddItem(cl.Chat, 3, 2, 1, 1, 0, 0, false).
		AddItem(cl.ChatBox, 4, 2, 1, 1, 0, 0, false)

	cl.focus = []tview.Primitive{cl.Board, resetBtn, resignBtn, exitBtn, cl.ChatBox}
	cl.App.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyTab {
			cl.focused = (cl.focused + 1) % len(cl.focus)
			cl.App.SetFocus(cl.focus[cl.focused])
			return nil
		}
		return ev
	})

	cl.initTable()
	return cl
}

func (cl *Client) initTable() {
	cl.Board.SetSelectable(true, true)
	cl.Board.Select(0, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			cl.Stop()
		}
	}).SetSelectedFunc(func(row, col int) {
		pos, ok := gui.CellToPos(row, col, cl.flip())
		if !ok || cl.Backend == nil {
			return
		}
		cl.Backend.Select(pos)
	})
}

// PlayLocal starts a hot-seat game on g.
func (cl *Client) PlayLocal(g *engine.Game) {
	cl.Color = White
	cl.Backend = NewLocalBackend(g, cl.update)
}

// Connect dials the match server and asks to join matchId.
func (cl *Client) Connect(addr, matchId, name string) error {
	log.Printf("Connecting to %s", addr)
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return err
	}
	cl.conn = conn
	cl.out = make(chan MessageInterface, ConnQueueSize)
	cl.Backend = &RemoteBackend{Out: cl.out}

	go cl.HandleWrite()
	go cl.HandleRead()
	cl.out <- MessageJoin{MatchId: matchId, Name: name}
	return nil
}

// HandleWrite sends queued messages until the queue is closed. After a
// failed write the rest are drained and dropped.
func (cl *Client) HandleWrite() {
	failed := false
	for message := range cl.out {
		if failed {
			continue
		}
		if err := WriteMessage(cl.conn, message, 0); err != nil {
			log.Printf("Failed to send %s: %v", message.Type(), err)
			failed = true
		}
	}
}

func (cl *Client) HandleRead() {
	scanner := bufio.NewScanner(cl.conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		if err := Decode(scanner.Bytes(), &messageTransport); err != nil {
			log.Printf("Bad message from server: %v", err)
			continue
		}
		message, err := Unwrap(messageTransport)
		if err != nil {
			log.Printf("Bad message from server: %v", err)
			continue
		}

		switch msg := message.(type) {
		case MessageConnect:
			log.Printf("Joined match %s as %s", msg.MatchId, msg.Color)
			cl.App.QueueUpdateDraw(func() {
				cl.MatchId = msg.MatchId
				cl.Color = msg.Color
				cl.update(MessageState{State: msg.State})
			})
		case MessageState:
			cl.App.QueueUpdateDraw(func() {
				cl.update(msg)
			})
		case MessageChat:
			cl.App.QueueUpdateDraw(func() {
				fmt.Fprintf(cl.Chat, "%s: %s\n", msg.Name, msg.Message)
				cl.Chat.ScrollToEnd()
			})
		default:
			log.Printf("Received unexpected %s", message.Type())
		}
	}
	log.Printf("Disconnected from server")
	cl.App.QueueUpdateDraw(func() {
		cl.state.Notice = "Disconnected from server"
		cl.render()
	})
}

func (cl *Client) update(msg MessageState) {
	cl.state = msg
	cl.render()
}

func (cl *Client) render() {
	s := cl.state.State
	gui.RenderTable(cl.Board, s, cl.Theme, cl.flip())
	cl.Moves.SetText(gui.FormatMoves(s.History))
	cl.Captured.SetText(gui.FormatCaptured(s.Captured))
	cl.Status.SetText(cl.statusText())
}

func (cl *Client) statusText() string {
	var sb strings.Builder
	if cl.MatchId != "" {
		fmt.Fprintf(&sb, "Match %s, you are %s\n", cl.MatchId, cl.Color)
	}
	for i, name := range cl.state.Players {
		if name == "" && cl.state.Clocks[i] == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s %s\n", PlayerColor(i), name, cl.state.Clocks[i])
	}
	sb.WriteString(cl.state.State.Status())
	if cl.state.Notice != "" {
		sb.WriteString("\n" + cl.state.Notice)
	}
	return sb.String()
}

// flip shows the board from Black's side.
func (cl *Client) flip() bool {
	return cl.Color == Black
}

func (cl *Client) Run() error {
	return cl.App.SetRoot(cl.Layout, true).EnableMouse(true).Run()
}

// Stop leaves the match, if any, and closes the UI.
func (cl *Client) Stop() {
	if cl.conn != nil {
		WriteMessage(cl.conn, MessageAction{Action: ActionExit}, 0)
		cl.conn.Close()
	}
	cl.App.Stop()
}
