package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/qnkhuat/uchess/pkg/engine"
)

var ErrUnknownMessage = errors.New("unknown message type")

type MessageType int

const (
	TypeMessageJoin MessageType = iota
	TypeMessageConnect
	TypeMessageSelect
	TypeMessageState
	TypeMessageAction
	TypeMessageChat
	TypeMessageTransport
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageJoin:
		return "TypeMessageJoin"
	case TypeMessageConnect:
		return "TypeMessageConnect"
	case TypeMessageSelect:
		return "TypeMessageSelect"
	case TypeMessageState:
		return "TypeMessageState"
	case TypeMessageAction:
		return "TypeMessageAction"
	case TypeMessageChat:
		return "TypeMessageChat"
	case TypeMessageTransport:
		return "TypeMessageTransport"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
}

// Message types

// MessageTransport is the envelope every line on the wire is wrapped in.
type MessageTransport struct {
	MsgType  MessageType
	Data     json.RawMessage
	PlayerId int
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

// MessageJoin is the first message a client sends. An empty MatchId asks
// for any match with a free seat.
type MessageJoin struct {
	MatchId string
	Name    string
}

func (m MessageJoin) Type() MessageType {
	return TypeMessageJoin
}

// MessageConnect answers a join with the seat the player got.
type MessageConnect struct {
	MatchId string
	Name    string
	Color   PlayerColor
	State   engine.Snapshot
}

func (m MessageConnect) Type() MessageType {
	return TypeMessageConnect
}

type MessageSelect struct {
	Square engine.Pos
}

func (m MessageSelect) Type() MessageType {
	return TypeMessageSelect
}

type MessageState struct {
	State   engine.Snapshot
	Players [2]string
	Clocks  [2]string
	Notice  string
}

func (m MessageState) Type() MessageType {
	return TypeMessageState
}

type MessageAction struct {
	Action Action
}

func (m MessageAction) Type() MessageType {
	return TypeMessageAction
}

type MessageChat struct {
	Name    string
	Message string
}

func (m MessageChat) Type() MessageType {
	return TypeMessageChat
}

func Encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// WriteMessage wraps m in a transport and writes it as a single line.
func WriteMessage(w io.Writer, m MessageInterface, playerId int) error {
	b := Encode(MessageTransport{MsgType: m.Type(), Data: Encode(m), PlayerId: playerId})
	b = append(b, '\n')
	_, err := w.Write(b)
	return err
}

// Unwrap decodes the payload of a transport into its concrete message.
func Unwrap(t MessageTransport) (MessageInterface, error) {
	var (
		m   MessageInterface
		err error
	)
	switch t.MsgType {
	case TypeMessageJoin:
		var msg MessageJoin
		err = Decode(t.Data, &msg)
		m = msg
	case TypeMessageConnect:
		var msg MessageConnect
		err = Decode(t.Data, &msg)
		m = msg
	case TypeMessageSelect:
		var msg MessageSelect
		err = Decode(t.Data, &msg)
		m = msg
	case TypeMessageState:
		var msg MessageState
		err = Decode(t.Data, &msg)
		m = msg
	case TypeMessageAction:
		var msg MessageAction
		err = Decode(t.Data, &msg)
		m = msg
	case TypeMessageChat:
		var msg MessageChat
		err = Decode(t.Data, &msg)
		m = msg
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, t.MsgType)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.MsgType, err)
	}
	return m, nil
}
