package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/radieske/bet-compare/internal/odds-board/board"
	"github.com/radieske/bet-compare/pkg/contracts/events"
)

// Publisher publica as ações aplicadas na tela
type Publisher interface {
	PublishBoardAction(ctx context.Context, e events.BoardAction) error
}

// MessageWriter é o pedaço do kafka.Writer usado aqui
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
	Topic  string
}

func NewKafkaPublisher(w MessageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Topic: topic}
}

// PublishBoardAction preenche id/ts quando vazios e usa o id como chave da mensagem
func (p *KafkaPublisher) PublishBoardAction(ctx context.Context, e events.BoardAction) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Ts.IsZero() {
		e.Ts = time.Now().UTC()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.ID), Value: b})
}

// Noop descarta as ações; usado quando não há brokers configurados
type Noop struct{}

func (Noop) PublishBoardAction(context.Context, events.BoardAction) error { return nil }

// NewBoardAction monta o evento a partir da ação e do estado resultante
func NewBoardAction(action board.Action, next board.ViewState) events.BoardAction {
	e := events.BoardAction{
		ID:    uuid.NewString(),
		Type:  board.ActionName(action),
		State: StateOf(next),
		Ts:    time.Now().UTC(),
	}
	switch a := action.(type) {
	case board.SelectCategory:
		e.Sport = string(a.Category)
	case board.ToggleExpansion:
		id := a.GameID
		e.GameID = &id
	case board.ToggleProps:
		id := a.GameID
		e.GameID = &id
	}
	return e
}

// StateOf converte o ViewState para o formato do evento
func StateOf(s board.ViewState) events.BoardState {
	st := events.BoardState{Sport: string(s.Category()), Open: s.ExpandedIDs()}
	if id, ok := s.ActiveProps(); ok {
		st.Props = &id
	}
	return st
}

// Key é usada nos logs para identificar a ação
func Key(e events.BoardAction) string {
	if e.GameID != nil {
		return e.Type + ":" + strconv.Itoa(*e.GameID)
	}
	return e.Type + ":" + e.Sport
}
