package httpapi

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/radieske/bet-compare/internal/odds-board/board"
)

var (
	errUnknownAction = errors.New("unknown action")
	errInvalidGameID = errors.New("invalid game id")
)

// parseState reconstrói o ViewState a partir da query string:
// sport=<categoria>&open=<id>&open=<id>&props=<id>
// Ids ausentes ou inválidos são ignorados. O estado é montado pelo próprio Reduce.
func parseState(q url.Values) board.ViewState {
	state := board.Reduce(board.NewViewState(), board.SelectCategory{Category: board.ParseCategory(q.Get("sport"))})

	seen := map[int]struct{}{}
	for _, raw := range q["open"] {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			state = board.Reduce(state, board.ToggleExpansion{GameID: id})
		}
	}

	if id, err := strconv.Atoi(q.Get("props")); err == nil {
		state = board.Reduce(state, board.ToggleProps{GameID: id})
	}
	return state
}

// encodeState é o inverso de parseState; All e props vazias ficam de fora
func encodeState(s board.ViewState) url.Values {
	q := url.Values{}
	if c := s.Category(); c != board.All {
		q.Set("sport", string(c))
	}
	for _, id := range s.ExpandedIDs() {
		q.Add("open", strconv.Itoa(id))
	}
	if id, ok := s.ActiveProps(); ok {
		q.Set("props", strconv.Itoa(id))
	}
	return q
}

// parseAction lê a ação de /do: action=select&category=X | action=expand&id=N | action=props&id=N
func parseAction(q url.Values) (board.Action, error) {
	switch q.Get("action") {
	case "select":
		return board.SelectCategory{Category: board.ParseCategory(q.Get("category"))}, nil
	case "expand", "props":
		id, err := strconv.Atoi(q.Get("id"))
		if err != nil {
			return nil, errInvalidGameID
		}
		if q.Get("action") == "expand" {
			return board.ToggleExpansion{GameID: id}, nil
		}
		return board.ToggleProps{GameID: id}, nil
	}
	return nil, errUnknownAction
}

// boardURL é o link da tela para um estado
func boardURL(s board.ViewState) string {
	if q := encodeState(s).Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}

// actionURL é o link de /do que aplica a ação sobre o estado atual
func actionURL(s board.ViewState, action board.Action) string {
	q := encodeState(s)
	switch a := action.(type) {
	case board.SelectCategory:
		q.Set("action", "select")
		q.Set("category", string(a.Category))
	case board.ToggleExpansion:
		q.Set("action", "expand")
		q.Set("id", strconv.Itoa(a.GameID))
	case board.ToggleProps:
		q.Set("action", "props")
		q.Set("id", strconv.Itoa(a.GameID))
	}
	return "/do?" + q.Encode()
}
