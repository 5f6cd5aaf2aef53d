package board

import (
	"reflect"
	"testing"
)

func TestReducer_InitialState(t *testing.T) {
	state := NewViewState()

	if state.Category() != All {
		t.Errorf("Expected category All, got %v", state.Category())
	}
	if len(state.ExpandedIDs()) != 0 {
		t.Errorf("Expected no expanded games, got %v", state.ExpandedIDs())
	}
	if _, ok := state.ActiveProps(); ok {
		t.Error("Expected no active props")
	}
}

func TestReducer_SelectCategory(t *testing.T) {
	state := NewViewState()

	next := Reduce(state, SelectCategory{Category: NBA})

	if next.Category() != NBA {
		t.Errorf("Expected category NBA, got %v", next.Category())
	}
	// estado original intacto
	if state.Category() != All {
		t.Errorf("Expected original state to keep All, got %v", state.Category())
	}
}

func TestReducer_SelectCategoryKeepsExpansionAndProps(t *testing.T) {
	state := Reduce(NewViewState(), ToggleExpansion{GameID: 1})
	state = Reduce(state, ToggleProps{GameID: 1})

	next := Reduce(state, SelectCategory{Category: UFC})

	if !next.IsExpanded(1) {
		t.Error("Expected game 1 to stay expanded after category change")
	}
	if !next.PropsVisible(1) {
		t.Error("Expected props of game 1 to stay visible after category change")
	}
}

func TestReducer_ToggleExpansionTwiceRestores(t *testing.T) {
	for _, id := range []int{0, 1, 2, 3, 7, 42} {
		state := Reduce(NewViewState(), ToggleExpansion{GameID: 7})

		once := Reduce(state, ToggleExpansion{GameID: id})
		twice := Reduce(once, ToggleExpansion{GameID: id})

		if !twice.Equal(state) {
			t.Errorf("toggle expansion twice for %d: got %v, want %v", id, twice.ExpandedIDs(), state.ExpandedIDs())
		}
	}
}

func TestReducer_ToggleExpansionDoesNotMutateInput(t *testing.T) {
	state := Reduce(NewViewState(), ToggleExpansion{GameID: 1})

	_ = Reduce(state, ToggleExpansion{GameID: 2})
	_ = Reduce(state, ToggleExpansion{GameID: 1})

	if !reflect.DeepEqual(state.ExpandedIDs(), []int{1}) {
		t.Errorf("Expected input state to keep [1], got %v", state.ExpandedIDs())
	}
}

func TestReducer_ExpandIndependently(t *testing.T) {
	state := NewViewState()

	state = Reduce(state, ToggleExpansion{GameID: 1})
	state = Reduce(state, ToggleExpansion{GameID: 2})

	if !state.IsExpanded(1) || !state.IsExpanded(2) {
		t.Fatalf("Expected games 1 and 2 expanded, got %v", state.ExpandedIDs())
	}
	if !reflect.DeepEqual(state.ExpandedIDs(), []int{1, 2}) {
		t.Errorf("Expected [1 2], got %v", state.ExpandedIDs())
	}
}

func TestReducer_TogglePropsTwiceRestores(t *testing.T) {
	for _, id := range []int{0, 1, 2, 3} {
		state := NewViewState()

		once := Reduce(state, ToggleProps{GameID: id})
		if !once.PropsVisible(id) {
			t.Errorf("Expected props of %d visible", id)
		}

		twice := Reduce(once, ToggleProps{GameID: id})
		if _, ok := twice.ActiveProps(); ok {
			t.Errorf("Expected no active props after toggling %d twice", id)
		}
	}
}

func TestReducer_TogglePropsSingleActive(t *testing.T) {
	state := Reduce(NewViewState(), ToggleProps{GameID: 1})
	state = Reduce(state, ToggleProps{GameID: 2})

	id, ok := state.ActiveProps()
	if !ok || id != 2 {
		t.Fatalf("Expected only game 2 active, got %d (%v)", id, ok)
	}
	if state.PropsVisible(1) {
		t.Error("Expected props of game 1 to be closed")
	}
}

func TestReducer_PropsIndependentFromExpansion(t *testing.T) {
	state := Reduce(NewViewState(), ToggleProps{GameID: 3})

	if state.IsExpanded(3) {
		t.Error("Expected toggling props to leave expansion untouched")
	}
	if !state.PropsVisible(3) {
		t.Error("Expected props of game 3 visible even with detail closed")
	}
}

func TestReducer_UnknownAction(t *testing.T) {
	state := Reduce(NewViewState(), ToggleExpansion{GameID: 1})

	next := Reduce(state, nil)

	if !next.Equal(state) {
		t.Error("Expected unknown action to keep the state")
	}
}

func TestActionName(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{SelectCategory{Category: NBA}, "select"},
		{ToggleExpansion{GameID: 1}, "expand"},
		{ToggleProps{GameID: 1}, "props"},
	}

	for _, tt := range tests {
		if got := ActionName(tt.action); got != tt.expected {
			t.Errorf("ActionName(%T) = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
