package board

import (
	"reflect"
	"testing"
)

func TestBuildView_InitialLoad(t *testing.T) {
	v := BuildView(sampleGames(), NewViewState())

	if v.Selected != All {
		t.Errorf("Expected selected All, got %v", v.Selected)
	}
	if len(v.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(v.Rows))
	}
	for _, r := range v.Rows {
		if r.Expanded || r.Chevron != "down" {
			t.Errorf("Expected game %d collapsed, got expanded=%v chevron=%s", r.Game.ID, r.Expanded, r.Chevron)
		}
		if r.PropsVisible {
			t.Errorf("Expected props of game %d hidden", r.Game.ID)
		}
	}

	if len(v.Categories) != len(Categories()) {
		t.Fatalf("Expected %d category tabs, got %d", len(Categories()), len(v.Categories))
	}
	if !v.Categories[0].Selected {
		t.Error("Expected All tab selected")
	}
}

func TestBuildView_SelectNBA(t *testing.T) {
	state := Reduce(NewViewState(), SelectCategory{Category: NBA})

	v := BuildView(sampleGames(), state)

	if len(v.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(v.Rows))
	}
	g := v.Rows[0].Game
	if g.HomeTeam != "Los Angeles Lakers" || g.AwayTeam != "Boston Celtics" {
		t.Errorf("Expected Lakers/Celtics, got %s", g.Matchup())
	}
}

func TestBuildView_RowFields(t *testing.T) {
	state := Reduce(NewViewState(), ToggleExpansion{GameID: 1})
	state = Reduce(state, ToggleProps{GameID: 1})

	v := BuildView(sampleGames(), state)

	nfl := v.Rows[0]
	if !nfl.Expanded || nfl.Chevron != "up" {
		t.Errorf("Expected NFL row expanded with chevron up, got %v/%s", nfl.Expanded, nfl.Chevron)
	}
	if nfl.Volume != "$1.5M" {
		t.Errorf("Expected volume $1.5M, got %s", nfl.Volume)
	}
	if nfl.Schedule != "2:00 PM ET" {
		t.Errorf("Expected schedule 2:00 PM ET, got %s", nfl.Schedule)
	}
	if nfl.PropsLabel != "View 4 prop bets" {
		t.Errorf("Expected props label, got %q", nfl.PropsLabel)
	}
	if !nfl.PropsVisible || nfl.PropsChevron != "up" || len(nfl.Props) != 4 {
		t.Errorf("Expected NFL props visible, got %+v", nfl)
	}

	nba := v.Rows[1]
	if nba.Schedule != LiveLabel {
		t.Errorf("Expected live schedule, got %s", nba.Schedule)
	}
	if nba.Volume != "$950K" {
		t.Errorf("Expected volume $950K, got %s", nba.Volume)
	}
	if nba.PropsVisible || nba.Props != nil {
		t.Error("Expected NBA props hidden")
	}

	ufc := v.Rows[2]
	if ufc.PropsLabel != "" {
		t.Errorf("Expected no props label for game without props, got %q", ufc.PropsLabel)
	}
}

func TestBuildView_UnknownCategory(t *testing.T) {
	state := Reduce(NewViewState(), SelectCategory{Category: "Cricket"})

	v := BuildView(sampleGames(), state)

	if len(v.Rows) != 0 {
		t.Errorf("Expected no rows, got %d", len(v.Rows))
	}
	for _, tab := range v.Categories {
		if tab.Selected {
			t.Errorf("Expected no tab selected, got %s", tab.Category)
		}
	}
}

func TestBuildView_ExpandNFLThenNBA(t *testing.T) {
	state := Reduce(NewViewState(), ToggleExpansion{GameID: 1})
	state = Reduce(state, ToggleExpansion{GameID: 2})

	v := BuildView(sampleGames(), state)

	var open []int
	for _, r := range v.Rows {
		if r.Expanded {
			open = append(open, r.Game.ID)
		}
	}
	if !reflect.DeepEqual(open, []int{1, 2}) {
		t.Errorf("Expected rows 1 and 2 expanded, got %v", open)
	}
}
