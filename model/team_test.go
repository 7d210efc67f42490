package model

import "testing"

func TestTeamDisplayName(t *testing.T) {
	tests := map[string]struct {
		name string
		want string
	}{
		"class prefix": {name: "1-1 Aチーム", want: "Aチーム"},
		"ascii":        {name: "3-2 Tigers", want: "Tigers"},
		"short name":   {name: "1-1", want: "1-1"},
		"exact prefix": {name: "1-1 ", want: "1-1 "},
		"empty":        {name: "", want: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			team := Team{Name: tc.name}
			if got := team.DisplayName(); got != tc.want {
				t.Errorf("expected: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestTeamHasEntered(t *testing.T) {
	team := Team{ID: 1, EnteredGameIDs: []int32{10, 20}}
	if !team.HasEntered(10) || !team.HasEntered(20) {
		t.Errorf("expected team to have entered games 10 and 20")
	}
	if team.HasEntered(30) {
		t.Errorf("team should not have entered game 30")
	}
}

func TestMatchOpponent(t *testing.T) {
	m := Match{LeftTeamID: 1, RightTeamID: 2}

	tests := []struct {
		team  int32
		want  int32
		found bool
	}{
		{team: 1, want: 2, found: true},
		{team: 2, want: 1, found: true},
		{team: 3, want: 0, found: false},
	}

	for _, tc := range tests {
		got, found := m.Opponent(tc.team)
		if got != tc.want || found != tc.found {
			t.Errorf("team %d: expected (%d, %v), got (%d, %v)", tc.team, tc.want, tc.found, got, found)
		}
		if m.Involves(tc.team) != tc.found {
			t.Errorf("team %d: Involves() should be %v", tc.team, tc.found)
		}
	}
}
