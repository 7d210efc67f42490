package model

import "testing"

func TestParseGameType(t *testing.T) {
	tests := []struct {
		input     string
		expected  GameType
		supported bool
	}{
		{input: "league", expected: GAME_LEAGUE, supported: true},
		{input: "LEAGUE", expected: GAME_LEAGUE, supported: true},
		{input: " tournament ", expected: GAME_TOURNAMENT, supported: true},
		{input: "Tournament", expected: GAME_TOURNAMENT, supported: true},
		{input: "swiss", expected: GameType("swiss"), supported: false},
		{input: "", expected: GameType(""), supported: false},
	}

	for _, tc := range tests {
		a := ParseGameType(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
		if a.IsSupported() != tc.supported {
			t.Errorf("input: '%s', expected supported to be %v", tc.input, tc.supported)
		}
	}
}

func TestResultType(t *testing.T) {
	var r Result = &LeagueResult{GameID: 3}
	if r.ResultType() != GAME_LEAGUE || r.ResultGameID() != 3 {
		t.Errorf("unexpected league result type or id: %s %d", r.ResultType(), r.ResultGameID())
	}

	r = &TournamentResult{GameID: 4}
	if r.ResultType() != GAME_TOURNAMENT || r.ResultGameID() != 4 {
		t.Errorf("unexpected tournament result type or id: %s %d", r.ResultType(), r.ResultGameID())
	}
}
