package repository

import (
	"time"

	"github.com/Sports-day/sports-day-demo/model"
)

func ptr[T any](v T) *T { return &v }

// DefaultFixtures is a small sports day: two sports, a league and a tournament for
// each, four teams from two classes and a few matches.
func DefaultFixtures() Fixtures {
	day := time.Date(2024, time.May, 24, 9, 0, 0, 0, time.UTC)
	created := day.AddDate(0, 0, -14)

	return Fixtures{
		Sports: []model.Sport{
			{ID: 1, Name: "サッカー", Description: "グラウンド", Weight: 10, GameIDs: []int32{10, 20}, CreatedAt: created, UpdatedAt: created},
			{ID: 2, Name: "バスケットボール", Description: "体育館", Weight: 5, GameIDs: []int32{30, 40}, CreatedAt: created, UpdatedAt: created},
		},
		Classes: []model.Class{
			{ID: 1, Name: "1-1", Description: "1年1組", GroupID: 1, CreatedAt: created, UpdatedAt: created},
			{ID: 2, Name: "1-2", Description: "1年2組", GroupID: 1, CreatedAt: created, UpdatedAt: created},
		},
		Images: []model.Image{
			{ID: 1, Name: "soccer", Attachment: "images/soccer.png", CreatedAt: created, CreatedBy: 1},
		},
		Accounts: []model.MicrosoftAccount{
			{ID: 1, Email: "taro@example.com", Name: "Taro", Role: model.ROLE_ADMIN, UserID: ptr(int32(1)), FirstLogin: created, LastLogin: day},
			{ID: 2, Email: "hanako@example.com", Name: "Hanako", Role: model.ROLE_USER, LinkLater: true, FirstLogin: created, LastLogin: day},
		},
		Games: []model.Game{
			{ID: 10, Name: "サッカー 予選リーグ", SportID: 1, Type: model.GAME_LEAGUE, CalculationType: "total_score", Weight: 20, CreatedAt: created, UpdatedAt: created},
			{ID: 20, Name: "サッカー 決勝トーナメント", SportID: 1, Type: model.GAME_TOURNAMENT, CalculationType: "win_score", Weight: 30, CreatedAt: created, UpdatedAt: created},
			{ID: 30, Name: "バスケ 予選リーグ", SportID: 2, Type: model.GAME_LEAGUE, CalculationType: "total_score", Weight: 10, CreatedAt: created, UpdatedAt: created},
			{ID: 40, Name: "バスケ 決勝トーナメント", SportID: 2, Type: model.GAME_TOURNAMENT, CalculationType: "win_score", Weight: 15, CreatedAt: created, UpdatedAt: created},
		},
		Teams: []model.Team{
			{ID: 1, Name: "1-1 Aチーム", ClassID: 1, UserIDs: []int32{1}, EnteredGameIDs: []int32{10}, CreatedAt: created, UpdatedAt: created},
			{ID: 2, Name: "1-1 Bチーム", ClassID: 1, UserIDs: []int32{1, 2}, EnteredGameIDs: []int32{10, 20}, CreatedAt: created, UpdatedAt: created},
			{ID: 3, Name: "1-2 Aチーム", ClassID: 2, UserIDs: []int32{3}, EnteredGameIDs: []int32{10, 20, 30}, CreatedAt: created, UpdatedAt: created},
			{ID: 4, Name: "1-2 Bチーム", ClassID: 2, UserIDs: []int32{4}, EnteredGameIDs: []int32{30}, CreatedAt: created, UpdatedAt: created},
		},
		Users: []model.User{
			{ID: 1, Name: "山田 太郎", Email: "taro@example.com", Gender: model.GENDER_MALE, ClassID: 1, CreatedAt: created, UpdatedAt: created},
			{ID: 2, Name: "佐藤 花子", Email: "hanako@example.com", Gender: model.GENDER_FEMALE, ClassID: 1, CreatedAt: created, UpdatedAt: created},
			{ID: 3, Name: "鈴木 次郎", Email: "jiro@example.com", Gender: model.GENDER_MALE, ClassID: 2, CreatedAt: created, UpdatedAt: created},
			{ID: 4, Name: "高橋 三郎", Email: "saburo@example.com", Gender: model.GENDER_MALE, ClassID: 2, CreatedAt: created, UpdatedAt: created},
		},
		Matches: []model.Match{
			{ID: 100, GameID: 10, SportID: 1, LocationID: 1, Location: "グラウンドA", StartAt: day, LeftTeamID: 1, RightTeamID: 2, LeftScore: 2, RightScore: 1, Result: model.RESULT_LEFT_WIN, Status: model.STATUS_FINISHED, CreatedAt: created, UpdatedAt: day},
			{ID: 101, GameID: 10, SportID: 1, LocationID: 2, Location: "グラウンドB", StartAt: day.Add(30 * time.Minute), LeftTeamID: 2, RightTeamID: 3, LeftScore: 0, RightScore: 0, Result: model.RESULT_DRAW, Status: model.STATUS_FINISHED, CreatedAt: created, UpdatedAt: day},
			{ID: 102, GameID: 10, SportID: 1, LocationID: 1, Location: "グラウンドA", StartAt: day.Add(time.Hour), LeftTeamID: 3, RightTeamID: 1, Status: model.STATUS_STANDBY, JudgeTeamID: ptr(int32(2)), CreatedAt: created, UpdatedAt: created},
			{ID: 200, GameID: 20, SportID: 1, LocationID: 1, Location: "グラウンドA", StartAt: day.Add(3 * time.Hour), LeftTeamID: 2, RightTeamID: 3, Status: model.STATUS_STANDBY, CreatedAt: created, UpdatedAt: created},
			{ID: 300, GameID: 30, SportID: 2, LocationID: 3, Location: "体育館", StartAt: day.Add(90 * time.Minute), LeftTeamID: 3, RightTeamID: 4, LeftScore: 12, RightScore: 15, Result: model.RESULT_RIGHT_WIN, Status: model.STATUS_FINISHED, CreatedAt: created, UpdatedAt: day},
		},
		TournamentResults: []model.TournamentResult{
			{GameID: 20, Ranks: []model.TournamentRank{{TeamID: 2, Rank: 1}, {TeamID: 3, Rank: 2}}},
		},
		MeAccountID: 1,
	}
}
