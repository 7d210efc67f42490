package factory

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
)

func requireName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("%s name is required", kind)
	}
	return nil
}

type SportFactory struct {
	repo repository.SportRepository
}

func (f *SportFactory) Index(ctx context.Context) ([]model.Sport, error) {
	return f.repo.GetSports(ctx)
}

func (f *SportFactory) Show(ctx context.Context, id int32) (*model.Sport, error) {
	return f.repo.GetSport(ctx, id)
}

func (f *SportFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteSport(ctx, id)
}

func (f *SportFactory) Create(ctx context.Context, in model.SportInput) (*model.Sport, error) {
	if err := requireName("sport", in.Name); err != nil {
		return nil, err
	}
	return f.repo.CreateSport(ctx, in)
}

func (f *SportFactory) Update(ctx context.Context, id int32, in model.SportInput) (*model.Sport, error) {
	if err := requireName("sport", in.Name); err != nil {
		return nil, err
	}
	return f.repo.UpdateSport(ctx, id, in)
}

type ClassFactory struct {
	repo repository.ClassRepository
}

func (f *ClassFactory) Index(ctx context.Context) ([]model.Class, error) {
	return f.repo.GetClasses(ctx)
}

func (f *ClassFactory) Show(ctx context.Context, id int32) (*model.Class, error) {
	return f.repo.GetClass(ctx, id)
}

func (f *ClassFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteClass(ctx, id)
}

func (f *ClassFactory) Create(ctx context.Context, in model.ClassInput) (*model.Class, error) {
	if err := requireName("class", in.Name); err != nil {
		return nil, err
	}
	return f.repo.CreateClass(ctx, in)
}

func (f *ClassFactory) Update(ctx context.Context, id int32, in model.ClassInput) (*model.Class, error) {
	if err := requireName("class", in.Name); err != nil {
		return nil, err
	}
	return f.repo.UpdateClass(ctx, id, in)
}

func (f *ClassFactory) Users(ctx context.Context, id int32) ([]model.User, error) {
	return f.repo.GetClassUsers(ctx, id)
}

// ImageFactory has no Update, images are replaced by creating a new one.
type ImageFactory struct {
	repo repository.ImageRepository
}

func (f *ImageFactory) Index(ctx context.Context) ([]model.Image, error) {
	return f.repo.GetImages(ctx)
}

func (f *ImageFactory) Show(ctx context.Context, id int32) (*model.Image, error) {
	return f.repo.GetImage(ctx, id)
}

func (f *ImageFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteImage(ctx, id)
}

func (f *ImageFactory) Create(ctx context.Context, in model.ImageInput) (*model.Image, error) {
	if err := requireName("image", in.Name); err != nil {
		return nil, err
	}
	return f.repo.CreateImage(ctx, in)
}

type MicrosoftAccountFactory struct {
	repo repository.MicrosoftAccountRepository
}

func (f *MicrosoftAccountFactory) Index(ctx context.Context) ([]model.MicrosoftAccount, error) {
	return f.repo.GetMicrosoftAccounts(ctx)
}

func (f *MicrosoftAccountFactory) Show(ctx context.Context, ref model.AccountRef) (*model.MicrosoftAccount, error) {
	return f.repo.GetMicrosoftAccount(ctx, ref)
}

func (f *MicrosoftAccountFactory) Delete(ctx context.Context, ref model.AccountRef) error {
	return f.repo.DeleteMicrosoftAccount(ctx, ref)
}

func (f *MicrosoftAccountFactory) SetRole(ctx context.Context, ref model.AccountRef, role model.Role) (*model.MicrosoftAccount, error) {
	if role == model.ROLE_UNKNOWN {
		return nil, invalid("role must be %s or %s", model.ROLE_ADMIN, model.ROLE_USER)
	}
	return f.repo.SetMicrosoftAccountRole(ctx, ref, role)
}

func (f *MicrosoftAccountFactory) LinkUser(ctx context.Context, ref model.AccountRef, userID int32) error {
	if userID <= 0 {
		return invalid("user id must be positive, got %d", userID)
	}
	return f.repo.LinkMicrosoftAccount(ctx, ref, userID)
}

func (f *MicrosoftAccountFactory) UnlinkUser(ctx context.Context, ref model.AccountRef) error {
	return f.repo.UnlinkMicrosoftAccount(ctx, ref)
}

func (f *MicrosoftAccountFactory) LinkLater(ctx context.Context, ref model.AccountRef) error {
	return f.repo.LinkLaterMicrosoftAccount(ctx, ref)
}

type GameFactory struct {
	repo repository.GameRepository
}

func (f *GameFactory) Index(ctx context.Context) ([]model.Game, error) {
	return f.repo.GetGames(ctx)
}

func (f *GameFactory) Show(ctx context.Context, id int32) (*model.Game, error) {
	return f.repo.GetGame(ctx, id)
}

func (f *GameFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteGame(ctx, id)
}

func (f *GameFactory) Create(ctx context.Context, in model.GameInput) (*model.Game, error) {
	if err := validateGame(in); err != nil {
		return nil, err
	}
	return f.repo.CreateGame(ctx, in)
}

func (f *GameFactory) Update(ctx context.Context, id int32, in model.GameInput) (*model.Game, error) {
	if err := validateGame(in); err != nil {
		return nil, err
	}
	return f.repo.UpdateGame(ctx, id, in)
}

func (f *GameFactory) Matches(ctx context.Context, id int32) ([]model.Match, error) {
	return f.repo.GetGameMatches(ctx, id)
}

func (f *GameFactory) Entries(ctx context.Context, id int32) ([]model.Team, error) {
	return f.repo.GetGameEntries(ctx, id)
}

func (f *GameFactory) LeagueResult(ctx context.Context, id int32) (*model.LeagueResult, error) {
	return f.repo.GetLeagueResult(ctx, id)
}

func (f *GameFactory) TournamentResult(ctx context.Context, id int32) (*model.TournamentResult, error) {
	return f.repo.GetTournamentResult(ctx, id)
}

func validateGame(in model.GameInput) error {
	if err := requireName("game", in.Name); err != nil {
		return err
	}
	if !in.Type.IsSupported() {
		return fmt.Errorf("%w: game type '%s': %w", ErrInvalidInput, in.Type, model.ErrUnsupportedGameType)
	}
	return nil
}

type MatchFactory struct {
	repo repository.MatchRepository
}

func (f *MatchFactory) Index(ctx context.Context) ([]model.Match, error) {
	return f.repo.GetMatches(ctx)
}

func (f *MatchFactory) Show(ctx context.Context, id int32) (*model.Match, error) {
	return f.repo.GetMatch(ctx, id)
}

func (f *MatchFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteMatch(ctx, id)
}

func (f *MatchFactory) Create(ctx context.Context, in model.MatchInput) (*model.Match, error) {
	in, err := validateMatch(in)
	if err != nil {
		return nil, err
	}
	return f.repo.CreateMatch(ctx, in)
}

func (f *MatchFactory) Update(ctx context.Context, id int32, in model.MatchInput) (*model.Match, error) {
	in, err := validateMatch(in)
	if err != nil {
		return nil, err
	}
	return f.repo.UpdateMatch(ctx, id, in)
}

// validateMatch returns in with the status defaulted to standby.
func validateMatch(in model.MatchInput) (model.MatchInput, error) {
	if in.GameID <= 0 {
		return in, invalid("match needs a game")
	}
	if in.LeftTeamID != 0 && in.LeftTeamID == in.RightTeamID {
		return in, invalid("team %d cannot play against itself", in.LeftTeamID)
	}
	switch in.Result {
	case "", model.RESULT_LEFT_WIN, model.RESULT_RIGHT_WIN, model.RESULT_DRAW:
	default:
		return in, invalid("unknown match result '%s'", in.Result)
	}
	switch in.Status {
	case "":
		in.Status = model.STATUS_STANDBY
	case model.STATUS_STANDBY, model.STATUS_IN_PROGRESS, model.STATUS_FINISHED, model.STATUS_CANCELLED:
	default:
		return in, invalid("unknown match status '%s'", in.Status)
	}
	return in, nil
}

type TeamFactory struct {
	repo repository.TeamRepository
}

func (f *TeamFactory) Index(ctx context.Context) ([]model.Team, error) {
	return f.repo.GetTeams(ctx)
}

func (f *TeamFactory) Show(ctx context.Context, id int32) (*model.Team, error) {
	return f.repo.GetTeam(ctx, id)
}

func (f *TeamFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteTeam(ctx, id)
}

func (f *TeamFactory) Create(ctx context.Context, in model.TeamInput) (*model.Team, error) {
	if err := requireName("team", in.Name); err != nil {
		return nil, err
	}
	return f.repo.CreateTeam(ctx, in)
}

func (f *TeamFactory) Update(ctx context.Context, id int32, in model.TeamInput) (*model.Team, error) {
	if err := requireName("team", in.Name); err != nil {
		return nil, err
	}
	return f.repo.UpdateTeam(ctx, id, in)
}

func (f *TeamFactory) Users(ctx context.Context, id int32) ([]model.User, error) {
	return f.repo.GetTeamUsers(ctx, id)
}

type UserFactory struct {
	repo repository.UserRepository
}

func (f *UserFactory) Index(ctx context.Context) ([]model.User, error) {
	return f.repo.GetUsers(ctx)
}

func (f *UserFactory) Show(ctx context.Context, id int32) (*model.User, error) {
	return f.repo.GetUser(ctx, id)
}

func (f *UserFactory) Delete(ctx context.Context, id int32) error {
	return f.repo.DeleteUser(ctx, id)
}

func (f *UserFactory) Create(ctx context.Context, in model.UserInput) (*model.User, error) {
	if err := validateUser(in); err != nil {
		return nil, err
	}
	return f.repo.CreateUser(ctx, in)
}

func (f *UserFactory) Update(ctx context.Context, id int32, in model.UserInput) (*model.User, error) {
	if err := validateUser(in); err != nil {
		return nil, err
	}
	return f.repo.UpdateUser(ctx, id, in)
}

func (f *UserFactory) Teams(ctx context.Context, id int32) ([]model.Team, error) {
	return f.repo.GetUserTeams(ctx, id)
}

func validateUser(in model.UserInput) error {
	if err := requireName("user", in.Name); err != nil {
		return err
	}
	if !strings.Contains(in.Email, "@") {
		return invalid("invalid email '%s'", in.Email)
	}
	return nil
}
