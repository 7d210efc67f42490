package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
)

// Fixtures seed the in-memory repository. Relations may be given from either side
// (Team.EnteredGameIDs or Game.EnteredTeamIDs, Team.UserIDs or User.TeamIDs,
// Sport.GameIDs or Game.SportID); they are merged when the repository is created.
type Fixtures struct {
	Sports            []model.Sport
	Classes           []model.Class
	Images            []model.Image
	Accounts          []model.MicrosoftAccount
	Games             []model.Game
	Matches           []model.Match
	Teams             []model.Team
	Users             []model.User
	TournamentResults []model.TournamentResult
	// The account that "me" resolves to.
	MeAccountID int32
}

type entry struct {
	teamID int32
	gameID int32
}

type membership struct {
	teamID int32
	userID int32
}

type memoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock

	sports            []model.Sport
	classes           []model.Class
	images            []model.Image
	accounts          []model.MicrosoftAccount
	games             []model.Game
	matches           []model.Match
	teams             []model.Team
	users             []model.User
	tournamentResults []model.TournamentResult
	entries           []entry
	members           []membership
	meAccountID       int32
}

// NewMemory returns a repository that serves the fixtures from memory. Writes are
// kept for the lifetime of the repository.
func NewMemory(f Fixtures, clock clock.Clock) Repository {
	r := &memoryRepository{
		clock:             clock,
		sports:            slices.Clone(f.Sports),
		classes:           slices.Clone(f.Classes),
		images:            slices.Clone(f.Images),
		accounts:          slices.Clone(f.Accounts),
		games:             slices.Clone(f.Games),
		matches:           slices.Clone(f.Matches),
		teams:             slices.Clone(f.Teams),
		users:             slices.Clone(f.Users),
		tournamentResults: slices.Clone(f.TournamentResults),
		meAccountID:       f.MeAccountID,
	}

	for _, t := range f.Teams {
		for _, g := range t.EnteredGameIDs {
			r.addEntry(entry{teamID: t.ID, gameID: g})
		}
		for _, u := range t.UserIDs {
			r.addMember(membership{teamID: t.ID, userID: u})
		}
	}
	for _, g := range f.Games {
		for _, t := range g.EnteredTeamIDs {
			r.addEntry(entry{teamID: t, gameID: g.ID})
		}
	}
	for _, u := range f.Users {
		for _, t := range u.TeamIDs {
			r.addMember(membership{teamID: t, userID: u.ID})
		}
	}
	for _, s := range f.Sports {
		for _, id := range s.GameIDs {
			if i := indexByID(r.games, id, gameID); i >= 0 && r.games[i].SportID == 0 {
				r.games[i].SportID = s.ID
			}
		}
	}

	return r
}

func (r *memoryRepository) addEntry(e entry) {
	if !slices.Contains(r.entries, e) {
		r.entries = append(r.entries, e)
	}
}

func (r *memoryRepository) addMember(m membership) {
	if !slices.Contains(r.members, m) {
		r.members = append(r.members, m)
	}
}

func sportID(s model.Sport) int32                 { return s.ID }
func classID(c model.Class) int32                 { return c.ID }
func imageID(i model.Image) int32                 { return i.ID }
func accountID(a model.MicrosoftAccount) int32    { return a.ID }
func gameID(g model.Game) int32                   { return g.ID }
func matchID(m model.Match) int32                 { return m.ID }
func teamID(t model.Team) int32                   { return t.ID }
func userID(u model.User) int32                   { return u.ID }
func tournamentID(t model.TournamentResult) int32 { return t.GameID }

func indexByID[T any](items []T, id int32, key func(T) int32) int {
	return slices.IndexFunc(items, func(item T) bool { return key(item) == id })
}

func nextID[T any](items []T, key func(T) int32) int32 {
	highest := int32(0)
	for _, item := range items {
		if key(item) > highest {
			highest = key(item)
		}
	}
	return highest + 1
}

func notFound(kind string, id any) error {
	return fmt.Errorf("%s %v %w", kind, id, ErrNotFound)
}

func (r *memoryRepository) GetSports(ctx context.Context) ([]model.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Sport, 0, len(r.sports))
	for _, s := range r.sports {
		res = append(res, r.withSportRelations(s))
	}
	return res, nil
}

func (r *memoryRepository) GetSport(ctx context.Context, id int32) (*model.Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.sports, id, sportID)
	if i < 0 {
		return nil, notFound("sport", id)
	}
	s := r.withSportRelations(r.sports[i])
	return &s, nil
}

func (r *memoryRepository) DeleteSport(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.sports, id, sportID)
	if i < 0 {
		return notFound("sport", id)
	}
	r.sports = slices.Delete(r.sports, i, i+1)
	return nil
}

func (r *memoryRepository) CreateSport(ctx context.Context, in model.SportInput) (*model.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	s := model.Sport{
		ID:          nextID(r.sports, sportID),
		Name:        in.Name,
		Description: in.Description,
		Weight:      in.Weight,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.sports = append(r.sports, s)
	s = r.withSportRelations(s)
	return &s, nil
}

func (r *memoryRepository) UpdateSport(ctx context.Context, id int32, in model.SportInput) (*model.Sport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.sports, id, sportID)
	if i < 0 {
		return nil, notFound("sport", id)
	}
	s := &r.sports[i]
	s.Name = in.Name
	s.Description = in.Description
	s.Weight = in.Weight
	s.UpdatedAt = r.clock.Now().UTC()

	res := r.withSportRelations(*s)
	return &res, nil
}

func (r *memoryRepository) withSportRelations(s model.Sport) model.Sport {
	s.GameIDs = make([]int32, 0)
	for _, g := range r.games {
		if g.SportID == s.ID {
			s.GameIDs = append(s.GameIDs, g.ID)
		}
	}
	return s
}

func (r *memoryRepository) GetClasses(ctx context.Context) ([]model.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.classes), nil
}

func (r *memoryRepository) GetClass(ctx context.Context, id int32) (*model.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.classes, id, classID)
	if i < 0 {
		return nil, notFound("class", id)
	}
	c := r.classes[i]
	return &c, nil
}

func (r *memoryRepository) DeleteClass(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.classes, id, classID)
	if i < 0 {
		return notFound("class", id)
	}
	r.classes = slices.Delete(r.classes, i, i+1)
	return nil
}

func (r *memoryRepository) CreateClass(ctx context.Context, in model.ClassInput) (*model.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	c := model.Class{
		ID:          nextID(r.classes, classID),
		Name:        in.Name,
		Description: in.Description,
		GroupID:     in.GroupID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.classes = append(r.classes, c)
	return &c, nil
}

func (r *memoryRepository) UpdateClass(ctx context.Context, id int32, in model.ClassInput) (*model.Class, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.classes, id, classID)
	if i < 0 {
		return nil, notFound("class", id)
	}
	c := &r.classes[i]
	c.Name = in.Name
	c.Description = in.Description
	c.GroupID = in.GroupID
	c.UpdatedAt = r.clock.Now().UTC()

	res := *c
	return &res, nil
}

func (r *memoryRepository) GetClassUsers(ctx context.Context, id int32) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if indexByID(r.classes, id, classID) < 0 {
		return nil, notFound("class", id)
	}
	res := make([]model.User, 0)
	for _, u := range r.users {
		if u.ClassID == id {
			res = append(res, r.withUserRelations(u))
		}
	}
	return res, nil
}

func (r *memoryRepository) GetImages(ctx context.Context) ([]model.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.images), nil
}

func (r *memoryRepository) GetImage(ctx context.Context, id int32) (*model.Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.images, id, imageID)
	if i < 0 {
		return nil, notFound("image", id)
	}
	img := r.images[i]
	return &img, nil
}

func (r *memoryRepository) DeleteImage(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.images, id, imageID)
	if i < 0 {
		return notFound("image", id)
	}
	r.images = slices.Delete(r.images, i, i+1)
	return nil
}

func (r *memoryRepository) CreateImage(ctx context.Context, in model.ImageInput) (*model.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	img := model.Image{
		ID:         nextID(r.images, imageID),
		Name:       in.Name,
		Attachment: in.Attachment,
		CreatedAt:  r.clock.Now().UTC(),
	}
	if img.Attachment == "" {
		img.Attachment = "images/" + uuid.NewString()
	}
	if i := indexByID(r.accounts, r.meAccountID, accountID); i >= 0 && r.accounts[i].UserID != nil {
		img.CreatedBy = *r.accounts[i].UserID
	}
	r.images = append(r.images, img)
	return &img, nil
}

func (r *memoryRepository) GetGames(ctx context.Context) ([]model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Game, 0, len(r.games))
	for _, g := range r.games {
		res = append(res, r.withGameRelations(g))
	}
	return res, nil
}

func (r *memoryRepository) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.games, id, gameID)
	if i < 0 {
		return nil, notFound("game", id)
	}
	g := r.withGameRelations(r.games[i])
	return &g, nil
}

func (r *memoryRepository) DeleteGame(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.games, id, gameID)
	if i < 0 {
		return notFound("game", id)
	}
	r.games = slices.Delete(r.games, i, i+1)
	r.entries = slices.DeleteFunc(r.entries, func(e entry) bool { return e.gameID == id })
	return nil
}

func (r *memoryRepository) CreateGame(ctx context.Context, in model.GameInput) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	g := model.Game{
		ID:              nextID(r.games, gameID),
		Name:            in.Name,
		Description:     in.Description,
		SportID:         in.SportID,
		Type:            in.Type,
		CalculationType: in.CalculationType,
		Weight:          in.Weight,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.games = append(r.games, g)
	g = r.withGameRelations(g)
	return &g, nil
}

func (r *memoryRepository) UpdateGame(ctx context.Context, id int32, in model.GameInput) (*model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.games, id, gameID)
	if i < 0 {
		return nil, notFound("game", id)
	}
	g := &r.games[i]
	g.Name = in.Name
	g.Description = in.Description
	g.SportID = in.SportID
	g.Type = in.Type
	g.CalculationType = in.CalculationType
	g.Weight = in.Weight
	g.UpdatedAt = r.clock.Now().UTC()

	res := r.withGameRelations(*g)
	return &res, nil
}

func (r *memoryRepository) GetGameMatches(ctx context.Context, id int32) ([]model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if indexByID(r.games, id, gameID) < 0 {
		return nil, notFound("game", id)
	}
	res := make([]model.Match, 0)
	for _, m := range r.matches {
		if m.GameID == id {
			res = append(res, m)
		}
	}
	return res, nil
}

func (r *memoryRepository) GetGameEntries(ctx context.Context, id int32) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if indexByID(r.games, id, gameID) < 0 {
		return nil, notFound("game", id)
	}
	res := make([]model.Team, 0)
	for _, t := range r.teams {
		if slices.Contains(r.entries, entry{teamID: t.ID, gameID: id}) {
			res = append(res, r.withTeamRelations(t))
		}
	}
	return res, nil
}

func (r *memoryRepository) GetLeagueResult(ctx context.Context, id int32) (*model.LeagueResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.games, id, gameID)
	if i < 0 {
		return nil, notFound("game", id)
	}
	if r.games[i].Type != model.GAME_LEAGUE {
		return nil, fmt.Errorf("game %d is not a league: %w", id, model.ErrUnsupportedGameType)
	}

	teams := make([]int32, 0)
	for _, e := range r.entries {
		if e.gameID == id {
			teams = append(teams, e.teamID)
		}
	}
	matches := make([]model.Match, 0)
	for _, m := range r.matches {
		if m.GameID == id {
			matches = append(matches, m)
		}
	}
	return CalculateLeagueResult(id, teams, matches), nil
}

func (r *memoryRepository) GetTournamentResult(ctx context.Context, id int32) (*model.TournamentResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.games, id, gameID)
	if i < 0 {
		return nil, notFound("game", id)
	}
	if r.games[i].Type != model.GAME_TOURNAMENT {
		return nil, fmt.Errorf("game %d is not a tournament: %w", id, model.ErrUnsupportedGameType)
	}

	j := indexByID(r.tournamentResults, id, tournamentID)
	if j < 0 {
		return &model.TournamentResult{GameID: id, Ranks: make([]model.TournamentRank, 0)}, nil
	}
	res := r.tournamentResults[j]
	res.Ranks = slices.Clone(res.Ranks)
	return &res, nil
}

func (r *memoryRepository) withGameRelations(g model.Game) model.Game {
	g.EnteredTeamIDs = make([]int32, 0)
	for _, e := range r.entries {
		if e.gameID == g.ID {
			g.EnteredTeamIDs = append(g.EnteredTeamIDs, e.teamID)
		}
	}
	return g
}

func (r *memoryRepository) GetMatches(ctx context.Context) ([]model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.matches), nil
}

func (r *memoryRepository) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.matches, id, matchID)
	if i < 0 {
		return nil, notFound("match", id)
	}
	m := r.matches[i]
	return &m, nil
}

func (r *memoryRepository) DeleteMatch(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.matches, id, matchID)
	if i < 0 {
		return notFound("match", id)
	}
	r.matches = slices.Delete(r.matches, i, i+1)
	return nil
}

func (r *memoryRepository) CreateMatch(ctx context.Context, in model.MatchInput) (*model.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexByID(r.games, in.GameID, gameID) < 0 {
		return nil, notFound("game", in.GameID)
	}

	now := r.clock.Now().UTC()
	m := model.Match{ID: nextID(r.matches, matchID), CreatedAt: now}
	applyMatchInput(&m, in, now)
	r.matches = append(r.matches, m)
	return &m, nil
}

func (r *memoryRepository) UpdateMatch(ctx context.Context, id int32, in model.MatchInput) (*model.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.matches, id, matchID)
	if i < 0 {
		return nil, notFound("match", id)
	}
	applyMatchInput(&r.matches[i], in, r.clock.Now().UTC())

	m := r.matches[i]
	return &m, nil
}

func (r *memoryRepository) GetTeams(ctx context.Context) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Team, 0, len(r.teams))
	for _, t := range r.teams {
		res = append(res, r.withTeamRelations(t))
	}
	return res, nil
}

func (r *memoryRepository) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.teams, id, teamID)
	if i < 0 {
		return nil, notFound("team", id)
	}
	t := r.withTeamRelations(r.teams[i])
	return &t, nil
}

func (r *memoryRepository) DeleteTeam(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.teams, id, teamID)
	if i < 0 {
		return notFound("team", id)
	}
	r.teams = slices.Delete(r.teams, i, i+1)
	r.entries = slices.DeleteFunc(r.entries, func(e entry) bool { return e.teamID == id })
	r.members = slices.DeleteFunc(r.members, func(m membership) bool { return m.teamID == id })
	return nil
}

func (r *memoryRepository) CreateTeam(ctx context.Context, in model.TeamInput) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	t := model.Team{
		ID:          nextID(r.teams, teamID),
		Name:        in.Name,
		Description: in.Description,
		ClassID:     in.ClassID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.teams = append(r.teams, t)
	t = r.withTeamRelations(t)
	return &t, nil
}

func (r *memoryRepository) UpdateTeam(ctx context.Context, id int32, in model.TeamInput) (*model.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.teams, id, teamID)
	if i < 0 {
		return nil, notFound("team", id)
	}
	t := &r.teams[i]
	t.Name = in.Name
	t.Description = in.Description
	t.ClassID = in.ClassID
	t.UpdatedAt = r.clock.Now().UTC()

	res := r.withTeamRelations(*t)
	return &res, nil
}

func (r *memoryRepository) GetTeamUsers(ctx context.Context, id int32) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if indexByID(r.teams, id, teamID) < 0 {
		return nil, notFound("team", id)
	}
	res := make([]model.User, 0)
	for _, u := range r.users {
		if slices.Contains(r.members, membership{teamID: id, userID: u.ID}) {
			res = append(res, r.withUserRelations(u))
		}
	}
	return res, nil
}

func (r *memoryRepository) withTeamRelations(t model.Team) model.Team {
	t.EnteredGameIDs = make([]int32, 0)
	for _, e := range r.entries {
		if e.teamID == t.ID {
			t.EnteredGameIDs = append(t.EnteredGameIDs, e.gameID)
		}
	}
	t.UserIDs = make([]int32, 0)
	for _, m := range r.members {
		if m.teamID == t.ID {
			t.UserIDs = append(t.UserIDs, m.userID)
		}
	}
	return t
}

func (r *memoryRepository) GetUsers(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, r.withUserRelations(u))
	}
	return res, nil
}

func (r *memoryRepository) GetUser(ctx context.Context, id int32) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := indexByID(r.users, id, userID)
	if i < 0 {
		return nil, notFound("user", id)
	}
	u := r.withUserRelations(r.users[i])
	return &u, nil
}

func (r *memoryRepository) DeleteUser(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.users, id, userID)
	if i < 0 {
		return notFound("user", id)
	}
	r.users = slices.Delete(r.users, i, i+1)
	r.members = slices.DeleteFunc(r.members, func(m membership) bool { return m.userID == id })
	return nil
}

func (r *memoryRepository) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().UTC()
	u := model.User{
		ID:        nextID(r.users, userID),
		Name:      in.Name,
		Email:     in.Email,
		Gender:    in.Gender,
		ClassID:   in.ClassID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users = append(r.users, u)
	u = r.withUserRelations(u)
	return &u, nil
}

func (r *memoryRepository) UpdateUser(ctx context.Context, id int32, in model.UserInput) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexByID(r.users, id, userID)
	if i < 0 {
		return nil, notFound("user", id)
	}
	u := &r.users[i]
	u.Name = in.Name
	u.Email = in.Email
	u.Gender = in.Gender
	u.ClassID = in.ClassID
	u.UpdatedAt = r.clock.Now().UTC()

	res := r.withUserRelations(*u)
	return &res, nil
}

func (r *memoryRepository) GetUserTeams(ctx context.Context, id int32) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if indexByID(r.users, id, userID) < 0 {
		return nil, notFound("user", id)
	}
	res := make([]model.Team, 0)
	for _, t := range r.teams {
		if slices.Contains(r.members, membership{teamID: t.ID, userID: id}) {
			res = append(res, r.withTeamRelations(t))
		}
	}
	return res, nil
}

func (r *memoryRepository) withUserRelations(u model.User) model.User {
	u.TeamIDs = make([]int32, 0)
	for _, m := range r.members {
		if m.userID == u.ID {
			u.TeamIDs = append(u.TeamIDs, m.teamID)
		}
	}
	return u
}

func (r *memoryRepository) GetMicrosoftAccounts(ctx context.Context) ([]model.MicrosoftAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.accounts), nil
}

func (r *memoryRepository) GetMicrosoftAccount(ctx context.Context, ref model.AccountRef) (*model.MicrosoftAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.accountIndex(ref)
	if i < 0 {
		return nil, notFound("microsoft account", ref)
	}
	a := r.accounts[i]
	return &a, nil
}

func (r *memoryRepository) DeleteMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.accountIndex(ref)
	if i < 0 {
		return notFound("microsoft account", ref)
	}
	r.accounts = slices.Delete(r.accounts, i, i+1)
	return nil
}

func (r *memoryRepository) SetMicrosoftAccountRole(ctx context.Context, ref model.AccountRef, role model.Role) (*model.MicrosoftAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if role == model.ROLE_UNKNOWN {
		return nil, errors.New("role must be ADMIN or USER")
	}
	i := r.accountIndex(ref)
	if i < 0 {
		return nil, notFound("microsoft account", ref)
	}
	r.accounts[i].Role = role

	a := r.accounts[i]
	return &a, nil
}

func (r *memoryRepository) LinkMicrosoftAccount(ctx context.Context, ref model.AccountRef, uid int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.accountIndex(ref)
	if i < 0 {
		return notFound("microsoft account", ref)
	}
	if indexByID(r.users, uid, userID) < 0 {
		return notFound("user", uid)
	}
	r.accounts[i].UserID = &uid
	r.accounts[i].LinkLater = false
	return nil
}

func (r *memoryRepository) UnlinkMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.accountIndex(ref)
	if i < 0 {
		return notFound("microsoft account", ref)
	}
	r.accounts[i].UserID = nil
	return nil
}

func (r *memoryRepository) LinkLaterMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.accountIndex(ref)
	if i < 0 {
		return notFound("microsoft account", ref)
	}
	r.accounts[i].LinkLater = true
	return nil
}

func (r *memoryRepository) accountIndex(ref model.AccountRef) int {
	if ref == model.AccountMe {
		return indexByID(r.accounts, r.meAccountID, accountID)
	}
	for i, a := range r.accounts {
		if model.AccountID(a.ID) == ref {
			return i
		}
	}
	return -1
}

func applyMatchInput(m *model.Match, in model.MatchInput, now time.Time) {
	m.GameID = in.GameID
	m.SportID = in.SportID
	m.LocationID = in.LocationID
	m.StartAt = in.StartAt
	m.LeftTeamID = in.LeftTeamID
	m.RightTeamID = in.RightTeamID
	m.LeftScore = in.LeftScore
	m.RightScore = in.RightScore
	m.Result = in.Result
	m.Status = in.Status
	m.Note = in.Note
	m.JudgeTeamID = in.JudgeTeamID
	m.UpdatedAt = now
}
