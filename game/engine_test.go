package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/az1406/MonsterCardTradingGame/models"
)

type fakeUserRepo struct {
	updated []*models.User
}

func (f *fakeUserRepo) GetByUsername(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByToken(string) (*models.User, error)    { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error                  { return nil }
func (f *fakeUserRepo) Update(user *models.User) error {
	f.updated = append(f.updated, user)
	return nil
}
func (f *fakeUserRepo) Count() (int64, error)               { return 0, nil }
func (f *fakeUserRepo) TopByELO(int) ([]models.User, error) { return nil, nil }

type fakeBattleRepo struct {
	created   []*models.Battle
	finalized []*models.Battle
}

func (f *fakeBattleRepo) Create(battle *models.Battle) error {
	battle.ID = uint(len(f.created) + 1)
	f.created = append(f.created, battle)
	return nil
}
func (f *fakeBattleRepo) UpdateResult(battle *models.Battle) error {
	f.finalized = append(f.finalized, battle)
	return nil
}
func (f *fakeBattleRepo) Count() (int64, error) { return int64(len(f.created)), nil }

func newTestEngine() (*Engine, *fakeUserRepo, *fakeBattleRepo) {
	users := &fakeUserRepo{}
	battles := &fakeBattleRepo{}
	return NewEngine(users, battles), users, battles
}

func TestRunEmptyDeckCreatesNoBattle(t *testing.T) {
	engine, _, battles := newTestEngine()
	user := &models.User{Username: "alice", Token: "t1", ELO: 100}
	opponent := &models.User{Username: "bob", Token: "t2", ELO: 100}

	_, err := engine.Run(user, opponent, nil, []models.Card{monster("Ork", models.ElementNormal, 10)})
	if !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("err = %v, want ErrEmptyDeck", err)
	}
	if len(battles.created) != 0 {
		t.Errorf("battle record created for empty deck")
	}
}

func TestRunDecisiveOutcome(t *testing.T) {
	engine, users, battles := newTestEngine()
	user := &models.User{Username: "alice", Token: "t1", ELO: 100}
	opponent := &models.User{Username: "bob", Token: "t2", ELO: 100}

	strong := []models.Card{monster("Dragon", models.ElementFire, 50)}
	weak := []models.Card{monster("Ork", models.ElementNormal, 10)}

	summary, err := engine.Run(user, opponent, strong, weak)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(battles.created) != 1 || len(battles.finalized) != 1 {
		t.Fatalf("battle persisted %d/%d times, want 1/1", len(battles.created), len(battles.finalized))
	}
	battle := battles.finalized[0]

	if battle.Rounds != 100 {
		t.Errorf("Rounds = %d, want 100", battle.Rounds)
	}
	if battle.User1Wins != 100 || battle.User2Wins != 0 {
		t.Errorf("wins = %d/%d, want 100/0", battle.User1Wins, battle.User2Wins)
	}
	if battle.WinnerToken != "t1" || battle.IsDraw {
		t.Errorf("winner = %q, isDraw = %v", battle.WinnerToken, battle.IsDraw)
	}

	if user.ELO != 103 {
		t.Errorf("winner ELO = %d, want 103", user.ELO)
	}
	if opponent.ELO != 95 {
		t.Errorf("loser ELO = %d, want 95", opponent.ELO)
	}
	if user.GamesPlayed != 1 || opponent.GamesPlayed != 1 {
		t.Errorf("games played = %d/%d, want 1/1", user.GamesPlayed, opponent.GamesPlayed)
	}
	if len(users.updated) != 2 {
		t.Errorf("users updated %d times, want 2", len(users.updated))
	}

	if !strings.Contains(summary, "Winner: alice") {
		t.Errorf("summary missing winner line:\n%s", summary)
	}
	if !strings.Contains(summary, "Total Rounds: 100") {
		t.Errorf("summary missing round count:\n%s", summary)
	}
}

// Identical single-card decks draw every round; after 100 rounds the battle
// finalizes as a draw and nobody's ELO moves.
func TestRunDrawLeavesELOUntouched(t *testing.T) {
	engine, _, battles := newTestEngine()
	user := &models.User{Username: "alice", Token: "t1", ELO: 100}
	opponent := &models.User{Username: "bob", Token: "t2", ELO: 100}

	deck1 := []models.Card{monster("Knight", models.ElementNormal, 20)}
	deck2 := []models.Card{monster("Knight", models.ElementNormal, 20)}

	summary, err := engine.Run(user, opponent, deck1, deck2)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	battle := battles.finalized[0]
	if !battle.IsDraw {
		t.Errorf("IsDraw = false, want true")
	}
	if battle.WinnerToken != "" {
		t.Errorf("WinnerToken = %q, want empty on draw", battle.WinnerToken)
	}
	if battle.Rounds != 100 {
		t.Errorf("Rounds = %d, want 100", battle.Rounds)
	}
	if battle.User1Wins != 0 || battle.User2Wins != 0 {
		t.Errorf("wins = %d/%d, want 0/0", battle.User1Wins, battle.User2Wins)
	}

	if user.ELO != 100 || opponent.ELO != 100 {
		t.Errorf("ELO moved on draw: %d / %d", user.ELO, opponent.ELO)
	}
	if user.GamesPlayed != 1 || opponent.GamesPlayed != 1 {
		t.Errorf("games played = %d/%d, want 1/1", user.GamesPlayed, opponent.GamesPlayed)
	}

	if !strings.Contains(summary, "Winner: Draw") {
		t.Errorf("summary missing draw line:\n%s", summary)
	}
}

// The per-round draw never removes cards, so the deck is the same size
// after a full battle.
func TestPickRandomDoesNotShrinkDeck(t *testing.T) {
	engine, _, _ := newTestEngine()
	user := &models.User{Username: "alice", Token: "t1", ELO: 100}
	opponent := &models.User{Username: "bob", Token: "t2", ELO: 100}

	deck1 := []models.Card{
		monster("Dragon", models.ElementFire, 50),
		monster("Ork", models.ElementNormal, 45),
	}
	deck2 := []models.Card{monster("Goblin", models.ElementNormal, 10)}

	if _, err := engine.Run(user, opponent, deck1, deck2); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(deck1) != 2 || len(deck2) != 1 {
		t.Errorf("deck sizes changed: %d / %d", len(deck1), len(deck2))
	}
}
