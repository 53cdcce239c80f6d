package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/az1406/MonsterCardTradingGame/models"
	"github.com/az1406/MonsterCardTradingGame/repositories"
)

const maxRounds = 100

// ErrEmptyDeck is returned when a battle is requested while either side has
// no cards activated; no battle record is created in that case.
var ErrEmptyDeck = errors.New("one or both users have empty decks")

// Engine runs a battle between two users' decks. It owns the battle
// lifecycle: create the record, fight up to 100 rounds, finalize, and
// persist the result together with the updated ELO standings.
type Engine struct {
	users   repositories.UserRepository
	battles repositories.BattleRepository
	rng     *rand.Rand
}

func NewEngine(users repositories.UserRepository, battles repositories.BattleRepository) *Engine {
	return &Engine{
		users:   users,
		battles: battles,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run fights user against opponent and returns a human-readable summary.
//
// Each round draws one card from each deck uniformly at random without
// removing it, so the same card can fight again in a later round and the
// deck never shrinks during a battle. A drawn round consumes a round but
// awards no win. On a decisive outcome the winner gains 3 ELO and the loser
// drops 5; a draw leaves ELO untouched. Games played goes up by one for both
// sides either way.
func (e *Engine) Run(user, opponent *models.User, userDeck, opponentDeck []models.Card) (string, error) {
	if len(userDeck) == 0 || len(opponentDeck) == 0 {
		return "", ErrEmptyDeck
	}

	now := time.Now().UTC()
	battle := &models.Battle{
		User1Token: user.Token,
		User2Token: opponent.Token,
		StartTime:  now,
		EndTime:    now,
	}

	if err := e.battles.Create(battle); err != nil {
		return "", fmt.Errorf("create battle: %w", err)
	}

	for battle.Rounds < maxRounds && len(userDeck) > 0 && len(opponentDeck) > 0 {
		userCard := pickRandom(userDeck, e.rng)
		opponentCard := pickRandom(opponentDeck, e.rng)

		switch Resolve(userCard, opponentCard) {
		case FirstWins:
			battle.User1Wins++
		case SecondWins:
			battle.User2Wins++
		}
		battle.Rounds++
	}

	switch {
	case battle.User1Wins > battle.User2Wins:
		battle.WinnerToken = user.Token
		user.ELO += 3
		opponent.ELO -= 5
	case battle.User2Wins > battle.User1Wins:
		battle.WinnerToken = opponent.Token
		user.ELO -= 5
		opponent.ELO += 3
	default:
		battle.IsDraw = true
	}

	battle.EndTime = time.Now().UTC()
	user.GamesPlayed++
	opponent.GamesPlayed++

	if err := e.users.Update(user); err != nil {
		return "", fmt.Errorf("update user %s: %w", user.Username, err)
	}
	if err := e.users.Update(opponent); err != nil {
		return "", fmt.Errorf("update user %s: %w", opponent.Username, err)
	}
	if err := e.battles.UpdateResult(battle); err != nil {
		return "", fmt.Errorf("update battle %d: %w", battle.ID, err)
	}

	return summary(battle, user.Username, opponent.Username), nil
}

// pickRandom samples one card from the deck without removing it.
func pickRandom(deck []models.Card, rng *rand.Rand) models.Card {
	return deck[rng.Intn(len(deck))]
}

func summary(battle *models.Battle, userName, opponentName string) string {
	winner := "Draw"
	if !battle.IsDraw {
		winner = opponentName
		if battle.WinnerToken == battle.User1Token {
			winner = userName
		}
	}

	return fmt.Sprintf("Battle ID: %d\n", battle.ID) +
		fmt.Sprintf("User 1: %s\n", userName) +
		fmt.Sprintf("User 2: %s\n", opponentName) +
		fmt.Sprintf("Total Rounds: %d\n", battle.Rounds) +
		fmt.Sprintf("Rounds won by %s: %d\n", userName, battle.User1Wins) +
		fmt.Sprintf("Rounds won by %s: %d\n", opponentName, battle.User2Wins) +
		fmt.Sprintf("Winner: %s", winner)
}
