package workers

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/az1406/MonsterCardTradingGame/repositories"
)

// StartScoreboardSnapshot logs a server-wide snapshot every minute: how many
// users and battles exist and who leads the scoreboard. Pure log output; it
// never touches request handling.
func StartScoreboardSnapshot(users repositories.UserRepository, battles repositories.BattleRepository) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			userCount, err := users.Count()
			if err != nil {
				log.Printf("[Scoreboard] DB error: %v", err)
				return
			}
			battleCount, err := battles.Count()
			if err != nil {
				log.Printf("[Scoreboard] DB error: %v", err)
				return
			}

			top, err := users.TopByELO(1)
			if err != nil {
				log.Printf("[Scoreboard] DB error: %v", err)
				return
			}

			if len(top) == 0 {
				log.Printf("[Scoreboard] %d users, %d battles", userCount, battleCount)
				return
			}
			log.Printf("[Scoreboard] %d users, %d battles, leader: %s (ELO %d)",
				userCount, battleCount, top[0].Username, top[0].ELO)
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
