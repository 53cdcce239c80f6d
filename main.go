package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/az1406/MonsterCardTradingGame/game"
	"github.com/az1406/MonsterCardTradingGame/handlers"
	"github.com/az1406/MonsterCardTradingGame/models"
	"github.com/az1406/MonsterCardTradingGame/repositories"
	"github.com/az1406/MonsterCardTradingGame/server"
	"github.com/az1406/MonsterCardTradingGame/utils"
	"github.com/az1406/MonsterCardTradingGame/workers"
)

const defaultListenAddr = "127.0.0.1:10001"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Card{},
		&models.StackCard{},
		&models.DeckCard{},
		&models.Battle{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	userRepo := repositories.NewUserRepository(db)
	cardRepo := repositories.NewCardRepository(db)
	battleRepo := repositories.NewBattleRepository(db)

	if err := seedAdmin(userRepo); err != nil {
		log.Fatal("failed to seed admin user:", err)
	}

	engine := game.NewEngine(userRepo, battleRepo)

	executor := server.NewRequestExecutor(
		userRepo,
		handlers.NewSessionHandler(userRepo),
		handlers.NewUserHandler(userRepo, cardRepo),
		handlers.NewPackageHandler(cardRepo, userRepo),
		handlers.NewTransactionHandler(cardRepo, userRepo),
		handlers.NewBattleHandler(userRepo, cardRepo, engine),
	)

	sched, err := workers.StartScoreboardSnapshot(userRepo, battleRepo)
	if err != nil {
		log.Fatal("failed to start scoreboard snapshot job:", err)
	}
	defer func() { _ = sched.Shutdown() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("✅ Scoreboard snapshot job running (every 1m)")

	listener := server.NewTCPListener(listenAddr, executor)
	if err := listener.Start(ctx); err != nil {
		log.Fatal("server error:", err)
	}

	log.Println("Shutting down server...")
}

// seedAdmin makes sure the reserved administrator account exists so package
// creation is possible on a fresh database.
func seedAdmin(users repositories.UserRepository) error {
	admin, err := users.GetByUsername(handlers.AdminUsername)
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
		log.Println("⚠️  ADMIN_PASSWORD not set, using default admin password")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return users.Create(&models.User{
		Username: handlers.AdminUsername,
		Password: hash,
		Coins:    20,
		ELO:      100,
	})
}
