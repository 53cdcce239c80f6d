package server

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/az1406/MonsterCardTradingGame/handlers"
	"github.com/az1406/MonsterCardTradingGame/protocol"
	"github.com/az1406/MonsterCardTradingGame/repositories"
)

const userPathPrefix = "/users/"

const missingAuthMessage = "Authorization header is missing or invalid"

// RequestExecutor routes a decoded request to the matching domain operation.
type RequestExecutor struct {
	Users        repositories.UserRepository
	Sessions     *handlers.SessionHandler
	UserHandler  *handlers.UserHandler
	Packages     *handlers.PackageHandler
	Transactions *handlers.TransactionHandler
	Battles      *handlers.BattleHandler
}

func NewRequestExecutor(
	users repositories.UserRepository,
	sessions *handlers.SessionHandler,
	userHandler *handlers.UserHandler,
	packages *handlers.PackageHandler,
	transactions *handlers.TransactionHandler,
	battles *handlers.BattleHandler,
) *RequestExecutor {
	return &RequestExecutor{
		Users:        users,
		Sessions:     sessions,
		UserHandler:  userHandler,
		Packages:     packages,
		Transactions: transactions,
		Battles:      battles,
	}
}

// Dispatch never lets a failure escape to the connection loop; anything
// unexpected becomes a 500.
func (e *RequestExecutor) Dispatch(req *protocol.Request) (resp *protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Executor] Panic while handling %s %s: %v", req.Method, req.Path, r)
			resp = protocol.InternalServerError()
		}
	}()

	log.Printf("[Executor] %s %s", req.Method, req.Path)

	switch req.Method {
	case "POST":
		return e.handlePost(req)
	case "GET":
		return e.handleGet(req)
	case "PUT":
		return e.handlePut(req)
	default:
		return protocol.NotFound("")
	}
}

func (e *RequestExecutor) handlePost(req *protocol.Request) *protocol.Response {
	switch req.Path {
	case "/users":
		details, errResp := decodeDetails(req.Body)
		if errResp != nil {
			return errResp
		}
		return e.UserHandler.Register(details)
	case "/sessions":
		details, errResp := decodeDetails(req.Body)
		if errResp != nil {
			return errResp
		}
		return e.Sessions.Login(details)
	case "/packages":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		return e.Packages.CreatePackage(req.Token, req.Body)
	case "/transactions/packages":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		return e.Transactions.PurchasePackage(req.Token)
	case "/battles":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		details, errResp := decodeDetails(req.Body)
		if errResp != nil {
			return errResp
		}
		return e.Battles.Battle(req.Token, details)
	default:
		return protocol.NotFound("")
	}
}

func (e *RequestExecutor) handleGet(req *protocol.Request) *protocol.Response {
	switch {
	case strings.HasPrefix(req.Path, userPathPrefix):
		username := strings.TrimPrefix(req.Path, userPathPrefix)
		if errResp := e.authorizeUserRoute(username, req.Token); errResp != nil {
			return errResp
		}
		return e.UserHandler.Profile(username)
	case req.Path == "/deck":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		return e.UserHandler.GetDeck(req.Token)
	case req.Path == "/stats":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		return e.UserHandler.Stats(req.Token)
	case req.Path == "/score":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		return e.UserHandler.Scoreboard(req.Token)
	default:
		return protocol.NotFound("")
	}
}

func (e *RequestExecutor) handlePut(req *protocol.Request) *protocol.Response {
	switch {
	case req.Path == "/deck":
		if req.Token == "" {
			return protocol.Unauthorized(missingAuthMessage)
		}
		var cardIDs []string
		if err := json.Unmarshal([]byte(req.Body), &cardIDs); err != nil {
			return protocol.BadRequest("Invalid JSON format")
		}
		if len(cardIDs) == 0 {
			return protocol.BadRequest("Request body is empty or invalid")
		}
		return e.UserHandler.AddCardsToDeck(req.Token, cardIDs)
	case strings.HasPrefix(req.Path, userPathPrefix):
		username := strings.TrimPrefix(req.Path, userPathPrefix)
		if errResp := e.authorizeUserRoute(username, req.Token); errResp != nil {
			return errResp
		}
		details, errResp := decodeDetails(req.Body)
		if errResp != nil {
			return errResp
		}
		return e.UserHandler.EditProfile(username, req.Token, details)
	default:
		return protocol.NotFound("")
	}
}

// authorizeUserRoute enforces the rule for user-scoped routes: the bearer
// token must equal the token stored on the target user's record.
func (e *RequestExecutor) authorizeUserRoute(username, token string) *protocol.Response {
	user, err := e.Users.GetByUsername(username)
	if err != nil {
		log.Printf("[Executor] Error while resolving user %s: %v", username, err)
		return protocol.InternalServerError()
	}
	if user == nil {
		return protocol.NotFound("User not found")
	}
	if token == "" || token != user.Token {
		return protocol.Unauthorized(missingAuthMessage)
	}
	return nil
}

func decodeDetails(body string) (map[string]string, *protocol.Response) {
	var details map[string]string
	if err := json.Unmarshal([]byte(body), &details); err != nil {
		return nil, protocol.BadRequest("Invalid JSON format")
	}
	if details == nil {
		return nil, protocol.BadRequest("Request body is empty or invalid")
	}
	return details, nil
}
