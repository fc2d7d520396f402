package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"fogchess/internal/controller"
	"fogchess/internal/middleware"
	"fogchess/internal/model"
	"fogchess/internal/service"
	"fogchess/internal/store"
)

func main() {
	var (
		addr     = flag.String("addr", ":3000", "listen address")
		origins  = flag.String("origins", "http://localhost:5173", "allowed CORS origins")
		dataDir  = flag.String("data-dir", "", "directory for the game store; empty disables persistence")
		noFog    = flag.Bool("no-fog", false, "turn off the fog of war for games created at startup")
		scenario = flag.String("scenario", "", "create a test game from the named scenario at startup")
	)
	flag.Parse()

	var st *store.Store
	if *dataDir != "" {
		var err error
		st, err = store.Open(*dataDir)
		if err != nil {
			log.Fatal(err)
		}
		defer st.Close()
	}

	gameManager, err := service.NewGameManager(st)
	if err != nil {
		log.Fatal(err)
	}
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// A named scenario spins up a single test game at startup, driven by
	// one player, the way the original desktop build's test mode worked.
	if *scenario != "" {
		gameID, err := gameService.CreateGame(model.Config{
			Scenario:     *scenario,
			Fog:          !*noFog,
			SinglePlayer: true,
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("scenario %q ready as game %s", *scenario, gameID)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(
		wsController.HandleConnection,
		websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Get("/matchmaking/poll", gameController.PollMatchmaking)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	if err := app.Listen(*addr); err != nil {
		log.Fatal(err)
	}
}
