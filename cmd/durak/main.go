package main

import (
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"durak-game/internal/database"
	"durak-game/internal/game"
	"durak-game/internal/observer"
	"durak-game/internal/protocol"
	"durak-game/internal/shared"
)

// Environment configuration:
//
//	DURAK_SEED     deck-shuffle seed (default: current time)
//	DURAK_VARIANT  "classic" or "with_transfers" (default: classic)
//	DURAK_GAMES    number of games to play (default: 1)
//	DURAK_DB_PATH  sqlite file to record finished games in (optional)
func main() {
	log.Println("Starting Durak playthrough driver...")

	seed := time.Now().UnixNano()
	if v := os.Getenv("DURAK_SEED"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("Invalid DURAK_SEED %q: %v", v, err)
		}
		seed = parsed
	}

	numGames := 1
	if v := os.Getenv("DURAK_GAMES"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			log.Fatalf("Invalid DURAK_GAMES %q", v)
		}
		numGames = parsed
	}

	variant, err := game.ParseVariant(os.Getenv("DURAK_VARIANT"))
	if err != nil {
		log.Fatalf("Invalid DURAK_VARIANT: %v", err)
	}

	var db *database.Service
	if os.Getenv("DURAK_DB_PATH") != "" {
		service := database.New()
		db = &service
		defer db.Close()
	}

	log.Printf("Playing %d game(s), variant=%s, seed=%d", numGames, variant, seed)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	for i := 0; i < numGames; i++ {
		runGame(rng, variant, db)
	}
}

// runGame shuffles a fresh deck, plays one game to completion by sampling
// uniformly from the legal actions, and optionally records the result.
func runGame(rng *rand.Rand, variant game.Variant, db *database.Service) {
	g, err := game.NewGame(shared.ShuffledOrder(rng), variant)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	moves := 0
	for !g.IsTerminal() {
		actions := g.LegalActions()
		if len(actions) == 0 {
			log.Fatalf("Game %s: no legal actions in phase %s", g.ID, g.Phase)
		}
		action := actions[rng.IntN(len(actions))]
		if err := g.Apply(action); err != nil {
			log.Fatalf("Game %s: apply %s: %v", g.ID, action, err)
		}
		moves++
	}

	returns := g.Returns()
	winner := -1
	for p, r := range returns {
		if r > 0 {
			winner = p
		}
	}
	log.Printf("Game %s finished after %d moves: returns=%v winner=%d", g.ID, moves, returns, winner)
	log.Println(observer.String(g, 0))

	if db != nil {
		blob, err := protocol.Marshal(g)
		if err != nil {
			log.Fatalf("Game %s: snapshot: %v", g.ID, err)
		}
		saved := database.SavedGame{
			ID:        g.ID,
			CreatedAt: time.Now().Format(time.RFC3339),
			Variant:   g.Variant.String(),
			Status:    "finished",
			Winner:    winner,
			Snapshot:  string(blob),
		}
		if err := db.Insert(saved); err != nil {
			log.Printf("Game %s: failed to record result: %v", g.ID, err)
		}
	}
}
