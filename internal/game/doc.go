// Package game implements the rules engine for the two-player card game War.
//
// The main type is Game, which owns both players' hands and the stake of
// cards at risk during a turn. Each call to PlayTurn resolves one complete
// turn, including any number of consecutive wars, and returns a TurnResult
// value describing what happened.
//
// # Basic Usage
//
//	g := game.NewGame(randutil.NewFromEntropy())
//	for !g.IsGameOver() {
//	    res := g.PlayTurn()
//	    fmt.Println(res.Status, res.Player, res.Computer)
//	}
//
// # Deterministic Testing
//
// The random source drives both the initial shuffle and every win-pile
// recycle, so a seeded source replays a game exactly:
//
//	g := game.NewGame(randutil.New(42))
//
// Explicit hands can be dealt for scenario tests:
//
//	g.Deal(deck.MustParseCards("Ah"), deck.MustParseCards("Kd"))
//
// # Architecture
//
// Game delegates to small components:
//   - Hand: active queue plus a win pile that is shuffled back in when the
//     queue runs dry
//   - Pool: the cards staked during the current turn
//   - resolveRound: one face-up comparison
//   - resolveWar: the tie-break loop (hidden cards plus a deciding card)
//
// A Game is not safe for concurrent use. Independent games share nothing and
// can run in parallel.
package game
