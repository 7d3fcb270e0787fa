package game

// turn accumulates the state of one PlayTurn call.
type turn struct {
	hands   [2]*Hand
	pool    *Pool
	battles []Battle
	depth   int
	staked  int
}

// status returns the status of the last battle.
func (t *turn) status() Status {
	return t.battles[len(t.battles)-1].Status
}

func (t *turn) record(b Battle) Status {
	t.battles = append(t.battles, b)
	return b.Status
}

// award moves the pool to side's win pile.
func (t *turn) award(side Side) {
	t.staked += t.pool.awardTo(t.hands[side])
}

// forfeit ends the game in favour of winner: the pool and everything the
// loser still holds go to the winner.
func (t *turn) forfeit(winner Side) Status {
	loser := t.hands[winner.Other()]
	rest := loser.surrender()
	t.hands[winner].Receive(rest...)
	t.staked += len(rest)
	t.award(winner)
	return gameOverStatus(winner)
}

// round plays the opening face-up comparison of a turn. On a tie the two
// cards stay in the pool for war.
func (t *turn) round() Status {
	for _, h := range t.hands {
		h.RecycleIfEmpty()
	}

	for _, s := range sides {
		if t.hands[s].IsOut() {
			return t.record(Battle{Status: gameOverStatus(s.Other())})
		}
	}

	var b Battle
	b.Player, _ = t.hands[Player].Draw()
	b.Computer, _ = t.hands[Computer].Draw()
	t.pool.Add(Player, b.Player)
	t.pool.Add(Computer, b.Computer)

	switch b.Player.Compare(b.Computer) {
	case 1:
		t.award(Player)
		b.Status = StatusPlayerWins
	case -1:
		t.award(Computer)
		b.Status = StatusComputerWins
	default:
		b.Status = StatusWar
	}
	return t.record(b)
}
