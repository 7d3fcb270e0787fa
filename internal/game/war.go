package game

import "github.com/lox/wargame/internal/deck"

// war resolves a tie left in the pool by round. Each stage stakes burn hidden
// cards and one deciding card per side; equal deciding cards start another
// stage with the enlarged pool.
func (t *turn) war(burn int) Status {
	need := burn + 1
	for {
		t.depth++

		for _, h := range t.hands {
			h.RecycleIfEmpty()
		}
		if st, done := t.shortfall(need); done {
			return t.record(Battle{Status: st})
		}

		var b Battle
		for range burn {
			for _, s := range sides {
				h := t.hands[s]
				h.RecycleIfEmpty()
				if c, ok := h.Draw(); ok {
					t.pool.Add(s, c)
					b.Hidden[s]++
				}
			}
		}

		var face [2]deck.Card
		var missing [2]bool
		for _, s := range sides {
			h := t.hands[s]
			h.RecycleIfEmpty()
			c, ok := h.Draw()
			if !ok {
				missing[s] = true
				continue
			}
			t.pool.Add(s, c)
			face[s] = c
		}
		b.Player, b.Computer = face[Player], face[Computer]

		switch {
		case missing[Player] && missing[Computer]:
			t.pool.returnStakes(t.hands)
			b.Status = StatusStandoff
			return t.record(b)
		case missing[Player]:
			b.Status = t.forfeit(Computer)
			return t.record(b)
		case missing[Computer]:
			b.Status = t.forfeit(Player)
			return t.record(b)
		}

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
		if t.record(b) != StatusWar {
			return b.Status
		}
	}
}

// shortfall settles a war that cannot be fought because a side holds fewer
// than need cards. A single short side loses the game; if both are short the
// smaller hand loses, and equal hands take their stakes back.
func (t *turn) shortfall(need int) (Status, bool) {
	ps, cs := t.hands[Player].Size(), t.hands[Computer].Size()
	pShort, cShort := ps < need, cs < need

	switch {
	case !pShort && !cShort:
		return 0, false
	case pShort && cShort && ps == cs:
		t.pool.returnStakes(t.hands)
		return StatusStandoff, true
	case pShort && (!cShort || ps < cs):
		return t.forfeit(Computer), true
	default:
		return t.forfeit(Player), true
	}
}
