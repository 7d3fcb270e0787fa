package history

// Transcript is the record of one War game, encoded as TOML.
type Transcript struct {
	Variant  string   `toml:"variant"`
	GameID   string   `toml:"game"`
	Seed     int64    `toml:"seed,omitempty"`
	Time     string   `toml:"time,omitempty"`
	Rules    Rules    `toml:"rules"`
	Player   []string `toml:"player_hand"`
	Computer []string `toml:"computer_hand"`
	Turns    []Turn   `toml:"turn"`
	Result   *Result  `toml:"result,omitempty"`
}

// Rules mirrors game.Rules with stable names.
type Rules struct {
	IncludeJokers bool   `toml:"include_jokers"`
	BurnCount     int    `toml:"burn_count"`
	Deal          string `toml:"deal"`
}

// Turn is one resolved turn. Battles use the notation produced by
// FormatBattle.
type Turn struct {
	Number        int      `toml:"number"`
	Status        string   `toml:"status"`
	Battles       []string `toml:"battles"`
	WarDepth      int      `toml:"war_depth,omitempty"`
	Staked        int      `toml:"staked"`
	PlayerCards   int      `toml:"player_cards"`
	ComputerCards int      `toml:"computer_cards"`
}

// Result summarises a finished game.
type Result struct {
	Winner      string `toml:"winner"`
	Turns       int    `toml:"turns"`
	Wars        int    `toml:"wars"`
	DoubleWars  int    `toml:"double_wars"`
	MaxWarDepth int    `toml:"max_war_depth"`
	Standoffs   int    `toml:"standoffs"`
	Recycles    []int  `toml:"recycles"`
}
