// Package tui is the terminal presentation of a War game: it plays turns on
// request, paces the reveal of each war stage and keeps a scrolling log.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/wargame/internal/deck"
	"github.com/lox/wargame/internal/game"
)

// Status lines shown above the table.
const (
	textNewGame       = "NEW GAME! DEAL TO START."
	textWarDetected   = "WAR DETECTED!"
	textStaking       = "STAKING CARDS..."
	textVictory       = "VICTORY! YOU CLEARED THE TABLE 🏆"
	textDefeat        = "GAME OVER... YOU RAN OUT OF CARDS 💀"
	textStandoff      = "STANDOFF! STAKES RETURNED."
	tableHeight       = 13
	minViewportHeight = 3
)

// Pacing holds the pauses between the stages of a war.
type Pacing struct {
	War    time.Duration // before announcing the war
	Stake  time.Duration // while face-down cards are staked, and before the reveal
	Settle time.Duration // after the war is decided
}

// Options configures a TUIModel
type Options struct {
	Clock  quartz.Clock
	Pacing Pacing
	// NewGame starts each game, initially and on restart. It defaults to
	// (*game.Game).Initialize.
	NewGame      func(g *game.Game)
	PlayerName   string
	ComputerName string
	TestMode     bool
}

// stepMsg fires when a paced playback step is due. Messages from an older
// playback are ignored.
type stepMsg struct{ seq int }

type step struct {
	delay time.Duration
	apply func(m *TUIModel)
}

// TUIModel represents the Bubble Tea model for a War game
type TUIModel struct {
	game      *game.Game
	logger    *log.Logger
	clock     quartz.Clock
	pacing    Pacing
	newGame   func(g *game.Game)
	formatter *game.EventFormatter
	names     [2]string

	// UI components
	logViewport viewport.Model
	help        help.Model
	keys        keyMap

	// Table state
	faces      [2]deck.Card
	faceUp     [2]bool
	scores     [2]int
	status     string
	warVisible bool
	busy       bool
	gameOver   bool

	// Playback
	queue []step
	seq   int
	timer *quartz.Timer
	steps chan stepMsg

	gameLog []string
	pending []string

	width       int
	height      int
	initialized bool
	quitting    bool

	testMode    bool
	capturedLog []string
}

// NewTUIModel creates the model, subscribes it to g and starts the first game.
func NewTUIModel(g *game.Game, logger *log.Logger, opts Options) *TUIModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.NewGame == nil {
		opts.NewGame = (*game.Game).Initialize
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "You"
	}
	if opts.ComputerName == "" {
		opts.ComputerName = "Computer"
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &TUIModel{
		game:    g,
		logger:  logger.WithPrefix("tui"),
		clock:   opts.Clock,
		pacing:  opts.Pacing,
		newGame: opts.NewGame,
		formatter: game.NewEventFormatter(game.FormattingOptions{
			ShowHidden:   true,
			PlayerName:   opts.PlayerName,
			ComputerName: opts.ComputerName,
		}),
		names:       [2]string{opts.PlayerName, opts.ComputerName},
		logViewport: vp,
		help:        help.New(),
		keys:        defaultKeyMap(),
		steps:       make(chan stepMsg, 1),
		testMode:    opts.TestMode,
	}
	g.Subscribe(game.EventSubscriberFunc(m.onEvent))
	m.startGame()
	return m
}

// onEvent buffers formatted events until the paced playback catches up.
func (m *TUIModel) onEvent(e game.GameEvent) {
	m.pending = append(m.pending, m.formatter.FormatEvent(e))
}

func (m *TUIModel) flushPending() {
	for _, line := range m.pending {
		m.AddLogEntry(line)
	}
	m.pending = nil
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)
		return m, nil

	case stepMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.timer = nil
		m.applyHead()
		return m, m.advance()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelPlayback()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Deal):
			return m, m.Deal()
		case key.Matches(msg, m.keys.Restart):
			m.Restart()
			return m, nil
		case key.Matches(msg, m.keys.LogUp):
			m.logViewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keys.LogDown):
			m.logViewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keys.LogStart):
			m.logViewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.LogEnd):
			m.logViewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// Deal plays one turn and starts its paced playback. It does nothing while
// a playback is running or once the game is over.
func (m *TUIModel) Deal() tea.Cmd {
	if m.busy || m.gameOver {
		return nil
	}
	m.busy = true

	res := m.game.PlayTurn()
	m.logger.Debug("Turn played", "turn", res.Turn, "status", res.Status, "war_depth", res.WarDepth)
	m.queue = m.playback(res)
	return m.advance()
}

// Restart abandons any playback and starts a new game.
func (m *TUIModel) Restart() {
	m.cancelPlayback()
	m.startGame()
}

func (m *TUIModel) startGame() {
	m.newGame(m.game)
	m.faces = [2]deck.Card{}
	m.faceUp = [2]bool{}
	m.warVisible = false
	m.busy = false
	m.gameOver = m.game.IsGameOver()
	m.status = textNewGame
	m.updateScores()
	m.flushPending()
}

// playback turns a resolved turn into display steps: the opening reveal,
// then for each war stage an announcement, the face-down stake and the
// deciding reveal.
func (m *TUIModel) playback(res game.TurnResult) []step {
	if len(res.Battles) == 0 {
		return []step{{apply: func(m *TUIModel) { m.finish(res) }}}
	}

	first := res.Battles[0]
	steps := []step{{apply: func(m *TUIModel) {
		m.reveal(first)
		m.status = roundText(first.Status)
	}}}

	for _, b := range res.Battles[1:] {
		steps = append(steps, step{m.pacing.War, func(m *TUIModel) {
			m.warVisible = true
			m.status = textWarDetected
		}})
		if b.Player.IsZero() && b.Computer.IsZero() {
			steps = append(steps, step{m.pacing.Stake, func(m *TUIModel) {
				m.status = warText(b.Status)
			}})
			continue
		}
		steps = append(steps,
			step{m.pacing.Stake, func(m *TUIModel) {
				m.faceUp = [2]bool{}
				m.status = textStaking
			}},
			step{m.pacing.Stake, func(m *TUIModel) {
				m.reveal(b)
				m.status = warText(b.Status)
			}},
		)
	}

	var settle time.Duration
	if len(res.Battles) > 1 {
		settle = m.pacing.Settle
	}
	return append(steps, step{settle, func(m *TUIModel) { m.finish(res) }})
}

// advance applies every step that is already due and schedules the next.
func (m *TUIModel) advance() tea.Cmd {
	for len(m.queue) > 0 {
		if d := m.queue[0].delay; d > 0 {
			return m.schedule(d)
		}
		m.applyHead()
	}
	return nil
}

func (m *TUIModel) applyHead() {
	if len(m.queue) == 0 {
		return
	}
	s := m.queue[0]
	m.queue = m.queue[1:]
	s.apply(m)
}

func (m *TUIModel) schedule(d time.Duration) tea.Cmd {
	seq := m.seq
	m.timer = m.clock.AfterFunc(d, func() {
		m.steps <- stepMsg{seq: seq}
	}, "tui", "pace")
	return m.waitForStep
}

// waitForStep returns a command that waits for the pacing timer
func (m *TUIModel) waitForStep() tea.Msg {
	return <-m.steps
}

func (m *TUIModel) cancelPlayback() {
	if m.timer != nil && m.timer.Stop() {
		// Release the pending waitForStep with a message that is stale below
		m.steps <- stepMsg{seq: m.seq}
	}
	m.timer = nil
	m.seq++
	m.queue = nil
}

func (m *TUIModel) reveal(b game.Battle) {
	for _, s := range [2]game.Side{game.Player, game.Computer} {
		if c := b.Card(s); !c.IsZero() {
			m.faces[s] = c
			m.faceUp[s] = true
		}
	}
}

func (m *TUIModel) finish(res game.TurnResult) {
	m.warVisible = false
	m.updateScores()
	m.flushPending()

	if res.Status == game.StatusStandoff {
		m.status = textStandoff
	}
	if winner, over := m.game.Winner(); over {
		m.gameOver = true
		m.status = gameOverText(winner)
	}
	m.busy = false
}

func (m *TUIModel) updateScores() {
	m.scores = [2]int{m.game.PlayerCardCount(), m.game.ComputerCardCount()}
}

func roundText(s game.Status) string {
	switch s {
	case game.StatusPlayerWins:
		return "YOU WIN THIS ROUND!"
	case game.StatusComputerWins:
		return "CPU WINS THIS ROUND!"
	case game.StatusWar:
		return "WAR!"
	default:
		return warText(s)
	}
}

func warText(s game.Status) string {
	switch s {
	case game.StatusPlayerWins:
		return "YOU WON THE WAR!"
	case game.StatusComputerWins:
		return "CPU WON THE WAR!"
	case game.StatusWar:
		return "WAR!"
	case game.StatusGameOverPlayerWins:
		return "CPU CANNOT FIGHT THE WAR!"
	case game.StatusGameOverComputerWins:
		return "NOT ENOUGH CARDS!"
	case game.StatusStandoff:
		return textStandoff
	default:
		return s.String()
	}
}

func gameOverText(winner game.Side) string {
	if winner == game.Player {
		return textVictory
	}
	return textDefeat
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("WAR"))
	b.WriteString("\n\n")

	middle := "   "
	if m.warVisible {
		middle = WarBannerStyle.Render("WAR!")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		m.renderSeat(game.Player), "  ", middle, "  ", m.renderSeat(game.Computer)))
	b.WriteString("\n\n")
	b.WriteString(StatusStyle.Render(m.status))
	b.WriteString("\n")

	if m.width > 0 && m.height > 0 {
		logStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262"))
		b.WriteString(logStyle.Render(m.logViewport.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderSeat renders one side: name, card, asset key and card count.
func (m *TUIModel) renderSeat(s game.Side) string {
	asset := deck.BackAssetKey
	face := CardBackStyle.Render("▒▒▒")
	if m.faceUp[s] {
		c := m.faces[s]
		asset = c.AssetKey()
		face = renderCard(c)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		ScoreStyle.Render(m.names[s]),
		CardFrameStyle.Render(face),
		InfoStyle.Render(asset),
		ScoreStyle.Render(fmt.Sprintf("Deck: %d", m.scores[s])),
	)
}

// renderCard formats a card with its suit color
func renderCard(c deck.Card) string {
	if c.Color() == deck.Red {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func (m *TUIModel) resize() {
	w := m.width - 2
	h := m.height - tableHeight - 4
	if w < 1 {
		w = 1
	}
	if h < minViewportHeight {
		h = minViewportHeight
	}
	m.logViewport.Width = w
	m.logViewport.Height = h
	m.help.Width = m.width

	if !m.initialized {
		m.logViewport.GotoBottom()
		m.initialized = true
	}
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Status returns the current status line.
func (m *TUIModel) Status() string {
	return m.status
}

// Busy reports whether a turn's playback is still running.
func (m *TUIModel) Busy() bool {
	return m.busy
}

// GameOver reports whether the displayed game has ended.
func (m *TUIModel) GameOver() bool {
	return m.gameOver
}

// Scores returns the displayed card counts.
func (m *TUIModel) Scores() (player, computer int) {
	return m.scores[game.Player], m.scores[game.Computer]
}

// Assets returns the asset keys currently shown for each side.
func (m *TUIModel) Assets() (player, computer string) {
	key := func(s game.Side) string {
		if !m.faceUp[s] {
			return deck.BackAssetKey
		}
		return m.faces[s].AssetKey()
	}
	return key(game.Player), key(game.Computer)
}

// WarVisible reports whether the war banner is shown.
func (m *TUIModel) WarVisible() bool {
	return m.warVisible
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}
