package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/view"
)

// Model is the Bubble Tea model for a blackjack session. It owns the latest
// round value and replaces it on every transition.
type Model struct {
	round   blackjack.Round
	roundNo int
	rng     *rand.Rand
	logger  *log.Logger

	// Session tally across finished rounds
	session statistics.Statistics

	keys keyMap
	help help.Model

	width    int
	quitting bool
}

// New creates a model and deals the first round from rng
func New(rng *rand.Rand, logger *log.Logger) *Model {
	return NewWithRound(blackjack.NewRound(rng), rng, logger)
}

// NewWithRound creates a model starting from an existing round. Later rounds
// are dealt from rng.
func NewWithRound(r blackjack.Round, rng *rand.Rand, logger *log.Logger) *Model {
	m := &Model{
		rng:    rng,
		logger: logger.WithPrefix("tui"),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.start(r)
	return m
}

// Round returns the current round
func (m *Model) Round() blackjack.Round {
	return m.round
}

// Session returns the tally of finished rounds
func (m *Model) Session() statistics.Statistics {
	return m.session
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.logger.Info("Quitting", "rounds", m.roundNo)
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hit):
			m.apply("hit", blackjack.Hit)
		case key.Matches(msg, m.keys.Hold):
			m.apply("hold", blackjack.Hold)
		case key.Matches(msg, m.keys.NewRound):
			m.start(blackjack.NewRound(m.rng))
		}
	}
	return m, nil
}

func (m *Model) start(r blackjack.Round) {
	m.round = r
	m.roundNo++
	m.logger.Info("New round",
		"round", m.roundNo,
		"player", r.Player.String(),
		"upcard", r.Dealer[0].String(),
	)
	m.syncKeys()
}

func (m *Model) apply(action string, transition func(blackjack.Round) blackjack.Round) {
	wasOver := m.round.Over
	m.round = transition(m.round)
	m.logger.Debug("Player action",
		"action", action,
		"player", m.round.Player.String(),
		"value", m.round.Player.BestValue(),
	)

	if m.round.Over && !wasOver {
		m.session.Add(statistics.NewRoundResult(m.round))
		m.logger.Info("Round over",
			"round", m.roundNo,
			"winner", m.round.Winner,
			"player", m.round.Player.BestValue(),
			"dealer", m.round.Dealer.BestValue(),
		)
	}
	m.syncKeys()
}

// syncKeys enables only the bindings the view offers. Disabled bindings
// neither match nor show in the help line.
func (m *Model) syncKeys() {
	c := view.AvailableControls(m.round)
	m.keys.Hit.SetEnabled(c.ShowHit && c.HitEnabled)
	m.keys.Hold.SetEnabled(c.ShowHold)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	t := view.Render(m.round)
	var b strings.Builder

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("♠ ♥ Blackjack ♦ ♣  round %d", m.roundNo)))
	b.WriteString("\n\n")

	dealer := renderHand("Dealer", m.round.Dealer, t.Revealed, t.DealerPoints, t.DealerBust)
	player := renderHand("Player", m.round.Player, true, t.PlayerPoints, t.PlayerBust)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, player, " ", dealer))
	b.WriteString("\n\n")

	if line := renderResult(t.Result); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	if t.Controls.ShowHit && !t.Controls.HitEnabled {
		b.WriteString(InfoStyle.Render("21! Hold to let the dealer play."))
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render(fmt.Sprintf("Session: %d won, %d lost, %d tied",
		m.session.PlayerWins, m.session.DealerWins, m.session.Ties)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func renderHand(label string, h blackjack.Hand, reveal bool, points string, bust bool) string {
	shown, hidden := view.VisibleCards(h, reveal)

	cards := make([]string, 0, len(shown)+1)
	for _, c := range shown {
		cards = append(cards, renderCard(c))
	}
	if hidden {
		cards = append(cards, HiddenCardStyle.Render(view.HiddenCard))
	}

	pointsLine := PointsStyle.Render("Points: " + points)
	if bust {
		pointsLine += " " + BustStyle.Render("(BUST)")
	}

	return HandBoxStyle.Render(strings.Join([]string{
		LabelStyle.Render(label),
		strings.Join(cards, " "),
		pointsLine,
	}, "\n"))
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func renderResult(r view.Result) string {
	switch r.Outcome {
	case view.Win:
		return WinStyle.Render(r.Text)
	case view.Lose:
		return LoseStyle.Render(r.Text)
	case view.Push:
		return TieStyle.Render(r.Text)
	default:
		return ""
	}
}
