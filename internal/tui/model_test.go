package tui

import (
	"io"
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestModel(cards string) *Model {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	r := blackjack.Deal(deck.Arrange(deck.MustParseCards(cards)...))
	return NewWithRound(r, randutil.New(1), logger)
}

func press(t *testing.T, m *Model, msg tea.KeyMsg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(msg)
	require.Same(t, m, next)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialView(t *testing.T) {
	m := newTestModel("10s 10h 6d 9c 5s")
	out := m.View()

	assert.Contains(t, out, "round 1")
	assert.Contains(t, out, "10♠ 6♦")
	assert.Contains(t, out, "Points: 16")
	assert.Contains(t, out, "10♥ [hidden]")
	assert.Contains(t, out, "Points: ?")
	assert.NotContains(t, out, "9♣", "hole card must stay hidden")
	assert.NotContains(t, out, "win")
	assert.Nil(t, m.Init())
}

func TestPlayToPlayerWin(t *testing.T) {
	m := newTestModel("10s 10h 6d 9c 5s")

	press(t, m, runes("h"))
	require.Len(t, m.Round().Player, 3)
	assert.Equal(t, 21, m.Round().Player.BestValue())
	assert.False(t, m.Round().Over)
	assert.Contains(t, m.View(), "21! Hold")

	// Hit is disabled at 21, the key does nothing.
	before := m.Round()
	press(t, m, runes("h"))
	assert.Equal(t, before, m.Round())

	press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	r := m.Round()
	require.True(t, r.Over)
	assert.Equal(t, blackjack.Player, r.Winner)

	out := m.View()
	assert.Contains(t, out, "You win!")
	assert.Contains(t, out, "10♥ 9♣")
	assert.Contains(t, out, "Points: 19")
	assert.Contains(t, out, "Session: 1 won, 0 lost, 0 tied")

	// Further holds are ignored and do not double count.
	press(t, m, runes("s"))
	assert.Equal(t, r, m.Round())
	assert.Equal(t, 1, m.Session().Rounds)
}

func TestBustShowsDealerWin(t *testing.T) {
	m := newTestModel("10s 10h 6d 6c Ks")

	press(t, m, runes("h"))
	r := m.Round()
	require.True(t, r.Over)
	assert.Equal(t, blackjack.Dealer, r.Winner)

	out := m.View()
	assert.Contains(t, out, "(BUST)")
	assert.Contains(t, out, "Dealer wins!")
	assert.Contains(t, out, "Points: 26")
	assert.Equal(t, 1, m.Session().DealerWins)
}

func TestNewRoundKey(t *testing.T) {
	m := newTestModel("10s 10h 6d 9c 5s")
	press(t, m, runes("s"))
	require.True(t, m.Round().Over)

	press(t, m, runes("n"))
	r := m.Round()
	assert.True(t, r.InProgress())
	assert.Equal(t, deck.Size, r.CardsInPlay())
	assert.Contains(t, m.View(), "round 2")
	assert.Equal(t, 1, m.Session().Rounds, "tally survives new rounds")
}

func TestQuit(t *testing.T) {
	m := newTestModel("10s 10h 6d 9c 5s")

	cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestWindowResize(t *testing.T) {
	m := newTestModel("10s 10h 6d 9c 5s")
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Same(t, m, next)
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 120, m.help.Width)
}
