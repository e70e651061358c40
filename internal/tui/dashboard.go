package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dojang-app/dojang/internal/achievement"
	"github.com/dojang-app/dojang/internal/bus"
	"github.com/dojang-app/dojang/internal/catalog"
	"github.com/dojang-app/dojang/internal/gamify"
	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/notify"
	"github.com/dojang-app/dojang/internal/points"
	"github.com/dojang-app/dojang/internal/progress"
	"github.com/dojang-app/dojang/internal/stats"
	"github.com/dojang-app/dojang/internal/store"
)

const (
	tabOverview = iota
	tabNotifications
)

// reminderMsg delivers one staggered dashboard notification.
type reminderMsg struct {
	payload notify.Payload
}

// Model implements the Bubble Tea dashboard UI.
type Model struct {
	store   *store.Store
	ledger  *progress.Ledger
	points  *points.Ledger
	center  *notify.Center
	engine  *gamify.Engine
	bus     *bus.Bus
	catalog *catalog.Catalog

	reminderDelay time.Duration

	snapshot model.StatsSnapshot
	recent   []achievement.Unlocked
	errMsg   string

	tabs      []string
	activeTab int
	noteView  viewport.Model
	noteIndex int

	width  int
	height int
	closed bool
}

// NewModel constructs the dashboard model.
func NewModel(st *store.Store, ledger *progress.Ledger, pts *points.Ledger, center *notify.Center, engine *gamify.Engine, b *bus.Bus, cat *catalog.Catalog, reminderDelay time.Duration) *Model {
	if reminderDelay <= 0 {
		reminderDelay = 1500 * time.Millisecond
	}
	m := &Model{
		store:         st,
		ledger:        ledger,
		points:        pts,
		center:        center,
		engine:        engine,
		bus:           b,
		catalog:       cat,
		reminderDelay: reminderDelay,
		tabs:          []string{"Overview", "Notifications"},
		noteView:      viewport.New(0, 0),
	}
	m.refresh()
	return m
}

// Init implements tea.Model. Opening the dashboard is itself an event:
// it triggers a reactive tick and schedules the load reminders with
// cosmetic staggered delays.
func (m *Model) Init() tea.Cmd {
	ctx := context.Background()
	m.bus.Publish(bus.Event{Topic: bus.TopicDashboardOpened})
	m.refresh()

	payloads, err := m.engine.DashboardEffects(ctx)
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(payloads))
	for i, p := range payloads {
		payload := p
		delay := m.reminderDelay * time.Duration(i+1)
		cmds = append(cmds, tea.Tick(delay, func(time.Time) tea.Msg {
			return reminderMsg{payload: payload}
		}))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.renderNotifications()
		return m, nil
	case reminderMsg:
		// A torn down model ignores late ticks.
		if m.closed {
			return m, nil
		}
		m.center.Add(context.Background(), msg.payload)
		m.renderNotifications()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch {
	case msg.Type == tea.KeyCtrlC || msg.String() == "q":
		m.closed = true
		return m, tea.Quit
	case msg.Type == tea.KeyTab || msg.String() == "n":
		m.activeTab = (m.activeTab + 1) % len(m.tabs)
		m.renderNotifications()
		return m, nil
	}
	if m.activeTab != tabNotifications {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		if m.noteIndex > 0 {
			m.noteIndex--
		}
		m.renderNotifications()
	case "down", "j":
		if m.noteIndex < len(m.center.List())-1 {
			m.noteIndex++
		}
		m.renderNotifications()
	case "r":
		if n, ok := m.selectedNotification(); ok {
			m.center.MarkRead(ctx, n.ID)
			m.renderNotifications()
		}
	case "a":
		m.center.MarkAllRead(ctx)
		m.renderNotifications()
	case "d":
		if n, ok := m.selectedNotification(); ok {
			m.center.Clear(ctx, n.ID)
			if m.noteIndex >= len(m.center.List()) && m.noteIndex > 0 {
				m.noteIndex--
			}
			m.renderNotifications()
		}
	case "c":
		m.center.ClearAll(ctx)
		m.noteIndex = 0
		m.renderNotifications()
	case "enter":
		if n, ok := m.selectedNotification(); ok && n.Action != nil {
			n.Action.Run()
		}
	}
	return m, nil
}

func (m *Model) selectedNotification() (notify.Notification, bool) {
	list := m.center.List()
	if m.noteIndex < 0 || m.noteIndex >= len(list) {
		return notify.Notification{}, false
	}
	return list[m.noteIndex], true
}

func (m *Model) refresh() {
	ctx := context.Background()
	snap, err := stats.Collect(ctx, m.store, m.ledger, len(m.catalog.Exams))
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.snapshot = snap
	var unlocked []achievement.Unlocked
	if _, err := m.store.GetJSON(ctx, store.KeyUnlockedAchievements, &unlocked); err != nil {
		m.errMsg = err.Error()
		return
	}
	sort.Slice(unlocked, func(i, j int) bool {
		return unlocked[i].UnlockedAt.After(unlocked[j].UnlockedAt)
	})
	if len(unlocked) > 3 {
		unlocked = unlocked[:3]
	}
	m.recent = unlocked
}

func (m *Model) resizeViewport() {
	w := m.width - 4
	h := m.height - 8
	if w < 20 {
		w = 20
	}
	if h < 4 {
		h = 4
	}
	m.noteView.Width = w
	m.noteView.Height = h
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	belt := m.ledger.CurrentBelt()
	if exam, ok := m.catalog.ExamByID(belt); ok {
		belt = exam.Rank
	}
	b.WriteString(titleStyle.Render("dojang") + "  " +
		headerStyle.Render(fmt.Sprintf("Current belt: %s", belt)) + "\n\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg) + "\n")
	}

	switch m.activeTab {
	case tabOverview:
		b.WriteString(m.viewOverview())
	case tabNotifications:
		b.WriteString(m.viewNotifications())
	}

	b.WriteString("\n" + footerStyle.Render(m.footer()))
	return b.String()
}

func (m *Model) viewOverview() string {
	m.refresh()
	lp := m.points.LevelProgress()
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Progress", fmt.Sprintf("%d%%", m.ledger.ProgressPercentage())),
		m.card("Completed", fmt.Sprintf("%d/%d", m.snapshot.CompletedTuls, m.snapshot.TotalTuls)),
		m.card("In progress", fmt.Sprintf("%d", m.ledger.InProgressCount())),
		m.card("Achievements", fmt.Sprintf("%d/%d", m.snapshot.UnlockedAchievements, len(achievement.Catalog()))),
	)

	var b strings.Builder
	b.WriteString(cards + "\n\n")

	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	b.WriteString(fmt.Sprintf(" %s %s %s\n",
		accentStyle.Render(fmt.Sprintf("Level %d", lp.Level)),
		stats.Bar(lp.ProgressPct, barWidth),
		mutedStyle.Render(fmt.Sprintf("%d pts, %d to next", lp.TotalPoints, lp.ToNextLevel))))
	b.WriteString(fmt.Sprintf(" %s  streak %d (best %d)  practice %s\n\n",
		mutedStyle.Render("Training:"),
		m.snapshot.CurrentStreak, m.snapshot.LongestStreak,
		stats.FormatMinutes(m.snapshot.PracticeMinutes)))

	b.WriteString(accentStyle.Render(" Recent achievements") + "\n")
	if len(m.recent) == 0 {
		b.WriteString(mutedStyle.Render("  No achievements unlocked yet. Keep practicing!") + "\n")
	}
	for _, u := range m.recent {
		rule, ok := achievement.ByID(u.AchievementID)
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", rule.Icon,
			unreadStyle.Render(rule.Title),
			mutedStyle.Render(u.UnlockedAt.Format("2006-01-02"))))
	}
	return b.String()
}

func (m *Model) viewNotifications() string {
	return m.noteView.View()
}

func (m *Model) renderNotifications() {
	m.resizeViewport()
	list := m.center.List()
	if len(list) == 0 {
		m.noteView.SetContent(mutedStyle.Render("No notifications."))
		return
	}
	width := m.noteView.Width - 4
	if width < 16 {
		width = 16
	}
	var b strings.Builder
	for i, n := range list {
		cursor := "  "
		if i == m.noteIndex {
			cursor = accentStyle.Render("> ")
		}
		title := n.Title
		if !n.Read {
			title = unreadStyle.Render(title)
		} else {
			title = mutedStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, title,
			mutedStyle.Render(n.CreatedAt.Format("Jan 2 15:04"))))
		for _, line := range wrapText(n.Message, width) {
			b.WriteString("    " + line + "\n")
		}
		if n.Action != nil {
			b.WriteString("    " + accentStyle.Render("[enter] "+n.Action.Label) + "\n")
		}
	}
	m.noteView.SetContent(b.String())
}

func (m *Model) card(title, value string) string {
	content := cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value)
	return cardStyle.Render(content)
}

func (m *Model) footer() string {
	unread := m.center.UnreadCount()
	base := fmt.Sprintf("tab/n: %s | q: quit", m.nextTabName())
	if m.activeTab == tabNotifications {
		base = "r: read | a: read all | d: delete | c: clear all | " + base
	}
	if unread > 0 {
		base = fmt.Sprintf("%d unread | %s", unread, base)
	}
	return " " + base
}

func (m *Model) nextTabName() string {
	return m.tabs[(m.activeTab+1)%len(m.tabs)]
}
