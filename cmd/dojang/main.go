// Package main provides the CLI entrypoint for dojang.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/achievement"
	"github.com/dojang-app/dojang/internal/bus"
	"github.com/dojang-app/dojang/internal/catalog"
	"github.com/dojang-app/dojang/internal/config"
	"github.com/dojang-app/dojang/internal/gamify"
	"github.com/dojang-app/dojang/internal/logging"
	"github.com/dojang-app/dojang/internal/model"
	"github.com/dojang-app/dojang/internal/notify"
	"github.com/dojang-app/dojang/internal/points"
	"github.com/dojang-app/dojang/internal/practice"
	"github.com/dojang-app/dojang/internal/progress"
	"github.com/dojang-app/dojang/internal/quizui"
	"github.com/dojang-app/dojang/internal/stats"
	"github.com/dojang-app/dojang/internal/store"
	"github.com/dojang-app/dojang/internal/tui"
)

const (
	defaultQuizQuestions   = 10
	defaultQuizOptions     = 4
	defaultReminderDelayMs = 1500
	defaultNotifyMax       = 0
)

var (
	quizCategory  string
	quizQuestions int
	quizOptions   int

	theoryCategory string

	practiceMinutes int
	practiceNote    string

	notifyReadAll  bool
	notifyClearAll bool

	profileName  string
	profileEmail string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dojang",
		Short:         "Terminal Taekwondo progress tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.AddCommand(newTulCmd())
	rootCmd.AddCommand(newBeltCmd())
	rootCmd.AddCommand(newTheoryCmd())
	rootCmd.AddCommand(newQuizCmd())
	rootCmd.AddCommand(newAchievementsCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newPracticeCmd())
	rootCmd.AddCommand(newExamCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// app bundles the service objects constructed once per invocation and
// handed to commands by reference.
type app struct {
	cfg     config.FileConfig
	logger  *zap.Logger
	store   *store.Store
	catalog *catalog.Catalog
	ledger  *progress.Ledger
	points  *points.Ledger
	center  *notify.Center
	bus     *bus.Bus
	engine  *gamify.Engine
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.Open(config.DefaultLogPath())
	if err != nil {
		logErrf("failed to open log file: %v\n", err)
		logger = logging.Nop()
	}
	st, err := store.Open(config.DefaultDBPath(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	cat, err := catalog.Load()
	if err != nil {
		closeStore(st)
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if err := stats.EnsureJoinedDate(ctx, st); err != nil {
		closeStore(st)
		return nil, fmt.Errorf("failed to record joined date: %w", err)
	}
	ledger, err := progress.Load(ctx, st)
	if err != nil {
		closeStore(st)
		return nil, err
	}
	pts, err := points.Load(ctx, st, logger)
	if err != nil {
		closeStore(st)
		return nil, err
	}
	notifyMax := defaultNotifyMax
	applyIntValue(&notifyMax, cfg.Notify.Max)
	center, err := notify.Load(ctx, st, notifyMax, logger)
	if err != nil {
		closeStore(st)
		return nil, err
	}
	b := bus.New(logger)
	engine := gamify.New(st, ledger, pts, center, b, len(cat.Exams), logger)

	return &app{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		catalog: cat,
		ledger:  ledger,
		points:  pts,
		center:  center,
		bus:     b,
		engine:  engine,
	}, nil
}

func (a *app) close() {
	closeStore(a.store)
	// Best-effort log flush; stderr may not be syncable.
	_ = a.logger.Sync()
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
}

func runDashboardCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.UI.Accent != nil {
		tui.SetAccent(*a.cfg.UI.Accent)
	}
	delay := defaultReminderDelayMs
	applyIntValue(&delay, a.cfg.Notify.ReminderDelayMs)
	m := tui.NewModel(a.store, a.ledger, a.points, a.center, a.engine, a.bus, a.catalog,
		time.Duration(delay)*time.Millisecond)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newTulCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tul",
		Short: "Manage tul progress",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List tuls and their status",
		Args:  cobra.NoArgs,
		RunE:  runTulListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one tul",
		Args:  cobra.ExactArgs(1),
		RunE:  runTulShowCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <id> <not_started|in_progress|completed>",
		Short: "Set the status of a tul",
		Args:  cobra.ExactArgs(2),
		RunE:  runTulSetCmd,
	})
	return cmd
}

func runTulListCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	for _, t := range a.catalog.Tuls {
		marker := statusMarker(a.ledger.TulStatus(t.ID))
		if _, err := fmt.Fprintf(out, "%s %-12s %-12s %3d moves  (%s)\n",
			marker, t.ID, t.Name, t.Moves, t.Belt); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	_, err = fmt.Fprintf(out, "\n%d/%d completed, %d in progress, %d%% overall\n",
		a.ledger.CompletedCount(), progress.TotalTuls,
		a.ledger.InProgressCount(), a.ledger.ProgressPercentage())
	return err
}

func runTulShowCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	t, ok := a.catalog.TulByID(args[0])
	if !ok {
		return fmt.Errorf("unknown tul %q (see: dojang tul list)", args[0])
	}
	out := cmd.OutOrStdout()
	_, err = fmt.Fprintf(out, "%s (%s)\n%d movements, belt %s\nStatus: %s\n\n%s\n",
		t.Name, t.Korean, t.Moves, t.Belt, a.ledger.TulStatus(t.ID), strings.TrimSpace(t.Meaning))
	return err
}

func runTulSetCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	id := args[0]
	status := model.TulStatus(args[1])
	if !status.Valid() {
		return fmt.Errorf("invalid status %q (want not_started, in_progress, or completed)", args[1])
	}
	if _, ok := a.catalog.TulByID(id); !ok {
		return fmt.Errorf("unknown tul %q (see: dojang tul list)", id)
	}
	before := a.center.UnreadCount()
	if err := a.ledger.SetTulStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to set tul status: %w", err)
	}
	a.bus.Publish(bus.Event{Topic: bus.TopicProgressChanged})

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s -> %s\n", id, status); err != nil {
		return err
	}
	return reportNewNotifications(out, a.center, before)
}

func newBeltCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "belt",
		Short: "Show or change the current belt",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the belt ladder",
		Args:  cobra.NoArgs,
		RunE:  runBeltListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set <id>",
		Short: "Set the current belt",
		Args:  cobra.ExactArgs(1),
		RunE:  runBeltSetCmd,
	})
	return cmd
}

func runBeltListCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	for _, e := range a.catalog.Exams {
		marker := "  "
		if e.ID == a.ledger.CurrentBelt() {
			marker = "* "
		}
		if _, err := fmt.Fprintf(out, "%s%-7s %-9s %s\n", marker, e.ID, e.Rank, e.Belt); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runBeltSetCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// The belt id is stored as given; the ladder is advisory.
	if _, ok := a.catalog.ExamByID(args[0]); !ok {
		logErrf("warning: %q is not in the belt ladder\n", args[0])
	}
	if err := a.ledger.SetBelt(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to set belt: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Current belt: %s\n", args[0])
	return err
}

func newTheoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theory",
		Short: "Study Korean vocabulary",
		Args:  cobra.NoArgs,
		RunE:  runTheoryCmd,
	}
	cmd.Flags().StringVar(&theoryCategory, "category", "", "vocabulary category filter")
	return cmd
}

func runTheoryCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if theoryCategory != "" && !contains(a.catalog.Categories(), theoryCategory) {
		return fmt.Errorf("unknown category %q (available: %s)",
			theoryCategory, strings.Join(a.catalog.Categories(), ", "))
	}
	items := a.catalog.VocabularyByCategory(theoryCategory)
	out := cmd.OutOrStdout()
	lastCategory := ""
	for _, v := range items {
		if v.Category != lastCategory {
			if _, err := fmt.Fprintf(out, "\n[%s]\n", v.Category); err != nil {
				return err
			}
			lastCategory = v.Category
		}
		if _, err := fmt.Fprintf(out, "  %-8s %-24s %s\n", v.Korean, v.Romanized, v.Meaning); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	before := a.center.UnreadCount()
	if err := a.engine.RecordTheorySession(ctx); err != nil {
		return fmt.Errorf("failed to record study session: %w", err)
	}
	if _, err := fmt.Fprintln(out, "\nStudy session recorded."); err != nil {
		return err
	}
	return reportNewNotifications(out, a.center, before)
}

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take a vocabulary quiz",
		Args:  cobra.NoArgs,
		RunE:  runQuizCmd,
	}
	cmd.Flags().StringVar(&quizCategory, "category", "", "vocabulary category filter")
	cmd.Flags().IntVar(&quizQuestions, "questions", defaultQuizQuestions, "number of questions")
	cmd.Flags().IntVar(&quizOptions, "options", defaultQuizOptions, "answer options per question")
	return cmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	applyIntConfig(cmd, "questions", &quizQuestions, a.cfg.Quiz.Questions)
	applyIntConfig(cmd, "options", &quizOptions, a.cfg.Quiz.Options)
	if quizQuestions <= 0 {
		return fmt.Errorf("--questions must be > 0")
	}
	if quizOptions < 2 {
		return fmt.Errorf("--options must be >= 2")
	}
	if quizCategory != "" && !contains(a.catalog.Categories(), quizCategory) {
		return fmt.Errorf("unknown category %q (available: %s)",
			quizCategory, strings.Join(a.catalog.Categories(), ", "))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	items := a.catalog.VocabularyByCategory(quizCategory)
	questions := quizui.Generate(items, quizQuestions, quizOptions, rng)
	if len(questions) == 0 {
		return fmt.Errorf("not enough vocabulary for a quiz")
	}

	m := quizui.NewModel(questions)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run quiz: %w", err)
	}
	if !m.Finished() {
		return nil
	}

	out := cmd.OutOrStdout()
	score, total := m.Score()
	if _, err := fmt.Fprintf(out, "Score: %d/%d\n", score, total); err != nil {
		return err
	}
	before := a.center.UnreadCount()
	if err := a.engine.RecordTheorySession(ctx); err != nil {
		return fmt.Errorf("failed to record study session: %w", err)
	}
	return reportNewNotifications(out, a.center, before)
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List unlocked and locked achievements",
		Args:  cobra.NoArgs,
		RunE:  runAchievementsCmd,
	}
}

func runAchievementsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var unlocked []achievement.Unlocked
	if _, err := a.store.GetJSON(ctx, store.KeyUnlockedAchievements, &unlocked); err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, u := range unlocked {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%d/%d unlocked\n\n", len(unlocked), len(achievement.Catalog())); err != nil {
		return err
	}
	for _, rule := range achievement.Catalog() {
		when, ok := unlockedAt[rule.ID]
		line := fmt.Sprintf("🔒 %-24s [%s] %s", rule.Title, rule.Rarity.Label(), rule.Description)
		if ok {
			line = fmt.Sprintf("%s %-24s [%s] unlocked %s — %s",
				rule.Icon, rule.Title, rule.Rarity.Label(),
				when.Format("2006-01-02"), rule.Reward.Title)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE:  runNotificationsCmd,
	}
	cmd.Flags().BoolVar(&notifyReadAll, "read-all", false, "mark all notifications as read")
	cmd.Flags().BoolVar(&notifyClearAll, "clear-all", false, "remove all notifications")
	return cmd
}

func runNotificationsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	if notifyClearAll {
		a.center.ClearAll(ctx)
		_, err := fmt.Fprintln(out, "Cleared all notifications.")
		return err
	}
	if notifyReadAll {
		a.center.MarkAllRead(ctx)
	}
	list := a.center.List()
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "No notifications.")
		return err
	}
	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %s  %s\n  %s\n",
			marker, n.CreatedAt.Format("Jan 2 15:04"), n.Title, n.Message); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	_, err = fmt.Fprintf(out, "\n%d unread\n", a.center.UnreadCount())
	return err
}

func newPracticeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Log a practice session, or list recent ones",
		Args:  cobra.NoArgs,
		RunE:  runPracticeCmd,
	}
	cmd.Flags().IntVar(&practiceMinutes, "minutes", 0, "practice duration in minutes")
	cmd.Flags().StringVar(&practiceNote, "note", "", "optional note")
	return cmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	if !cmd.Flags().Changed("minutes") {
		sessions, err := a.store.ListPracticeSessions(ctx, 10)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			_, err := fmt.Fprintln(out, "No practice sessions logged. Use --minutes to log one.")
			return err
		}
		for _, s := range sessions {
			line := fmt.Sprintf("%s  %4dm", s.Date.Format("2006-01-02 15:04"), s.Minutes)
			if s.Note != "" {
				line += "  " + s.Note
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		return nil
	}
	if practiceMinutes <= 0 {
		return fmt.Errorf("--minutes must be > 0")
	}
	before := a.center.UnreadCount()
	if _, err := practice.Log(ctx, a.store, practiceMinutes, practiceNote, time.Now()); err != nil {
		return err
	}
	a.bus.Publish(bus.Event{Topic: bus.TopicPracticeLogged})

	snap, err := stats.Collect(ctx, a.store, a.ledger, len(a.catalog.Exams))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Logged %dm. Streak: %d days (best %d), total %s.\n",
		practiceMinutes, snap.CurrentStreak, snap.LongestStreak,
		stats.FormatMinutes(snap.PracticeMinutes)); err != nil {
		return err
	}
	return reportNewNotifications(out, a.center, before)
}

func newExamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Track belt exams",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the exam ladder",
		Args:  cobra.NoArgs,
		RunE:  runBeltListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pass",
		Short: "Record a passed exam",
		Args:  cobra.NoArgs,
		RunE:  runExamPassCmd,
	})
	return cmd
}

func runExamPassCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	before := a.center.UnreadCount()
	if err := a.engine.RecordExamPassed(ctx); err != nil {
		return fmt.Errorf("failed to record exam: %w", err)
	}
	n, err := a.store.GetInt(ctx, store.KeyCompletedExams, 0)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "Exams passed: %d\n", n); err != nil {
		return err
	}
	return reportNewNotifications(out, a.center, before)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	snap, err := stats.Collect(ctx, a.store, a.ledger, len(a.catalog.Exams))
	if err != nil {
		return err
	}
	lp := a.points.LevelProgress()

	barWidth := stats.TerminalWidth() - 30
	if barWidth < 10 {
		barWidth = 10
	}
	out := cmd.OutOrStdout()
	belt := a.ledger.CurrentBelt()
	if exam, ok := a.catalog.ExamByID(belt); ok {
		belt = fmt.Sprintf("%s (%s)", exam.Rank, exam.Belt)
	}
	lines := []string{
		fmt.Sprintf("Belt:          %s", belt),
		fmt.Sprintf("Tuls:          %d/%d completed (%d%%), %d in progress",
			snap.CompletedTuls, snap.TotalTuls, a.ledger.ProgressPercentage(), a.ledger.InProgressCount()),
		fmt.Sprintf("Level %d:       %s %d pts (%d to next)",
			lp.Level, stats.Bar(lp.ProgressPct, barWidth), lp.TotalPoints, lp.ToNextLevel),
		fmt.Sprintf("Achievements:  %d/%d", snap.UnlockedAchievements, len(achievement.Catalog())),
		fmt.Sprintf("Exams passed:  %d/%d", snap.CompletedExams, snap.TotalExams),
		fmt.Sprintf("Theory:        %d sessions", snap.TheorySessions),
		fmt.Sprintf("Streak:        %d days (best %d)", snap.CurrentStreak, snap.LongestStreak),
		fmt.Sprintf("Practice:      %s", stats.FormatMinutes(snap.PracticeMinutes)),
	}
	if !snap.JoinedDate.IsZero() {
		lines = append(lines, fmt.Sprintf("Training since %s", snap.JoinedDate.Format("2006-01-02")))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the profile",
		Args:  cobra.NoArgs,
		RunE:  runProfileCmd,
	}
	cmd.Flags().StringVar(&profileName, "name", "", "display name")
	cmd.Flags().StringVar(&profileEmail, "email", "", "contact email")
	return cmd
}

func runProfileCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var profile model.Profile
	if _, err := a.store.GetJSON(ctx, store.KeyProfile, &profile); err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	changed := false
	if cmd.Flags().Changed("name") {
		profile.Name = profileName
		changed = true
	}
	if cmd.Flags().Changed("email") {
		profile.Email = profileEmail
		changed = true
	}
	if changed {
		if err := a.store.SetJSON(ctx, store.KeyProfile, profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	name := profile.Name
	if name == "" {
		name = "(not set)"
	}
	email := profile.Email
	if email == "" {
		email = "(not set)"
	}
	_, err = fmt.Fprintf(out, "Name:  %s\nEmail: %s\n", name, email)
	return err
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dojang configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# questions = %d        # Questions per quiz
# options = %d           # Answer options per question

[notify]
# max = %d               # Max kept notifications (0 = unlimited)
# reminder-delay-ms = %d # Delay between dashboard reminders

[ui]
# accent = "#C89A3A"    # Accent color
`,
		defaultQuizQuestions,
		defaultQuizOptions,
		defaultNotifyMax,
		defaultReminderDelayMs,
	)
}

// reportNewNotifications prints notifications produced during the
// current command, newest last, so CLI users see what a dashboard
// pop-up would have shown.
func reportNewNotifications(out io.Writer, center *notify.Center, unreadBefore int) error {
	produced := center.UnreadCount() - unreadBefore
	list := center.List()
	if produced <= 0 || produced > len(list) {
		return nil
	}
	fresh := append([]notify.Notification(nil), list[:produced]...)
	sort.Slice(fresh, func(i, j int) bool { return fresh[i].CreatedAt.Before(fresh[j].CreatedAt) })
	for _, n := range fresh {
		if _, err := fmt.Fprintf(out, "%s %s: %s\n", n.Icon, n.Title, n.Message); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func statusMarker(s model.TulStatus) string {
	switch s {
	case model.StatusCompleted:
		return "[x]"
	case model.StatusInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntValue(target, value *int) {
	if value == nil {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
