package main

import (
	"flag"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Garsondee/mqix/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	finalPhase string
	coverage   float64
	lives      int

	claims          int
	discarded       int
	livesLost       int
	roamingContacts int

	firstClaimTick    int
	firstLifeLostTick int
	levelPassTick     int
	endGameTick       int

	phaseChanges int
	logEntries   int

	log string
}

// logWindow selects which event lines a run prints. A negative to means
// no upper bound.
type logWindow struct {
	enabled  bool
	from, to int
}

func (w logWindow) render(sl *game.SimLog) string {
	if !w.enabled {
		return ""
	}
	if w.from <= 0 && w.to < 0 {
		return sl.Format()
	}
	to := w.to
	if to < 0 {
		to = math.MaxInt
	}
	return game.FormatEntries(sl.FilterTickRange(w.from, to))
}

// scenarios maps a scenario name to the autopilot that plays it.
var scenarios = map[string]func(cfg game.Config) *game.Autopilot{
	"claim-rectangles": func(cfg game.Config) *game.Autopilot {
		return game.ClaimRectanglesAutopilot(cfg, 100, 150, 6)
	},
	"idle": func(game.Config) *game.Autopilot {
		return game.IdleAutopilot()
	},
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for n := range scenarios {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var freeze bool
	var lw logWindow

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "claim-rectangles", "scenario name")
	flag.BoolVar(&freeze, "freeze-timers", false, "stop timers while paused")
	flag.BoolVar(&lw.enabled, "log", false, "print each run's event log")
	flag.IntVar(&lw.from, "log-from", 0, "first tick of the printed event log")
	flag.IntVar(&lw.to, "log-to", -1, "last tick of the printed event log (-1 = end)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if _, ok := scenarios[scenario]; !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, strings.Join(scenarioNames(), ", "))
		return
	}

	fmt.Printf("=== Headless MQIX Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d freeze_timers=%t\n\n",
		scenario, runs, ticks, seedBase, seedStep, freeze)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(scenario, i+1, seed, ticks, freeze, lw)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runScenario(scenario string, runIndex int, seed int64, ticks int, freeze bool, lw logWindow) runStats {
	cfg := game.DefaultConfig()
	ts := game.NewTestSim(
		game.WithConfig(cfg),
		game.WithSessionOptions(game.WithSeed(seed), game.WithFreezeTimersOnPause(freeze)),
	)
	n := ts.RunAutopilot(scenarios[scenario](cfg), ticks)
	for ; n < ticks && ts.Err == nil; n++ {
		ts.Step(game.Input{})
	}

	entries := ts.SimLog.Entries()
	sm := ts.Session.Summary()
	return runStats{
		runIndex:          runIndex,
		seed:              seed,
		ticks:             n,
		finalPhase:        sm.Phase.String(),
		coverage:          sm.Coverage,
		lives:             sm.Lives,
		claims:            sm.Claims,
		discarded:         sm.Discarded,
		livesLost:         sm.LivesLost,
		roamingContacts:   sm.RoamingContacts,
		firstClaimTick:    firstTick(entries, "territory", "claimed", ""),
		firstLifeLostTick: firstTick(entries, "life", "lost", ""),
		levelPassTick:     firstTick(entries, "coverage", "level_passed", ""),
		endGameTick:       firstTick(entries, "phase", "change", "→ end_game"),
		phaseChanges:      ts.SimLog.CountCategory("phase", "change"),
		logEntries:        ts.SimLog.Len(),
		log:               lw.render(ts.SimLog),
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome: phase=%s coverage=%.2f%% lives=%d ticks=%d\n",
		rs.finalPhase, rs.coverage, rs.lives, rs.ticks)
	fmt.Printf("phase_markers: first_claim=%d first_life_lost=%d level_pass=%d end_game=%d\n",
		rs.firstClaimTick, rs.firstLifeLostTick, rs.levelPassTick, rs.endGameTick)
	fmt.Printf("event_totals: claims=%d discarded=%d lives_lost=%d roaming_contacts=%d phase_changes=%d log_entries=%d\n",
		rs.claims, rs.discarded, rs.livesLost, rs.roamingContacts, rs.phaseChanges, rs.logEntries)
	if rs.log != "" {
		fmt.Print(rs.log)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalClaims := 0
	totalDiscarded := 0
	totalLivesLost := 0
	totalContacts := 0
	coverageSum := 0.0
	passed := 0
	gameOvers := 0

	claimTicks := make([]int, 0, len(all))
	lifeTicks := make([]int, 0, len(all))
	passTicks := make([]int, 0, len(all))
	endTicks := make([]int, 0, len(all))
	phases := map[string]int{}

	for _, rs := range all {
		totalClaims += rs.claims
		totalDiscarded += rs.discarded
		totalLivesLost += rs.livesLost
		totalContacts += rs.roamingContacts
		coverageSum += rs.coverage
		phases[rs.finalPhase]++
		if rs.firstClaimTick >= 0 {
			claimTicks = append(claimTicks, rs.firstClaimTick)
		}
		if rs.firstLifeLostTick >= 0 {
			lifeTicks = append(lifeTicks, rs.firstLifeLostTick)
		}
		if rs.levelPassTick >= 0 {
			passTicks = append(passTicks, rs.levelPassTick)
			passed++
		}
		if rs.endGameTick >= 0 {
			endTicks = append(endTicks, rs.endGameTick)
			gameOvers++
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d level_passed=%d game_over=%d avg_coverage=%.2f%%\n",
		n, passed, gameOvers, avgFloat(coverageSum, n))
	fmt.Printf("avg_events_per_run: claims=%.1f discarded=%.1f lives_lost=%.1f roaming_contacts=%.1f\n",
		avg(totalClaims, n), avg(totalDiscarded, n), avg(totalLivesLost, n), avg(totalContacts, n))
	fmt.Printf("phase_marker_avg_ticks: first_claim=%s first_life_lost=%s level_pass=%s end_game=%s\n",
		avgTickString(claimTicks), avgTickString(lifeTicks), avgTickString(passTicks), avgTickString(endTicks))
	fmt.Printf("final_phases: %s\n", formatCounts(phases))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFloat(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sum / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

// formatCounts renders counts as sorted key=value pairs.
func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[k]))
	}
	return strings.Join(parts, " ")
}
