package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkOutbreak BookmarkType = "outbreak"
	BookmarkCull     BookmarkType = "cull"
	BookmarkSiege    BookmarkType = "siege"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int          `csv:"tick"`
	Level       int          `csv:"level"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"level", b.Level,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable windows against a rolling history.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentPeak int // peak organism count since the last cull or level change
	level      int
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	if stats.Level != bd.level {
		bd.level = stats.Level
		bd.recentPeak = 0
	}

	var bookmarks []Bookmark

	if b := bd.checkOutbreak(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkCull(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkSiege(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	if stats.Organisms > bd.recentPeak {
		bd.recentPeak = stats.Organisms
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// rollingMean averages f over the history; ok is false with under 3 windows.
func (bd *BookmarkDetector) rollingMean(f func(WindowStats) int) (mean float64, ok bool) {
	history := bd.getHistory()
	if len(history) < 3 {
		return 0, false
	}
	total := 0
	for _, h := range history {
		total += f(h)
	}
	return float64(total) / float64(len(history)), true
}

func (bd *BookmarkDetector) checkOutbreak(stats WindowStats) *Bookmark {
	avg, ok := bd.rollingMean(WindowStats.Births)
	if !ok || avg == 0 {
		return nil
	}

	births := stats.Births()
	if float64(births) > avg*2 && births >= 5 {
		return &Bookmark{
			Type:        BookmarkOutbreak,
			Tick:        stats.WindowEndTick,
			Level:       stats.Level,
			Description: fmt.Sprintf("%d births is %.1fx average (%.1f)", births, float64(births)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkCull(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 {
		return nil
	}

	drop := 1 - float64(stats.Organisms)/float64(bd.recentPeak)
	if drop > 0.5 && bd.recentPeak-stats.Organisms >= 5 {
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Organisms

		return &Bookmark{
			Type:        BookmarkCull,
			Tick:        stats.WindowEndTick,
			Level:       stats.Level,
			Description: fmt.Sprintf("Organisms culled %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Organisms),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkSiege(stats WindowStats) *Bookmark {
	avg, ok := bd.rollingMean(func(s WindowStats) int { return s.DamageTaken })
	if !ok {
		return nil
	}

	if float64(stats.DamageTaken) > avg*2 && stats.DamageTaken >= 20 {
		return &Bookmark{
			Type:        BookmarkSiege,
			Tick:        stats.WindowEndTick,
			Level:       stats.Level,
			Description: fmt.Sprintf("Player took %d damage, average %.1f", stats.DamageTaken, avg),
		}
	}
	return nil
}
