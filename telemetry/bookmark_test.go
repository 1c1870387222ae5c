package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_Outbreak(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: i * 600, Level: 1, WandererBirths: 2})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Level: 1, WandererBirths: 4, SeekerBirths: 2})
	if !hasBookmark(bookmarks, BookmarkOutbreak) {
		t.Error("expected outbreak bookmark")
	}
}

func TestBookmarkDetector_NeedsHistory(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{Level: 1, WandererBirths: 1, DamageTaken: 1})
	bookmarks := bd.Check(WindowStats{Level: 1, WandererBirths: 50, DamageTaken: 100})
	if hasBookmark(bookmarks, BookmarkOutbreak) || hasBookmark(bookmarks, BookmarkSiege) {
		t.Errorf("rolling bookmarks fired with two windows of history: %v", bookmarks)
	}
}

func TestBookmarkDetector_Cull(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndTick: i * 600, Level: 2, Organisms: 20})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1800, Level: 2, Organisms: 4})
	if !hasBookmark(bookmarks, BookmarkCull) {
		t.Fatal("expected cull bookmark")
	}

	// Peak resets, so a repeat at the same count does not fire again
	bookmarks = bd.Check(WindowStats{WindowEndTick: 2400, Level: 2, Organisms: 4})
	if hasBookmark(bookmarks, BookmarkCull) {
		t.Error("cull fired twice without a new peak")
	}
}

func TestBookmarkDetector_LevelChangeResetsPeak(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{Level: 1, Organisms: 30})
	bookmarks := bd.Check(WindowStats{Level: 2, Organisms: 1})
	if hasBookmark(bookmarks, BookmarkCull) {
		t.Error("cull fired across a level change")
	}
}

func TestBookmarkDetector_Siege(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 4; i++ {
		bd.Check(WindowStats{WindowEndTick: i * 600, Level: 1, DamageTaken: 5})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 2400, Level: 1, DamageTaken: 40})
	if !hasBookmark(bookmarks, BookmarkSiege) {
		t.Error("expected siege bookmark")
	}
}
