package history

import (
	"fmt"
	"testing"
)

func TestInsert_AdjacentDuplicate(t *testing.T) {
	s := New(0)
	s.Insert("#ff0000")
	s.Insert("#ff0000")
	s.Insert("#ff0000")

	if s.Len() != 1 {
		t.Errorf("expected 1 entry after duplicate inserts, got %d", s.Len())
	}
}

func TestInsert_OlderDuplicateKept(t *testing.T) {
	s := New(0)
	s.Insert("#ff0000")
	s.Insert("#00ff00")
	s.Insert("#0000ff")
	s.Insert("#ff0000") // duplicates an older entry, not the newest

	if s.Len() != 4 {
		t.Errorf("expected 4 entries, got %d", s.Len())
	}
	if first, _ := s.At(0); first != "#ff0000" {
		t.Errorf("expected newest entry #ff0000, got %q", first)
	}
}

func TestInsert_NewestFirst(t *testing.T) {
	s := New(0)
	s.Insert("#111111")
	s.Insert("#222222")

	if first, _ := s.At(0); first != "#222222" {
		t.Errorf("expected #222222 at index 0, got %q", first)
	}
	if second, _ := s.At(1); second != "#111111" {
		t.Errorf("expected #111111 at index 1, got %q", second)
	}
}

func TestInsert_Truncation(t *testing.T) {
	s := New(0)
	for i := 0; i < 205; i++ {
		s.Insert(fmt.Sprintf("#%06x", i))
	}

	if s.Len() != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, s.Len())
	}
	// Newest 200 retained, oldest 5 dropped.
	if first, _ := s.At(0); first != "#0000cc" { // 204
		t.Errorf("expected newest #0000cc, got %q", first)
	}
	if last, _ := s.At(MaxEntries - 1); last != "#000005" {
		t.Errorf("expected oldest retained #000005, got %q", last)
	}
}

func TestNavigation(t *testing.T) {
	s := New(0)
	s.Insert("#111111") // index 2 after the next two
	s.Insert("#222222")
	s.Insert("#333333") // index 0

	// First "older" step selects the newest entry.
	entry, ok := s.Older()
	if !ok || entry != "#333333" || s.Cursor() != 0 {
		t.Fatalf("Older() = %q cursor %d, want #333333 cursor 0", entry, s.Cursor())
	}

	entry, _ = s.Older()
	if entry != "#222222" || s.Cursor() != 1 {
		t.Fatalf("Older() = %q cursor %d, want #222222 cursor 1", entry, s.Cursor())
	}

	entry, _ = s.Older()
	if entry != "#111111" || s.Cursor() != 2 {
		t.Fatalf("Older() = %q cursor %d, want #111111 cursor 2", entry, s.Cursor())
	}

	// Clamped at the oldest entry.
	entry, _ = s.Older()
	if entry != "#111111" || s.Cursor() != 2 {
		t.Fatalf("Older() at boundary = %q cursor %d, want #111111 cursor 2", entry, s.Cursor())
	}

	// Back toward newer.
	entry, _ = s.Newer()
	if entry != "#222222" || s.Cursor() != 1 {
		t.Fatalf("Newer() = %q cursor %d, want #222222 cursor 1", entry, s.Cursor())
	}
	entry, _ = s.Newer()
	if entry != "#333333" || s.Cursor() != 0 {
		t.Fatalf("Newer() = %q cursor %d, want #333333 cursor 0", entry, s.Cursor())
	}

	// One more leaves navigation mode.
	_, ok = s.Newer()
	if ok || s.Cursor() != -1 {
		t.Fatalf("Newer() past newest: ok=%v cursor %d, want exit", ok, s.Cursor())
	}
}

func TestNavigation_Empty(t *testing.T) {
	s := New(0)
	if _, ok := s.Older(); ok {
		t.Error("Older() on empty store should report false")
	}
	if _, ok := s.Newer(); ok {
		t.Error("Newer() on empty store should report false")
	}
}

func TestNewer_NotNavigating(t *testing.T) {
	s := New(0)
	s.Insert("#111111")
	if _, ok := s.Newer(); ok {
		t.Error("Newer() without an active cursor should report false")
	}
}

func TestReplace(t *testing.T) {
	s := New(0)
	s.Insert("#111111")
	s.Older() // cursor active

	s.Replace([]string{"#aaaaaa", "#bbbbbb"})
	if s.Len() != 2 {
		t.Errorf("expected 2 entries after Replace, got %d", s.Len())
	}
	if s.Cursor() != -1 {
		t.Errorf("expected cursor reset after Replace, got %d", s.Cursor())
	}
	if first, _ := s.At(0); first != "#aaaaaa" {
		t.Errorf("expected #aaaaaa first, got %q", first)
	}
}

func TestReplace_Truncates(t *testing.T) {
	entries := make([]string, 250)
	for i := range entries {
		entries[i] = fmt.Sprintf("#%06x", i)
	}
	s := New(0)
	s.Replace(entries)
	if s.Len() != MaxEntries {
		t.Errorf("expected %d entries, got %d", MaxEntries, s.Len())
	}
}

func TestClear(t *testing.T) {
	s := New(0)
	s.Insert("#111111")
	s.Older()
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
	if s.Cursor() != -1 {
		t.Errorf("expected cursor reset, got %d", s.Cursor())
	}
}

func TestEntries_Copy(t *testing.T) {
	s := New(0)
	s.Insert("#111111")
	got := s.Entries()
	got[0] = "#mutated"
	if first, _ := s.At(0); first != "#111111" {
		t.Error("Entries() must return a copy")
	}
}
