package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"yapl/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	files := []string{"a.yp", "b.yp", "c.yp"}
	m := newProgressModel("checking", files, nil)

	steps := []driver.ProgressEvent{
		{Path: "a.yp", Status: driver.FileStarted},
		{Path: "a.yp", Status: driver.FileFinished},
		{Path: "b.yp", Status: driver.FileStarted},
		{Path: "b.yp", Status: driver.FileFinished, Errors: 2},
		{Path: "c.yp", Status: driver.FileFinished, Cached: true},
		{Path: "unknown.yp", Status: driver.FileFinished, Errors: 5},
	}
	for _, ev := range steps {
		m.applyEvent(ev)
	}

	want := []string{"done", "error", "cached"}
	for i, item := range m.items {
		if item.status != want[i] {
			t.Errorf("%s status = %q, want %q", item.path, item.status, want[i])
		}
	}
	if m.finished != 3 || m.errors != 2 {
		t.Fatalf("finished=%d errors=%d", m.finished, m.errors)
	}

	view := m.View()
	for _, s := range []string{"checking (3/3)", "a.yp", "2 error(s)"} {
		if !strings.Contains(view, s) {
			t.Errorf("view lacks %q:\n%s", s, view)
		}
	}
}

func TestProgressModelQuitsWhenEventsClose(t *testing.T) {
	events := make(chan driver.ProgressEvent, 1)
	m := newProgressModel("checking", []string{"a.yp"}, events)

	events <- driver.ProgressEvent{Path: "a.yp", Status: driver.FileStarted}
	close(events)

	listen := m.listenForEvent()
	msg := listen()
	if _, ok := msg.(eventMsg); !ok {
		t.Fatalf("first message = %T, want eventMsg", msg)
	}
	m.Update(msg)
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q, want parsing", m.items[0].status)
	}

	msg = listen()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("message after close = %T, want doneMsg", msg)
	}
	_, cmd := m.Update(msg)
	if !m.done || cmd == nil {
		t.Fatal("model did not finish")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("finishing did not quit the program")
	}
	if !strings.Contains(m.View(), "done: checking (0/1)") {
		t.Fatalf("view after finish:\n%s", m.View())
	}
}

func TestWindowResize(t *testing.T) {
	m := newProgressModel("checking", []string{"a.yp"}, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.prog.Width != 116 {
		t.Fatalf("width=%d progress=%d", m.width, m.prog.Width)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.yp", 20, "short.yp"},
		{"some/long/path/file.yp", 10, "some/lo..."},
		{"名前名前.yp", 6, "名..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
