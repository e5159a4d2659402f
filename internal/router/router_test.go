package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sidram/memoriz/internal/screen"
)

// stubScreen is a minimal screen for router tests.
type stubScreen struct {
	name    string
	inited  bool
	lastMsg tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}

	r := New(first)
	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}

	r.Push(second)
	if !second.inited {
		t.Error("Push did not call Init on the new screen")
	}
	if r.Active() != second {
		t.Errorf("Active() = %v, want second", r.Active())
	}

	r.Pop()
	if r.Active() != first {
		t.Errorf("Active() after Pop = %v, want first", r.Active())
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth() after popping last screen = %d, want 1", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}
	third := &stubScreen{name: "third"}

	r := New(first)
	r.Push(second)
	r.Replace(third)

	if r.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", r.Depth())
	}
	if r.Active() != third {
		t.Errorf("Active() = %v, want third", r.Active())
	}
	if !third.inited {
		t.Error("Replace did not call Init on the new screen")
	}

	r.Pop()
	if r.Active() != first {
		t.Errorf("Active() after Pop = %v, want first", r.Active())
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}

	r := New(first)

	r.Update(PushScreenMsg{Screen: second})
	if r.Active() != second {
		t.Errorf("Active() after PushScreenMsg = %v, want second", r.Active())
	}

	r.Update(PopScreenMsg{})
	if r.Active() != first {
		t.Errorf("Active() after PopScreenMsg = %v, want first", r.Active())
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	first := &stubScreen{name: "first"}
	second := &stubScreen{name: "second"}

	r := New(first)
	r.Push(second)

	type customMsg struct{}
	r.Update(customMsg{})

	if second.lastMsg == nil {
		t.Error("active screen did not receive the message")
	}
	if first.lastMsg != nil {
		t.Error("inactive screen received the message")
	}
}
