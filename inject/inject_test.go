package inject

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type post struct {
	target Window
	key    uint16
}

// fakeSystem records every operation so tests can assert on the exact
// sequence the injector performs.
type fakeSystem struct {
	mu sync.Mutex

	focused  Window
	hasFocus bool

	clip    string
	hasClip bool

	setErr  error
	postErr error

	posts []post
	sets  []string
	ops   []string
}

func (f *fakeSystem) FocusedControl() (Window, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "focus")
	return f.focused, f.hasFocus
}

func (f *fakeSystem) PostKeyDown(w Window, key uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.postErr != nil {
		return f.postErr
	}
	f.posts = append(f.posts, post{w, key})
	f.ops = append(f.ops, "post")
	return nil
}

func (f *fakeSystem) ClipboardText() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "read")
	return f.clip, f.hasClip
}

func (f *fakeSystem) SetClipboardText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.clip = text
	f.hasClip = true
	f.sets = append(f.sets, text)
	f.ops = append(f.ops, "set")
	return nil
}

func (f *fakeSystem) ClearClipboard() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clip = ""
	f.hasClip = false
	f.ops = append(f.ops, "clear")
	return nil
}

func (f *fakeSystem) MoveCursor(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, fmt.Sprintf("move %d,%d", x, y))
	return nil
}

func (f *fakeSystem) ClickMouse() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, "click")
	return nil
}

func newTestInjector(f *fakeSystem) *Injector {
	return NewInjector(f, time.Millisecond)
}

func TestInjectRoundTrip(t *testing.T) {
	f := &fakeSystem{focused: 42, hasFocus: true, clip: "hello", hasClip: true}
	inj := newTestInjector(f)

	if err := inj.Inject(" "); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	wantPosts := []post{{42, vkControl}, {42, vkV}}
	if len(f.posts) != len(wantPosts) {
		t.Fatalf("posted %d key messages, want %d", len(f.posts), len(wantPosts))
	}
	for i, want := range wantPosts {
		if f.posts[i] != want {
			t.Errorf("post %d = %+v, want %+v", i, f.posts[i], want)
		}
	}

	if f.clip != "hello" || !f.hasClip {
		t.Errorf("clipboard = %q (present=%v), want original restored", f.clip, f.hasClip)
	}

	wantSets := []string{" ", "hello"}
	if len(f.sets) != 2 || f.sets[0] != wantSets[0] || f.sets[1] != wantSets[1] {
		t.Errorf("clipboard writes = %q, want %q", f.sets, wantSets)
	}

	for _, op := range f.ops {
		if op == "clear" {
			t.Error("clipboard cleared despite having had text to restore")
		}
	}
}

// Empty text on the clipboard is still text; it must be restored as "",
// not treated as absent.
func TestInjectRestoresEmptyText(t *testing.T) {
	f := &fakeSystem{focused: 7, hasFocus: true, clip: "", hasClip: true}
	inj := newTestInjector(f)

	if err := inj.Inject("x"); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	if !f.hasClip || f.clip != "" {
		t.Errorf("clipboard = %q (present=%v), want empty text restored", f.clip, f.hasClip)
	}
	if len(f.sets) != 2 || f.sets[1] != "" {
		t.Errorf("clipboard writes = %q, want staged text then empty restore", f.sets)
	}
}

func TestInjectClearsWhenClipboardHeldNoText(t *testing.T) {
	f := &fakeSystem{focused: 7, hasFocus: true}
	inj := newTestInjector(f)

	if err := inj.Inject("x"); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	if f.hasClip {
		t.Errorf("clipboard = %q, want it left empty", f.clip)
	}
	if len(f.sets) != 1 || f.sets[0] != "x" {
		t.Errorf("clipboard writes = %q, want only the staged text", f.sets)
	}

	cleared := false
	for _, op := range f.ops {
		if op == "clear" {
			cleared = true
		}
	}
	if !cleared {
		t.Error("clipboard was not cleared back to its empty state")
	}
}

func TestInjectNoFocusTouchesNothing(t *testing.T) {
	f := &fakeSystem{clip: "keep me", hasClip: true}
	inj := newTestInjector(f)

	if err := inj.Inject("x"); err != nil {
		t.Fatalf("Inject should be a silent no-op, got %v", err)
	}

	if len(f.ops) != 1 || f.ops[0] != "focus" {
		t.Errorf("ops = %v, want focus resolution only", f.ops)
	}
	if f.clip != "keep me" {
		t.Errorf("clipboard = %q, want untouched", f.clip)
	}
	if len(f.posts) != 0 {
		t.Errorf("posted %d key messages, want none", len(f.posts))
	}
}

func TestInjectStageFailurePostsNothing(t *testing.T) {
	f := &fakeSystem{focused: 7, hasFocus: true, setErr: errors.New("clipboard busy")}
	inj := newTestInjector(f)

	if err := inj.Inject("x"); err == nil {
		t.Fatal("expected staging error")
	}
	if len(f.posts) != 0 {
		t.Errorf("posted %d key messages after failed staging, want none", len(f.posts))
	}
	for _, op := range f.ops {
		if op == "clear" {
			t.Error("clipboard cleared on the staging failure path")
		}
	}
}

func TestInjectPostFailureStillRestores(t *testing.T) {
	f := &fakeSystem{focused: 7, hasFocus: true, clip: "hello", hasClip: true}
	inj := newTestInjector(f)
	f.postErr = errors.New("queue full")

	if err := inj.Inject("x"); err == nil {
		t.Fatal("expected post error")
	}
	if f.clip != "hello" {
		t.Errorf("clipboard = %q, want original restored after post failure", f.clip)
	}
}

func TestClick(t *testing.T) {
	f := &fakeSystem{}
	inj := newTestInjector(f)

	if err := inj.Click(); err != nil {
		t.Fatalf("Click: %v", err)
	}
	if len(f.ops) != 1 || f.ops[0] != "click" {
		t.Errorf("ops = %v, want a single click", f.ops)
	}
}

func TestClickAtMovesFirst(t *testing.T) {
	f := &fakeSystem{}
	inj := newTestInjector(f)

	if err := inj.ClickAt(10, 20); err != nil {
		t.Fatalf("ClickAt: %v", err)
	}

	want := []string{"move 10,20", "click"}
	if len(f.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", f.ops, want)
	}
	for i := range want {
		if f.ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, f.ops[i], want[i])
		}
	}
}
