package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Diary(ctx context.Context) error    { return f.record("diary") }
func (f *fakeExec) Entries(ctx context.Context) error  { return f.record("entries") }
func (f *fakeExec) Patterns(ctx context.Context) error { return f.record("patterns") }
func (f *fakeExec) Chat(ctx context.Context, message string) error {
	f.args = append(f.args, message)
	return f.record("chat")
}
func (f *fakeExec) NewChat(ctx context.Context) error       { return f.record("new") }
func (f *fakeExec) Conversations(ctx context.Context) error { return f.record("conversations") }
func (f *fakeExec) OpenConversation(ctx context.Context, id string) error {
	f.args = append(f.args, id)
	return f.record("open")
}
func (f *fakeExec) DeleteConversation(ctx context.Context, id string) error {
	f.args = append(f.args, id)
	return f.record("deleteconv")
}
func (f *fakeExec) Cycle(ctx context.Context) error     { return f.record("cycle") }
func (f *fakeExec) Cycles(ctx context.Context) error    { return f.record("cycles") }
func (f *fakeExec) Record(ctx context.Context) error    { return f.record("record") }
func (f *fakeExec) SetPain(ctx context.Context) error   { return f.record("pain") }
func (f *fakeExec) Subscribe(ctx context.Context) error { return f.record("subscribe") }
func (f *fakeExec) Status(ctx context.Context) error    { return f.record("status") }
func (f *fakeExec) Language(ctx context.Context, code string) error {
	f.args = append(f.args, code)
	return f.record("language")
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"diary",
		"entries",
		"patterns",
		"chat hola Aurora, estoy cansada",
		"new",
		"conversations",
		"open conv-7",
		"deleteconv conv-7",
		"cycle",
		"cycles",
		"record",
		"pain",
		"status",
		"language en",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"diary", "entries", "patterns", "chat", "new", "conversations",
		"open", "deleteconv", "cycle", "cycles", "record", "pain", "status", "language"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("commands order mismatch at %d: got %v, want %v", i, exec.calls, wantOrder)
		}
	}

	wantArgs := []string{"hola Aurora, estoy cansada", "conv-7", "conv-7", "en"}
	if len(exec.args) != len(wantArgs) {
		t.Fatalf("args mismatch: got %v, want %v", exec.args, wantArgs)
	}
	for i, a := range exec.args {
		if a != wantArgs[i] {
			t.Fatalf("arg %d: got %q, want %q", i, a, wantArgs[i])
		}
	}
}

func TestRunREPL_MissingArgumentsAreReported(t *testing.T) {
	var printed []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("chat\nopen\nlanguage\nexit\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("no handler should run, got %v", exec.calls)
	}

	usages := 0
	for _, s := range printed {
		if strings.HasPrefix(s, "Usage:") {
			usages++
		}
	}
	if usages != 3 {
		t.Fatalf("want 3 usage lines, got %d in %v", usages, printed)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
