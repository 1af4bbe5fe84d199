package sigscan

import "testing"

func TestResolveMaxBytesConfigBeatsFlagDefault(t *testing.T) {
	local := int64(42)
	if got := resolveMaxBytes(false, 1<<20, &local, nil); got != 42 {
		t.Fatalf("config max_bytes ignored: got %d, want 42", got)
	}
	global := int64(7)
	if got := resolveMaxBytes(false, 1<<20, nil, &global); got != 7 {
		t.Fatalf("global max_bytes ignored: got %d, want 7", got)
	}
}

func TestResolveMaxBytesExplicitFlagWins(t *testing.T) {
	local := int64(42)
	if got := resolveMaxBytes(true, 99, &local, nil); got != 99 {
		t.Fatalf("explicit flag lost to config: got %d, want 99", got)
	}
}

func TestResolveMaxBytesDefaultWhenUnconfigured(t *testing.T) {
	if got := resolveMaxBytes(false, 1<<20, nil, nil); got != 1<<20 {
		t.Fatalf("got %d, want %d", got, int64(1<<20))
	}
}

func TestPickStringPrecedence(t *testing.T) {
	local, global := "loc", "glob"
	if got := pickString("cli", &local, &global); got != "cli" {
		t.Fatalf("got %q", got)
	}
	if got := pickString("", &local, &global); got != "loc" {
		t.Fatalf("got %q", got)
	}
	if got := pickString("", nil, &global); got != "glob" {
		t.Fatalf("got %q", got)
	}
}
