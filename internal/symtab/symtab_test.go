package symtab

import "testing"

func TestAddAssignsDescendingOffsets(t *testing.T) {
	table := New()

	names := []string{"a", "b", "c"}
	for _, name := range names {
		if !table.Add(name, Int) {
			t.Fatalf("Add(%q) returned false", name)
		}
	}

	wantOffsets := []int{-8, -16, -24}
	for i, name := range names {
		sym := table.Find(name)
		if sym == nil {
			t.Fatalf("Find(%q) returned nil", name)
		}
		if sym.Offset != wantOffsets[i] {
			t.Errorf("%s: offset = %d, want %d", name, sym.Offset, wantOffsets[i])
		}
	}

	if got := table.FrameSize(); got != 24 {
		t.Errorf("FrameSize() = %d, want 24", got)
	}
}

func TestAddRejectsDuplicateInSameScope(t *testing.T) {
	table := New()

	if !table.Add("x", Int) {
		t.Fatal("first Add returned false")
	}
	if table.Add("x", Float) {
		t.Fatal("duplicate Add returned true")
	}

	// The original declaration must be untouched.
	sym := table.Find("x")
	if sym.Type != Int {
		t.Errorf("type = %v, want int", sym.Type)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestAddRejectsDuplicateAcrossScopes(t *testing.T) {
	table := New()

	table.Add("x", Int)
	table.EnterScope()
	if table.Add("x", Bool) {
		t.Fatal("inner Add of live outer name returned true")
	}

	sym := table.Find("x")
	if sym.Type != Int {
		t.Errorf("type = %v, want int", sym.Type)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestNameReusableAfterScopeExit(t *testing.T) {
	table := New()

	table.EnterScope()
	table.Add("x", Int)
	table.ExitScope()

	if !table.Add("x", Bool) {
		t.Fatal("Add after eviction returned false")
	}
	if got := table.Find("x").Type; got != Bool {
		t.Errorf("type = %v, want bool", got)
	}
}

func TestExitScopeEvictsInnerSymbols(t *testing.T) {
	table := New()

	table.Add("a", Int)
	table.EnterScope()
	table.Add("b", Int)
	table.Add("c", Int)
	table.ExitScope()

	if table.Find("b") != nil || table.Find("c") != nil {
		t.Error("inner symbols survived ExitScope")
	}
	if table.Find("a") == nil {
		t.Error("outer symbol evicted")
	}

	// Slots are never reused, even after eviction.
	table.Add("d", Int)
	if got := table.Find("d").Offset; got != -32 {
		t.Errorf("post-eviction offset = %d, want -32", got)
	}
}

func TestExitScopeAtDepthZeroIsNoop(t *testing.T) {
	table := New()
	table.Add("a", Int)

	table.ExitScope()

	if table.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", table.Depth())
	}
	if table.Find("a") == nil {
		t.Error("global symbol evicted by spurious ExitScope")
	}
}

func TestMarkInitialized(t *testing.T) {
	table := New()
	table.Add("x", Int)

	if table.Find("x").Initialized {
		t.Error("fresh symbol reported initialized")
	}

	table.MarkInitialized("x")
	if !table.Find("x").Initialized {
		t.Error("MarkInitialized had no effect")
	}

	// Unknown names are ignored.
	table.MarkInitialized("missing")
}

func TestClear(t *testing.T) {
	table := New()
	table.Add("a", Int)
	table.EnterScope()
	table.Add("b", Int)

	table.Clear()

	if table.Len() != 0 || table.Depth() != 0 {
		t.Errorf("after Clear: Len=%d Depth=%d, want 0 0", table.Len(), table.Depth())
	}

	table.Add("c", Int)
	if got := table.Find("c").Offset; got != -8 {
		t.Errorf("offset after Clear = %d, want -8", got)
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Int, "int"},
		{Float, "float"},
		{Char, "char"},
		{Bool, "bool"},
		{Void, "void"},
		{Type(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
