package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	// non-empty slice should be returned as-is
	in := []int{1, 2, 3}
	def := []int{9}
	got := IfEmpty(in, def)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	// empty slice should fall back to default
	var empty []string
	def2 := []string{"x"}
	got2 := IfEmpty(empty, def2)
	if len(got2) != 1 || got2[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got2)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString("ok", "name"); got != "ok" {
		t.Fatalf("want ok got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("want panic for empty name")
		}
	}()
	_ = MustString("   ", "name")
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"/api/":   "/api",
		" api  ":  "/api",
		"//api//": "/api",
		"/":       "", // should panic
		"":        "", // should panic
	}
	for in, want := range cases {
		if want == "" {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("want panic for %q", in)
					}
				}()
				_ = MustPrefix(in)
			}()
			continue
		}
		if got := MustPrefix(in); got != want {
			t.Fatalf("in %q want %q got %q", in, want, got)
		}
	}
}

func TestSQLNullHelpers(t *testing.T) {
	t.Parallel()

	if got := SQLNull("  "); got != nil {
		t.Fatalf("SQLNull blank should be nil, got %v", got)
	}
	if got := SQLNull("x"); got != "x" {
		t.Fatalf("SQLNull non-blank should pass through, got %v", got)
	}

	if got := SQLNullPtr(nil); got != nil {
		t.Fatalf("SQLNullPtr nil should be nil, got %v", got)
	}
	blank := " "
	if got := SQLNullPtr(&blank); got != nil {
		t.Fatalf("SQLNullPtr blank should be nil, got %v", got)
	}
	s := "remote"
	if got := SQLNullPtr(&s); got != "remote" {
		t.Fatalf("SQLNullPtr should deref, got %v", got)
	}
}

func TestPtrDeref(t *testing.T) {
	t.Parallel()

	if Ptr("") != nil {
		t.Fatal("Ptr empty should be nil")
	}
	p := Ptr("v")
	if p == nil || *p != "v" {
		t.Fatalf("Ptr got %v", p)
	}
	if Deref(nil) != "" {
		t.Fatal("Deref nil should be empty")
	}
	if Deref(p) != "v" {
		t.Fatalf("Deref got %q", Deref(p))
	}
}
