package expand

import (
	"reflect"
	"sync"
	"testing"
)

func TestTableLookup(t *testing.T) {
	src := map[string]string{"btw": "by the way", "empty": ""}
	tbl := NewTable(src)

	// The table owns a copy.
	src["btw"] = "changed"

	if v, ok := tbl.Lookup("btw"); !ok || v != "by the way" {
		t.Errorf("Lookup(btw) = %q, %v", v, ok)
	}
	if v, ok := tbl.Lookup("empty"); !ok || v != "" {
		t.Errorf("empty expansions are valid, got %q, %v", v, ok)
	}
	if _, ok := tbl.Lookup("BTW"); ok {
		t.Error("lookup must be case-sensitive")
	}
	if _, ok := tbl.Lookup("bt"); ok {
		t.Error("lookup must not match prefixes")
	}
}

func TestTableMutation(t *testing.T) {
	tbl := NewTable(nil)

	tbl.Set("omw", "on my way")
	tbl.Set("omw", "on my way!")
	if v, _ := tbl.Lookup("omw"); v != "on my way!" {
		t.Errorf("last write should win, got %q", v)
	}

	if !tbl.Delete("omw") {
		t.Error("Delete should report an existing key")
	}
	if tbl.Delete("omw") {
		t.Error("Delete should report a missing key")
	}

	tbl.Replace(map[string]string{"b": "2", "a": "1"})
	if got := tbl.Keys(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v", got)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d", tbl.Len())
	}

	snap := tbl.Snapshot()
	snap["c"] = "3"
	if _, ok := tbl.Lookup("c"); ok {
		t.Error("Snapshot must be a copy")
	}
}

func TestTableConcurrentAccess(t *testing.T) {
	tbl := NewTable(nil)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tbl.Set("k", "v")
		}()
		go func() {
			defer wg.Done()
			tbl.Lookup("k")
		}()
	}
	wg.Wait()
}

func TestChain(t *testing.T) {
	first := NewTable(map[string]string{"a": "first"})
	second := SourceFunc(func(s string) (string, bool) {
		if s == "a" || s == "b" {
			return "second", true
		}
		return "", false
	})

	c := Chain{nil, first, second}

	if v, _ := c.Lookup("a"); v != "first" {
		t.Errorf("Lookup(a) = %q, want first", v)
	}
	if v, _ := c.Lookup("b"); v != "second" {
		t.Errorf("Lookup(b) = %q, want second", v)
	}
	if _, ok := c.Lookup("z"); ok {
		t.Error("Lookup(z) should miss")
	}
}
