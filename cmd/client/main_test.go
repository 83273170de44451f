package main

import (
	"reflect"
	"testing"
)

func TestParseResults(t *testing.T) {
	got, err := parseResults([]string{"pressure=true", "hose=0", " pin =F"})
	if err != nil {
		t.Fatalf("parseResults: %v", err)
	}
	want := map[string]bool{"pressure": true, "hose": false, "pin": false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"pressure", "=true", "hose=maybe"} {
		if _, err := parseResults([]string{bad}); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestMark(t *testing.T) {
	m := map[string]bool{"a": true, "b": false}
	if mark(m, "a") != "ok" || mark(m, "b") != "FAIL" || mark(m, "c") != "?" {
		t.Fatalf("mark mismatch")
	}
}
