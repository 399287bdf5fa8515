package output

import (
	"bytes"
	"fmt"
	"testing"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, map[string]int{"id": 1}); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"id\": 1\n}\n"
	if buf.String() != want {
		t.Errorf("JSON() = %q, want %q", buf.String(), want)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	fmt.Fprintln(tw, "ID\tUSERNAME")
	fmt.Fprintln(tw, "10\tbob")
	tw.Flush()

	want := "ID  USERNAME\n10  bob\n"
	if buf.String() != want {
		t.Errorf("Table() = %q, want %q", buf.String(), want)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%d items skipped", 2)
	if got, want := buf.String(), "Warning: 2 items skipped\n"; got != want {
		t.Errorf("Warn() = %q, want %q", got, want)
	}
}
