package table

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCSVNullsBecomeEmptyFields(t *testing.T) {
	var b strings.Builder
	rows := [][]Cell{
		{{Value: "1"}, {Value: "ann"}},
		{{Value: "2"}, NullCell},
	}
	if err := WriteCSV(&b, []string{"id", "name"}, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "id,name\n1,ann\n2,\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

func TestWriteCSVShortRowsPadded(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, []string{"a", "b", "c"}, [][]Cell{{{Value: "1"}}}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	if b.String() != "a,b,c\n1,,\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestExportCSVWritesAndRenames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]Cell{{{Value: "x"}}}
	if err := ExportCSV(path, []string{"v"}, rows); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(b) != "v\nx\n" {
		t.Fatalf("got %q", b)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatal("temp file left behind")
	}
}
