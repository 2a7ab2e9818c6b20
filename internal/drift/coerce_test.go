package drift

import (
	"testing"
	"time"

	"github.com/KaramelBytes/dataloom-cli/internal/infer"
	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

func rawCol(name string, vals ...string) table.Column {
	cells := make([]table.Cell, len(vals))
	for i, v := range vals {
		if v == "" {
			cells[i] = table.NullCell
		} else {
			cells[i] = table.Cell{Value: v}
		}
	}
	return table.Column{Name: name, Cells: cells}
}

func TestCoerceIntRejectsFractions(t *testing.T) {
	raw := &table.Table{Name: "n.csv", Cols: []table.Column{rawCol("age", "12", "12.7", "£1,000", "")}}
	typed := Coerce(raw, FamilyMap{"age": FamilyInt})
	c, _ := typed.Lookup("age")
	if c.Kind != infer.Integer {
		t.Fatalf("expected Integer, got %s", c.Kind)
	}
	if c.Data[0].Null || c.Data[0].Num != 12 {
		t.Fatalf("whole value should parse, got %+v", c.Data[0])
	}
	if !c.Data[1].Null {
		t.Fatalf("fractional value under int family must be null, got %+v", c.Data[1])
	}
	if c.Data[2].Null || c.Data[2].Num != 1000 {
		t.Fatalf("currency whole value should parse, got %+v", c.Data[2])
	}
	if !c.Data[3].Null {
		t.Fatal("null stays null")
	}
}

func TestCoerceFloatKeepsFractions(t *testing.T) {
	raw := &table.Table{Name: "n.csv", Cols: []table.Column{rawCol("price", "12.7", "oops")}}
	typed := Coerce(raw, FamilyMap{"price": FamilyFloat})
	c, _ := typed.Lookup("price")
	if c.Data[0].Null || c.Data[0].Num != 12.7 {
		t.Fatalf("got %+v, want 12.7", c.Data[0])
	}
	if !c.Data[1].Null {
		t.Fatalf("unparseable cell must be null, got %+v", c.Data[1])
	}
}

func TestCoerceDateTimeAndBoolean(t *testing.T) {
	raw := &table.Table{Name: "d.csv", Cols: []table.Column{
		rawCol("when", "2024-05-06", "not a date"),
		rawCol("ok", "YES", "maybe"),
	}}
	typed := Coerce(raw, FamilyMap{"when": FamilyDateTime, "ok": FamilyBoolean})

	w, _ := typed.Lookup("when")
	if w.Kind != infer.DateTime || w.Data[0].Null {
		t.Fatalf("date did not parse: %+v", w.Data[0])
	}
	if got := w.Data[0].Time; got != time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("wrong parsed time: %v", got)
	}
	if !w.Data[1].Null {
		t.Fatalf("malformed date must be null, got %+v", w.Data[1])
	}

	o, _ := typed.Lookup("ok")
	if o.Data[0].Null || !o.Data[0].Bool {
		t.Fatalf("YES should map true, got %+v", o.Data[0])
	}
	if !o.Data[1].Null {
		t.Fatalf("off-lexicon token must be null, got %+v", o.Data[1])
	}
}

func TestCoerceUnknownColumnStaysText(t *testing.T) {
	raw := &table.Table{Name: "t.csv", Cols: []table.Column{rawCol("brand_new", "42")}}
	typed := Coerce(raw, FamilyMap{"something_else": FamilyInt})
	c, _ := typed.Lookup("brand_new")
	if c.Kind != infer.Text {
		t.Fatalf("unmapped column must stay Text, got %s", c.Kind)
	}
	if c.Data[0].Str != "42" {
		t.Fatalf("text value mangled: %+v", c.Data[0])
	}
}

func TestCoerceNeverReinfers(t *testing.T) {
	// A column whose values no longer meet any inference threshold still
	// keeps the baseline family; failures become nulls, not a new type.
	raw := &table.Table{Name: "m.csv", Cols: []table.Column{rawCol("v", "a", "b", "c", "1")}}
	typed := Coerce(raw, FamilyMap{"v": FamilyFloat})
	c, _ := typed.Lookup("v")
	if c.Kind != infer.Float {
		t.Fatalf("family must be forced, got %s", c.Kind)
	}
	nulls := 0
	for _, d := range c.Data {
		if d.Null {
			nulls++
		}
	}
	if nulls != 3 {
		t.Fatalf("expected 3 forced nulls, got %d", nulls)
	}
}
