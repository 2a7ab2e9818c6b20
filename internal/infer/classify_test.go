package infer

import (
	"testing"

	"github.com/KaramelBytes/dataloom-cli/internal/table"
)

// col builds a test column; "" means null.
func col(name string, vals ...string) table.Column {
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

func classify(t *testing.T, c table.Column) (TypedColumn, *Conversion) {
	t.Helper()
	return ClassifyColumn(c, len(c.Cells), DefaultThresholds())
}

func TestClassifyCurrencyColumnAsInteger(t *testing.T) {
	tc, conv := classify(t, col("amount", "£1,000", "£2,000", "3000", ""))
	if tc.Kind != Integer {
		t.Fatalf("expected Integer, got %s", tc.Kind)
	}
	want := []float64{1000, 2000, 3000}
	for i, w := range want {
		if tc.Data[i].Null || tc.Data[i].Num != w {
			t.Fatalf("value %d: got %+v, want %v", i, tc.Data[i], w)
		}
	}
	if !tc.Data[3].Null {
		t.Fatalf("blank cell should stay null, got %+v", tc.Data[3])
	}
	if conv == nil || conv.To != "Integer" {
		t.Fatalf("expected Integer conversion record, got %+v", conv)
	}
}

func TestClassifyFloatWhenAnyFraction(t *testing.T) {
	tc, _ := classify(t, col("price", "1.5", "2", "3"))
	if tc.Kind != Float {
		t.Fatalf("expected Float, got %s", tc.Kind)
	}
}

func TestClassifyNumericBelowParseRateStaysText(t *testing.T) {
	// 2 of 3 non-blank parse (0.67 < 0.90).
	tc, conv := classify(t, col("mixed", "1", "2", "apple"))
	if tc.Kind != Text {
		t.Fatalf("expected Text, got %s", tc.Kind)
	}
	if conv != nil {
		t.Fatalf("Text columns must not produce a conversion record, got %+v", conv)
	}
}

func TestClassifyNumericMostlyBlankStaysText(t *testing.T) {
	// One parseable value in 40 rows: parse rate is 1.0 but non-blank
	// share (2.5%) is under the 5% floor.
	vals := make([]string, 40)
	vals[0] = "7"
	tc, _ := classify(t, col("sparse", vals...))
	if tc.Kind == Integer || tc.Kind == Float {
		t.Fatalf("mostly-blank column must not be numeric, got %s", tc.Kind)
	}
}

func TestClassifyBoolean(t *testing.T) {
	tc, _ := classify(t, col("active", "Yes", "no", "Y", "N", "TRUE", "false", "1", "0", ""))
	if tc.Kind != Boolean {
		t.Fatalf("expected Boolean, got %s", tc.Kind)
	}
	if !tc.Data[0].Bool || tc.Data[1].Bool {
		t.Fatalf("lexicon mapping wrong: %+v %+v", tc.Data[0], tc.Data[1])
	}
}

func TestClassifyBooleanBelowThresholdStaysText(t *testing.T) {
	// 8 of 10 in lexicon = 0.8 < 0.9.
	tc, _ := classify(t, col("flag", "yes", "no", "yes", "no", "yes", "no", "yes", "no", "maybe", "dunno"))
	if tc.Kind == Boolean {
		t.Fatal("below-threshold column must not be Boolean")
	}
}

func TestClassifyDateTimeTolerant(t *testing.T) {
	// 3 of 4 parse (0.75 >= 0.60); the malformed one becomes null.
	tc, conv := classify(t, col("when", "2024-01-02", "2024/03/04", "05/06/2024", "not a date"))
	if tc.Kind != DateTime {
		t.Fatalf("expected DateTime, got %s", tc.Kind)
	}
	if !tc.Data[3].Null {
		t.Fatalf("malformed date should be null, got %+v", tc.Data[3])
	}
	if conv == nil || conv.To != "DateTime" {
		t.Fatalf("expected DateTime conversion record, got %+v", conv)
	}
}

func TestClassifyDateTimeBelowThreshold(t *testing.T) {
	// 1 of 3 parse (0.33 < 0.60).
	tc, _ := classify(t, col("notes", "2024-01-02", "call back", "left message"))
	if tc.Kind == DateTime {
		t.Fatal("below-threshold column must not be DateTime")
	}
}

func TestClassifyNumericStringsPreferBooleanOrder(t *testing.T) {
	// "1"/"0" are in the boolean lexicon and Boolean is attempted before
	// Numeric, so a pure 1/0 column is Boolean.
	tc, _ := classify(t, col("bit", "1", "0", "1", "0"))
	if tc.Kind != Boolean {
		t.Fatalf("expected Boolean by rule order, got %s", tc.Kind)
	}
}

func TestClassifyAllNullColumn(t *testing.T) {
	tc, conv := classify(t, col("void", "", "", ""))
	if tc.Kind != Text {
		t.Fatalf("all-null column must stay Text, got %s", tc.Kind)
	}
	if conv != nil {
		t.Fatalf("all-null column must not produce a record, got %+v", conv)
	}
}

func TestClassifyCategory(t *testing.T) {
	vals := make([]string, 0, 100)
	labels := []string{"UK", "US", "FR"}
	for i := 0; i < 100; i++ {
		vals = append(vals, labels[i%3])
	}
	tc, conv := classify(t, col("country", vals...))
	if tc.Kind != Category {
		t.Fatalf("expected Category, got %s", tc.Kind)
	}
	if conv == nil || conv.To != "Category" {
		t.Fatalf("expected Category conversion record, got %+v", conv)
	}
}

func TestTypedColumnAccessors(t *testing.T) {
	tc, _ := classify(t, col("amount", "1", "2", "2", ""))
	if got := tc.MissingCount(); got != 1 {
		t.Fatalf("MissingCount = %d, want 1", got)
	}
	if got := tc.UniqueCount(); got != 2 {
		t.Fatalf("UniqueCount = %d, want 2", got)
	}
	min, max, mean, ok := tc.NumStats()
	if !ok || min != 1 || max != 2 || mean != (1+2+2)/3.0 {
		t.Fatalf("NumStats = (%v, %v, %v, %v)", min, max, mean, ok)
	}
}

func TestCanonicalAgreesAcrossNumericRenderings(t *testing.T) {
	a := Datum{Num: 1}
	b := Datum{Num: 1.0}
	if a.Canonical(Integer) != b.Canonical(Float) {
		t.Fatalf("1 and 1.0 must normalize identically: %q vs %q", a.Canonical(Integer), b.Canonical(Float))
	}
}
