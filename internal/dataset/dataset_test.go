// dataset_test.go

package dataset

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2021, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildAlignsColumns(t *testing.T) {
	sets := Build([]Column{
		{Name: "weight", Values: map[time.Time]float64{day(1): 60, day(3): 62}},
		{Name: "sleep", ValueType: Time, Values: map[time.Time]float64{day(2): 28800}},
	})

	if got := len(sets.Dates()); got != 3 {
		t.Fatalf("dates = %d, want 3", got)
	}
	weight := sets.ByID(0)
	if weight.Len() != 3 {
		t.Fatalf("weight has %d points, want 3", weight.Len())
	}
	if p := weight.Points()[1]; p.Valid {
		t.Errorf("weight on day 2 should be missing, got %v", p.Value)
	}
	if lo, _ := weight.YMin(); lo != 60 {
		t.Errorf("YMin = %v, want 60", lo)
	}
	if hi, _ := weight.YMax(); hi != 62 {
		t.Errorf("YMax = %v, want 62", hi)
	}
	if sets.ByID(1).ValueType() != Time {
		t.Errorf("sleep should be time valued")
	}
	if got := sets.Names(); got[0] != "weight" || got[1] != "sleep" {
		t.Errorf("Names = %v", got)
	}
}

func TestSetPenalty(t *testing.T) {
	ds := New(0, "x", Number, []DataPoint{
		{Date: day(1), Value: 5, Valid: true},
		{Date: day(2)},
		{Date: day(3), Value: 7, Valid: true},
	})
	ds.SetPenalty(-1)
	pts := ds.Points()
	if !pts[1].Valid || pts[1].Value != -1 {
		t.Errorf("missing value not replaced: %+v", pts[1])
	}
	if lo, _ := ds.YMin(); lo != -1 {
		t.Errorf("YMin after penalty = %v, want -1", lo)
	}
}

func TestAccumulateValues(t *testing.T) {
	ds := New(0, "x", Number, []DataPoint{
		{Date: day(1), Value: 1, Valid: true},
		{Date: day(2)},
		{Date: day(3), Value: 2, Valid: true},
		{Date: day(4), Value: 3, Valid: true},
	})
	ds.AccumulateValues()
	want := []float64{1, 1, 3, 6}
	for i, p := range ds.Points() {
		if p.Value != want[i] {
			t.Errorf("point %d = %v, want %v", i, p.Value, want[i])
		}
	}
	if hi, _ := ds.YMax(); hi != 6 {
		t.Errorf("YMax = %v, want 6", hi)
	}
}

func TestEmptyDatasetHasNoRange(t *testing.T) {
	ds := New(0, "empty", Number, []DataPoint{{Date: day(1)}})
	if _, ok := ds.YMin(); ok {
		t.Error("expected no range for a dataset without values")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	sets := Build([]Column{{Name: "a", Values: map[time.Time]float64{day(1): 1, day(2): 2}}})
	clone := sets.Clone()
	clone.ByID(0).AccumulateValues()
	if got := sets.ByID(0).Points()[1].Value; got != 2 {
		t.Errorf("original mutated through clone: %v", got)
	}
}

func TestXDatasets(t *testing.T) {
	sets := Build([]Column{
		{Name: "date", UsedAsXDataset: true},
		{Name: "value", Values: map[time.Time]float64{day(1): 1}},
	})
	ids := sets.XDatasetIDs()
	if len(ids) != 1 || ids[0] != 0 {
		t.Errorf("XDatasetIDs = %v, want [0]", ids)
	}
	if !sets.IsXDataset(0) || sets.IsXDataset(1) {
		t.Error("IsXDataset mismatch")
	}
}

func TestColumnsFromRows(t *testing.T) {
	rows := [][]string{
		{"date", "weight", "wake"},
		{"2021-01-01", "60.5", "07:30"},
		{"2021-01-02", "", "07:45"},
		{"2021-01-03", "1,061"},
	}
	cols, err := columnsFromRows(rows, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 2 {
		t.Fatalf("got %d columns", len(cols))
	}
	if v := cols[0].Values[day(1)]; v != 60.5 {
		t.Errorf("weight day 1 = %v", v)
	}
	if v := cols[0].Values[day(3)]; v != 1061 {
		t.Errorf("weight day 3 = %v", v)
	}
	if len(cols[0].Missing) != 1 {
		t.Errorf("weight missing = %v", cols[0].Missing)
	}
	if cols[1].ValueType != Time || cols[1].Values[day(1)] != 27000 {
		t.Errorf("wake column = %+v", cols[1])
	}
}

func TestColumnsFromRowsBadDate(t *testing.T) {
	_, err := columnsFromRows([][]string{{"date", "a"}, {"yesterday", "1"}}, time.UTC)
	if err == nil {
		t.Fatal("expected an error for an unparseable date")
	}
}
