// info_test.go

package chartinfo

import (
	"os"
	"path/filepath"
	"testing"
)

const lineDoc = `{
  "output": "line",
  "dataAreaSize": {"width": 400, "height": 200},
  "penalty": [null, 0],
  "datasets": [
    {"name": "weight", "points": [
      {"date": "2021-01-01", "value": 60},
      {"date": "2021-01-02", "value": null},
      {"date": "2021-01-03", "value": 61.5}
    ]},
    {"name": "wake", "points": [
      {"date": "2021-01-01", "value": "07:30"}
    ]}
  ],
  "line": {
    "title": "Body",
    "yMin": [55, null],
    "yAxisLocation": ["left", "RIGHT"],
    "lineColor": ["red"],
    "showLegend": true,
    "legendPosition": "right"
  }
}`

func TestDecodeJSON(t *testing.T) {
	ri, err := Decode([]byte(lineDoc), FormatJSON, "")
	if err != nil {
		t.Fatal(err)
	}
	if ri.Output != Line {
		t.Errorf("Output = %v", ri.Output)
	}
	if ri.DataAreaSize != (Size{400, 200}) {
		t.Errorf("DataAreaSize = %+v", ri.DataAreaSize)
	}
	if ri.TooltipSize != (Size{DefaultTooltipWidth, DefaultTooltipHeight}) {
		t.Errorf("TooltipSize = %+v", ri.TooltipSize)
	}
	if ri.Margin != DefaultMargin {
		t.Errorf("Margin = %+v", ri.Margin)
	}
	if ri.Datasets.Len() != 2 || len(ri.Datasets.Dates()) != 3 {
		t.Fatalf("datasets = %d, dates = %d", ri.Datasets.Len(), len(ri.Datasets.Dates()))
	}
	if got := ri.Datasets.ByID(1).ValueType().String(); got != "time" {
		t.Errorf("wake value type = %s", got)
	}
	if ri.Penalty[0] != nil || ri.Penalty[1] == nil || *ri.Penalty[1] != 0 {
		t.Errorf("Penalty = %v", ri.Penalty)
	}

	l := ri.Line
	if !l.YMin[Left].Assigned || l.YMin[Left].Value != 55 || l.YMin[Right].Assigned {
		t.Errorf("YMin = %v", l.YMin)
	}
	if l.YAxisLocation[0] != Left || l.YAxisLocation[1] != Right {
		t.Errorf("YAxisLocation = %v", l.YAxisLocation)
	}
	if l.LineColor[1] != "red" {
		t.Errorf("single line color should apply to every dataset, got %v", l.LineColor)
	}
	if l.PointSize[0] != DefaultPointSize || !l.ShowPoint[1] {
		t.Errorf("defaults not applied: %v %v", l.PointSize, l.ShowPoint)
	}
	if l.LegendOrientation != Vertical {
		t.Errorf("right legend should default to vertical, got %s", l.LegendOrientation)
	}
	if ri.ChartInfo() != &l.CommonChartInfo {
		t.Error("ChartInfo should return the line block")
	}
}

func TestDecodeYAMLMatchesJSON(t *testing.T) {
	const doc = `
output: bar
datasets:
  - name: steps
    points:
      - {date: 2021-01-01, value: 1000}
      - {date: 2021-01-02, value: 1200}
bar:
  barColor: [teal]
  yMax: [null, 10]
`
	ri, err := Decode([]byte(doc), FormatYAML, "")
	if err != nil {
		t.Fatal(err)
	}
	if ri.Output != Bar || ri.Bar == nil {
		t.Fatalf("expected a bar chart, got %v", ri.Output)
	}
	if ri.Bar.BarColor[0] != "teal" {
		t.Errorf("BarColor = %v", ri.Bar.BarColor)
	}
	if ri.Bar.YMax[Left].Assigned || !ri.Bar.YMax[Right].Assigned {
		t.Errorf("YMax = %v", ri.Bar.YMax)
	}
	if ri.Bar.LegendOrientation != Horizontal {
		t.Errorf("bottom legend should default to horizontal")
	}
	if len(ri.Datasets.Dates()) != 2 {
		t.Errorf("dates = %v", ri.Datasets.Dates())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown output", `{"output": "pie", "datasets": [{"name": "a"}]}`},
		{"no datasets", `{"output": "line"}`},
		{"bad date", `{"output": "line", "datasets": [{"name": "a", "points": [{"date": "soon", "value": 1}]}]}`},
		{"unknown field", `{"output": "line", "colour": "red", "datasets": [{"name": "a"}]}`},
		{"bad legend", `{"output": "line", "datasets": [{"name": "a"}], "line": {"legendPosition": "middle"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.doc), FormatJSON, ""); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yml")
	doc := "output: line\ndatasets:\n  - name: a\n    points:\n      - {date: \"2021-01-01\", value: 1}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	ri, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if ri.Datasets.ByID(0).Name() != "a" {
		t.Errorf("name = %q", ri.Datasets.ByID(0).Name())
	}
}

func TestPerSideGet(t *testing.T) {
	p := PerSide[string]{"l", "r"}
	if p.Get(Left) != "l" || p.Get(Right) != "r" || p.Get(NoSide) != "" {
		t.Errorf("Get mismatch for %v", p)
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"left": Left, "Right": Right, " LEFT ": Left, "top": NoSide, "": NoSide} {
		if got := ParseSide(in); got != want {
			t.Errorf("ParseSide(%q) = %v, want %v", in, got, want)
		}
	}
}
