// load.go

package chartinfo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/buffos/go-tracker/internal/dataset"
)

// --- Document Structs ---

// document is the on-disk form of a chart. YAML documents are converted to
// JSON first so both formats share these tags.
type document struct {
	Output        string       `json:"output"`
	DataAreaSize  *Size        `json:"dataAreaSize"`
	Margin        *Margin      `json:"margin"`
	TooltipSize   *Size        `json:"tooltipSize"`
	FitPanelWidth bool         `json:"fitPanelWidth"`
	FixedScale    float64      `json:"fixedScale"`
	Timezone      string       `json:"timezone"`
	Penalty       []*float64   `json:"penalty"`
	Accum         []bool       `json:"accum"`
	Datasets      []datasetDoc `json:"datasets"`
	Workbook      *workbookDoc `json:"workbook"`
	XDataset      []int        `json:"xDataset"`
	Line          *LineInfo    `json:"line"`
	Bar           *BarInfo     `json:"bar"`
}

type datasetDoc struct {
	Name      string     `json:"name"`
	ValueType string     `json:"valueType"`
	XDataset  bool       `json:"xDataset"`
	Points    []pointDoc `json:"points"`
}

// pointDoc holds either a numeric value or a string to be parsed later.
type pointDoc struct {
	Date   string
	Value  *string
	Number *float64
}

// UnmarshalJSON accepts numbers, "HH:MM" clock strings and null values.
func (p *pointDoc) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date  string          `json:"date"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Date = aux.Date
	raw := bytes.TrimSpace(aux.Value)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		p.Value = &s
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("value for %s: %w", aux.Date, err)
	}
	p.Number = &v
	return nil
}

type workbookDoc struct {
	Path  string `json:"path"`
	Sheet string `json:"sheet"`
}

// --- Loading ---

// LoadFile reads a chart document. Files ending in .yaml or .yml are parsed
// as YAML, everything else as JSON. A relative workbook path is resolved
// against the document's directory.
func LoadFile(path string) (*RenderInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return Decode(data, format, filepath.Dir(path))
}

// Format is the encoding of a chart document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// Decode parses a chart document, loads its data and applies defaults.
// baseDir resolves relative workbook paths.
func Decode(data []byte, format Format, baseDir string) (*RenderInfo, error) {
	if format == FormatYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}
	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing chart document: %w", err)
	}
	return doc.renderInfo(baseDir)
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing yaml chart document: %w", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("converting yaml chart document: %w", err)
	}
	return out, nil
}

// --- Conversion ---

func (doc *document) renderInfo(baseDir string) (*RenderInfo, error) {
	output, err := ParseOutputType(doc.Output)
	if err != nil {
		return nil, err
	}
	loc := time.UTC
	if doc.Timezone != "" {
		if loc, err = time.LoadLocation(doc.Timezone); err != nil {
			return nil, fmt.Errorf("timezone %q: %w", doc.Timezone, err)
		}
	}

	var columns []dataset.Column
	if doc.Workbook != nil {
		path := doc.Workbook.Path
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		if columns, err = dataset.ReadWorkbook(path, doc.Workbook.Sheet, loc); err != nil {
			return nil, err
		}
	}
	for _, d := range doc.Datasets {
		c, err := d.column(loc)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("chart document has no datasets")
	}
	sets := dataset.Build(columns)
	for _, id := range doc.XDataset {
		sets.MarkXDataset(id)
	}

	ri := &RenderInfo{
		Output:        output,
		FitPanelWidth: doc.FitPanelWidth,
		FixedScale:    doc.FixedScale,
		Margin:        DefaultMargin,
		Penalty:       doc.Penalty,
		Accum:         doc.Accum,
		Datasets:      sets,
		Line:          doc.Line,
		Bar:           doc.Bar,
	}
	if doc.DataAreaSize != nil {
		ri.DataAreaSize = *doc.DataAreaSize
	}
	if doc.Margin != nil {
		ri.Margin = *doc.Margin
	}
	if doc.TooltipSize != nil {
		ri.TooltipSize = *doc.TooltipSize
	}
	ri.Normalize()
	if err := ri.Validate(); err != nil {
		return nil, err
	}
	return ri, nil
}

func (d datasetDoc) column(loc *time.Location) (dataset.Column, error) {
	vt, err := dataset.ParseValueType(d.ValueType)
	if err != nil {
		return dataset.Column{}, fmt.Errorf("dataset %q: %w", d.Name, err)
	}
	c := dataset.Column{
		Name:           d.Name,
		ValueType:      vt,
		UsedAsXDataset: d.XDataset,
		Values:         make(map[time.Time]float64, len(d.Points)),
	}
	for _, p := range d.Points {
		date, err := dataset.ParseDate(p.Date, loc)
		if err != nil {
			return c, fmt.Errorf("dataset %q: %w", d.Name, err)
		}
		switch {
		case p.Number != nil:
			c.Values[date] = *p.Number
		case p.Value != nil:
			v, err := dataset.ParseValue(*p.Value)
			if err != nil {
				return c, fmt.Errorf("dataset %q on %s: %w", d.Name, p.Date, err)
			}
			if strings.Contains(*p.Value, ":") {
				c.ValueType = dataset.Time
			}
			c.Values[date] = v
		default:
			c.Missing = append(c.Missing, date)
		}
	}
	return c, nil
}
