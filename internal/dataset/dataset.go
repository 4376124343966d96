// dataset.go

// Package dataset holds the time-indexed series a chart is drawn from.
package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// ValueType tells how values of a dataset should be printed.
type ValueType int

const (
	Number ValueType = iota
	// Time values are seconds after midnight.
	Time
)

func (v ValueType) String() string {
	if v == Time {
		return "time"
	}
	return "number"
}

// ParseValueType accepts "number" and "time", case-insensitively. Empty means Number.
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "number", "int", "float":
		return Number, nil
	case "time":
		return Time, nil
	default:
		return Number, fmt.Errorf("unknown value type %q", s)
	}
}

// --- Single Dataset ---

// DataPoint is one sample. Valid is false for a missing value.
type DataPoint struct {
	Date  time.Time
	Value float64
	Valid bool
}

// Dataset is an ordered series of points sharing the dates of its collection.
type Dataset struct {
	id             int
	name           string
	valueType      ValueType
	points         []DataPoint
	usedAsXDataset bool

	yMin, yMax float64
	hasRange   bool
}

// New creates a dataset. Points are kept in the given order.
func New(id int, name string, valueType ValueType, points []DataPoint) *Dataset {
	ds := &Dataset{
		id:        id,
		name:      name,
		valueType: valueType,
		points:    append([]DataPoint(nil), points...),
	}
	ds.updateRange()
	return ds
}

func (ds *Dataset) ID() int              { return ds.id }
func (ds *Dataset) Name() string         { return ds.name }
func (ds *Dataset) ValueType() ValueType { return ds.valueType }
func (ds *Dataset) Len() int             { return len(ds.points) }
func (ds *Dataset) UsedAsXDataset() bool { return ds.usedAsXDataset }

// Points returns a copy of the points.
func (ds *Dataset) Points() []DataPoint {
	return append([]DataPoint(nil), ds.points...)
}

// ValidPoints returns the points that carry a value, in order.
func (ds *Dataset) ValidPoints() []DataPoint {
	out := make([]DataPoint, 0, len(ds.points))
	for _, p := range ds.points {
		if p.Valid {
			out = append(out, p)
		}
	}
	return out
}

// YMin is the smallest value. ok is false when the dataset has no values.
func (ds *Dataset) YMin() (float64, bool) { return ds.yMin, ds.hasRange }

// YMax is the largest value. ok is false when the dataset has no values.
func (ds *Dataset) YMax() (float64, bool) { return ds.yMax, ds.hasRange }

// SetPenalty substitutes penalty for every missing value.
func (ds *Dataset) SetPenalty(penalty float64) {
	for i := range ds.points {
		if !ds.points[i].Valid {
			ds.points[i].Value = penalty
			ds.points[i].Valid = true
		}
	}
	ds.updateRange()
}

// AccumulateValues replaces each value with the running total up to it.
// A missing value takes the total so far.
func (ds *Dataset) AccumulateValues() {
	total := 0.0
	for i := range ds.points {
		if ds.points[i].Valid {
			total += ds.points[i].Value
		}
		ds.points[i].Value = total
		ds.points[i].Valid = true
	}
	ds.updateRange()
}

// Clone returns a deep copy.
func (ds *Dataset) Clone() *Dataset {
	c := *ds
	c.points = append([]DataPoint(nil), ds.points...)
	return &c
}

func (ds *Dataset) updateRange() {
	ds.hasRange = false
	ds.yMin, ds.yMax = 0, 0
	for _, p := range ds.points {
		if !p.Valid || math.IsNaN(p.Value) {
			continue
		}
		if !ds.hasRange {
			ds.yMin, ds.yMax = p.Value, p.Value
			ds.hasRange = true
			continue
		}
		ds.yMin = math.Min(ds.yMin, p.Value)
		ds.yMax = math.Max(ds.yMax, p.Value)
	}
}

// --- Aligned Datasets ---

// Datasets is the ordered collection handed to a chart. Dataset ids are
// their positions in the collection.
type Datasets struct {
	dates    []time.Time
	datasets []*Dataset
}

// Column is a named series of dated values before alignment.
type Column struct {
	Name           string
	ValueType      ValueType
	UsedAsXDataset bool
	Values         map[time.Time]float64
	// Dates present without a value. They still extend the date axis.
	Missing []time.Time
}

// Build aligns columns on the sorted union of their dates. Dates a column
// has no value for become missing points.
func Build(columns []Column) *Datasets {
	seen := make(map[int64]time.Time)
	for _, c := range columns {
		for d := range c.Values {
			seen[d.UnixNano()] = d
		}
		for _, d := range c.Missing {
			seen[d.UnixNano()] = d
		}
	}
	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := &Datasets{dates: dates}
	for id, c := range columns {
		byNano := make(map[int64]float64, len(c.Values))
		for d, v := range c.Values {
			byNano[d.UnixNano()] = v
		}
		points := make([]DataPoint, len(dates))
		for i, d := range dates {
			v, ok := byNano[d.UnixNano()]
			points[i] = DataPoint{Date: d, Value: v, Valid: ok}
		}
		ds := New(id, c.Name, c.ValueType, points)
		ds.usedAsXDataset = c.UsedAsXDataset
		out.datasets = append(out.datasets, ds)
	}
	return out
}

// NewDatasets wraps already aligned datasets. Their ids are reassigned to
// their positions.
func NewDatasets(dates []time.Time, sets ...*Dataset) *Datasets {
	out := &Datasets{dates: append([]time.Time(nil), dates...)}
	for i, ds := range sets {
		ds.id = i
		out.datasets = append(out.datasets, ds)
	}
	return out
}

// MarkXDataset flags the dataset with the given id as the time axis source.
func (d *Datasets) MarkXDataset(id int) {
	if ds := d.ByID(id); ds != nil {
		ds.usedAsXDataset = true
	}
}

// Dates returns the shared dates in ascending order.
func (d *Datasets) Dates() []time.Time {
	return append([]time.Time(nil), d.dates...)
}

// Len is the number of datasets.
func (d *Datasets) Len() int { return len(d.datasets) }

// All returns the datasets in id order.
func (d *Datasets) All() []*Dataset {
	return append([]*Dataset(nil), d.datasets...)
}

// ByID returns the dataset with the given id or nil.
func (d *Datasets) ByID(id int) *Dataset {
	if id < 0 || id >= len(d.datasets) {
		return nil
	}
	return d.datasets[id]
}

// XDatasetIDs lists the ids of datasets used as the time axis.
func (d *Datasets) XDatasetIDs() []int {
	var ids []int
	for _, ds := range d.datasets {
		if ds.usedAsXDataset {
			ids = append(ids, ds.id)
		}
	}
	return ids
}

// IsXDataset reports whether id is used as the time axis.
func (d *Datasets) IsXDataset(id int) bool {
	ds := d.ByID(id)
	return ds != nil && ds.usedAsXDataset
}

// Names returns every dataset name, X datasets included, in id order.
func (d *Datasets) Names() []string {
	names := make([]string, len(d.datasets))
	for i, ds := range d.datasets {
		names[i] = ds.name
	}
	return names
}

// Clone returns a deep copy so preprocessing can mutate values freely.
func (d *Datasets) Clone() *Datasets {
	out := &Datasets{dates: append([]time.Time(nil), d.dates...)}
	for _, ds := range d.datasets {
		out.datasets = append(out.datasets, ds.Clone())
	}
	return out
}
