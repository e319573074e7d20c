package decode

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/csvchart"
)

// Decoder reads CSV rows and coerces them into the typed records the chart
// layouts consume. The first row must be a header naming at least the
// columns required by the chart kind being decoded, any other column is
// ignored.
type Decoder struct {
	rs *csv.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	rs := csv.NewReader(r)
	rs.TrimLeadingSpace = true
	return &Decoder{
		rs: rs,
	}
}

func (d *Decoder) DecodeBar() ([]csvchart.BarRecord, error) {
	ix, err := d.header("bar", colIdent, colCategory, colValue)
	if err != nil {
		return nil, err
	}
	var all []csvchart.BarRecord
	err = d.each(func(row []string) error {
		r := csvchart.BarRecord{
			Ident:    row[ix[colIdent]],
			Category: row[ix[colCategory]],
		}
		v, err := parseNumber(r.Ident, colValue, row[ix[colValue]])
		if err != nil {
			return err
		}
		r.Value = v
		all = append(all, r)
		return nil
	})
	return all, err
}

func (d *Decoder) DecodeHistogram() ([]csvchart.HistogramRecord, error) {
	ix, err := d.header("histogram", colIdent, colValue)
	if err != nil {
		return nil, err
	}
	var all []csvchart.HistogramRecord
	err = d.each(func(row []string) error {
		r := csvchart.HistogramRecord{
			Ident: row[ix[colIdent]],
		}
		v, err := parseNumber(r.Ident, colValue, row[ix[colValue]])
		if err != nil {
			return err
		}
		r.Value = v
		all = append(all, r)
		return nil
	})
	return all, err
}

func (d *Decoder) DecodeLine() ([]csvchart.LineRecord, error) {
	ix, err := d.header("line", colIdent, colTime, colValue)
	if err != nil {
		return nil, err
	}
	var all []csvchart.LineRecord
	err = d.each(func(row []string) error {
		r := csvchart.LineRecord{
			Ident: row[ix[colIdent]],
		}
		when, err := parseTime(r.Ident, colTime, row[ix[colTime]])
		if err != nil {
			return err
		}
		v, err := parseNumber(r.Ident, colValue, row[ix[colValue]])
		if err != nil {
			return err
		}
		r.When, r.Value = when, v
		all = append(all, r)
		return nil
	})
	return all, err
}

func (d *Decoder) DecodeDoughnut() ([]csvchart.DoughnutRecord, error) {
	ix, err := d.header("doughnut", colIdent, colCategory, colValue)
	if err != nil {
		return nil, err
	}
	var all []csvchart.DoughnutRecord
	err = d.each(func(row []string) error {
		r := csvchart.DoughnutRecord{
			Ident:    row[ix[colIdent]],
			Category: row[ix[colCategory]],
		}
		v, err := parseNumber(r.Ident, colValue, row[ix[colValue]])
		if err != nil {
			return err
		}
		r.Value = v
		all = append(all, r)
		return nil
	})
	return all, err
}

func (d *Decoder) DecodeHexbin() ([]csvchart.HexbinRecord, error) {
	ix, err := d.header("hexbin", colIdent, colInd, colDep)
	if err != nil {
		return nil, err
	}
	var all []csvchart.HexbinRecord
	err = d.each(func(row []string) error {
		r := csvchart.HexbinRecord{
			Ident: row[ix[colIdent]],
		}
		x, err := parseNumber(r.Ident, colInd, row[ix[colInd]])
		if err != nil {
			return err
		}
		y, err := parseNumber(r.Ident, colDep, row[ix[colDep]])
		if err != nil {
			return err
		}
		r.X, r.Y = x, y
		all = append(all, r)
		return nil
	})
	return all, err
}

const (
	colIdent    = "id"
	colCategory = "category"
	colValue    = "value"
	colTime     = "time"
	colInd      = "independent"
	colDep      = "dependent"
)

func (d *Decoder) header(chart string, fields ...string) (map[string]int, error) {
	row, err := d.rs.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, csvchart.SchemaError{Chart: chart, Fields: fields}
		}
		return nil, err
	}
	ix := make(map[string]int)
	for i, name := range row {
		ix[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, f := range fields {
		if _, ok := ix[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, csvchart.SchemaError{Chart: chart, Fields: missing}
	}
	return ix, nil
}

func (d *Decoder) each(decode func([]string) error) error {
	for {
		row, err := d.rs.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := decode(row); err != nil {
			return err
		}
	}
}

func parseNumber(ident, field, str string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, csvchart.ValueError{Ident: ident, Field: field, Value: str}
	}
	return v, nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(ident, field, str string) (time.Time, error) {
	str = strings.TrimSpace(str)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return t, nil
		}
	}
	// bare numbers are taken as unix epoch seconds
	if v, err := strconv.ParseFloat(str, 64); err == nil {
		sec := int64(v)
		nsec := int64((v - float64(sec)) * 1e9)
		return time.Unix(sec, nsec).UTC(), nil
	}
	return time.Time{}, csvchart.ValueError{Ident: ident, Field: field, Value: str}
}
