package reports

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mmdatafocus/inventory_reports/models"
	"github.com/mmdatafocus/inventory_reports/utils"
)

type SortKey string

const (
	SortByItemId       SortKey = "item_id"
	SortByManufacturer SortKey = "manufacturer"
	SortByPrice        SortKey = "price"
	SortByServiceDate  SortKey = "service_date"
)

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// SortSpec orders report rows by one key. Rows with equal keys keep their
// inventory order.
type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}

func (s SortSpec) compare(a, b models.Item) int {
	var c int
	switch s.Key {
	case SortByItemId:
		c = strings.Compare(a.ItemId, b.ItemId)
	case SortByManufacturer:
		c = strings.Compare(a.Manufacturer, b.Manufacturer)
	case SortByPrice:
		c = cmp.Compare(a.Price, b.Price)
	case SortByServiceDate:
		c = a.ServiceDate.Compare(b.ServiceDate)
	}
	if s.Direction == Descending {
		return -c
	}
	return c
}

type Field string

const (
	FieldItemId       Field = "ItemId"
	FieldManufacturer Field = "Manufacturer"
	FieldType         Field = "Type"
	FieldPrice        Field = "Price"
	FieldServiceDate  Field = "ServiceDate"
	FieldDamaged      Field = "Damaged"
)

func (f Field) text(item models.Item) string {
	switch f {
	case FieldItemId:
		return item.ItemId
	case FieldManufacturer:
		return item.Manufacturer
	case FieldType:
		return item.Type
	case FieldPrice:
		return strconv.Itoa(item.Price)
	case FieldServiceDate:
		return utils.FormatDate(item.ServiceDate)
	case FieldDamaged:
		return utils.FormatBool(item.Damaged)
	}
	return ""
}

// cellValue keeps numbers and flags typed for spreadsheet cells.
func (f Field) cellValue(item models.Item) interface{} {
	switch f {
	case FieldPrice:
		return item.Price
	case FieldDamaged:
		return item.Damaged
	}
	return f.text(item)
}

// ReportSpec declares one report: which rows, in what order, with which columns.
type ReportSpec struct {
	Name     string
	FileName string
	Filter   func(item models.Item, now time.Time) bool
	Sort     SortSpec
	Fields   []Field
}

// Report is a rendered, ordered projection of the inventory.
type Report struct {
	Name     string
	FileName string
	Fields   []Field
	Items    []models.Item
}

// Generate makes one full pass over items. now is only consulted by the filter.
func (spec ReportSpec) Generate(items []models.Item, now time.Time) *Report {
	rows := make([]models.Item, 0, len(items))
	for _, item := range items {
		if spec.Filter == nil || spec.Filter(item, now) {
			rows = append(rows, item)
		}
	}
	slices.SortStableFunc(rows, spec.Sort.compare)
	return &Report{
		Name:     spec.Name,
		FileName: spec.FileName,
		Fields:   spec.Fields,
		Items:    rows,
	}
}

func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Items))
	values := make([]string, len(r.Fields))
	for _, item := range r.Items {
		for i, f := range r.Fields {
			values[i] = f.text(item)
		}
		lines = append(lines, strings.Join(values, ","))
	}
	return lines
}

// Bytes renders the report file: one comma-delimited line per row, each
// terminated by a newline.
func (r *Report) Bytes() []byte {
	var b strings.Builder
	for _, line := range r.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func (r *Report) Headings() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = string(f)
	}
	return out
}

func (r *Report) CellValues() [][]interface{} {
	out := make([][]interface{}, 0, len(r.Items))
	for _, item := range r.Items {
		row := make([]interface{}, len(r.Fields))
		for i, f := range r.Fields {
			row[i] = f.cellValue(item)
		}
		out = append(out, row)
	}
	return out
}
