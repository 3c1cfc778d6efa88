package reports

import (
	"strings"
	"time"

	"github.com/mmdatafocus/inventory_reports/models"
)

const (
	FullInventoryFileName            = "FullInventory.txt"
	PastServiceDateInventoryFileName = "PastServiceDateInventory.txt"
	DamagedInventoryFileName         = "DamagedInventory.txt"
	itemTypeInventorySuffix          = "Inventory.txt"
)

var FullInventorySpec = ReportSpec{
	Name:     "FullInventory",
	FileName: FullInventoryFileName,
	Sort:     SortSpec{Key: SortByManufacturer, Direction: Ascending},
	Fields:   []Field{FieldItemId, FieldManufacturer, FieldType, FieldPrice, FieldServiceDate, FieldDamaged},
}

var PastServiceDateInventorySpec = ReportSpec{
	Name:     "PastServiceDateInventory",
	FileName: PastServiceDateInventoryFileName,
	Filter: func(item models.Item, now time.Time) bool {
		return item.IsPastServiceAt(now)
	},
	Sort:   SortSpec{Key: SortByServiceDate, Direction: Ascending},
	Fields: []Field{FieldItemId, FieldManufacturer, FieldType, FieldPrice, FieldServiceDate, FieldDamaged},
}

var DamagedInventorySpec = ReportSpec{
	Name:     "DamagedInventory",
	FileName: DamagedInventoryFileName,
	Filter: func(item models.Item, _ time.Time) bool {
		return item.Damaged
	},
	Sort:   SortSpec{Key: SortByPrice, Direction: Descending},
	Fields: []Field{FieldItemId, FieldManufacturer, FieldType, FieldPrice, FieldServiceDate},
}

// ItemTypeInventorySpec is the per-type report for itemType.
func ItemTypeInventorySpec(itemType string) ReportSpec {
	return ReportSpec{
		Name:     itemType + "Inventory",
		FileName: ItemTypeInventoryFileName(itemType),
		Filter: func(item models.Item, _ time.Time) bool {
			return item.Type == itemType
		},
		Sort:   SortSpec{Key: SortByItemId, Direction: Ascending},
		Fields: []Field{FieldItemId, FieldManufacturer, FieldPrice, FieldServiceDate, FieldDamaged},
	}
}

// ItemTypeInventoryFileName keeps the type verbatim except for path separators.
func ItemTypeInventoryFileName(itemType string) string {
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, itemType)
	return safe + itemTypeInventorySuffix
}

func GetFullInventoryReport(inv *models.Inventory) *Report {
	return FullInventorySpec.Generate(inv.Items(), time.Time{})
}

// GetItemTypeInventoryReports returns one report per distinct type, in the
// order types first appear in the inventory.
func GetItemTypeInventoryReports(inv *models.Inventory) []*Report {
	items := inv.Items()
	types := inv.Types()
	out := make([]*Report, 0, len(types))
	for _, t := range types {
		out = append(out, ItemTypeInventorySpec(t).Generate(items, time.Time{}))
	}
	return out
}

func GetPastServiceDateInventoryReport(inv *models.Inventory, now time.Time) *Report {
	return PastServiceDateInventorySpec.Generate(inv.Items(), now)
}

func GetDamagedInventoryReport(inv *models.Inventory) *Report {
	return DamagedInventorySpec.Generate(inv.Items(), time.Time{})
}

// GetInventoryReports renders every report file for one run against a single
// cutoff instant: full, per-type, past service, damaged.
func GetInventoryReports(inv *models.Inventory, now time.Time) []*Report {
	out := []*Report{GetFullInventoryReport(inv)}
	out = append(out, GetItemTypeInventoryReports(inv)...)
	out = append(out, GetPastServiceDateInventoryReport(inv, now), GetDamagedInventoryReport(inv))
	return out
}
