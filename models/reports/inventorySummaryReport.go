package reports

import (
	"time"

	"github.com/mmdatafocus/inventory_reports/models"
	"github.com/shopspring/decimal"
)

type InventorySummaryResponse struct {
	ItemType         string          `json:"itemType"`
	ItemCount        int             `json:"itemCount"`
	DamagedCount     int             `json:"damagedCount"`
	PastServiceCount int             `json:"pastServiceCount"`
	AvailableCount   int             `json:"availableCount"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
}

func (r *InventorySummaryResponse) GetCellValues() []interface{} {
	return []interface{}{
		r.ItemType,
		r.ItemCount,
		r.DamagedCount,
		r.PastServiceCount,
		r.AvailableCount,
		r.TotalValue.StringFixed(2),
		r.AveragePrice.StringFixed(2),
	}
}

var InventorySummaryHeadings = []string{
	"ItemType", "ItemCount", "DamagedCount", "PastServiceCount", "AvailableCount", "TotalValue", "AveragePrice",
}

// GetInventorySummaryReport values the inventory per type, in first-seen type
// order. Available means not damaged with a service date after now.
func GetInventorySummaryReport(inv *models.Inventory, now time.Time) []*InventorySummaryResponse {
	byType := map[string]*InventorySummaryResponse{}
	var out []*InventorySummaryResponse
	for _, item := range inv.Items() {
		row, ok := byType[item.Type]
		if !ok {
			row = &InventorySummaryResponse{ItemType: item.Type, TotalValue: decimal.Zero}
			byType[item.Type] = row
			out = append(out, row)
		}
		row.ItemCount++
		if item.Damaged {
			row.DamagedCount++
		}
		if item.IsPastServiceAt(now) {
			row.PastServiceCount++
		}
		if item.IsAvailableAt(now) {
			row.AvailableCount++
		}
		row.TotalValue = row.TotalValue.Add(decimal.NewFromInt(int64(item.Price)))
	}
	for _, row := range out {
		row.AveragePrice = row.TotalValue.Div(decimal.NewFromInt(int64(row.ItemCount))).Round(2)
	}
	return out
}
