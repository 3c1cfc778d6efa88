package models_test

import (
	"errors"
	"testing"
	"time"

	"github.com/mmdatafocus/inventory_reports/models"
)

var (
	queryNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	future   = date(2026, 1, 1)
	past     = date(2024, 1, 1)
)

func acmeInventory(t *testing.T, extra ...row) *models.Inventory {
	t.Helper()
	rows := []row{
		{"A1", "Acme", "Widget", false, 100, future},
		{"A2", "Acme", "Widget", false, 150, future},
	}
	return mustBuild(t, append(rows, extra...)...)
}

func TestQuery_BestMatchIsHighestPrice(t *testing.T) {
	engine := models.NewQueryEngine(acmeInventory(t), models.QueryOptions{})

	res, err := engine.Query("acme widget", queryNow)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !res.Found() || res.Best.ItemId != "A2" || res.Best.Price != 150 {
		t.Fatalf("expected best match A2, got %+v", res.Best)
	}
	if res.Alternative != nil {
		t.Fatalf("expected no alternative, got %+v", res.Alternative)
	}
}

func TestQuery_AlternativeIsClosestPriceFromOtherManufacturer(t *testing.T) {
	engine := models.NewQueryEngine(acmeInventory(t,
		row{"B1", "Bolt", "Widget", false, 140, future},
		row{"C1", "Cog", "Widget", false, 300, future},
	), models.QueryOptions{})

	res, err := engine.Query("acme widget", queryNow)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Best == nil || res.Best.ItemId != "A2" {
		t.Fatalf("expected best match A2, got %+v", res.Best)
	}
	if res.Alternative == nil || res.Alternative.ItemId != "B1" {
		t.Fatalf("expected alternative B1, got %+v", res.Alternative)
	}
}

func TestQuery_CaseAndWordOrderInsensitive(t *testing.T) {
	engine := models.NewQueryEngine(acmeInventory(t), models.QueryOptions{})
	for _, phrase := range []string{"ACME Widget", "widget acme", "  please find acme   widget  "} {
		res, err := engine.Query(phrase, queryNow)
		if err != nil {
			t.Fatalf("Query(%q): %v", phrase, err)
		}
		if !res.Found() || res.Best.ItemId != "A2" {
			t.Fatalf("Query(%q): expected A2, got %+v", phrase, res.Best)
		}
	}
}

func TestQuery_NoMatch(t *testing.T) {
	cases := []struct {
		name   string
		rows   []row
		phrase string
	}{
		{"unknown manufacturer", []row{{"A1", "Acme", "Widget", false, 100, future}}, "bolt widget"},
		{"unknown type", []row{{"A1", "Acme", "Widget", false, 100, future}}, "acme gadget"},
		{"empty phrase", []row{{"A1", "Acme", "Widget", false, 100, future}}, "   "},
		{"only damaged", []row{{"A1", "Acme", "Widget", true, 100, future}}, "acme widget"},
		{"only past service", []row{{"A1", "Acme", "Widget", false, 100, past}}, "acme widget"},
		{"service exactly now", []row{{"A1", "Acme", "Widget", false, 100, queryNow}}, "acme widget"},
		{"pair not stocked", []row{
			{"A1", "Acme", "Widget", false, 100, future},
			{"B1", "Bolt", "Gadget", false, 100, future},
		}, "acme gadget"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := models.NewQueryEngine(mustBuild(t, tc.rows...), models.QueryOptions{})
			res, err := engine.Query(tc.phrase, queryNow)
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if res.Found() {
				t.Fatalf("expected no match, got %+v", res.Best)
			}
		})
	}
}

func TestQuery_TiesKeepInventoryOrder(t *testing.T) {
	engine := models.NewQueryEngine(mustBuild(t,
		row{"Z9", "Acme", "Widget", false, 150, future},
		row{"A1", "Acme", "Widget", false, 150, future},
		row{"Y2", "Bolt", "Widget", false, 160, future},
		row{"X3", "Cog", "Widget", false, 140, future},
	), models.QueryOptions{})

	res, err := engine.Query("acme widget", queryNow)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Best.ItemId != "Z9" {
		t.Fatalf("expected first equally priced item Z9, got %s", res.Best.ItemId)
	}
	// Y2 and X3 are both 10 away; the smaller id wins
	if res.Alternative == nil || res.Alternative.ItemId != "X3" {
		t.Fatalf("expected alternative X3, got %+v", res.Alternative)
	}
}

func TestQuery_AlternativeSkipsUnavailable(t *testing.T) {
	engine := models.NewQueryEngine(acmeInventory(t,
		row{"B1", "Bolt", "Widget", true, 150, future},
		row{"B2", "Bolt", "Widget", false, 150, past},
		row{"B3", "Bolt", "Gadget", false, 150, future},
	), models.QueryOptions{})

	res, err := engine.Query("acme widget", queryNow)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Alternative != nil {
		t.Fatalf("expected no alternative, got %+v", res.Alternative)
	}
}

func TestQuery_LastMatchingTokenWins(t *testing.T) {
	engine := models.NewQueryEngine(acmeInventory(t,
		row{"B1", "Bolt", "Widget", false, 90, future},
	), models.QueryOptions{})

	res, err := engine.Query("acme bolt widget", queryNow)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Best == nil || res.Best.ItemId != "B1" {
		t.Fatalf("expected Bolt match B1, got %+v", res.Best)
	}
	if res.Alternative == nil || res.Alternative.ItemId != "A1" {
		t.Fatalf("expected alternative A1, got %+v", res.Alternative)
	}
}

func TestQuery_StrictMatchingRejectsAmbiguity(t *testing.T) {
	engine := models.NewQueryEngine(acmeInventory(t,
		row{"B1", "Bolt", "Gadget", false, 90, future},
	), models.QueryOptions{StrictMatching: true})

	_, err := engine.Query("acme bolt widget", queryNow)
	var ambiguous *models.AmbiguousQueryError
	if !errors.As(err, &ambiguous) || ambiguous.Field != "manufacturer" {
		t.Fatalf("expected ambiguous manufacturer, got %v", err)
	}

	_, err = engine.Query("acme widget gadget", queryNow)
	if !errors.Is(err, models.ErrAmbiguousQuery) {
		t.Fatalf("expected ErrAmbiguousQuery, got %v", err)
	}

	// the same manufacturer twice is not ambiguous
	res, err := engine.Query("acme ACME widget", queryNow)
	if err != nil || !res.Found() || res.Best.ItemId != "A2" {
		t.Fatalf("expected A2, got %+v (err=%v)", res.Best, err)
	}
}

func TestQuery_ResultIsACopy(t *testing.T) {
	inv := acmeInventory(t)
	engine := models.NewQueryEngine(inv, models.QueryOptions{})
	res, _ := engine.Query("acme widget", queryNow)
	res.Best.Price = 1

	again, _ := engine.Query("acme widget", queryNow)
	if again.Best.Price != 150 {
		t.Fatalf("engine state changed through a result: %d", again.Best.Price)
	}
}
