package models

import (
	"slices"
	"time"
)

// Item is one joined inventory record.
type Item struct {
	ItemId       string    `json:"itemId"`
	Manufacturer string    `json:"manufacturer"`
	Type         string    `json:"type"`
	Damaged      bool      `json:"damaged"`
	Price        int       `json:"price"`
	ServiceDate  time.Time `json:"serviceDate"`
}

// IsAvailableAt reports whether the item can be offered at now:
// not damaged and next service strictly in the future.
func (i Item) IsAvailableAt(now time.Time) bool {
	return !i.Damaged && i.ServiceDate.After(now)
}

// IsPastServiceAt reports whether the scheduled service date is strictly before now.
func (i Item) IsPastServiceAt(now time.Time) bool {
	return i.ServiceDate.Before(now)
}

type ManufacturerAttributes struct {
	Manufacturer string
	Type         string
	Damaged      bool
}

// ManufacturerList is the manufacturer feed keyed by item id. It remembers the
// order ids were first seen; that order becomes the inventory order.
type ManufacturerList struct {
	keys  []string
	attrs map[string]ManufacturerAttributes
}

func NewManufacturerList() *ManufacturerList {
	return &ManufacturerList{attrs: map[string]ManufacturerAttributes{}}
}

// Set stores attrs for id. A repeated id replaces the attributes but keeps its position.
func (l *ManufacturerList) Set(id string, attrs ManufacturerAttributes) {
	if _, ok := l.attrs[id]; !ok {
		l.keys = append(l.keys, id)
	}
	l.attrs[id] = attrs
}

func (l *ManufacturerList) Get(id string) (ManufacturerAttributes, bool) {
	a, ok := l.attrs[id]
	return a, ok
}

func (l *ManufacturerList) Keys() []string {
	return slices.Clone(l.keys)
}

func (l *ManufacturerList) Len() int {
	return len(l.keys)
}

type PriceList map[string]int

type ServiceDateList map[string]time.Time

// Inventory is the read-only joined record set.
type Inventory struct {
	ids   []string
	items map[string]Item
}

func (inv *Inventory) Len() int {
	return len(inv.ids)
}

// Items returns a copy of every record in inventory order.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.ids))
	for _, id := range inv.ids {
		out = append(out, inv.items[id])
	}
	return out
}

func (inv *Inventory) Get(id string) (Item, bool) {
	item, ok := inv.items[id]
	return item, ok
}

// Types lists distinct type values in first-seen order.
func (inv *Inventory) Types() []string {
	return inv.distinct(func(i Item) string { return i.Type })
}

// Manufacturers lists distinct manufacturer values in first-seen order.
func (inv *Inventory) Manufacturers() []string {
	return inv.distinct(func(i Item) string { return i.Manufacturer })
}

func (inv *Inventory) distinct(field func(Item) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, id := range inv.ids {
		v := field(inv.items[id])
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
