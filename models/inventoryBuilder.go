package models

// BuildInventory joins the three feeds. The manufacturer feed decides which
// items exist and in what order; every one of them must have a price and a
// service date or the whole build fails.
func BuildInventory(manufacturers *ManufacturerList, prices PriceList, serviceDates ServiceDateList) (*Inventory, error) {
	if manufacturers == nil {
		manufacturers = NewManufacturerList()
	}
	inv := &Inventory{
		ids:   make([]string, 0, manufacturers.Len()),
		items: make(map[string]Item, manufacturers.Len()),
	}
	for _, id := range manufacturers.keys {
		attrs := manufacturers.attrs[id]
		price, ok := prices[id]
		if !ok {
			return nil, &MissingAttributeError{ItemId: id, Attribute: AttributePrice}
		}
		serviceDate, ok := serviceDates[id]
		if !ok {
			return nil, &MissingAttributeError{ItemId: id, Attribute: AttributeServiceDate}
		}
		inv.ids = append(inv.ids, id)
		inv.items[id] = Item{
			ItemId:       id,
			Manufacturer: attrs.Manufacturer,
			Type:         attrs.Type,
			Damaged:      attrs.Damaged,
			Price:        price,
			ServiceDate:  serviceDate,
		}
	}
	return inv, nil
}
