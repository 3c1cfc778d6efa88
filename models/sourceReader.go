package models

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmdatafocus/inventory_reports/utils"
)

const damagedMarker = "damaged"

// ReadManufacturerList parses "id,manufacturer,type[,damaged]" rows.
// A row is damaged when any of its fields reads "damaged" in any case.
func ReadManufacturerList(r io.Reader, source string) (*ManufacturerList, error) {
	list := NewManufacturerList()
	err := scanRows(r, source, 3, func(fields []string, line int) error {
		damaged := false
		for _, f := range fields {
			if strings.EqualFold(f, damagedMarker) {
				damaged = true
				break
			}
		}
		list.Set(fields[0], ManufacturerAttributes{
			Manufacturer: fields[1],
			Type:         fields[2],
			Damaged:      damaged,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ReadPriceList parses "id,price" rows with an integer price.
func ReadPriceList(r io.Reader, source string) (PriceList, error) {
	prices := PriceList{}
	err := scanRows(r, source, 2, func(fields []string, line int) error {
		price, err := strconv.Atoi(fields[1])
		if err != nil {
			return &SourceRowError{Source: source, Line: line, Reason: fmt.Sprintf("price %q is not an integer", fields[1])}
		}
		prices[fields[0]] = price
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prices, nil
}

// ReadServiceDates parses "id,MM/DD/YYYY" rows.
func ReadServiceDates(r io.Reader, source string) (ServiceDateList, error) {
	dates := ServiceDateList{}
	err := scanRows(r, source, 2, func(fields []string, line int) error {
		d, err := utils.ParseDate(fields[1])
		if err != nil {
			return &SourceRowError{Source: source, Line: line, Reason: fmt.Sprintf("service date %q is not MM/DD/YYYY", fields[1])}
		}
		dates[fields[0]] = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// scanRows splits each non-blank line on commas, trims the fields and hands
// them to fn. Rows with fewer than minFields fields or an empty id are errors.
func scanRows(r io.Reader, source string, minFields int, fn func(fields []string, line int) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) < minFields {
			return &SourceRowError{Source: source, Line: line, Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(fields))}
		}
		if fields[0] == "" {
			return &SourceRowError{Source: source, Line: line, Reason: "empty item id"}
		}
		if err := fn(fields, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
