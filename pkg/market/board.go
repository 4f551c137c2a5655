// Package market keeps the mandi price board shown on the market tab.
// Prices start from a built-in snapshot and can be overridden from local
// CSV/XLSX files or refreshed from a configured web page.
package market

import (
	"encoding/csv"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"

	"farmmate/entities"
)

const defaultUnit = "INR/quintal"

func Defaults() []entities.MarketPrice {
	return []entities.MarketPrice{
		{NameKey: "wheat", Price: 2450, Change: 2.3, Unit: defaultUnit},
		{NameKey: "rice", Price: 3200, Change: 0.8, Unit: defaultUnit},
		{NameKey: "soybean", Price: 4820, Change: -1.5, Unit: defaultUnit},
		{NameKey: "cotton", Price: 7150, Change: 3.1, Unit: defaultUnit},
		{NameKey: "sugarcane", Price: 3100, Change: 1.2, Unit: defaultUnit},
		{NameKey: "onion", Price: 1890, Change: -4.2, Unit: defaultUnit},
	}
}

type Board struct {
	mu     sync.RWMutex
	prices []entities.MarketPrice
}

func NewBoard() *Board { return &Board{prices: Defaults()} }

func (b *Board) Prices() []entities.MarketPrice {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]entities.MarketPrice, len(b.prices))
	copy(out, b.prices)
	return out
}

func (b *Board) set(ps []entities.MarketPrice) {
	b.mu.Lock()
	b.prices = ps
	b.mu.Unlock()
}

// LoadFromFiles overrides the built-in snapshot, best-effort: a missing or
// unreadable file leaves the current board alone.
func (b *Board) LoadFromFiles(csvPath, xlsxPath string) {
	if csvPath != "" {
		if err := b.loadCSV(csvPath); err != nil {
			log.Printf("[market] csv load warn: %v", err)
		}
	}
	if xlsxPath != "" {
		if err := b.loadXLSX(xlsxPath); err != nil {
			log.Printf("[market] xlsx load warn: %v", err)
		}
	}
}

func (b *Board) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil { return err }
	defer f.Close()

	cr := csv.NewReader(f)
	head, err := cr.Read()
	if err != nil { return err }

	cols, err := headerIndex(head)
	if err != nil { return err }

	var out []entities.MarketPrice
	for {
		rec, err := cr.Read()
		if err != nil { break }
		if p, ok := rowToPrice(rec, cols); ok { out = append(out, p) }
	}
	if len(out) == 0 { return errors.New("no price rows in " + path) }
	b.set(out)
	log.Printf("[market] loaded %d prices from %s", len(out), path)
	return nil
}

func (b *Board) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil { return err }
	defer x.Close()

	sheet := x.GetSheetName(x.GetActiveSheetIndex())
	rows, err := x.GetRows(sheet)
	if err != nil { return err }
	if len(rows) < 2 { return errors.New("no price rows in " + path) }

	cols, err := headerIndex(rows[0])
	if err != nil { return err }

	var out []entities.MarketPrice
	for _, rec := range rows[1:] {
		if p, ok := rowToPrice(rec, cols); ok { out = append(out, p) }
	}
	if len(out) == 0 { return errors.New("no price rows in " + path) }
	b.set(out)
	log.Printf("[market] loaded %d prices from %s", len(out), path)
	return nil
}

type colIndex struct{ name, price, change, unit int }

// headerIndex matches columns by normalized header name, accepting the
// aliases seen in the field-collected sheets.
func headerIndex(head []string) (colIndex, error) {
	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF") // BOM
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok { return idx }
		}
		return -1
	}
	c := colIndex{
		name:   findAny("crop", "name", "name_key", "commodity"),
		price:  findAny("price", "modal_price", "price_per_quintal"),
		change: findAny("change", "change_pct", "delta"),
		unit:   findAny("unit"),
	}
	if c.name < 0 || c.price < 0 {
		return c, errors.New("header needs crop and price columns")
	}
	return c, nil
}

func rowToPrice(rec []string, cols colIndex) (entities.MarketPrice, bool) {
	get := func(i int) string {
		if i < 0 || i >= len(rec) { return "" }
		return strings.TrimSpace(rec[i])
	}
	name := strings.ToLower(get(cols.name))
	price, err := strconv.ParseFloat(get(cols.price), 64)
	if name == "" || err != nil {
		return entities.MarketPrice{}, false
	}
	change, _ := strconv.ParseFloat(get(cols.change), 64)
	unit := get(cols.unit)
	if unit == "" { unit = defaultUnit }
	return entities.MarketPrice{NameKey: name, Price: price, Change: change, Unit: unit}, true
}
