// Package report renders expense records into an xlsx workbook for the
// export endpoint.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"farmmate/entities"
)

const sheet = "Expenses"

func Workbook(items []entities.Expense) (*excelize.File, error) {
	x := excelize.NewFile()
	idx, err := x.NewSheet(sheet)
	if err != nil { return nil, err }
	x.SetActiveSheet(idx)
	if err := x.DeleteSheet("Sheet1"); err != nil { return nil, err }

	head := []any{"Date", "Category", "Amount", "Description"}
	if err := x.SetSheetRow(sheet, "A1", &head); err != nil { return nil, err }

	var total float64
	for i, e := range items {
		row := []any{e.Date, e.Category, e.Amount, e.Description}
		cell := fmt.Sprintf("A%d", i+2)
		if err := x.SetSheetRow(sheet, cell, &row); err != nil { return nil, err }
		total += e.Amount
	}

	footer := []any{"", "Total", total, ""}
	cell := fmt.Sprintf("A%d", len(items)+2)
	if err := x.SetSheetRow(sheet, cell, &footer); err != nil { return nil, err }
	return x, nil
}
