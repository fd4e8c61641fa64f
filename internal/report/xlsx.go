// Package report renders the cached warehouse state into an XLSX workbook,
// one row per stock record across every visible project.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stroyteam/supplydesk/internal/model"
)

// Store is the slice of the domain store the report reads from.
type Store interface {
	AvailableProjects() []model.Project
	Warehouse(projectID int64) []model.WarehouseItem
}

type Generator struct {
	store Store
}

func NewGenerator(store Store) *Generator {
	return &Generator{store: store}
}

var header = []any{
	"Проект",
	"Материал",
	"Состав",
	"Количество",
	"Ед. изм.",
	"Категория",
	"Поставка",
}

// Build assembles the workbook in memory. The caller owns the returned file
// and must Close it.
func (g *Generator) Build() (*excelize.File, error) {
	const op = "report.Build"

	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: header: %w", op, err)
	}

	row := 2
	for _, p := range g.store.AvailableProjects() {
		for _, it := range g.store.Warehouse(p.ID) {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("%s: row %d: %w", op, row, err)
			}

			values := []any{
				p.Name,
				it.Name,
				it.Content,
				it.Quantity,
				it.Unit,
				it.Category,
				it.SupplyID,
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				_ = f.Close()
				return nil, fmt.Errorf("%s: row %d: %w", op, row, err)
			}
			row++
		}
	}

	return f, nil
}

// Save builds the workbook and writes it to path.
func (g *Generator) Save(path string) error {
	const op = "report.Save"

	f, err := g.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
