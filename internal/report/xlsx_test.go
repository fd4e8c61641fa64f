package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stroyteam/supplydesk/internal/model"
)

type stubStore struct {
	projects  []model.Project
	warehouse map[int64][]model.WarehouseItem
}

func (s stubStore) AvailableProjects() []model.Project { return s.projects }
func (s stubStore) Warehouse(projectID int64) []model.WarehouseItem {
	return s.warehouse[projectID]
}

func TestBuild(t *testing.T) {
	t.Parallel()

	g := NewGenerator(stubStore{
		projects: []model.Project{
			{ID: 1, Name: "ЖК Северный"},
			{ID: 2, Name: "ЖК Южный"},
		},
		warehouse: map[int64][]model.WarehouseItem{
			1: {
				{ID: 10, ProjectID: 1, Name: "Цемент", Content: "М500", Quantity: 40, Unit: "мешок", Category: "вяжущие", SupplyID: 3},
			},
			2: {
				{ID: 11, ProjectID: 2, Name: "Арматура", Quantity: 500, Unit: "шт.", SupplyID: 4},
			},
		},
	})

	f, err := g.Build()
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Проект", header)

	project, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "ЖК Северный", project)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Цемент", name)

	quantity, err := f.GetCellValue(sheet, "D3")
	require.NoError(t, err)
	assert.Equal(t, "500", quantity)
}

func TestSave(t *testing.T) {
	t.Parallel()

	g := NewGenerator(stubStore{
		projects:  []model.Project{{ID: 1, Name: "ЖК Северный"}},
		warehouse: map[int64][]model.WarehouseItem{},
	})

	path := t.TempDir() + "/warehouse.xlsx"
	require.NoError(t, g.Save(path))
	assert.FileExists(t, path)
}
