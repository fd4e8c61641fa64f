package gateway

import (
	"github.com/stroyteam/supplydesk/internal/model"
)

func projectToModel(d projectDTO) model.Project {
	return model.Project{ID: d.ID, Name: d.Name, Address: d.Address}
}

func projectsToModel(dtos []projectDTO) []model.Project {
	out := make([]model.Project, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, projectToModel(d))
	}
	return out
}

func userToModel(d userDTO) model.User {
	return model.User{
		ID:         d.ID,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		MiddleName: d.MiddleName,
		Email:      d.Email,
		Role:       model.Role(d.Role),
	}
}

func usersToModel(dtos []userDTO) []model.User {
	out := make([]model.User, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, userToModel(d))
	}
	return out
}

func membershipToModel(d membershipDTO) model.Membership {
	return model.Membership{
		UserID:    d.UserID,
		ProjectID: d.ProjectID,
		Role:      model.Role(d.Role),
	}
}

func membershipsToModel(dtos []membershipDTO) []model.Membership {
	out := make([]model.Membership, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, membershipToModel(d))
	}
	return out
}

func materialToModel(d materialDTO) model.Material {
	return model.Material{
		Name:     d.Name,
		Category: d.Category,
		Content:  d.Content,
		Quantity: d.Quantity,
		Unit:     d.Unit,
	}
}

func supplyToModel(d supplyDTO) model.Supply {
	materials := make([]model.Material, 0, len(d.Materials))
	for _, m := range d.Materials {
		materials = append(materials, materialToModel(m))
	}

	return model.Supply{
		ID:            d.ID,
		ProjectID:     d.ProjectID,
		SupplyName:    d.SupplyName,
		SupplierName:  d.SupplierName,
		SupplierEmail: d.SupplierEmail,
		Materials:     materials,
		Documents:     append([]string(nil), d.Documents...),
		Status:        model.NormalizeSupplyStatus(d.DeliveryStatus, d.Status),
		CreatedAt:     d.CreatedAt,
		ExpectedDate:  d.ExpectedDate,
	}
}

func suppliesToModel(dtos []supplyDTO) []model.Supply {
	out := make([]model.Supply, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, supplyToModel(d))
	}
	return out
}

func warehouseItemToModel(d warehouseItemDTO) model.WarehouseItem {
	return model.WarehouseItem{
		ID:        d.ID,
		ProjectID: d.ProjectID,
		Name:      d.Name,
		Content:   d.Content,
		Quantity:  d.Quantity,
		Unit:      d.Unit,
		Category:  d.Category,
		SupplyID:  d.SupplyID,
		CreatedAt: d.CreatedAt,
	}
}

func warehouseItemsToModel(dtos []warehouseItemDTO) []model.WarehouseItem {
	out := make([]model.WarehouseItem, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, warehouseItemToModel(d))
	}
	return out
}

func writeOffToModel(d writeOffDTO) model.WriteOff {
	return model.WriteOff{
		ID:              d.ID,
		WarehouseItemID: d.WarehouseItemID,
		ProjectID:       d.ProjectID,
		Quantity:        d.Quantity,
		Content:         d.Content,
		Reason:          d.Reason,
		Status:          model.WriteOffStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// writeOffsToModel stamps the status the list endpoint implies: the backend
// serves pending/approved/rejected as separate collections without a status
// field on each row.
func writeOffsToModel(dtos []writeOffDTO, status model.WriteOffStatus) []model.WriteOff {
	out := make([]model.WriteOff, 0, len(dtos))
	for _, d := range dtos {
		wo := writeOffToModel(d)
		wo.Status = status
		out = append(out, wo)
	}
	return out
}
