package warehouse

import "github.com/shauritanga/rtexpress-sub000/internal/entities"

func ToDomain(w *WarehouseDB) *entities.Warehouse {
	if w == nil {
		return nil
	}
	return &entities.Warehouse{
		ID:        w.ID,
		Name:      w.Name,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
