package dto

import "github.com/jhoicas/logistics-api/internal/domain/entity"

// FromUser arma el perfil público de un usuario.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		Username: u.Username,
		UnitID:   u.UnitID,
		UnitName: u.UnitName,
		Role:     u.Role,
	}
}

// FromUnit convierte la entidad a su respuesta.
func FromUnit(u *entity.Unit) UnitResponse {
	return UnitResponse{
		ID:        u.ID,
		Name:      u.Name,
		Volume:    u.Volume,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromProduct convierte la entidad a su respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		UnitID:        p.UnitID,
		Name:          p.Name,
		Quantity:      p.Quantity,
		SoldQuantity:  p.SoldQuantity,
		Weight:        p.Weight,
		Volume:        p.Volume,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Manufacturer:  p.Manufacturer,
		UnitGain:      p.UnitGain,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromProducts convierte una lista; nunca devuelve nil para que el JSON sea [].
func FromProducts(list []*entity.Product) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, FromProduct(p))
	}
	return items
}
