package queries

import (
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
)

// ShipDTO is a read-only view of a ship for presentation layers
type ShipDTO struct {
	ID             int
	Name           string
	Controller     string
	Specialization string
	Faction        string
	Credits        int
	Location       string
	Destination    string
	Destroyed      bool
	Resources      map[string]ResourceDTO
	Modules        []ModuleDTO
	Reputation     map[string]int
}

type ResourceDTO struct {
	Amount    int
	Capacity  int
	Expanders int
}

type ModuleDTO struct {
	Name    string
	Active  bool
	Damaged bool
}

func toShipDTO(s *ship.Ship) ShipDTO {
	dto := ShipDTO{
		ID:             int(s.ID()),
		Name:           s.Name(),
		Controller:     string(s.Controller()),
		Specialization: string(s.Specialization()),
		Faction:        string(s.Faction()),
		Credits:        s.Credits(),
		Location:       s.Location().String(),
		Destroyed:      s.IsDestroyed(),
		Resources:      make(map[string]ResourceDTO, len(resource.Kinds)),
		Reputation:     make(map[string]int),
	}
	if dest, ok := s.Destination(); ok {
		dto.Destination = dest.String()
	}
	for _, k := range resource.Kinds {
		r := s.Inventory().Get(k)
		dto.Resources[string(k)] = ResourceDTO{Amount: r.Amount(), Capacity: r.Capacity(), Expanders: r.Expanders()}
	}
	for _, m := range s.Inventory().Modules() {
		dto.Modules = append(dto.Modules, ModuleDTO{Name: m.Name(), Active: m.IsActive(), Damaged: m.IsDamaged()})
	}
	for _, f := range s.Reputation().Factions() {
		dto.Reputation[string(f)] = s.Reputation().Get(f)
	}
	return dto
}
