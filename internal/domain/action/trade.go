package action

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/galaxy"
	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/location"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

func stationFor(w *world.World, d location.Docked) (*galaxy.Station, bool) {
	sector, ok := w.Galaxy().SectorAt(d.Coord())
	if !ok {
		return nil, false
	}
	return sector.StationAt(d.Orbit())
}

// dockedStation resolves the station s is docked at
func dockedStation(w *world.World, s *ship.Ship, verb string) (*galaxy.Station, error) {
	d, err := dockedOnly(s, verb)
	if err != nil {
		return nil, err
	}
	station, ok := stationFor(w, d)
	if !ok {
		return nil, shared.NewRejection("station at %s is gone", d)
	}
	return station, nil
}

// BuyResource purchases units of a resource at the docked station's price
type BuyResource struct {
	Kind     resource.Kind
	Quantity int
}

func (a BuyResource) Name() string { return NameBuyResource }

func (a BuyResource) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	station, err := dockedStation(w, s, "buy")
	if err != nil {
		return err
	}
	if a.Quantity <= 0 {
		return shared.NewRejection("purchase quantity must be positive")
	}
	store := s.Inventory().Get(a.Kind)
	if store == nil {
		return shared.NewRejection("unknown resource %q", a.Kind)
	}
	if a.Quantity > store.Free() {
		return shared.NewInsufficientError(a.Kind.String()+" capacity", store.Free(), a.Quantity)
	}
	return checkCredits(s, a.Quantity*station.PriceOf(a.Kind))
}

func (a BuyResource) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a BuyResource) apply(w *world.World, s *ship.Ship) error {
	station, _ := dockedStation(w, s, "buy")
	total := a.Quantity * station.PriceOf(a.Kind)
	s.Inventory().Get(a.Kind).ChangeAmount(a.Quantity)
	w.Transfer(s, ledger.TransactionBuyResource, -total, fmt.Sprintf("buy %d %s", a.Quantity, a.Kind), station.Name)
	w.Notify(s, fmt.Sprintf("%s buys %d %s for %d credits", s.Name(), a.Quantity, a.Kind, total), world.SoundCoins)
	return nil
}

// SellResource sells units of a resource to the docked station. Hull
// plating is not for sale.
type SellResource struct {
	Kind     resource.Kind
	Quantity int
}

func (a SellResource) Name() string { return NameSell }

func (a SellResource) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, err := dockedStation(w, s, "sell"); err != nil {
		return err
	}
	if s.Inventory().Get(a.Kind) == nil {
		return shared.NewRejection("unknown resource %q", a.Kind)
	}
	if a.Kind == resource.Hull {
		return shared.NewRejection("hull plating cannot be sold")
	}
	if a.Quantity <= 0 {
		return shared.NewRejection("sale quantity must be positive")
	}
	if have := s.Inventory().Get(a.Kind).Amount(); a.Quantity > have {
		return shared.NewInsufficientError(a.Kind.String(), have, a.Quantity)
	}
	return nil
}

func (a SellResource) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a SellResource) apply(w *world.World, s *ship.Ship) error {
	station, _ := dockedStation(w, s, "sell")
	total := a.Quantity * station.PriceOf(a.Kind)
	s.Inventory().Get(a.Kind).ChangeAmount(-a.Quantity)
	w.Transfer(s, ledger.TransactionSellResource, total, fmt.Sprintf("sell %d %s", a.Quantity, a.Kind), station.Name)
	w.Notify(s, fmt.Sprintf("%s sells %d %s for %d credits", s.Name(), a.Quantity, a.Kind, total), world.SoundCoins)
	return nil
}

// BuyModule installs an item stocked by the docked station
type BuyModule struct {
	Item string
}

func (a BuyModule) Name() string { return NameBuyModule }

func (a BuyModule) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	station, err := dockedStation(w, s, "buy modules")
	if err != nil {
		return err
	}
	spec, ok := resource.LookupItem(a.Item)
	if !ok || !station.Sells(a.Item) {
		return shared.NewRejection("%s does not sell %q", station.Name, a.Item)
	}
	if !s.Inventory().HasFreeSlot() {
		return shared.NewRejection("module limit reached: have %d, max %d", s.Inventory().ModuleCount(), resource.MaxModules)
	}
	return checkCredits(s, spec.Price)
}

func (a BuyModule) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a BuyModule) apply(w *world.World, s *ship.Ship) error {
	station, _ := dockedStation(w, s, "buy modules")
	spec, _ := resource.LookupItem(a.Item)
	if err := s.Inventory().AddModule(resource.NewModule(spec)); err != nil {
		return err
	}
	w.Transfer(s, ledger.TransactionBuyModule, -spec.Price, "buy "+spec.Name, station.Name)
	w.Notify(s, fmt.Sprintf("%s installs a %s", s.Name(), spec.Name), world.SoundCoins)
	return nil
}

// SellModule uninstalls an item for half its price (a quarter if damaged)
type SellModule struct {
	Item string
}

func (a SellModule) Name() string { return NameSellModule }

func (a SellModule) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, err := dockedStation(w, s, "sell modules"); err != nil {
		return err
	}
	if s.Inventory().FindModule(a.Item) == nil {
		return shared.NewRejection("no %s installed", a.Item)
	}
	return nil
}

func (a SellModule) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a SellModule) apply(w *world.World, s *ship.Ship) error {
	station, _ := dockedStation(w, s, "sell modules")
	m := s.Inventory().FindModule(a.Item)
	proceeds := m.Spec().SalePrice()
	if m.IsDamaged() {
		proceeds /= 2
	}
	s.Inventory().RemoveModule(m)
	w.Transfer(s, ledger.TransactionSellModule, proceeds, "sell "+m.Name(), station.Name)
	w.Notify(s, fmt.Sprintf("%s sells a %s for %d credits", s.Name(), m.Name(), proceeds), world.SoundCoins)
	return nil
}

// RepairModule restores a damaged item for half its price
type RepairModule struct {
	Item string
}

func (a RepairModule) Name() string { return NameRepair }

func (a RepairModule) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, err := dockedStation(w, s, "repair"); err != nil {
		return err
	}
	m := s.Inventory().FindDamaged(a.Item)
	if m == nil {
		return shared.NewRejection("no damaged %s installed", a.Item)
	}
	return checkCredits(s, m.Spec().RepairPrice())
}

func (a RepairModule) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a RepairModule) apply(w *world.World, s *ship.Ship) error {
	station, _ := dockedStation(w, s, "repair")
	m := s.Inventory().FindDamaged(a.Item)
	m.Repair()
	w.Transfer(s, ledger.TransactionRepair, -m.Spec().RepairPrice(), "repair "+m.Name(), station.Name)
	w.Notify(s, fmt.Sprintf("%s repairs its %s", s.Name(), m.Name()), world.SoundCoins)
	return nil
}

// BuyExpander adds one expander to a resource store
type BuyExpander struct {
	Kind resource.Kind
}

func (a BuyExpander) Name() string { return NameBuyExpander }

func (a BuyExpander) CanExecute(w *world.World, s *ship.Ship) error {
	if err := checkAlive(s); err != nil {
		return err
	}
	if _, err := dockedStation(w, s, "buy expanders"); err != nil {
		return err
	}
	store := s.Inventory().Get(a.Kind)
	if store == nil {
		return shared.NewRejection("unknown resource %q", a.Kind)
	}
	if !store.CanExpand(1) {
		return shared.NewRejection("%s expanders at limit: have %d, cap %d", a.Kind, store.Expanders(), resource.MaxExpanders)
	}
	return checkCredits(s, resource.SpecFor(a.Kind).ExpanderPrice)
}

func (a BuyExpander) Execute(w *world.World, s *ship.Ship) error { return perform(w, s, a) }

func (a BuyExpander) apply(w *world.World, s *ship.Ship) error {
	station, _ := dockedStation(w, s, "buy expanders")
	price := resource.SpecFor(a.Kind).ExpanderPrice
	if err := s.Inventory().Get(a.Kind).Expand(1); err != nil {
		return err
	}
	w.Transfer(s, ledger.TransactionBuyExpander, -price, fmt.Sprintf("buy %s expander", a.Kind), station.Name)
	w.Notify(s, fmt.Sprintf("%s expands its %s capacity to %d", s.Name(), a.Kind, s.Inventory().Get(a.Kind).Capacity()), world.SoundCoins)
	return nil
}
