package action

import "github.com/andrescamacho/starfront-go/internal/domain/resource"

// Action names. Also the keys of the cost table and the labels used in
// metrics and logs.
const (
	NameBurn        = "burn"
	NameEnterSector = "enter"
	NameEscape      = "escape"
	NameRaiseOrbit  = "raise"
	NameLowerOrbit  = "lower"
	NameLand        = "land"
	NameTakeOff     = "takeoff"
	NameRelocate    = "relocate"
	NameDock        = "dock"
	NameUndock      = "undock"
	NameMine        = "mine"
	NameRefine      = "refine"
	NameClaim       = "claim"
	NameBuyResource = "buy"
	NameSell        = "sell"
	NameBuyModule   = "buy-module"
	NameSellModule  = "sell-module"
	NameRepair      = "repair"
	NameBuyExpander = "buy-expander"
	NameActivate    = "activate"
	NameDeactivate  = "deactivate"
	NameUpkeep      = "upkeep"
	NameEngage      = "engage"
	NameFire        = "fire"
	NameFlee        = "flee"
	NamePursue      = "pursue"
	NameSurrender   = "surrender"
	NameDistress    = "distress"
	NameJoinFaction = "join"
	NameLeave       = "leave"
)

var costs = map[string]resource.Cost{
	NameBurn:        {Resource: resource.Fuel, Amount: 1},
	NameEnterSector: {Resource: resource.Fuel, Amount: 1},
	NameEscape:      {Resource: resource.Fuel, Amount: 1},
	NameRaiseOrbit:  {Resource: resource.Fuel, Amount: 1},
	NameLowerOrbit:  {Resource: resource.Fuel, Amount: 0},
	NameLand:        {Resource: resource.Fuel, Amount: 2},
	NameTakeOff:     {Resource: resource.Fuel, Amount: 2},
	NameRelocate:    {Resource: resource.Fuel, Amount: 1},
	NameMine:        {Resource: resource.Energy, Amount: 1},
	NameRefine:      {Resource: resource.Energy, Amount: 1},
	NameEngage:      {Resource: resource.Energy, Amount: 1},
	NameFlee:        {Resource: resource.Fuel, Amount: 2},
	NamePursue:      {Resource: resource.Fuel, Amount: 2},
}

// CostOf returns the fixed resource cost of an action; actions missing from
// the table are free
func CostOf(name string) resource.Cost {
	return costs[name]
}

// Claim prices in credits
const (
	RegionClaimPrice  = 100
	PlanetClaimPrice  = 400
	StationClaimPrice = 800
)
