package action

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/shared"
)

// Parse turns a textual command ("burn north", "buy fuel 5", "fire 3
// energy") into an action. Multi-word arguments such as region or item
// names are joined back with spaces.
func Parse(command string) (Action, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]
	rest := strings.Join(args, " ")

	switch verb {
	case NameBurn:
		d, err := shared.ParseDirection(rest)
		if err != nil {
			return nil, err
		}
		return Burn{Direction: d}, nil
	case NameEnterSector:
		return EnterSector{}, nil
	case NameEscape:
		return EscapeSector{}, nil
	case NameRaiseOrbit:
		return RaiseOrbit{}, nil
	case NameLowerOrbit:
		return LowerOrbit{}, nil
	case NameLand:
		return Land{Region: rest}, nil
	case NameTakeOff:
		return TakeOff{}, nil
	case NameRelocate:
		return Relocate{Region: rest}, nil
	case NameDock:
		return Dock{}, nil
	case NameUndock:
		return Undock{}, nil
	case NameMine:
		return Mine{}, nil
	case NameRefine:
		return Refine{}, nil
	case NameClaim:
		return Claim{}, nil
	case NameBuyResource, NameSell:
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: %s <resource> <quantity>", verb)
		}
		kind, err := resource.ParseKind(args[0])
		if err != nil {
			return nil, err
		}
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q", args[1])
		}
		if verb == NameSell {
			return SellResource{Kind: kind, Quantity: qty}, nil
		}
		return BuyResource{Kind: kind, Quantity: qty}, nil
	case NameBuyModule:
		return BuyModule{Item: rest}, nil
	case NameSellModule:
		return SellModule{Item: rest}, nil
	case NameRepair:
		return RepairModule{Item: rest}, nil
	case NameBuyExpander:
		kind, err := resource.ParseKind(rest)
		if err != nil {
			return nil, err
		}
		return BuyExpander{Kind: kind}, nil
	case NameActivate, NameDeactivate:
		effect, err := parseEffect(rest)
		if err != nil {
			return nil, err
		}
		if verb == NameActivate {
			return ActivateModule{Effect: effect}, nil
		}
		return DeactivateModule{Effect: effect}, nil
	case NameEngage, NamePursue:
		id, err := parseShipID(rest)
		if err != nil {
			return nil, err
		}
		if verb == NameEngage {
			return Engage{Target: id}, nil
		}
		return Pursue{Target: id}, nil
	case NameFire:
		if len(args) != 2 {
			return nil, fmt.Errorf("usage: fire <ship> <energy|ammunition|beam>")
		}
		id, err := parseShipID(args[0])
		if err != nil {
			return nil, err
		}
		class, err := parseWeaponClass(args[1])
		if err != nil {
			return nil, err
		}
		return Fire{Target: id, Class: class}, nil
	case NameFlee:
		return Flee{}, nil
	case NameSurrender:
		return Surrender{}, nil
	case NameDistress:
		return Distress{}, nil
	case NameJoinFaction:
		return JoinFaction{Faction: shared.FactionID(rest)}, nil
	case NameLeave:
		return LeaveFaction{}, nil
	}
	return nil, fmt.Errorf("unknown command %q", verb)
}

func parseShipID(raw string) (shared.ShipID, error) {
	v, err := strconv.Atoi(strings.TrimPrefix(raw, "ship-"))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid ship id %q", raw)
	}
	return shared.ShipID(v), nil
}

func parseEffect(raw string) (resource.Effect, error) {
	for _, e := range []resource.Effect{resource.EffectShield, resource.EffectCloak} {
		if strings.EqualFold(e.String(), raw) {
			return e, nil
		}
	}
	return resource.EffectNone, fmt.Errorf("unknown effect %q", raw)
}

func parseWeaponClass(raw string) (resource.WeaponClass, error) {
	for _, c := range resource.WeaponPriority {
		if strings.EqualFold(c.String(), raw) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown weapon class %q", raw)
}
