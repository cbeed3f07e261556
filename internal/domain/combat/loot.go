package combat

import (
	"fmt"

	"github.com/andrescamacho/starfront-go/internal/domain/ledger"
	"github.com/andrescamacho/starfront-go/internal/domain/resource"
	"github.com/andrescamacho/starfront-go/internal/domain/ship"
	"github.com/andrescamacho/starfront-go/internal/domain/world"
)

// Salvage ratios
const (
	creditShare     = 2 // victor takes 1/creditShare of the victim's credits
	resourceShare   = 2
	expanderShare   = 2
	moduleChanceNum = 1
	moduleChanceDen = 3
)

// Salvage moves a share of victim's wreck to victor: half the credits, each
// module with probability 1/3 while victor has a free slot, half of every
// resource (overflow discarded) and half of every expander count (bounded
// by the cap)
func Salvage(w *world.World, victor, victim *ship.Ship) {
	if credits := victim.Credits() / creditShare; credits > 0 {
		w.Transfer(victim, ledger.TransactionSalvage, -credits, "wreck salvaged by "+victor.Name(), victor.Name())
		w.Transfer(victor, ledger.TransactionSalvage, credits, "salvage from "+victim.Name(), victim.Name())
	}

	vInv, wInv := victor.Inventory(), victim.Inventory()
	for _, m := range append([]*resource.Module(nil), wInv.Modules()...) {
		if !w.Rand().Chance(moduleChanceNum, moduleChanceDen) || !vInv.HasFreeSlot() {
			continue
		}
		taken, err := resource.DecodeModule(m.Encode())
		if err != nil {
			continue
		}
		taken.SetActive(false)
		if vInv.AddModule(taken) == nil {
			wInv.RemoveModule(m)
			w.Notify(victor, fmt.Sprintf("%s salvages a %s", victor.Name(), m.Name()), world.SoundCoins)
		}
	}

	for _, k := range resource.Kinds {
		from, to := wInv.Get(k), vInv.Get(k)
		if units := from.Amount() / resourceShare; units > 0 {
			from.ChangeAmount(-units)
			to.ChangeAmountWithDiscard(units)
		}
		if n := min(from.Expanders()/expanderShare, resource.MaxExpanders-to.Expanders()); n > 0 {
			_ = to.Expand(n)
		}
	}
}
