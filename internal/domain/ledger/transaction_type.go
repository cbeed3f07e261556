package ledger

import "fmt"

// TransactionType classifies a credit movement
type TransactionType string

const (
	TransactionBuyResource  TransactionType = "BUY_RESOURCE"
	TransactionSellResource TransactionType = "SELL_RESOURCE"
	TransactionBuyModule    TransactionType = "BUY_MODULE"
	TransactionSellModule   TransactionType = "SELL_MODULE"
	TransactionBuyExpander  TransactionType = "BUY_EXPANDER"
	TransactionRepair       TransactionType = "REPAIR"
	TransactionClaim        TransactionType = "CLAIM"
	TransactionSalvage      TransactionType = "SALVAGE"
	TransactionSurrender    TransactionType = "SURRENDER"
)

// Category is the cash flow bucket a type reports under
type Category string

const (
	CategoryTrading   Category = "TRADING"
	CategoryEquipment Category = "EQUIPMENT"
	CategoryTerritory Category = "TERRITORY"
	CategoryCombat    Category = "COMBAT"
)

var typeCategories = map[TransactionType]Category{
	TransactionBuyResource:  CategoryTrading,
	TransactionSellResource: CategoryTrading,
	TransactionBuyModule:    CategoryEquipment,
	TransactionSellModule:   CategoryEquipment,
	TransactionBuyExpander:  CategoryEquipment,
	TransactionRepair:       CategoryEquipment,
	TransactionClaim:        CategoryTerritory,
	TransactionSalvage:      CategoryCombat,
	TransactionSurrender:    CategoryCombat,
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	_, ok := typeCategories[t]
	return ok
}

// Category maps the transaction type to its reporting category
func (t TransactionType) Category() Category {
	return typeCategories[t]
}

// ParseTransactionType parses a string into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}
