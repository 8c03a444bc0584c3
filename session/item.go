package session

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/screw-puzzle/parameter"
)

// Item is a consumable play aid
type Item string

const (
	ItemHint    Item = "hint"    // list removable screws
	ItemExpose  Item = "expose"  // list plates covering a tapped screw
	ItemDrill   Item = "drill"   // remove a tapped screw regardless of coverage
	ItemShuffle Item = "shuffle" // regenerate the current stage
)

// Items lists every item in display order
var Items = []Item{ItemHint, ItemExpose, ItemDrill, ItemShuffle}

var (
	ErrUnknownItem        = errors.New("unknown item")
	ErrNoItem             = errors.New("item not in inventory")
	ErrNotTargeted        = errors.New("item does not take a target")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNoScrew            = errors.New("no screw at point")
)

// Valid reports whether it names a known item
func (it Item) Valid() bool {
	switch it {
	case ItemHint, ItemExpose, ItemDrill, ItemShuffle:
		return true
	}
	return false
}

// Targeted items are armed first and applied by the next tap
func (it Item) Targeted() bool {
	return it == ItemExpose || it == ItemDrill
}

// Cost returns the purchase price in points
func (it Item) Cost() (int, error) {
	switch it {
	case ItemHint:
		return parameter.CostHint, nil
	case ItemExpose:
		return parameter.CostExpose, nil
	case ItemDrill:
		return parameter.CostDrill, nil
	case ItemShuffle:
		return parameter.CostShuffle, nil
	}
	return 0, fmt.Errorf("%q: %w", string(it), ErrUnknownItem)
}

// Inventory counts held items
type Inventory map[Item]int

// NewInventory holds n of every item
func NewInventory(n int) Inventory {
	inv := make(Inventory, len(Items))
	for _, it := range Items {
		inv[it] = n
	}
	return inv
}

func (inv Inventory) take(it Item) error {
	if !it.Valid() {
		return fmt.Errorf("%q: %w", string(it), ErrUnknownItem)
	}
	if inv[it] <= 0 {
		return fmt.Errorf("%s: %w", it, ErrNoItem)
	}
	inv[it]--
	return nil
}

// StageReward is the point grant for clearing a stage
func StageReward(stageNumber int) int {
	return parameter.StageRewardBase + max(stageNumber, 0)/parameter.StageRewardStep*parameter.StageRewardBonus
}
