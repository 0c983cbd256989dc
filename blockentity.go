package mcschem

import (
	"errors"
	"fmt"
	"maps"
)

// BarrelSize is the number of slots in a barrel.
const BarrelSize = 27

// MaxStackSize is the largest item count a slot can hold.
const MaxStackSize = 64

var (
	// ErrInvalidItem is returned when an item slot has an out of range count or slot.
	ErrInvalidItem = errors.New("invalid item slot")
	// ErrSignalStrength is returned for a comparator signal strength outside 0-15.
	ErrSignalStrength = errors.New("signal strength out of range")
)

// BlockEntity is the data attached to a single block, such as container contents.
// The set of kinds is open: Barrel is provided, Unknown carries any other kind.
type BlockEntity interface {
	// ID returns the block entity identifier, e.g. minecraft:barrel.
	ID() string
	// EncodeNBT returns the entity payload, excluding its position and identifier.
	EncodeNBT() map[string]any
}

// ItemSlot is an item stack inside a container.
type ItemSlot struct {
	ID    string         // e.g. minecraft:redstone_block
	Extra map[string]any // item tag, written only when non-empty
	Count int
	Slot  int
}

func (i ItemSlot) encode() map[string]any {
	m := map[string]any{
		"Slot":  byte(i.Slot),
		"id":    i.ID,
		"Count": byte(i.Count),
	}
	if len(i.Extra) > 0 {
		m["tag"] = maps.Clone(i.Extra)
	}
	return m
}

// Barrel is a barrel and its contents.
type Barrel struct {
	Items []ItemSlot
}

// ID implements BlockEntity.
func (Barrel) ID() string {
	return "minecraft:barrel"
}

// EncodeNBT implements BlockEntity.
func (b Barrel) EncodeNBT() map[string]any {
	items := make([]map[string]any, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, item.encode())
	}
	return map[string]any{"Items": items}
}

// Validate checks every item fits a barrel slot and a stack.
func (b Barrel) Validate() error {
	seen := make(map[int]struct{}, len(b.Items))
	for _, item := range b.Items {
		if item.Count < 0 || item.Count > MaxStackSize {
			return fmt.Errorf("%w: count %d of %s", ErrInvalidItem, item.Count, item.ID)
		}
		if item.Slot < 0 || item.Slot >= BarrelSize {
			return fmt.Errorf("%w: slot %d of %s", ErrInvalidItem, item.Slot, item.ID)
		}
		if _, ok := seen[item.Slot]; ok {
			return fmt.Errorf("%w: slot %d used twice", ErrInvalidItem, item.Slot)
		}
		seen[item.Slot] = struct{}{}
	}
	return nil
}

// Unknown is a block entity of a kind without a dedicated type.
// Data is written as is next to the position and identifier.
type Unknown struct {
	Kind string
	Data map[string]any
}

// ID implements BlockEntity.
func (u Unknown) ID() string {
	return u.Kind
}

// EncodeNBT implements BlockEntity.
func (u Unknown) EncodeNBT() map[string]any {
	return maps.Clone(u.Data)
}

// BarrelSignalStrength returns the items that make a comparator read ss from
// a barrel: n full stacks of redstone blocks, n = max(ss, ceil(ss*27/14)-2).
func BarrelSignalStrength(ss int) ([]ItemSlot, error) {
	if ss < 0 || ss > 15 {
		return nil, fmt.Errorf("%w: %d", ErrSignalStrength, ss)
	}
	n := max(ss, (ss*BarrelSize+13)/14-2)

	items := make([]ItemSlot, n)
	for i := range items {
		items[i] = ItemSlot{
			ID:    "minecraft:redstone_block",
			Extra: map[string]any{},
			Count: MaxStackSize,
			Slot:  i,
		}
	}
	return items, nil
}
