package mcschem

import (
	"errors"
	"testing"
)

func TestBarrelSignalStrength(t *testing.T) {
	cases := []struct{ ss, n int }{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 4},
		{7, 12},
		{14, 25},
		{15, 27},
	}
	for _, c := range cases {
		items, err := BarrelSignalStrength(c.ss)
		if err != nil {
			t.Fatalf("ss %d: %v", c.ss, err)
		}
		if len(items) != c.n {
			t.Fatalf("ss %d: %d slots, want %d", c.ss, len(items), c.n)
		}
		for i, it := range items {
			if it.Slot != i || it.Count != 64 || it.ID != "minecraft:redstone_block" {
				t.Fatalf("ss %d: slot %d = %+v", c.ss, i, it)
			}
		}
		if err := (Barrel{Items: items}).Validate(); err != nil {
			t.Fatalf("ss %d: %v", c.ss, err)
		}
	}
}

func TestBarrelSignalStrengthRange(t *testing.T) {
	for _, ss := range []int{-1, 16} {
		if _, err := BarrelSignalStrength(ss); !errors.Is(err, ErrSignalStrength) {
			t.Fatalf("ss %d: expected ErrSignalStrength, got %v", ss, err)
		}
	}
}

func TestBarrelValidate(t *testing.T) {
	cases := []Barrel{
		{Items: []ItemSlot{{ID: "minecraft:stone", Count: -1}}},
		{Items: []ItemSlot{{ID: "minecraft:stone", Count: 65}}},
		{Items: []ItemSlot{{ID: "minecraft:stone", Count: 1, Slot: 27}}},
		{Items: []ItemSlot{{ID: "minecraft:stone", Count: 1, Slot: 3}, {ID: "minecraft:dirt", Count: 1, Slot: 3}}},
	}
	for i, b := range cases {
		if err := b.Validate(); !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("case %d: expected ErrInvalidItem, got %v", i, err)
		}
	}
}

func TestItemSlotEncode(t *testing.T) {
	items := Barrel{Items: []ItemSlot{
		{ID: "minecraft:stone", Count: 64, Slot: 2},
		{ID: "minecraft:diamond_sword", Count: 1, Slot: 3, Extra: map[string]any{"Damage": int32(5)}},
	}}.EncodeNBT()["Items"].([]map[string]any)

	if items[0]["Slot"] != byte(2) || items[0]["Count"] != byte(64) || items[0]["id"] != "minecraft:stone" {
		t.Fatalf("item 0 = %v", items[0])
	}
	if _, ok := items[0]["tag"]; ok {
		t.Fatalf("empty extra written as tag: %v", items[0])
	}
	tag, ok := items[1]["tag"].(map[string]any)
	if !ok || tag["Damage"] != int32(5) {
		t.Fatalf("item 1 = %v", items[1])
	}
}
