package entities

import (
	"errors"
	"strings"
)

// ErrUnknownCategory is returned when a category key outside the closed set is seen.
var ErrUnknownCategory = errors.New("unknown component category")

// Category is one of the fixed hardware slots of a build.
type Category string

const (
	CategoryProcessor    Category = "processor"
	CategoryMotherboard  Category = "motherboard"
	CategoryMemory       Category = "memory"
	CategoryGraphicsCard Category = "graphicsCard"
	CategoryStorage      Category = "storage"
	CategoryPowerSupply  Category = "powerSupply"
	CategoryPCCase       Category = "pcCase"
	CategoryCooling      Category = "cooling"
)

// CategoryKind tells whether a category holds one selection or an ordered list.
type CategoryKind int

const (
	KindSingle CategoryKind = iota
	KindMany
)

// AllCategories lists every category in display order.
var AllCategories = []Category{
	CategoryProcessor,
	CategoryMotherboard,
	CategoryMemory,
	CategoryGraphicsCard,
	CategoryStorage,
	CategoryPowerSupply,
	CategoryPCCase,
	CategoryCooling,
}

// RequiredCategories are the slots a complete build must populate.
// Storage is required but list-valued.
var RequiredCategories = []Category{
	CategoryProcessor,
	CategoryMotherboard,
	CategoryMemory,
	CategoryPowerSupply,
	CategoryPCCase,
	CategoryStorage,
}

// ParseCategory resolves a category key. Matching is exact on the canonical
// camelCase key, with a case-insensitive fallback for query strings.
func ParseCategory(raw string) (Category, bool) {
	raw = strings.TrimSpace(raw)
	for _, c := range AllCategories {
		if string(c) == raw {
			return c, true
		}
	}
	for _, c := range AllCategories {
		if strings.EqualFold(string(c), raw) {
			return c, true
		}
	}
	return "", false
}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) Kind() CategoryKind {
	if c == CategoryStorage {
		return KindMany
	}
	return KindSingle
}

func (c Category) Required() bool {
	for _, r := range RequiredCategories {
		if c == r {
			return true
		}
	}
	return false
}

// Platform is the CPU vendor family a build is scoped to.
type Platform string

const (
	PlatformIntel Platform = "intel"
	PlatformAMD   Platform = "amd"
)

func ParsePlatform(raw string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(raw))) {
	case PlatformIntel:
		return PlatformIntel, true
	case PlatformAMD:
		return PlatformAMD, true
	}
	return "", false
}
