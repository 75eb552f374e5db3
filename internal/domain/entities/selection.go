package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrStorageIndexOutOfRange = errors.New("storage index out of range")

// Selection is a chosen product plus quantity within one category.
type Selection struct {
	ProductID string   `json:"productId"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `json:"quantity"`
}

// EffectiveQuantity treats a missing quantity as one unit, the remote default.
func (s Selection) EffectiveQuantity() int {
	if s.Quantity <= 0 {
		return 1
	}
	return s.Quantity
}

func (s Selection) UnitPrice() float64 {
	if s.Product == nil {
		return 0
	}
	return s.Product.Price
}

func (s Selection) LineTotal() float64 {
	return s.UnitPrice() * float64(s.EffectiveQuantity())
}

// Slot is the per-category view of Components: a single selection for
// KindSingle categories, an ordered list for KindMany.
type Slot struct {
	Category Category
	Kind     CategoryKind
	Single   *Selection
	Many     []Selection
}

func (s Slot) Empty() bool {
	if s.Kind == KindMany {
		return len(s.Many) == 0
	}
	return s.Single == nil
}

// Selections flattens the slot into a list regardless of its kind.
func (s Slot) Selections() []Selection {
	if s.Kind == KindMany {
		return s.Many
	}
	if s.Single == nil {
		return nil
	}
	return []Selection{*s.Single}
}

// Components maps the closed category set to selections.
// The zero value is an empty build.
type Components struct {
	singles map[Category]Selection
	storage []Selection
}

// Slot returns the selection state of a category. Unknown categories yield
// an empty single slot; callers validate keys before asking.
func (c Components) Slot(cat Category) Slot {
	if cat.Kind() == KindMany {
		return Slot{Category: cat, Kind: KindMany, Many: c.Storage()}
	}
	slot := Slot{Category: cat, Kind: KindSingle}
	if sel, ok := c.singles[cat]; ok {
		s := sel
		slot.Single = &s
	}
	return slot
}

// Single returns the selection of a singular category.
func (c Components) Single(cat Category) (Selection, bool) {
	sel, ok := c.singles[cat]
	return sel, ok
}

// Storage returns a copy of the storage list in order.
func (c Components) Storage() []Selection {
	if len(c.storage) == 0 {
		return nil
	}
	out := make([]Selection, len(c.storage))
	copy(out, c.storage)
	return out
}

func (c Components) Has(cat Category) bool {
	return !c.Slot(cat).Empty()
}

// Each visits every populated selection, storage entries included, in
// category display order.
func (c Components) Each(fn func(cat Category, sel Selection)) {
	for _, cat := range AllCategories {
		for _, sel := range c.Slot(cat).Selections() {
			fn(cat, sel)
		}
	}
}

// Put replaces the selection of a singular category or appends to storage.
func (c *Components) Put(cat Category, sel Selection) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	if cat.Kind() == KindMany {
		c.storage = append(c.storage, sel)
		return nil
	}
	if c.singles == nil {
		c.singles = make(map[Category]Selection)
	}
	c.singles[cat] = sel
	return nil
}

// Clear removes the selection of a singular category.
func (c *Components) Clear(cat Category) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	if cat.Kind() == KindMany {
		c.storage = nil
		return nil
	}
	delete(c.singles, cat)
	return nil
}

// RemoveStorageAt deletes one storage entry keeping the order of the rest.
func (c *Components) RemoveStorageAt(index int) error {
	if index < 0 || index >= len(c.storage) {
		return fmt.Errorf("%w: %d", ErrStorageIndexOutOfRange, index)
	}
	next := make([]Selection, 0, len(c.storage)-1)
	next = append(next, c.storage[:index]...)
	next = append(next, c.storage[index+1:]...)
	c.storage = next
	return nil
}

func (c Components) Clone() Components {
	out := Components{storage: c.Storage()}
	if len(c.singles) > 0 {
		out.singles = make(map[Category]Selection, len(c.singles))
		for k, v := range c.singles {
			out.singles[k] = v
		}
	}
	return out
}

// MarshalJSON renders every category key; empty singular slots are null and
// storage is always an array.
func (c Components) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range AllCategories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(string(cat))
		buf.Write(key)
		buf.WriteByte(':')

		var (
			b   []byte
			err error
		)
		if cat.Kind() == KindMany {
			list := c.storage
			if list == nil {
				list = []Selection{}
			}
			b, err = json.Marshal(list)
		} else if sel, ok := c.singles[cat]; ok {
			b, err = json.Marshal(sel)
		} else {
			b = []byte("null")
		}
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rejects category keys outside the closed set.
func (c *Components) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	next := Components{}
	for key, value := range raw {
		cat := Category(key)
		if !cat.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, key)
		}
		if isJSONNull(value) {
			continue
		}
		if cat.Kind() == KindMany {
			var list []Selection
			if err := json.Unmarshal(value, &list); err != nil {
				return fmt.Errorf("decode %s: %w", key, err)
			}
			for i := range list {
				if list[i].ProductID == "" && list[i].Product != nil {
					list[i].ProductID = list[i].Product.ID
				}
			}
			next.storage = list
			continue
		}
		var sel Selection
		if err := json.Unmarshal(value, &sel); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		if sel.ProductID == "" && sel.Product != nil {
			sel.ProductID = sel.Product.ID
		}
		if sel.ProductID == "" {
			continue
		}
		if next.singles == nil {
			next.singles = make(map[Category]Selection)
		}
		next.singles[cat] = sel
	}
	*c = next
	return nil
}

func isJSONNull(b json.RawMessage) bool {
	return len(bytes.TrimSpace(b)) == 0 || bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
