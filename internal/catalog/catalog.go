// Package catalog holds the static maintenance item reference data.
//
// Categories are kept in a fixed order so that name lookups resolve to the
// first category that lists an item, even when an item name appears twice.
package catalog

import (
	"github.com/samber/lo"
)

// OtherKey is the category every unknown item falls back to.
const OtherKey = "other"

const otherDisplayName = "其他項目"

// Item is a catalog entry together with its suggested free-text notes.
type Item struct {
	Name        string
	CommonNotes []string
}

// Category groups catalog items under a stable key.
type Category struct {
	Key         string
	DisplayName string
	Items       []Item
}

// ExportedItem is the serialised form of an Item.
type ExportedItem struct {
	Name        string   `json:"name" yaml:"name"`
	CommonNotes []string `json:"commonNotes" yaml:"commonNotes"`
}

// ExportedCategory is the serialised form of a Category.
type ExportedCategory struct {
	CategoryKey string         `json:"categoryKey" yaml:"categoryKey"`
	DisplayName string         `json:"displayName" yaml:"displayName"`
	Items       []ExportedItem `json:"items" yaml:"items"`
}

// LookupCategory returns the key of the first category containing an item
// named exactly name, or OtherKey when no category does.
func LookupCategory(name string) string {
	for _, c := range categories {
		for _, item := range c.Items {
			if item.Name == name {
				return c.Key
			}
		}
	}
	return OtherKey
}

// LookupCommonNotes returns the note suggestions of the first item named
// exactly name. The result is never nil.
func LookupCommonNotes(name string) []string {
	for _, c := range categories {
		for _, item := range c.Items {
			if item.Name == name {
				return append([]string{}, item.CommonNotes...)
			}
		}
	}
	return []string{}
}

// CategoryName returns the display name for a category key.
func CategoryName(key string) string {
	for _, c := range categories {
		if c.Key == key {
			return c.DisplayName
		}
	}
	return otherDisplayName
}

// Categories returns a deep copy of the catalog in iteration order.
func Categories() []Category {
	return lo.Map(categories, func(c Category, _ int) Category {
		return Category{
			Key:         c.Key,
			DisplayName: c.DisplayName,
			Items: lo.Map(c.Items, func(item Item, _ int) Item {
				return Item{Name: item.Name, CommonNotes: append([]string{}, item.CommonNotes...)}
			}),
		}
	})
}

// Export returns the catalog in its serialisable shape.
func Export() []ExportedCategory {
	return lo.Map(categories, func(c Category, _ int) ExportedCategory {
		return ExportedCategory{
			CategoryKey: c.Key,
			DisplayName: c.DisplayName,
			Items: lo.Map(c.Items, func(item Item, _ int) ExportedItem {
				return ExportedItem{Name: item.Name, CommonNotes: append([]string{}, item.CommonNotes...)}
			}),
		}
	})
}
