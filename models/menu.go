package models

import "strings"

// MenuItem is one orderable entry. Price is in whole rupees.
type MenuItem struct {
	Name  string `json:"name" bson:"name"`
	Price int    `json:"price" bson:"price"`
}

// Catalog is the fixed menu the parser and reducer resolve items against.
// Keys are lowercase phrases; insertion order is preserved for display.
type Catalog struct {
	prices map[string]int
	names  []string
}

// NewCatalog builds a catalog from menu items. Names are case-normalized;
// a duplicate name overwrites the price but keeps its original position.
func NewCatalog(items []MenuItem) *Catalog {
	c := &Catalog{prices: make(map[string]int, len(items))}
	for _, it := range items {
		name := strings.ToLower(strings.TrimSpace(it.Name))
		if name == "" {
			continue
		}
		if _, exists := c.prices[name]; !exists {
			c.names = append(c.names, name)
		}
		c.prices[name] = it.Price
	}
	return c
}

// Price returns the unit price for a catalog phrase.
func (c *Catalog) Price(name string) (int, bool) {
	price, ok := c.prices[strings.ToLower(name)]
	return price, ok
}

// Has reports whether the phrase is on the menu.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Price(name)
	return ok
}

// Names returns all catalog phrases in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Items returns the full menu in insertion order.
func (c *Catalog) Items() []MenuItem {
	items := make([]MenuItem, 0, len(c.names))
	for _, name := range c.names {
		items = append(items, MenuItem{Name: name, Price: c.prices[name]})
	}
	return items
}

// DefaultMenu is the café menu the system ships with.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "cappuccino", Price: 50},
		{Name: "espresso", Price: 60},
		{Name: "cold coffee", Price: 120},
		{Name: "cold mocha", Price: 150},
		{Name: "red velvet cake", Price: 415},
		{Name: "filter coffee", Price: 70},
		{Name: "flat white", Price: 40},
		{Name: "belgian chocolate", Price: 180},
		{Name: "chocolate shake", Price: 200},
		{Name: "sandwich", Price: 70},
		{Name: "garlic bread", Price: 60},
		{Name: "veg burger", Price: 120},
		{Name: "veg pizza", Price: 150},
		{Name: "cheesecake", Price: 165},
		{Name: "vanilla scoop", Price: 165},
		{Name: "strawberry cake", Price: 165},
	}
}
