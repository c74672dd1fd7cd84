package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Category is the declared role of a market dataset column.
type Category string

const (
	CategoryPrice    Category = "price"
	CategoryMarket   Category = "market"
	CategoryEconomic Category = "economic"
	CategoryOther    Category = "other"
)

// Categories lists the form groups in display order.
var Categories = []Category{CategoryPrice, CategoryMarket, CategoryEconomic, CategoryOther}

func (c Category) Title() string {
	switch c {
	case CategoryPrice:
		return "Price Factors"
	case CategoryMarket:
		return "Market Indicators"
	case CategoryEconomic:
		return "Economic Indicators"
	default:
		return "Other Factors"
	}
}

func (c Category) valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

type ColumnSpec struct {
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`
}

// Schema declares the category of market dataset columns. Columns that are
// not listed, and indicator columns of unlisted categoricals, fall in Other.
type Schema struct {
	Columns []ColumnSpec `yaml:"columns" json:"columns"`
}

// DefaultSchema covers the reference market research dataset.
func DefaultSchema() Schema {
	return Schema{Columns: []ColumnSpec{
		{Name: "Market_ID", Category: CategoryOther},
		{Name: "Product", Category: CategoryOther},
		{Name: "Market_Price_per_ton", Category: CategoryPrice},
		{Name: "Competitor_Price_per_ton", Category: CategoryPrice},
		{Name: "Demand_Index", Category: CategoryMarket},
		{Name: "Supply_Index", Category: CategoryMarket},
		{Name: "Economic_Indicator", Category: CategoryEconomic},
		{Name: "Consumer_Trend_Index", Category: CategoryEconomic},
		{Name: "Weather_Impact_Score", Category: CategoryOther},
		{Name: "Seasonal_Factor", Category: CategoryOther},
	}}
}

// Of returns the declared category of a column.
func (s Schema) Of(column string) Category {
	for _, c := range s.Columns {
		if c.Name == column {
			return c.Category
		}
	}
	return CategoryOther
}

func (s Schema) Validate() error {
	seen := map[string]bool{}
	for i, c := range s.Columns {
		if c.Name == "" {
			return fmt.Errorf("market schema: column %d has no name", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("market schema: column %q declared twice", c.Name)
		}
		seen[c.Name] = true
		if !c.Category.valid() {
			return fmt.Errorf("market schema: column %q has unknown category %q", c.Name, c.Category)
		}
	}
	return nil
}

// ParseSchema decodes a YAML schema document.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("market schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// LoadSchema reads a YAML schema file. An empty path yields DefaultSchema.
func LoadSchema(path string) (Schema, error) {
	if path == "" {
		return DefaultSchema(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("market schema: %w", err)
	}
	return ParseSchema(data)
}
