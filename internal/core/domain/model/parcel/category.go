package parcel

import (
	"fmt"

	"forwarding/internal/pkg/errs"
)

// Category classifies the goods inside a package for customs declarations.
type Category int

const (
	CategoryUnknown Category = iota
	Electronics
	Clothing
	Shoes
	Cosmetics
	Toys
	Books
	Sports
	HomeAndGarden
	Jewelry
	// OtherConsumerProducts is used for undeclared and person-to-person packages.
	OtherConsumerProducts
)

var categoryNames = map[Category]string{
	Electronics:           "Electronics",
	Clothing:              "Clothing",
	Shoes:                 "Shoes",
	Cosmetics:             "Cosmetics",
	Toys:                  "Toys",
	Books:                 "Books",
	Sports:                "Sports",
	HomeAndGarden:         "HomeAndGarden",
	Jewelry:               "Jewelry",
	OtherConsumerProducts: "OtherConsumerProducts",
}

// ParseCategory maps a category name back to its value.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a known category", name))
}

func (c Category) Validate() error {
	if _, ok := categoryNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "Unknown"
}
