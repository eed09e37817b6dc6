package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Messages is a process-wide, read-only catalog of user-facing message text,
// keyed by section and message name. It is loaded once at startup and passed
// by reference to the services that need it; it is never mutated afterwards.
type Messages struct {
	sections map[string]map[string]string
}

// defaultMessages mirrors the shipped message catalog. An override file (see
// LoadMessages) may replace individual entries but never adds mutability.
var defaultMessages = map[string]map[string]string{
	"ProductMessages": {
		"CreateProductSuccess": "Product created successfully.",
		"CreateProductFailure": "Failed to create product.",
		"UpdateProductSuccess": "Product updated successfully.",
		"UpdateProductFailure": "Failed to update product.",
		"DeleteProductSuccess": "Product deleted successfully.",
		"DeleteProductFailure": "Failed to delete product.",
		"ProductNotFound":      "Product not found.",
		"CategoryNotExists":    "Category does not exist.",
	},
	"VariantMessages": {
		"CreateVariantSuccess": "Sub-product created successfully.",
		"CreateVariantFailure": "Failed to create sub-product.",
		"UpdateVariantSuccess": "Sub-product updated successfully.",
		"UpdateVariantFailure": "Failed to update sub-product.",
		"DeleteVariantSuccess": "Sub-product deleted successfully.",
		"VariantNotFound":      "Sub-product not found.",
		"InvalidParentProduct": "Invalid product id.",
		"InvalidPriceQuantity": "Price and quantity must not be negative.",
	},
	"PromotionMessages": {
		"CreatePromotionSuccess": "Promotion created successfully.",
		"CreatePromotionFailure": "Failed to create promotion.",
		"UpdatePromotionSuccess": "Promotion updated successfully.",
		"UpdatePromotionFailure": "Failed to update promotion.",
		"DeletePromotionSuccess": "Promotion deleted successfully.",
		"DeletePromotionFailure": "Failed to delete promotion.",
		"PromotionNotFound":      "Promotion not found.",
	},
}

// LoadMessages builds the message catalog from the built-in defaults, merged
// with an optional JSON override file of the same shape. Path may be empty.
func LoadMessages(path string) (*Messages, error) {
	sections := make(map[string]map[string]string, len(defaultMessages))
	for section, entries := range defaultMessages {
		copied := make(map[string]string, len(entries))
		for k, v := range entries {
			copied[k] = v
		}
		sections[section] = copied
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read messages file %s: %w", path, err)
		}
		var overrides map[string]map[string]string
		if err := json.Unmarshal(raw, &overrides); err != nil {
			return nil, fmt.Errorf("could not parse messages file %s: %w", path, err)
		}
		for section, entries := range overrides {
			if sections[section] == nil {
				sections[section] = make(map[string]string, len(entries))
			}
			for k, v := range entries {
				sections[section][k] = v
			}
		}
	}

	return &Messages{sections: sections}, nil
}

// Get returns the message for a section/key pair, or the key itself when the
// catalog has no entry, so a missing message is visible but never fatal.
func (m *Messages) Get(section, key string) string {
	if entries, ok := m.sections[section]; ok {
		if v, ok := entries[key]; ok {
			return v
		}
	}
	return key
}
