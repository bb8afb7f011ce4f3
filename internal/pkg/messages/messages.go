// Package messages maps stable violation-kind identifiers to end-user strings.
// The admission engine stays language-neutral: it looks messages up here and
// the table is swappable per deployment locale.
package messages

// Catalog resolves violation kinds to localized human-readable text.
type Catalog struct {
	locale  string
	entries map[string]string
}

func NewCatalog(locale string, entries map[string]string) *Catalog {
	return &Catalog{locale: locale, entries: entries}
}

func (c *Catalog) Locale() string {
	return c.locale
}

// Resolve returns the message for kind, falling back to the kind identifier
// itself so a missing entry is visible instead of silent.
func (c *Catalog) Resolve(kind string) string {
	if msg, ok := c.entries[kind]; ok {
		return msg
	}
	return kind
}

// Danish returns the message table matching the original deployment.
func Danish() *Catalog {
	return NewCatalog("da", map[string]string{
		"DELIVERY_DATE_IN_PAST":              "Leveringstidspunkt skal være i fremtiden",
		"DELIVERY_DATE_NOT_TODAY":            "Leveringstidspunkt skal være i dag",
		"ROOM_NOT_FOUND":                     "Rummet eksisterer ikke",
		"PRODUCTS_EMPTY":                     "Mindst et produkt er påkrævet",
		"PRODUCTS_NOT_UNIQUE":                "Produkterne skal være unikke",
		"PRODUCT_NOT_FOUND":                  "Produktet eksisterer ikke",
		"PRODUCT_QUANTITY_NOT_POSITIVE":      "Mængde skal være større end 0",
		"PRODUCT_QUANTITY_OVER_AVAILABILITY": "Kan ikke bestille flere produkter end der er til rådighed",
		"PRODUCT_QUANTITY_OVER_MAX":          "Kan ikke bestille så mange produkter på en gang",
		"PRODUCT_OUTSIDE_ORDER_WINDOW":       "Bestillingen er uden for bestillingsvinduet",
		"OPTIONS_NOT_UNIQUE":                 "Tilvalgene skal være unikke",
		"OPTION_NOT_FOUND":                   "Tilvalget eksisterer ikke",
		"OPTION_QUANTITY_NOT_POSITIVE":       "Mængde skal være større end 0",
		"OPTION_QUANTITY_OVER_AVAILABILITY":  "Kan ikke bestille flere tilvalg end der er til rådighed",
		"OPTION_QUANTITY_OVER_MAX":           "Kan ikke bestille så mange tilvalg på en gang",
	})
}

// English is provided for deployments that opt out of the Danish default.
func English() *Catalog {
	return NewCatalog("en", map[string]string{
		"DELIVERY_DATE_IN_PAST":              "Delivery date must not be in the past",
		"DELIVERY_DATE_NOT_TODAY":            "Delivery date must be today",
		"ROOM_NOT_FOUND":                     "The room does not exist",
		"PRODUCTS_EMPTY":                     "At least one product is required",
		"PRODUCTS_NOT_UNIQUE":                "Products must be unique",
		"PRODUCT_NOT_FOUND":                  "The product does not exist",
		"PRODUCT_QUANTITY_NOT_POSITIVE":      "Quantity must be greater than 0",
		"PRODUCT_QUANTITY_OVER_AVAILABILITY": "Cannot order more products than are available",
		"PRODUCT_QUANTITY_OVER_MAX":          "Cannot order that many products at once",
		"PRODUCT_OUTSIDE_ORDER_WINDOW":       "The order is outside the ordering window",
		"OPTIONS_NOT_UNIQUE":                 "Options must be unique",
		"OPTION_NOT_FOUND":                   "The option does not exist",
		"OPTION_QUANTITY_NOT_POSITIVE":       "Quantity must be greater than 0",
		"OPTION_QUANTITY_OVER_AVAILABILITY":  "Cannot order more options than are available",
		"OPTION_QUANTITY_OVER_MAX":           "Cannot order that many options at once",
	})
}

// ForLocale picks a built-in catalog by locale tag, defaulting to Danish.
func ForLocale(locale string) *Catalog {
	switch locale {
	case "en":
		return English()
	default:
		return Danish()
	}
}
