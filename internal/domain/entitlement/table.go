package entitlement

import (
	"encoding/json"

	"colpa-mia/internal/pkg/errs"
)

// Rule maps one Stripe price to the minutes it grants and the excuse style
// used when announcing the credit.
type Rule struct {
	Minutes    int    `json:"minutes"`
	ContentTag string `json:"content_tag"`
}

// Table is the static priceID -> Rule mapping, loaded once per process and
// read-only afterwards.
type Table map[string]Rule

// DefaultTable mirrors the live Stripe products.
func DefaultTable() Table {
	return Table{
		"price_excuse_s": {Minutes: 5, ContentTag: "quick"},
		"price_excuse_m": {Minutes: 15, ContentTag: "work"},
		"price_excuse_l": {Minutes: 40, ContentTag: "elaborate"},
	}
}

// ParseTable decodes the PRICE_RULES JSON override. An empty input yields
// the compiled-in defaults.
func ParseTable(raw string) (Table, error) {
	if raw == "" {
		return DefaultTable(), nil
	}
	var t Table
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil, errs.Wrap(err, "failed to parse price rules")
	}
	for id, rule := range t {
		if rule.Minutes <= 0 {
			return nil, errs.New("price rule " + id + " must grant a positive number of minutes")
		}
	}
	return t, nil
}
