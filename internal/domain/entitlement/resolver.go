package entitlement

import "strconv"

const defaultContentTag = "generic"

// metadata key an operator can set on a payment to grant minutes for
// purchases whose price is not in the table
const overrideKey = "minutes"

type LineItem struct {
	PriceID  string
	Quantity int64
}

// Grant is the resolved entitlement for one payment. Zero minutes is a
// valid outcome (the payment is acknowledged and ignored), not an error.
type Grant struct {
	Minutes    int
	ContentTag string
	SourceSKU  string // price id of the largest matched rule, or the override marker
}

// Resolve sums minutes*quantity over every line item that matches a rule.
// When nothing matches, a positive integer metadata override is honored.
// The content tag and SKU of the largest matched rule win.
func (t Table) Resolve(items []LineItem, metadata map[string]string) Grant {
	grant := Grant{ContentTag: defaultContentTag}
	bestRuleMinutes := 0

	for _, item := range items {
		rule, ok := t[item.PriceID]
		if !ok {
			continue
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		grant.Minutes += rule.Minutes * int(qty)
		if rule.Minutes > bestRuleMinutes {
			bestRuleMinutes = rule.Minutes
			grant.SourceSKU = item.PriceID
			if rule.ContentTag != "" {
				grant.ContentTag = rule.ContentTag
			}
		}
	}

	if grant.Minutes == 0 {
		if override, err := strconv.Atoi(metadata[overrideKey]); err == nil && override > 0 {
			grant.Minutes = override
			grant.SourceSKU = "metadata:" + overrideKey
		}
	}

	return grant
}
