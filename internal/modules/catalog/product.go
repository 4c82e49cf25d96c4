package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ID is a product identifier. The catalog API sends it either as a JSON
// number or as a JSON string; both decode to the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("product_id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes numeric ids back as numbers so a round trip keeps the
// upstream shape.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Product is one catalog record. The typed fields serve lookups, cards and
// cart pricing; the record itself is published exactly as the catalog sent
// it, unknown fields and number formatting included.
type Product struct {
	ProductID ID
	Title     string
	Price     decimal.Decimal
	Quantity  *int

	raw json.RawMessage
}

// UnmarshalJSON never fails on a well-formed value. A field that does not
// fit its type is left zero, so a record with an unusable price still
// ships but is never summed into a cart.
func (p *Product) UnmarshalJSON(b []byte) error {
	*p = Product{raw: append(json.RawMessage(nil), b...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil
	}
	if v, ok := fields["product_id"]; ok {
		var id ID
		if id.UnmarshalJSON(v) == nil {
			p.ProductID = id
		}
	}
	if v, ok := fields["title"]; ok {
		_ = json.Unmarshal(v, &p.Title)
	}
	if v, ok := fields["price"]; ok {
		p.Price = parsePrice(v)
	}
	if v, ok := fields["quantity"]; ok {
		var q int
		if json.Unmarshal(v, &q) == nil {
			p.Quantity = &q
		}
	}
	return nil
}

// MarshalJSON replays the upstream bytes. Products built in code have none
// and are written from their typed fields, prices as JSON numbers.
func (p Product) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	out := struct {
		ProductID ID          `json:"product_id"`
		Title     string      `json:"title"`
		Price     json.Number `json:"price"`
		Quantity  *int        `json:"quantity,omitempty"`
	}{p.ProductID, p.Title, json.Number(p.Price.String()), p.Quantity}
	return json.Marshal(out)
}

// parsePrice accepts a JSON number or a numeric string.
func parsePrice(v json.RawMessage) decimal.Decimal {
	v = bytes.TrimSpace(v)
	text := string(v)
	if len(v) > 0 && v[0] == '"' {
		if err := json.Unmarshal(v, &text); err != nil {
			return decimal.Zero
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero
	}
	return d
}
