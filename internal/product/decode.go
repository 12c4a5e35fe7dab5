package product

import (
	"bytes"
	"encoding/json"

	"catalog-page/internal/fetch"
)

// requiredFields lists the feed keys every record must carry, in the order
// they are reported when missing.
var requiredFields = []string{"title", "imgUrl", "price", "productURL", "category_id"}

// Decode parses a products.json body and validates every record.
// Malformed JSON is a parse error; well-formed JSON of the wrong shape or
// with missing fields is a schema error.
func Decode(url string, body []byte) ([]Product, error) {
	if !json.Valid(body) {
		var v any
		err := json.Unmarshal(body, &v)
		return nil, fetch.ParseError(url, err)
	}

	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fetch.SchemaError("expected a JSON array of product objects")
	}
	if raw == nil {
		return nil, fetch.SchemaError("expected a JSON array of product objects")
	}

	products := make([]Product, 0, len(raw))
	for i, rec := range raw {
		if rec == nil {
			return nil, fetch.SchemaError("product %d: expected an object, got null", i)
		}

		values := make(map[string]string, len(requiredFields))
		for _, field := range requiredFields {
			v, err := textField(rec, field)
			if err != nil {
				return nil, fetch.SchemaError("product %d: %s", i, err.Error())
			}
			values[field] = v
		}

		products = append(products, Product{
			Title:      values["title"],
			ImgURL:     values["imgUrl"],
			Price:      values["price"],
			ProductURL: values["productURL"],
			CategoryID: values["category_id"],
		})
	}
	return products, nil
}

type fieldError struct {
	field  string
	reason string
}

func (e *fieldError) Error() string {
	return "field \"" + e.field + "\" " + e.reason
}

// textField reads a string or number value. Numbers keep their literal text.
func textField(rec map[string]json.RawMessage, field string) (string, error) {
	v, ok := rec[field]
	if !ok {
		return "", &fieldError{field, "is missing"}
	}

	v = bytes.TrimSpace(v)
	switch {
	case len(v) == 0 || bytes.Equal(v, []byte("null")):
		return "", &fieldError{field, "is null"}
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", &fieldError{field, "is not valid text"}
		}
		return s, nil
	case v[0] == '-' || (v[0] >= '0' && v[0] <= '9'):
		var n json.Number
		if err := json.Unmarshal(v, &n); err != nil {
			return "", &fieldError{field, "is not a valid number"}
		}
		return n.String(), nil
	default:
		return "", &fieldError{field, "must be text or a number"}
	}
}
