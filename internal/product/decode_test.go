package product

import (
	"errors"
	"strings"
	"testing"

	"catalog-page/internal/fetch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("Verbatim records in order", func(t *testing.T) {
		body := `[
			{"title":"Wireless Mouse Deluxe Edition","imgUrl":"a.png","price":"19.99","productURL":"http://x","category_id":"1"},
			{"title":"Keyboard","imgUrl":"b.png","price":"5","productURL":"http://y","category_id":"2","extra":true}
		]`

		products, err := Decode("http://feed", []byte(body))
		require.NoError(t, err)
		assert.Equal(t, []Product{
			{Title: "Wireless Mouse Deluxe Edition", ImgURL: "a.png", Price: "19.99", ProductURL: "http://x", CategoryID: "1"},
			{Title: "Keyboard", ImgURL: "b.png", Price: "5", ProductURL: "http://y", CategoryID: "2"},
		}, products)
	})

	t.Run("Numbers keep their literal text", func(t *testing.T) {
		body := `[{"title":"t","imgUrl":"i","price":19.90,"productURL":"u","category_id":7}]`

		products, err := Decode("", []byte(body))
		require.NoError(t, err)
		assert.Equal(t, "19.90", products[0].Price)
		assert.Equal(t, "7", products[0].CategoryID)
	})

	t.Run("Empty array", func(t *testing.T) {
		products, err := Decode("", []byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Malformed JSON is a parse error", func(t *testing.T) {
		_, err := Decode("http://feed", []byte(`[{"title":`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fetch.ErrParse))
	})

	t.Run("Schema failures", func(t *testing.T) {
		cases := []struct {
			name string
			body string
			want string
		}{
			{"Object instead of array", `{"title":"x"}`, "expected a JSON array"},
			{"Null body", `null`, "expected a JSON array"},
			{"Null element", `[null]`, "product 0: expected an object"},
			{"Missing field", `[{"title":"t","imgUrl":"i","price":"1","productURL":"u"}]`, `product 0: field "category_id" is missing`},
			{"Null field", `[{"title":null,"imgUrl":"i","price":"1","productURL":"u","category_id":"1"}]`, `product 0: field "title" is null`},
			{"Wrong type", `[{"title":"t","imgUrl":["i"],"price":"1","productURL":"u","category_id":"1"}]`, `product 0: field "imgUrl" must be text or a number`},
			{"Second record", `[{"title":"t","imgUrl":"i","price":"1","productURL":"u","category_id":"1"},{"title":"t"}]`, `product 1: field "imgUrl" is missing`},
		}

		seventh := strings.Repeat(`{"title":"t","imgUrl":"i","price":"1","productURL":"u","category_id":"1"},`, 6) + `{"title":"seventh"}`
		cases = append(cases, struct {
			name string
			body string
			want string
		}{"Record past the render limit", "[" + seventh + "]", `product 6: field "imgUrl" is missing`})

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Decode("", []byte(tc.body))
				require.Error(t, err)
				assert.True(t, errors.Is(err, fetch.ErrSchema))
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})
}
