package product

import (
	"bytes"
	"fmt"
	"html/template"
)

var cardTemplate = template.Must(template.New("card").Parse(`
<div class="space-y-4 bg-white dark:bg-gray-800 p-4 rounded-2xl shadow">
    <img
        class="w-full h-40 bg-gray-300 dark:bg-gray-700 rounded-lg object-cover transition-transform duration-300 hover:scale-[1.03]"
        src="{{.ImgURL}}" alt="{{.Title}}">
    <h3
        class="text-xl font-semibold tracking-tight text-gray-900 dark:text-white hover:text-black-600 dark:hover:text-white-400">
        ${{.Price}}
    </h3>
    <div class="text-sm text-gray-700 dark:text-gray-300">{{.Title}}</div>
    <div class="space-y-2">
        <a href="{{.ProductURL}}" target="_blank" rel="noopener noreferrer"
        class="text-white bg-blue-700 hover:bg-blue-800 focus:ring-4 focus:outline-none focus:ring-blue-300
            font-medium rounded-lg text-sm px-5 py-2.5 text-center dark:bg-blue-600
            dark:hover:bg-blue-700 dark:focus:ring-blue-800 w-full inline-block">
            Ver en Amazon
        </a>
        <div class="hidden">{{.CategoryID}}</div>
    </div>
</div>`))

// Truncate shortens title to max runes followed by "..." when it is longer
// than max; otherwise title is returned unchanged.
func Truncate(title string, max int) string {
	r := []rune(title)
	if len(r) <= max {
		return title
	}
	return string(r[:max]) + ellipsis
}

func NewCard(p Product, titleMaxLen int) Card {
	return Card{
		Title:      Truncate(p.Title, titleMaxLen),
		ImgURL:     p.ImgURL,
		Price:      p.Price,
		ProductURL: p.ProductURL,
		CategoryID: p.CategoryID,
	}
}

// RenderCards renders the first limit products, in order. It returns either
// every card or an error, never a partial list.
func RenderCards(products []Product, limit, titleMaxLen int) ([]template.HTML, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if titleMaxLen <= 0 {
		titleMaxLen = DefaultTitleMaxLen
	}
	if len(products) > limit {
		products = products[:limit]
	}

	cards := make([]template.HTML, 0, len(products))
	var buf bytes.Buffer
	for i, p := range products {
		buf.Reset()
		if err := cardTemplate.Execute(&buf, NewCard(p, titleMaxLen)); err != nil {
			return nil, fmt.Errorf("render product %d: %w", i, err)
		}
		cards = append(cards, template.HTML(buf.String()))
	}
	return cards, nil
}
