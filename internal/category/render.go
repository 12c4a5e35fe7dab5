package category

import (
	"bytes"
	"fmt"
	"html/template"
)

var optionTemplate = template.Must(template.New("option").Parse(
	`<option value="{{.Value}}">{{.Label}}</option>`,
))

var placeholderOption = template.HTML(`<option selected disabled>` + template.HTMLEscapeString(placeholder) + `</option>`)

func NewOption(c Category) Option {
	return Option{Value: c.ID, Label: c.Name}
}

// RenderOptions returns the placeholder followed by one option per category.
func RenderOptions(categories []Category) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(categories)+1)
	out = append(out, placeholderOption)

	var buf bytes.Buffer
	for i, c := range categories {
		buf.Reset()
		if err := optionTemplate.Execute(&buf, NewOption(c)); err != nil {
			return nil, fmt.Errorf("failed to render category %d: %w", i, err)
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}
