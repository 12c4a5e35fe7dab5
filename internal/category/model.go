package category

// Category is one <category> element of categories.xml.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Option is a category ready to be rendered as a <select> option.
type Option struct {
	Value string
	Label string
}

type Options struct {
	URL string
}

const placeholder = "Seleccione una categoría"
