package product

// Product is one record of the remote products.json feed. Values are kept
// verbatim; price and category_id stay text even when the feed sends numbers.
type Product struct {
	Title      string `json:"title"`
	ImgURL     string `json:"imgUrl"`
	Price      string `json:"price"`
	ProductURL string `json:"productURL"`
	CategoryID string `json:"category_id"`
}

// Card is a Product prepared for the card template.
type Card struct {
	Title      string
	ImgURL     string
	Price      string
	ProductURL string
	CategoryID string
}

// Options configures the product render service.
type Options struct {
	URL         string
	Limit       int
	TitleMaxLen int
}

const (
	DefaultLimit       = 6
	DefaultTitleMaxLen = 20
	ellipsis           = "..."
)
