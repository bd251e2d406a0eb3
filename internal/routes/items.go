package routes

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/huma-htmx/internal/pagination"
)

// Item is a catalogue entry served as JSON/CBOR and as HTML rows.
type Item struct {
	ID        string    `json:"id"        doc:"Unique identifier"  example:"item-001"`
	Name      string    `json:"name"      doc:"Display name"       example:"Walnut Desk"`
	Category  string    `json:"category"  doc:"Item category"      example:"furniture"`
	Price     float64   `json:"price"     doc:"Price in EUR"       example:"249.00"`
	InStock   bool      `json:"inStock"   doc:"Availability"       example:"true"`
	CreatedAt time.Time `json:"createdAt" doc:"Creation timestamp" example:"2025-03-01T09:00:00Z"`
}

const itemCursorType = "item"

var catalogue = []Item{
	{"item-001", "Walnut Desk", "furniture", 249.00, true, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
	{"item-002", "Oak Bookshelf", "furniture", 189.50, true, time.Date(2025, 3, 2, 10, 15, 0, 0, time.UTC)},
	{"item-003", "Linen Armchair", "furniture", 329.00, false, time.Date(2025, 3, 3, 11, 30, 0, 0, time.UTC)},
	{"item-004", "Brass Floor Lamp", "lighting", 119.00, true, time.Date(2025, 3, 4, 8, 45, 0, 0, time.UTC)},
	{"item-005", "Paper Pendant", "lighting", 59.90, true, time.Date(2025, 3, 5, 14, 0, 0, 0, time.UTC)},
	{"item-006", "Desk Lamp", "lighting", 44.00, false, time.Date(2025, 3, 6, 16, 20, 0, 0, time.UTC)},
	{"item-007", "Wool Rug", "textiles", 210.00, true, time.Date(2025, 3, 7, 9, 10, 0, 0, time.UTC)},
	{"item-008", "Cotton Throw", "textiles", 39.00, true, time.Date(2025, 3, 8, 12, 40, 0, 0, time.UTC)},
	{"item-009", "Velvet Cushion", "textiles", 24.50, true, time.Date(2025, 3, 9, 13, 5, 0, 0, time.UTC)},
	{"item-010", "Ceramic Vase", "decor", 32.00, true, time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)},
	{"item-011", "Wall Mirror", "decor", 96.00, false, time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC)},
	{"item-012", "Table Clock", "decor", 58.00, true, time.Date(2025, 3, 12, 11, 45, 0, 0, time.UTC)},
}

// ItemsInput defines query parameters for listing items.
type ItemsInput struct {
	pagination.Params
	Category string `query:"category" doc:"Filter by category" example:"lighting" enum:"furniture,lighting,textiles,decor"`
}

// ItemsData is the response body containing paginated items.
type ItemsData struct {
	Items []Item `json:"items" doc:"List of items"`
	Total int    `json:"total" doc:"Total count of items matching the filter" example:"12"`
}

// ItemsOutput is the response wrapper with pagination Link header.
type ItemsOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ItemsData
}

func registerItems(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-items",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List items with cursor-based pagination",
		Description: "Returns a page of items as JSON or CBOR. Follow the Link header to navigate.",
		Tags:        []string{"Items"},
	}, func(_ context.Context, input *ItemsInput) (*ItemsOutput, error) {
		page, err := pageItems(input.Params, input.Category)
		if err != nil {
			return nil, err
		}
		links := itemLinks("/items", input.Category, input.DefaultLimit())
		return &ItemsOutput{
			Link: pagination.Header(links, page),
			Body: ItemsData{Items: page.Items, Total: page.Total},
		}, nil
	})
}

// pageItems filters the catalogue and returns the page the params select.
// Errors are huma status errors.
func pageItems(params pagination.Params, category string) (pagination.Page[Item], error) {
	cursor, err := pagination.DecodeCursor(params.Cursor)
	if err != nil {
		return pagination.Page[Item]{}, huma.Error400BadRequest("invalid cursor format")
	}
	if cursor.Type != "" && cursor.Type != itemCursorType {
		return pagination.Page[Item]{}, huma.Error400BadRequest("cursor type mismatch")
	}
	items := filterItems(catalogue, category)
	if cursor.Value != "" && !pagination.Contains(items, cursor.Value, itemID) {
		return pagination.Page[Item]{}, huma.Error400BadRequest("cursor references unknown item")
	}
	return pagination.Paginate(items, cursor, params.DefaultLimit(), itemCursorType, itemID), nil
}

func itemLinks(path, category string, limit int) pagination.Links {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	return pagination.Links{Path: path, Query: q, Limit: limit}
}

func itemID(item Item) string { return item.ID }

func filterItems(items []Item, category string) []Item {
	if category == "" {
		return items
	}
	// Category is lowercase; huma validates it against the enum.
	return slices.DeleteFunc(slices.Clone(items), func(item Item) bool {
		return item.Category != category
	})
}

func findItem(id string) (Item, bool) {
	i := slices.IndexFunc(catalogue, func(item Item) bool { return item.ID == id })
	if i < 0 {
		return Item{}, false
	}
	return catalogue[i], true
}
