package routes

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/janisto/huma-htmx/internal/htmx"
	appmiddleware "github.com/janisto/huma-htmx/internal/middleware"
	"github.com/janisto/huma-htmx/internal/pagination"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

var categories = []string{"furniture", "lighting", "textiles", "decor"}

// tableTarget is the id of the items table; htmx sends it as HX-Target when
// the whole table is swapped.
const tableTarget = "items"

const fragmentCacheControl = "max-age=60"

// FragmentsInput selects a page of items and carries the htmx headers the
// rendering depends on.
type FragmentsInput struct {
	pagination.Params
	Category  string `query:"category" doc:"Filter by category" example:"lighting" enum:"furniture,lighting,textiles,decor"`
	HxRequest htmx.HxRequest
	HxTarget  htmx.HxTarget
	HxBoosted htmx.HxBoosted
}

type tableView struct {
	Items      []Item
	Total      int
	NextURL    string
	Categories []string
}

// loadedEvent is the data of the items-loaded client event.
type loadedEvent struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

func registerFragments(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "items-fragment",
		Method:      http.MethodGet,
		Path:        "/fragments/items",
		Summary:     "Render items as HTML",
		Description: "Returns the full page for plain and boosted requests. htmx requests get the table, " +
			"or only the rows when another element is targeted.",
		Tags: []string{"Fragments"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "HTML page or fragment",
				Content:     map[string]*huma.MediaType{"text/html": {}},
			},
		},
	}, renderItems)
}

func renderItems(ctx context.Context, input *FragmentsInput) (*huma.StreamResponse, error) {
	page, err := pageItems(input.Params, input.Category)
	if err != nil {
		return nil, err
	}
	links := itemLinks("/fragments/items", input.Category, input.DefaultLimit())
	view := tableView{Items: page.Items, Total: page.Total, Categories: categories}
	if page.Next != "" {
		view.NextURL = links.URL(page.Next)
	}

	name := "page"
	var responders []htmx.Responder
	if input.HxRequest.Value && !input.HxBoosted.Value {
		name = "rows"
		if input.HxTarget.Value == tableTarget {
			name = "table"
			responders = append(responders, htmx.PushURL(links.URL(input.Cursor)))
		}
		loaded, err := htmx.NewEventWithData("items-loaded", loadedEvent{Count: len(page.Items), Total: page.Total})
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to encode trigger")
		}
		responders = append(responders, htmx.Trigger{Mode: htmx.TriggerAfterSwap, Events: []htmx.Event{loaded}})
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, view); err != nil {
		appmiddleware.LogError(ctx, "template render failed", err, zap.String("template", name))
		return nil, huma.Error500InternalServerError("failed to render items")
	}

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			if err := htmx.RespondHuma(hctx, responders...); err != nil {
				appmiddleware.LogError(ctx, "htmx response headers rejected", err)
			}
			hctx.SetHeader("Content-Type", "text/html; charset=utf-8")
			hctx.SetHeader("Content-Length", strconv.Itoa(buf.Len()))
			hctx.SetHeader("Cache-Control", fragmentCacheControl)
			hctx.SetStatus(http.StatusOK)
			_, _ = hctx.BodyWriter().Write(buf.Bytes())
		},
	}, nil
}
