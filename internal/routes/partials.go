package routes

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/janisto/huma-htmx/internal/htmx"
	appmiddleware "github.com/janisto/huma-htmx/internal/middleware"
	"github.com/janisto/huma-htmx/internal/respond"
)

const (
	codeItemNotFound = "NOT_FOUND"
	msgItemNotFound  = "item not found"
	codeRenderFailed = "INTERNAL_ERROR"
	msgRenderFailed  = "failed to render fragment"

	logoutTrigger = "logout"
)

type greetingView struct {
	Name       string
	Salutation string
	Tone       string
}

// greeting answers an hx-prompt. The triggering element's name picks the tone.
func greeting(w http.ResponseWriter, r *http.Request) {
	name, ok := htmx.Prompt(r)
	if !ok {
		name = "stranger"
	}
	view := greetingView{Name: name, Salutation: "Hello", Tone: "friendly"}
	if tone, _ := htmx.TriggerName(r); tone == "formal" {
		view.Salutation, view.Tone = "Good day", "formal"
	}

	greeted, err := htmx.NewEventWithData("greeted", map[string]string{"name": name})
	if err == nil {
		err = htmx.Respond(w,
			htmx.Trigger{Mode: htmx.TriggerAfterSettle, Events: []htmx.Event{greeted}},
			htmx.Reswap(htmx.SwapInnerHTML),
		)
	}
	if err != nil {
		// The prompt is user input; an invalid header value is a client error.
		if werr := respond.WriteError(w, r.Context(), http.StatusBadRequest, "BAD_REQUEST", "prompt cannot be echoed", nil, err); werr != nil {
			appmiddleware.LogError(r.Context(), "failed to render bad request", werr)
		}
		return
	}
	writeFragment(w, r, "greeting", view)
}

// selectItem marks an item as selected and asks htmx to reload the table of
// its category.
func selectItem(w http.ResponseWriter, r *http.Request) {
	item, ok := findItem(chi.URLParam(r, "id"))
	if !ok {
		if err := respond.WriteError(w, r.Context(), http.StatusNotFound, codeItemNotFound, msgItemNotFound, nil); err != nil {
			appmiddleware.LogError(r.Context(), "failed to render not found", err)
		}
		return
	}

	q := url.Values{"category": {item.Category}}
	err := htmx.Respond(w,
		htmx.Location{
			Path:    "/fragments/items?" + q.Encode(),
			Options: &htmx.LocationOptions{Target: "#" + tableTarget, Swap: htmx.SwapOuterHTML},
		},
		htmx.Retarget("#selection"),
		htmx.Reselect("#selected"),
	)
	if err != nil {
		if werr := respond.WriteError(w, r.Context(), http.StatusInternalServerError, codeRenderFailed, msgRenderFailed, nil, err); werr != nil {
			appmiddleware.LogError(r.Context(), "failed to render error", werr)
		}
		return
	}
	appmiddleware.LogInfo(r.Context(), "item selected", zap.String("id", item.ID))
	writeFragment(w, r, "selected", item)
}

// refresh reloads the page, or redirects home when triggered by the logout
// element.
func refresh(w http.ResponseWriter, r *http.Request) {
	var err error
	if trigger, _ := htmx.TriggerID(r); trigger == logoutTrigger {
		err = htmx.Respond(w, htmx.Redirect("/fragments/items"))
	} else {
		err = htmx.Respond(w, htmx.Refresh(true))
	}
	if err != nil {
		appmiddleware.LogError(r.Context(), "htmx response headers rejected", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := respond.WriteHTML(w, http.StatusOK, templates, name, data); err != nil {
		appmiddleware.LogError(r.Context(), "template render failed", err, zap.String("template", name))
		if werr := respond.WriteError(w, r.Context(), http.StatusInternalServerError, codeRenderFailed, msgRenderFailed, nil); werr != nil {
			appmiddleware.LogError(r.Context(), "failed to render error", werr)
		}
	}
}
