package htmx

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"
)

// The types below are huma input fields. huma calls Resolve before the
// operation handler runs, which both reads the header and reports the read
// to AutoVary:
//
//	type PageInput struct {
//		HxRequest htmx.HxRequest
//	}

var (
	_ huma.Resolver = (*HxRequest)(nil)
	_ huma.Resolver = (*HxTarget)(nil)
	_ huma.Resolver = (*HxTrigger)(nil)
	_ huma.Resolver = (*HxTriggerName)(nil)
	_ huma.Resolver = (*HxBoosted)(nil)
	_ huma.Resolver = (*HxCurrentURL)(nil)
	_ huma.Resolver = (*HxHistoryRestoreRequest)(nil)
	_ huma.Resolver = (*HxPrompt)(nil)
)

// HxRequest is true when the request was made by htmx.
type HxRequest struct {
	Value bool
}

func (h *HxRequest) Resolve(ctx huma.Context) []error {
	h.Value = readFlag(ctx.Context(), KindRequest, ctx)
	return nil
}

// HxTarget carries the id of the target element.
type HxTarget struct {
	Value   string
	Present bool
}

func (h *HxTarget) Resolve(ctx huma.Context) []error {
	h.Value, h.Present = readValue(ctx.Context(), KindTarget, ctx)
	return nil
}

// HxTrigger carries the id of the triggered element.
type HxTrigger struct {
	Value   string
	Present bool
}

func (h *HxTrigger) Resolve(ctx huma.Context) []error {
	h.Value, h.Present = readValue(ctx.Context(), KindTrigger, ctx)
	return nil
}

// HxTriggerName carries the name of the triggered element.
type HxTriggerName struct {
	Value   string
	Present bool
}

func (h *HxTriggerName) Resolve(ctx huma.Context) []error {
	h.Value, h.Present = readValue(ctx.Context(), KindTriggerName, ctx)
	return nil
}

// HxBoosted is true when the request comes from a boosted element.
type HxBoosted struct {
	Value bool
}

func (h *HxBoosted) Resolve(ctx huma.Context) []error {
	h.Value = readFlag(ctx.Context(), KindBoosted, ctx)
	return nil
}

// HxCurrentURL carries the browser URL; nil when absent or unparsable.
type HxCurrentURL struct {
	Value *url.URL
}

func (h *HxCurrentURL) Resolve(ctx huma.Context) []error {
	h.Value, _ = readURL(ctx.Context(), ctx)
	return nil
}

// HxHistoryRestoreRequest is true for history restoration requests.
type HxHistoryRestoreRequest struct {
	Value bool
}

func (h *HxHistoryRestoreRequest) Resolve(ctx huma.Context) []error {
	h.Value = readFlag(ctx.Context(), KindHistoryRestoreRequest, ctx)
	return nil
}

// HxPrompt carries the user response to an hx-prompt.
type HxPrompt struct {
	Value   string
	Present bool
}

func (h *HxPrompt) Resolve(ctx huma.Context) []error {
	h.Value, h.Present = readValue(ctx.Context(), KindPrompt, ctx)
	return nil
}
