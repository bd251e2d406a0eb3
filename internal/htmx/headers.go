// Package htmx reads htmx request headers, writes htmx response headers, and
// keeps the Vary header honest about which of those request headers a
// response actually depended on.
package htmx

// Request headers sent by htmx.
// See https://htmx.org/reference/#request_headers.
const (
	// HeaderBoosted indicates the request is via an element using hx-boost.
	HeaderBoosted = "HX-Boosted"
	// HeaderCurrentURL is the current URL of the browser.
	HeaderCurrentURL = "HX-Current-URL"
	// HeaderHistoryRestoreRequest is "true" if the request is for history
	// restoration after a miss in the local history cache.
	HeaderHistoryRestoreRequest = "HX-History-Restore-Request"
	// HeaderPrompt is the user response to an hx-prompt.
	HeaderPrompt = "HX-Prompt"
	// HeaderRequest is always "true" on requests made by htmx.
	HeaderRequest = "HX-Request"
	// HeaderTarget is the id of the target element, if it exists.
	HeaderTarget = "HX-Target"
	// HeaderTriggerName is the name of the triggered element, if it exists.
	HeaderTriggerName = "HX-Trigger-Name"
	// HeaderTrigger is the id of the triggered element on requests, and the
	// client-side events to trigger on responses.
	HeaderTrigger = "HX-Trigger"
)

// Response headers understood by htmx.
// See https://htmx.org/reference/#response_headers.
const (
	HeaderLocation           = "HX-Location"
	HeaderPushURL            = "HX-Push-Url"
	HeaderRedirect           = "HX-Redirect"
	HeaderRefresh            = "HX-Refresh"
	HeaderReplaceURL         = "HX-Replace-Url"
	HeaderReswap             = "HX-Reswap"
	HeaderRetarget           = "HX-Retarget"
	HeaderReselect           = "HX-Reselect"
	HeaderTriggerAfterSettle = "HX-Trigger-After-Settle"
	HeaderTriggerAfterSwap   = "HX-Trigger-After-Swap"
	headerVary               = "Vary"
	listSeparator            = ", "
	headerValueTrue          = "true"
	headerValueFalse         = "false"
)
