package htmx

import (
	"bufio"
	"io"
	"net"
	"net/http"
	"slices"
	"sync"

	"github.com/felixge/httpsnoop"
	"go.uber.org/zap"

	appmiddleware "github.com/janisto/huma-htmx/internal/middleware"
	"github.com/janisto/huma-htmx/internal/respond"
)

const (
	codeVaryEncoding = "INVALID_HEADER_VALUE"
	msgVaryEncoding  = "invalid header value"
)

// AutoVaryConfig configures AutoVary.
type AutoVaryConfig struct {
	// Kinds lists the header kinds to track. Empty means DefaultKinds.
	Kinds []Kind
	// FailOpen ships the handler's response without the computed Vary value
	// when it cannot be encoded. By default the response is replaced with a
	// 500 error.
	FailOpen bool
}

// AutoVary returns middleware that adds a Vary header listing the htmx
// request headers the wrapped handler actually read, through the extractors
// and resolvers of this package or TryMark. Values the handler sets on Vary
// itself are kept; the computed value is appended as another field line.
//
// The used headers are collected when the response headers are committed,
// the last point at which a header can still be added. Wrapping a handler
// chain that already contains AutoVary panics with ErrAutoVaryInstalledTwice.
func AutoVary(cfg AutoVaryConfig) func(http.Handler) http.Handler {
	kinds := slices.Clone(cfg.Kinds)
	if len(kinds) == 0 {
		kinds = DefaultKinds()
	}
	return func(next http.Handler) http.Handler {
		if _, ok := next.(*autoVaryHandler); ok {
			panic(ErrAutoVaryInstalledTwice)
		}
		return &autoVaryHandler{
			next:     next,
			kinds:    kinds,
			failOpen: cfg.FailOpen,
			encode:   encodeVary,
		}
	}
}

type autoVaryHandler struct {
	next     http.Handler
	kinds    []Kind
	failOpen bool
	encode   func([]Kind) (string, error)
	// snapshot keeps the pre-dispatch headers for a fail-closed response.
	// encodeVary joins fixed tokens and cannot fail, so only a replacement
	// encoder needs it.
	snapshot bool
}

func (h *autoVaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, set := installSignals(r.Context(), h.kinds)
	r = r.WithContext(ctx)

	vw := &varyWriter{
		w:        w,
		r:        r,
		set:      set,
		encode:   h.encode,
		failOpen: h.failOpen,
	}
	if !h.failOpen && h.snapshot {
		vw.before = w.Header().Clone()
	}
	h.next.ServeHTTP(vw.wrap(), r)
	vw.finish()
}

// varyWriter merges the computed Vary value into the response when its
// headers are committed.
type varyWriter struct {
	w        http.ResponseWriter
	r        *http.Request
	set      *signalSet
	encode   func([]Kind) (string, error)
	failOpen bool
	// before is the header map as it was prior to dispatch, restored when the
	// response is replaced by an error.
	before http.Header

	once      sync.Once
	committed bool
	failed    bool
}

func (v *varyWriter) wrap() http.ResponseWriter {
	return httpsnoop.Wrap(v.w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				// 1xx responses other than 101 leave the final headers open.
				if code >= 100 && code < 200 && code != http.StatusSwitchingProtocols {
					next(code)
					return
				}
				v.commit()
				if v.failed {
					return
				}
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				v.commit()
				if v.failed {
					return len(b), nil
				}
				return next(b)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				v.commit()
				if v.failed {
					return io.Copy(io.Discard, src)
				}
				return next(src)
			}
		},
		Flush: func(next httpsnoop.FlushFunc) httpsnoop.FlushFunc {
			return func() {
				v.commit()
				if v.failed {
					return
				}
				next()
			}
		},
		Hijack: func(next httpsnoop.HijackFunc) httpsnoop.HijackFunc {
			return func() (net.Conn, *bufio.ReadWriter, error) {
				v.once.Do(func() { v.committed = true })
				return next()
			}
		},
	})
}

func (v *varyWriter) commit() {
	v.once.Do(func() {
		v.committed = true
		value, err := v.encode(v.set.drain())
		if err != nil {
			v.fail(err)
			return
		}
		if value != "" {
			v.w.Header().Add(headerVary, value)
		}
	})
}

func (v *varyWriter) fail(err error) {
	ctx := v.r.Context()
	if v.failOpen {
		appmiddleware.LogError(ctx, "vary header omitted", err)
		return
	}
	v.failed = true
	h := v.w.Header()
	clear(h)
	for k, vals := range v.before {
		h[k] = vals
	}
	if writeErr := respond.WriteError(v.w, ctx, http.StatusInternalServerError, codeVaryEncoding, msgVaryEncoding, nil, err); writeErr != nil {
		appmiddleware.LogError(ctx, "failed to render vary error", writeErr)
	}
}

// finish runs after the wrapped handler returns.
func (v *varyWriter) finish() {
	if !v.committed {
		// A cancelled request has no response to describe.
		if v.r.Context().Err() != nil {
			return
		}
		v.commit()
	}
	if late := v.set.lateKinds(); len(late) > 0 {
		tokens := make([]string, len(late))
		for i, k := range late {
			tokens[i] = k.String()
		}
		appmiddleware.LogWarn(v.r.Context(), "htmx headers read after response headers were written",
			zap.Strings("kinds", tokens),
			zap.String("path", v.r.URL.Path),
		)
	}
}
