package handler

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/naka-gawa/portfolio/internal/domain"
	"github.com/naka-gawa/portfolio/internal/shell"
	"github.com/naka-gawa/portfolio/internal/widget"
)

// PageHandler serves the page, the GitHub fragment and the contact stub.
type PageHandler struct {
	shell         *shell.Shell
	loader        widget.Loader
	widgetEnabled bool
	logger        *zap.Logger
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(s *shell.Shell, loader widget.Loader, widgetEnabled bool, logger *zap.Logger) *PageHandler {
	return &PageHandler{shell: s, loader: loader, widgetEnabled: widgetEnabled, logger: logger}
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.shell.RenderPage(&buf); err != nil {
		h.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes(), http.StatusOK)
}

// GitHubFragment handles GET /fragments/github.
// It mounts one widget, waits for it to settle and returns the rendered section.
func (h *PageHandler) GitHubFragment(w http.ResponseWriter, r *http.Request) {
	if !h.widgetEnabled {
		http.NotFound(w, r)
		return
	}

	wg := widget.New(h.loader, h.shell.Handle(), h.logger)
	wg.Mount(r.Context())
	defer wg.Unmount()

	state := wg.Wait(r.Context())
	if _, pending := state.(domain.Loading); pending {
		// The client went away before the widget settled.
		h.logger.Debug("fragment request cancelled", zap.Error(r.Context().Err()))
		return
	}

	h.renderWidget(w, state, http.StatusOK)
}

// GitHubRateLimited answers an over-limit fragment request with the widget section
// in its error state, so the page keeps its GitHub section.
func (h *PageHandler) GitHubRateLimited(w http.ResponseWriter, r *http.Request) {
	if !h.widgetEnabled {
		http.NotFound(w, r)
		return
	}
	h.renderWidget(w, domain.NewFailed(domain.UnexpectedFailure, domain.MessageRateLimited), http.StatusTooManyRequests)
}

func (h *PageHandler) renderWidget(w http.ResponseWriter, state domain.WidgetState, status int) {
	var buf bytes.Buffer
	if err := h.shell.RenderWidget(&buf, state); err != nil {
		h.logger.Error("failed to render GitHub widget", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes(), status)
}

// Contact handles POST /contact. Submissions are intentionally discarded.
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("contact submission discarded")
	http.Redirect(w, r, "/#"+shell.SectionContact, http.StatusSeeOther)
}

// Health handles GET /healthz.
func (h *PageHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeHTML(w http.ResponseWriter, body []byte, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
