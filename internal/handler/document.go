package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chartref/internal/annotate"
	"chartref/internal/descriptor"
)

// DocumentHandler manages chart documents and their annotations.
type DocumentHandler struct {
	registry   *annotate.Registry
	highlights *annotate.HighlightService
	hyperlinks *annotate.HyperlinkService
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler(
	registry *annotate.Registry,
	highlights *annotate.HighlightService,
	hyperlinks *annotate.HyperlinkService,
) *DocumentHandler {
	return &DocumentHandler{registry: registry, highlights: highlights, hyperlinks: hyperlinks}
}

// HighlightRequest is the body of POST /documents/:id/highlights.
type HighlightRequest struct {
	Target    annotate.Target    `json:"target"`
	Highlight annotate.Highlight `json:"highlight"`
}

// HyperlinkRequest is the body of POST /documents/:id/hyperlinks.
type HyperlinkRequest struct {
	Target    annotate.Target    `json:"target"`
	Hyperlink annotate.Hyperlink `json:"hyperlink"`
}

// PutDocument creates or rebinds a document.
func (h *DocumentHandler) PutDocument(c *gin.Context) {
	var f descriptor.File
	if err := c.ShouldBindJSON(&f); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b, err := descriptor.Build(&f)
	if err != nil {
		bindingError(c, err)
		return
	}

	doc := h.registry.Put(c.Param("id"), b)

	Success(c, gin.H{
		"id":             doc.ID(),
		"family":         b.Family().String(),
		"runtimeVersion": doc.RuntimeVersion(),
	})
}

// DeleteDocument removes a document.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	if err := h.registry.Delete(c.Param("id")); err != nil {
		annotationError(c, err)
		return
	}

	Success(c, nil)
}

// ListAnnotations returns every annotation of a document.
func (h *DocumentHandler) ListAnnotations(c *gin.Context) {
	doc, err := h.registry.Get(c.Param("id"))
	if err != nil {
		annotationError(c, err)
		return
	}

	Success(c, gin.H{
		"items":          doc.Annotations(),
		"runtimeVersion": doc.RuntimeVersion(),
	})
}

// ApplyHighlight adds a highlight to the field a column resolves to.
func (h *DocumentHandler) ApplyHighlight(c *gin.Context) {
	var req HighlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	a, err := h.highlights.Apply(c.Param("id"), req.Target, req.Highlight)
	if err != nil {
		annotationError(c, err)
		return
	}

	Success(c, a)
}

// GetHighlights returns the highlights applying to ?column=.
func (h *DocumentHandler) GetHighlights(c *gin.Context) {
	items, err := h.highlights.Get(c.Param("id"), queryTarget(c))
	if err != nil {
		annotationError(c, err)
		return
	}

	Success(c, gin.H{"items": items})
}

// RemoveHighlight deletes a highlight.
func (h *DocumentHandler) RemoveHighlight(c *gin.Context) {
	if err := h.highlights.Remove(c.Param("id"), c.Param("annotation")); err != nil {
		annotationError(c, err)
		return
	}

	Success(c, nil)
}

// ApplyHyperlink adds a hyperlink to the field a column resolves to.
func (h *DocumentHandler) ApplyHyperlink(c *gin.Context) {
	var req HyperlinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	a, err := h.hyperlinks.Apply(c.Param("id"), req.Target, req.Hyperlink)
	if err != nil {
		annotationError(c, err)
		return
	}

	Success(c, a)
}

// GetHyperlinks returns the hyperlinks applying to ?column=.
func (h *DocumentHandler) GetHyperlinks(c *gin.Context) {
	items, err := h.hyperlinks.Get(c.Param("id"), queryTarget(c))
	if err != nil {
		annotationError(c, err)
		return
	}

	Success(c, gin.H{"items": items})
}

// RemoveHyperlink deletes a hyperlink.
func (h *DocumentHandler) RemoveHyperlink(c *gin.Context) {
	if err := h.hyperlinks.Remove(c.Param("id"), c.Param("annotation")); err != nil {
		annotationError(c, err)
		return
	}

	Success(c, nil)
}

// HyperlinkParameters lists the fields a hyperlink on ?column= may pass.
func (h *DocumentHandler) HyperlinkParameters(c *gin.Context) {
	names, err := h.hyperlinks.ParameterCandidates(c.Param("id"), queryTarget(c))
	if err != nil {
		annotationError(c, err)
		return
	}

	Success(c, gin.H{"fields": names})
}

// queryTarget reads the target from ?column=&axisOnly=&text=&series=.
func queryTarget(c *gin.Context) annotate.Target {
	t := annotate.Target{Column: c.Query("column")}
	t.Options.AxisOnly = c.Query("axisOnly") == "true"
	t.Options.TextRequested = c.Query("text") == "true"
	t.Options.PreferRuntimeForPeriodParts = c.Query("preferRuntime") == "true"
	t.Options.Series = c.Query("series")

	return t
}

func annotationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, annotate.ErrDocumentNotFound), errors.Is(err, annotate.ErrAnnotationNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, annotate.ErrNoTarget):
		Error(c, http.StatusUnprocessableEntity, err.Error())
	default:
		Error(c, http.StatusInternalServerError, err.Error())
	}
}
