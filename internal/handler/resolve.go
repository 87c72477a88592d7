package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chartref/internal/chart"
	"chartref/internal/descriptor"
	"chartref/internal/diagnostic"
	"chartref/internal/report"
	"chartref/internal/resolve"
)

// ResolveHandler resolves columns against a chart sent with the request.
type ResolveHandler struct {
	resolver *resolve.Resolver
}

// NewResolveHandler creates a ResolveHandler.
func NewResolveHandler(resolver *resolve.Resolver) *ResolveHandler {
	return &ResolveHandler{resolver: resolver}
}

// ResolveRequest is the body of POST /resolve.
type ResolveRequest struct {
	Chart   descriptor.File `json:"chart"`
	Columns []string        `json:"columns" binding:"required,min=1"`
	Options resolve.Options `json:"options"`
}

// ResolveResponse is the data of a POST /resolve response.
type ResolveResponse struct {
	Rows        []report.Row           `json:"rows"`
	Diagnostics diagnostic.Diagnostics `json:"diagnostics"`
}

// OuterRequest is the body of POST /outer-references.
type OuterRequest struct {
	Chart descriptor.File `json:"chart"`
	// Field is the full name of the resolved field.
	Field string `json:"field" binding:"required"`
	// Candidates are full names of fields; empty means every bound field.
	Candidates []string `json:"candidates"`
}

// Resolve resolves a batch of rendered columns.
func (h *ResolveHandler) Resolve(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b, err := descriptor.Build(&req.Chart)
	if err != nil {
		bindingError(c, err)
		return
	}

	rows, diags := report.Resolve(h.resolver, b, req.Columns, req.Options)

	Success(c, ResolveResponse{Rows: rows, Diagnostics: *diags})
}

// OuterReferences lists the dimensions enclosing a field on its axis.
func (h *ResolveHandler) OuterReferences(c *gin.Context) {
	var req OuterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b, err := descriptor.Build(&req.Chart)
	if err != nil {
		bindingError(c, err)
		return
	}

	candidates := chart.DesignFields(b)
	if len(req.Candidates) > 0 {
		candidates = pick(candidates, req.Candidates)
	}

	Success(c, gin.H{"fields": chart.Names(resolve.OuterReferences(b, req.Field, candidates))})
}

// pick returns the fields named in names, in names order.
func pick(fields []chart.Field, names []string) []chart.Field {
	out := make([]chart.Field, 0, len(names))
	for _, name := range names {
		if f := chart.FindByFullName(fields, name); f != nil {
			out = append(out, f)
		}
	}

	return out
}
