package handler

import (
	"net/http"

	"tienda/internal/product"
	"tienda/internal/report"
)

type ReportHandler struct {
	Repo     product.Repository
	Renderer report.Renderer
}

// Generate renders the full catalog as a PDF attachment.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.ListAll(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	pdf, err := h.Renderer.Render(products)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="products-report.pdf"`)
	_, _ = w.Write(pdf)
}
