package handlers

import (
	"log"
	"net/http"

	"github.com/karavella/fabric-catalog/app/models"
	"github.com/karavella/fabric-catalog/app/services"
	"github.com/unrolled/render"
)

type CatalogHandler struct {
	render    *render.Render
	fabricSvc *services.FabricService
}

func NewCatalogHandler(render *render.Render, fabricSvc *services.FabricService) *CatalogHandler {
	return &CatalogHandler{render: render, fabricSvc: fabricSvc}
}

type CatalogPageData struct {
	Title         string
	Message       string
	MessageStatus string
	Fabrics       []models.Fabric
}

// GetCatalogPage shows the whole catalog, newest design first. The data
// volume is a manufacturer's book of designs, so a full listing is fine.
func (h *CatalogHandler) GetCatalogPage(w http.ResponseWriter, r *http.Request) {
	data := &CatalogPageData{
		Title:         "Fabric Catalog",
		Message:       r.URL.Query().Get("message"),
		MessageStatus: r.URL.Query().Get("status"),
	}

	fabrics, err := h.fabricSvc.ListFabrics(r.Context())
	if err != nil {
		log.Printf("GetCatalogPage: failed to list fabrics: %v", err)
		data.Message = "Failed to load the catalog."
		data.MessageStatus = "error"
	} else {
		data.Fabrics = fabrics
	}

	h.render.HTML(w, http.StatusOK, "catalog/index", data)
}
