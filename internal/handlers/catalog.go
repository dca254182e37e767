package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"liaison-portal/internal/stores"
)

// CatalogHandler serves the read-only catalog views.
type CatalogHandler struct {
	catalog *stores.Catalog
}

func NewCatalogHandler(catalog *stores.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListVisitors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"visitors": h.catalog.Visitors(c.Query("region"), c.Query("q"))})
}

func (h *CatalogHandler) GetVisitor(c *gin.Context) {
	visitor, ok := h.catalog.Visitor(c.Param("visitor_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "visitor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visitor": visitor})
}

func (h *CatalogHandler) ListEvents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": h.catalog.Events()})
}

func (h *CatalogHandler) ListCorrespondence(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"correspondence": h.catalog.Correspondence(c.Query("kind"))})
}

func (h *CatalogHandler) GetLetter(c *gin.Context) {
	letter, ok := h.catalog.Letter(c.Param("letter_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"letter": letter})
}

func (h *CatalogHandler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": h.catalog.Reports(c.Query("type"), c.Query("q"))})
}

func (h *CatalogHandler) ListPhotos(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"photos": h.catalog.Photos()})
}

func (h *CatalogHandler) GetPhoto(c *gin.Context) {
	photo, ok := h.catalog.Photo(c.Param("photo_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "photo not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}
