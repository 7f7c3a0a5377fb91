package handlers

import (
	"net/http"

	"movelink/models"

	"github.com/gin-gonic/gin"
)

// GetCatalog handles GET /api/quote/catalog. The payload is static and
// lets clients render every wizard step without hardcoding the taxonomy.
func (h *QuoteHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories":      models.CategoryOrder,
		"itemGroups":      models.ItemGroups,
		"roomTypes":       models.RoomTypes,
		"furnitureTypes":  models.FurnitureTypes,
		"applianceTypes":  models.ApplianceOptions,
		"accessOptions":   models.AccessOptions,
		"floorRange":      gin.H{"min": models.FloorMin, "max": models.FloorMax},
		"notePlaceholder": models.RelocationNotePlaceholder,
		"vehicles":        models.VehicleCatalog,
	})
}
