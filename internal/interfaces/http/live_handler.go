package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// LiveHandler expone el stream SSE por colección: cada cambio empuja el
// snapshot completo, igual que la suscripción que consumen las pantallas.
type LiveHandler struct {
	store docstore.Store
	// allowed evita abrir streams sobre colecciones arbitrarias.
	allowed map[string]bool
}

// NewLiveHandler construye el handler con la lista de colecciones publicables.
func NewLiveHandler(store docstore.Store) *LiveHandler {
	allowed := map[string]bool{
		"products":                      true,
		entity.TradeSale:                true,
		entity.TradeSellReturn:          true,
		entity.TradePurchase:            true,
		entity.TradeDraft:               true,
		entity.TradeQuotation:           true,
		entity.TradePurchaseOrder:       true,
		entity.TradePurchaseRequisition: true,
		"suppliers":                     true,
		"customers":                     true,
		service.CollBrands:              true,
		service.CollCategories:          true,
		service.CollLocations:           true,
		service.CollExpenseCategories:   true,
		service.CollCustomerGroups:      true,
		service.CollSellingPriceGroups:  true,
		service.CollLeadSources:         true,
		service.CollLifeStages:          true,
		service.CollVariations:          true,
		"units":                         true,
		"taxes":                         true,
		"warranties":                    true,
		"discounts":                     true,
		"roles":                         true,
		"expenses":                      true,
		"leads":                         true,
		"follow-ups":                    true,
		"stock-transfers":               true,
		"adjustments":                   true,
		"stock-levels":                  true,
	}
	return &LiveHandler{store: store, allowed: allowed}
}

// Stream godoc
// @Summary      Stream SSE con el snapshot completo de una colección
// @Tags         live
// @Security     Bearer
// @Produce      text/event-stream
// @Param        collection  path  string  true  "Nombre de la colección"
// @Success      200  "Stream de eventos"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/live/{collection} [get]
func (h *LiveHandler) Stream(c *fiber.Ctx) error {
	collection := c.Params("collection")
	if !h.allowed[collection] {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colección desconocida"})
	}
	return streamCollection(c, h.store, collection)
}
