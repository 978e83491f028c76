package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/domain/entity"
	"github.com/jhoicas/retail-pos-api/internal/domain/pricing"
	"github.com/jhoicas/retail-pos-api/internal/service"
)

// TradeUseCase casos de uso de documentos comerciales. Una instancia por
// colección (ventas, compras, borradores, cotizaciones, órdenes,
// requisiciones). Los totales se recalculan siempre aquí: nunca se confía en
// los montos del request.
type TradeUseCase struct {
	trades *service.Service[entity.TradeDocument]
	// sales es el destino de la conversión borrador/cotización -> venta;
	// nil cuando la colección no convierte.
	sales *service.Service[entity.TradeDocument]
	// stockLevels solo está presente en ventas, para el descuento de stock.
	stockLevels *service.Service[entity.StockLevel]
}

// NewTradeUseCase construye el caso de uso para una colección de documentos.
func NewTradeUseCase(
	trades *service.Service[entity.TradeDocument],
	sales *service.Service[entity.TradeDocument],
	stockLevels *service.Service[entity.StockLevel],
) *TradeUseCase {
	return &TradeUseCase{trades: trades, sales: sales, stockLevels: stockLevels}
}

// Create valida las líneas, recalcula los totales y persiste. En ventas,
// DecrementStock descuenta los niveles de stock producto por producto; las
// escrituras son secuenciales y no atómicas: una venta guardada con un
// decremento fallido queda guardada.
func (uc *TradeUseCase) Create(ctx context.Context, in dto.TradeRequest) (*dto.TradeResponse, error) {
	doc, err := uc.buildDocument(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	id, err := uc.trades.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id

	if in.DecrementStock && uc.stockLevels != nil {
		if err := uc.decrementStock(ctx, doc); err != nil {
			return nil, err
		}
	}
	return toTradeResponse(doc), nil
}

// Update reemplaza el documento recalculando totales; no toca el stock.
func (uc *TradeUseCase) Update(ctx context.Context, id string, in dto.TradeRequest) (*dto.TradeResponse, error) {
	current, err := uc.trades.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc, err := uc.buildDocument(in)
	if err != nil {
		return nil, err
	}
	doc.ID = id
	doc.CreatedAt = current.CreatedAt
	doc.UpdatedAt = time.Now()
	if err := uc.trades.Update(ctx, id, doc); err != nil {
		return nil, err
	}
	return toTradeResponse(doc), nil
}

// GetByID obtiene un documento por id.
func (uc *TradeUseCase) GetByID(ctx context.Context, id string) (*dto.TradeResponse, error) {
	doc, err := uc.trades.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTradeResponse(doc), nil
}

// Delete elimina el documento; id inexistente es no-op.
func (uc *TradeUseCase) Delete(ctx context.Context, id string) error {
	return uc.trades.Delete(ctx, id)
}

// List devuelve la lista vigente completa.
func (uc *TradeUseCase) List(ctx context.Context) ([]dto.TradeResponse, error) {
	items, err := uc.trades.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TradeResponse, 0, len(items))
	for _, d := range items {
		out = append(out, *toTradeResponse(d))
	}
	return out, nil
}

// ConvertToSale copia un borrador o cotización como venta: mismas líneas,
// totales recalculados, y elimina el documento origen. Solo disponible en
// colecciones construidas con un destino de conversión.
func (uc *TradeUseCase) ConvertToSale(ctx context.Context, id string) (*dto.TradeResponse, error) {
	if uc.sales == nil {
		return nil, domain.ErrUnsupported
	}
	source, err := uc.trades.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(source.Lines) == 0 {
		return nil, domain.ErrEmptyLines
	}

	sale := source
	sale.ID = ""
	sale.ItemsTotal = pricing.RecalculateLines(sale.Lines)
	sale.GrandTotal = pricing.DocumentTotal(sale.ItemsTotal, sale.DiscountType, sale.DiscountAmount, sale.TaxRate, sale.ShippingCharges)
	sale.PaymentDue = sale.GrandTotal.Sub(sale.PaymentAmount)
	now := time.Now()
	sale.CreatedAt = now
	sale.UpdatedAt = now

	saleID, err := uc.sales.Create(ctx, sale)
	if err != nil {
		return nil, err
	}
	sale.ID = saleID

	if err := uc.trades.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toTradeResponse(sale), nil
}

// buildDocument valida el request y arma la entidad con totales calculados.
func (uc *TradeUseCase) buildDocument(in dto.TradeRequest) (entity.TradeDocument, error) {
	var zero entity.TradeDocument
	lines, err := buildLines(in.Lines)
	if err != nil {
		return zero, err
	}
	if in.DiscountAmount.IsNegative() || in.TaxRate.IsNegative() || in.ShippingCharges.IsNegative() {
		return zero, domain.ErrInvalidInput
	}

	itemsTotal := pricing.RecalculateLines(lines)
	grandTotal := pricing.DocumentTotal(itemsTotal, in.DiscountType, in.DiscountAmount, in.TaxRate, in.ShippingCharges)

	return entity.TradeDocument{
		Party:           in.Party,
		Date:            in.Date,
		ReferenceNo:     in.ReferenceNo,
		Location:        in.Location,
		Status:          in.Status,
		PaymentStatus:   in.PaymentStatus,
		ShippingStatus:  in.ShippingStatus,
		Lines:           lines,
		DiscountType:    in.DiscountType,
		DiscountAmount:  in.DiscountAmount,
		TaxRate:         in.TaxRate,
		ShippingCharges: in.ShippingCharges,
		ItemsTotal:      itemsTotal,
		GrandTotal:      grandTotal,
		PaymentAmount:   in.PaymentAmount,
		PaymentMethod:   in.PaymentMethod,
		PaymentDue:      grandTotal.Sub(in.PaymentAmount),
		Notes:           in.Notes,
		AddedBy:         in.AddedBy,
	}, nil
}

// decrementStock descuenta el stock de cada línea en la ubicación de la
// venta. Sin nivel previo, crea uno con cantidad negativa para que el déficit
// quede visible en el reporte de stock.
func (uc *TradeUseCase) decrementStock(ctx context.Context, sale entity.TradeDocument) error {
	levels, err := uc.stockLevels.FetchAll(ctx)
	if err != nil {
		return err
	}
	byProduct := make(map[string]entity.StockLevel, len(levels))
	for _, lvl := range levels {
		if lvl.Location == sale.Location {
			byProduct[lvl.ProductID] = lvl
		}
	}

	now := time.Now()
	for _, line := range sale.Lines {
		if lvl, ok := byProduct[line.ProductID]; ok {
			lvl.Quantity = lvl.Quantity.Sub(line.Quantity)
			lvl.UpdatedAt = now
			if err := uc.stockLevels.Update(ctx, lvl.ID, lvl); err != nil {
				return err
			}
			byProduct[line.ProductID] = lvl
			continue
		}
		created := entity.StockLevel{
			ProductID: line.ProductID,
			Location:  sale.Location,
			Quantity:  decimal.Zero.Sub(line.Quantity),
			UpdatedAt: now,
		}
		id, err := uc.stockLevels.Create(ctx, created)
		if err != nil {
			return err
		}
		created.ID = id
		byProduct[line.ProductID] = created
	}
	return nil
}

func toTradeResponse(d entity.TradeDocument) *dto.TradeResponse {
	return &dto.TradeResponse{
		ID:              d.ID,
		Party:           d.Party,
		Date:            d.Date,
		ReferenceNo:     d.ReferenceNo,
		Location:        d.Location,
		Status:          d.Status,
		PaymentStatus:   d.PaymentStatus,
		ShippingStatus:  d.ShippingStatus,
		Lines:           toLineResponses(d.Lines),
		DiscountType:    d.DiscountType,
		DiscountAmount:  d.DiscountAmount,
		TaxRate:         d.TaxRate,
		ShippingCharges: d.ShippingCharges,
		ItemsTotal:      d.ItemsTotal,
		GrandTotal:      d.GrandTotal,
		PaymentAmount:   d.PaymentAmount,
		PaymentMethod:   d.PaymentMethod,
		PaymentDue:      d.PaymentDue,
		Notes:           d.Notes,
		AddedBy:         d.AddedBy,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}
