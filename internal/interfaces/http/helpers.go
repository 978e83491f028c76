package http

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/docstore"
	"github.com/jhoicas/retail-pos-api/internal/domain"
	"github.com/jhoicas/retail-pos-api/internal/listview"
	"github.com/jhoicas/retail-pos-api/internal/report"
)

// respondError traduce un error de dominio a su respuesta HTTP. Todo lo que
// no sea un error de dominio conocido es un 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptyLines):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_LINES", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupported):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "UNSUPPORTED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func missingID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
}

// listParams arma los parámetros del pipeline de listado desde la query
// string. filterKeys son los filtros estructurados propios del endpoint; un
// filtro vacío queda inactivo.
func listParams(c *fiber.Ctx, filterKeys ...string) listview.Params {
	var req dto.ListRequest
	_ = c.QueryParser(&req)
	filters := make(map[string]string, len(filterKeys))
	for _, key := range filterKeys {
		if v := c.Query(key); v != "" {
			filters[key] = v
		}
	}
	return listview.Params{
		Search:   req.Search,
		Filters:  filters,
		SortKey:  req.SortKey,
		SortDir:  req.SortDir,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}

// compareFolded compara texto para ordenar como en pantalla: sin distinguir
// mayúsculas ni diacríticos.
func compareFolded(a, b string) int {
	return strings.Compare(listview.Fold(a), listview.Fold(b))
}

// pageOf ejecuta el pipeline y devuelve la página con sus metadatos.
func pageOf[T any](items []T, params listview.Params, opts listview.Options[T]) ([]T, dto.ListMeta) {
	res := listview.Apply(items, params, opts)
	return res.Items, dto.ListMeta{
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	}
}

// exportRows ejecuta búsqueda, filtros y orden pero sin recorte de página: un
// reporte siempre exporta la lista filtrada completa.
func exportRows[T any](items []T, params listview.Params, opts listview.Options[T]) []T {
	params.Page = 1
	params.PageSize = len(items) + 1
	return listview.Apply(items, params, opts).Items
}

// respondReport renderiza el reporte en el formato pedido por ?format= y lo
// envía como descarga (la vista de impresión HTML va inline).
func respondReport(c *fiber.Ctx, doc report.Document) error {
	format := report.Format(c.Query("format", string(report.FormatCSV)))
	b, contentType, err := report.Render(format, doc)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupported) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FORMAT", Message: err.Error()})
		}
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	if format != report.FormatHTML {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", report.Filename(doc.Title, format)))
	}
	return c.Send(b)
}

// liveEvent es el payload de cada evento SSE: el snapshot completo de la
// colección, documento por documento.
type liveEvent struct {
	ID   string            `json:"id"`
	Data docstore.Document `json:"data"`
}

// streamCollection abre un stream SSE con el snapshot completo de la
// colección en cada cambio. El cliente reemplaza su lista entera con cada
// evento; no hay deltas.
func streamCollection(c *fiber.Ctx, store docstore.Store, collection string) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		// Capacidad 1 + descarte del pendiente: cada snapshot es un reemplazo
		// total, solo interesa el último.
		snapshots := make(chan []docstore.Record, 1)
		errs := make(chan error, 1)
		cancel := store.SubscribeCollection(collection,
			func(recs []docstore.Record) {
				select {
				case <-snapshots:
				default:
				}
				snapshots <- recs
			},
			func(err error) {
				select {
				case errs <- err:
				default:
				}
			},
		)
		defer cancel()

		for {
			select {
			case recs := <-snapshots:
				events := make([]liveEvent, len(recs))
				for i, r := range recs {
					events[i] = liveEvent{ID: r.ID, Data: r.Doc}
				}
				payload, err := json.Marshal(events)
				if err != nil {
					return
				}
				if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			case err := <-errs:
				msg, _ := json.Marshal(err.Error())
				if _, werr := fmt.Fprintf(w, "event: error\ndata: %s\n\n", msg); werr != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}
