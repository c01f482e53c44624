package service

import (
	"context"
	"fmt"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/lineitem"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"

	"gorm.io/gorm"
)

// ── Shared line logic ────────────────────────────────────────────────────────

// resolverLinea loads the product, takes its precio_venta when the request has
// no unit price and computes the subtotal.
func resolverLinea(ctx context.Context, productos repository.ProductoRepository, req dto.LineaRequest) (model.Linea, error) {
	p, err := productos.FindByID(ctx, req.ProductoID)
	if err != nil {
		return model.Linea{}, missingRef(err, "producto", req.ProductoID)
	}
	l := model.Linea{ProductoID: p.ID, Cantidad: req.Cantidad, PrecioUnitario: p.PrecioVenta}
	if req.PrecioUnitario != nil {
		l.PrecioUnitario = *req.PrecioUnitario
	}
	return lineitem.Recalc(l), nil
}

// ajustesLinea returns the stock changes that take a line from before to
// after. sign is +1 for purchases and -1 for sales. A nil before is a new
// line, a nil after a deleted one. Changes on the same product are merged and
// zero changes dropped.
func ajustesLinea(before, after *model.Linea, sign int, tipo, motivo string, ref uint) []dto.AjusteStock {
	var out []dto.AjusteStock
	add := func(productoID uint, delta int) {
		for i := range out {
			if out[i].ProductoID == productoID {
				out[i].Delta += delta
				return
			}
		}
		out = append(out, dto.AjusteStock{ProductoID: productoID, Delta: delta, Tipo: tipo, Motivo: motivo})
	}
	if before != nil {
		add(before.ProductoID, -sign*before.Cantidad)
	}
	if after != nil {
		add(after.ProductoID, sign*after.Cantidad)
	}

	kept := out[:0]
	for _, a := range out {
		if a.Delta != 0 {
			r := ref
			a.ReferenciaID = &r
			kept = append(kept, a)
		}
	}
	return kept
}

func lineaToResponse(l model.Linea) dto.LineaResponse {
	return dto.LineaResponse{
		ProductoID:     l.ProductoID,
		Cantidad:       l.Cantidad,
		PrecioUnitario: l.PrecioUnitario,
		Subtotal:       l.Subtotal,
	}
}

// ── Detalles de compra ───────────────────────────────────────────────────────

// DetalleCompraService manages purchase lines. Every write moves stock in.
type DetalleCompraService interface {
	Crear(ctx context.Context, req dto.DetalleCompraRequest) (*dto.DetalleCompraResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.DetalleCompraResponse, error)
	// Listar returns every line, or only compraID's when it is not zero.
	Listar(ctx context.Context, compraID uint) ([]dto.DetalleCompraResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.DetalleCompraRequest) (*dto.DetalleCompraResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type detalleCompraService struct {
	repo         repository.DetalleCompraRepository
	compraRepo   repository.CompraRepository
	productoRepo repository.ProductoRepository
	inventario   InventarioService
}

func NewDetalleCompraService(
	repo repository.DetalleCompraRepository,
	compraRepo repository.CompraRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
) DetalleCompraService {
	return &detalleCompraService{repo: repo, compraRepo: compraRepo, productoRepo: productoRepo, inventario: inventario}
}

func detalleCompraToResponse(d *model.DetalleCompra) dto.DetalleCompraResponse {
	return dto.DetalleCompraResponse{ID: d.ID, CompraID: d.CompraID, LineaResponse: lineaToResponse(d.Linea)}
}

func (s *detalleCompraService) resolver(ctx context.Context, req dto.DetalleCompraRequest) (model.Linea, error) {
	if _, err := s.compraRepo.FindByID(ctx, req.CompraID); err != nil {
		return model.Linea{}, missingRef(err, "compra", req.CompraID)
	}
	return resolverLinea(ctx, s.productoRepo, req.LineaRequest)
}

func (s *detalleCompraService) ajustes(before, after *model.Linea, compraID, ref uint) []dto.AjusteStock {
	return ajustesLinea(before, after, +1, dto.MovimientoCompra, fmt.Sprintf("Compra #%d", compraID), ref)
}

func (s *detalleCompraService) Crear(ctx context.Context, req dto.DetalleCompraRequest) (*dto.DetalleCompraResponse, error) {
	linea, err := s.resolver(ctx, req)
	if err != nil {
		return nil, err
	}
	d := &model.DetalleCompra{CompraID: req.CompraID, Linea: linea}
	err = s.inventario.Registrar(ctx,
		func(tx *gorm.DB) error { return tx.Create(d).Error },
		func() []dto.AjusteStock { return s.ajustes(nil, &d.Linea, d.CompraID, d.ID) },
	)
	if err != nil {
		return nil, err
	}
	resp := detalleCompraToResponse(d)
	return &resp, nil
}

func (s *detalleCompraService) ObtenerPorID(ctx context.Context, id uint) (*dto.DetalleCompraResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "detalle de compra", id)
	}
	resp := detalleCompraToResponse(d)
	return &resp, nil
}

func (s *detalleCompraService) Listar(ctx context.Context, compraID uint) ([]dto.DetalleCompraResponse, error) {
	var detalles []model.DetalleCompra
	var err error
	if compraID != 0 {
		detalles, err = s.repo.ListBy(ctx, "compra_id", compraID)
	} else {
		detalles, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DetalleCompraResponse, len(detalles))
	for i := range detalles {
		resp[i] = detalleCompraToResponse(&detalles[i])
	}
	return resp, nil
}

func (s *detalleCompraService) Actualizar(ctx context.Context, id uint, req dto.DetalleCompraRequest) (*dto.DetalleCompraResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "detalle de compra", id)
	}
	linea, err := s.resolver(ctx, req)
	if err != nil {
		return nil, err
	}
	before := d.Linea
	d.CompraID = req.CompraID
	d.Linea = linea
	err = s.inventario.Registrar(ctx,
		func(tx *gorm.DB) error { return tx.Save(d).Error },
		func() []dto.AjusteStock { return s.ajustes(&before, &d.Linea, d.CompraID, d.ID) },
	)
	if err != nil {
		return nil, err
	}
	resp := detalleCompraToResponse(d)
	return &resp, nil
}

// Eliminar removes the line and takes its quantity back out of stock.
func (s *detalleCompraService) Eliminar(ctx context.Context, id uint) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "detalle de compra", id)
	}
	return s.inventario.Registrar(ctx,
		func(tx *gorm.DB) error { return tx.Delete(&model.DetalleCompra{}, d.ID).Error },
		func() []dto.AjusteStock { return s.ajustes(&d.Linea, nil, d.CompraID, d.ID) },
	)
}

// ── Detalles de venta ────────────────────────────────────────────────────────

// DetalleVentaService manages sale lines. Every write moves stock out.
type DetalleVentaService interface {
	Crear(ctx context.Context, req dto.DetalleVentaRequest) (*dto.DetalleVentaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.DetalleVentaResponse, error)
	// Listar returns every line, or only ventaID's when it is not zero.
	Listar(ctx context.Context, ventaID uint) ([]dto.DetalleVentaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.DetalleVentaRequest) (*dto.DetalleVentaResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type detalleVentaService struct {
	repo         repository.DetalleVentaRepository
	ventaRepo    repository.VentaRepository
	productoRepo repository.ProductoRepository
	inventario   InventarioService
}

func NewDetalleVentaService(
	repo repository.DetalleVentaRepository,
	ventaRepo repository.VentaRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
) DetalleVentaService {
	return &detalleVentaService{repo: repo, ventaRepo: ventaRepo, productoRepo: productoRepo, inventario: inventario}
}

func detalleVentaToResponse(d *model.DetalleVenta) dto.DetalleVentaResponse {
	return dto.DetalleVentaResponse{ID: d.ID, VentaID: d.VentaID, LineaResponse: lineaToResponse(d.Linea)}
}

func (s *detalleVentaService) resolver(ctx context.Context, req dto.DetalleVentaRequest) (model.Linea, error) {
	if _, err := s.ventaRepo.FindByID(ctx, req.VentaID); err != nil {
		return model.Linea{}, missingRef(err, "venta", req.VentaID)
	}
	return resolverLinea(ctx, s.productoRepo, req.LineaRequest)
}

func (s *detalleVentaService) ajustes(before, after *model.Linea, ventaID, ref uint) []dto.AjusteStock {
	return ajustesLinea(before, after, -1, dto.MovimientoVenta, fmt.Sprintf("Venta #%d", ventaID), ref)
}

func (s *detalleVentaService) Crear(ctx context.Context, req dto.DetalleVentaRequest) (*dto.DetalleVentaResponse, error) {
	linea, err := s.resolver(ctx, req)
	if err != nil {
		return nil, err
	}
	d := &model.DetalleVenta{VentaID: req.VentaID, Linea: linea}
	err = s.inventario.Registrar(ctx,
		func(tx *gorm.DB) error { return tx.Create(d).Error },
		func() []dto.AjusteStock { return s.ajustes(nil, &d.Linea, d.VentaID, d.ID) },
	)
	if err != nil {
		return nil, err
	}
	resp := detalleVentaToResponse(d)
	return &resp, nil
}

func (s *detalleVentaService) ObtenerPorID(ctx context.Context, id uint) (*dto.DetalleVentaResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "detalle de venta", id)
	}
	resp := detalleVentaToResponse(d)
	return &resp, nil
}

func (s *detalleVentaService) Listar(ctx context.Context, ventaID uint) ([]dto.DetalleVentaResponse, error) {
	var detalles []model.DetalleVenta
	var err error
	if ventaID != 0 {
		detalles, err = s.repo.ListBy(ctx, "venta_id", ventaID)
	} else {
		detalles, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DetalleVentaResponse, len(detalles))
	for i := range detalles {
		resp[i] = detalleVentaToResponse(&detalles[i])
	}
	return resp, nil
}

func (s *detalleVentaService) Actualizar(ctx context.Context, id uint, req dto.DetalleVentaRequest) (*dto.DetalleVentaResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "detalle de venta", id)
	}
	linea, err := s.resolver(ctx, req)
	if err != nil {
		return nil, err
	}
	before := d.Linea
	d.VentaID = req.VentaID
	d.Linea = linea
	err = s.inventario.Registrar(ctx,
		func(tx *gorm.DB) error { return tx.Save(d).Error },
		func() []dto.AjusteStock { return s.ajustes(&before, &d.Linea, d.VentaID, d.ID) },
	)
	if err != nil {
		return nil, err
	}
	resp := detalleVentaToResponse(d)
	return &resp, nil
}

// Eliminar removes the line and puts its quantity back into stock.
func (s *detalleVentaService) Eliminar(ctx context.Context, id uint) error {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return notFound(err, "detalle de venta", id)
	}
	return s.inventario.Registrar(ctx,
		func(tx *gorm.DB) error { return tx.Delete(&model.DetalleVenta{}, d.ID).Error },
		func() []dto.AjusteStock { return s.ajustes(&d.Linea, nil, d.VentaID, d.ID) },
	)
}
