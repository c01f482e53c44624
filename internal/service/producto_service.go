package service

import (
	"context"
	"fmt"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"

	"gorm.io/gorm"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo        repository.ProductoRepository
	movRepo     repository.MovimientoStockRepository
	comprasRepo repository.DetalleCompraRepository
	ventasRepo  repository.DetalleVentaRepository
	cache       *ProductoCache
}

func NewProductoService(
	repo repository.ProductoRepository,
	movRepo repository.MovimientoStockRepository,
	comprasRepo repository.DetalleCompraRepository,
	ventasRepo repository.DetalleVentaRepository,
	cache *ProductoCache,
) ProductoService {
	return &productoService{
		repo:        repo,
		movRepo:     movRepo,
		comprasRepo: comprasRepo,
		ventasRepo:  ventasRepo,
		cache:       cache,
	}
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		PrecioVenta: p.PrecioVenta,
		Stock:       p.Stock,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		PrecioVenta: req.PrecioVenta,
		Stock:       req.Stock,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "producto", id)
	}
	resp := productoToResponse(p)
	return &resp, nil
}

// Listar serves the cached list when Redis has it.
func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	var cached []dto.ProductoResponse
	if s.cache.get(ctx, &cached) {
		return cached, nil
	}

	productos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductoResponse, len(productos))
	for i := range productos {
		resp[i] = productoToResponse(&productos[i])
	}
	s.cache.set(ctx, resp)
	return resp, nil
}

// Actualizar replaces the product fields. A stock change made here is a manual
// correction and is recorded as an "ajuste" movement in the same transaction.
func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ProductoRequest) (*dto.ProductoResponse, error) {
	var p *model.Producto
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		p, err = s.repo.FindByIDTx(tx, id)
		if err != nil {
			return notFound(err, "producto", id)
		}
		antes := p.Stock
		p.Nombre = req.Nombre
		p.Descripcion = req.Descripcion
		p.PrecioVenta = req.PrecioVenta
		p.Stock = req.Stock
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		if antes == p.Stock {
			return nil
		}
		return s.movRepo.CreateTx(tx, &model.MovimientoStock{
			ProductoID:    p.ID,
			Tipo:          dto.MovimientoAjuste,
			Cantidad:      p.Stock - antes,
			StockAnterior: antes,
			StockNuevo:    p.Stock,
			Motivo:        "Ajuste manual",
		})
	})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	resp := productoToResponse(p)
	return &resp, nil
}

// Eliminar refuses products still referenced by purchase or sale lines.
func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "producto", id)
	}
	n, err := s.comprasRepo.CountBy(ctx, "producto_id", id)
	if err := mustNotBeReferenced(n, err, fmt.Sprintf("producto %d", id), "detalles de compra"); err != nil {
		return err
	}
	n, err = s.ventasRepo.CountBy(ctx, "producto_id", id)
	if err := mustNotBeReferenced(n, err, fmt.Sprintf("producto %d", id), "detalles de venta"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "producto", id)
	}
	s.cache.Invalidate(ctx)
	return nil
}
