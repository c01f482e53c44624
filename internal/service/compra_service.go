package service

import (
	"context"
	"fmt"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/lineitem"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"
)

type CompraService interface {
	Crear(ctx context.Context, req dto.CompraRequest) (*dto.CompraResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.CompraResponse, error)
	Listar(ctx context.Context) ([]dto.CompraResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.CompraRequest) (*dto.CompraResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Total(ctx context.Context, id uint) (*dto.TotalResponse, error)
}

type compraService struct {
	repo          repository.CompraRepository
	proveedorRepo repository.ProveedorRepository
	detalleRepo   repository.DetalleCompraRepository
}

func NewCompraService(
	repo repository.CompraRepository,
	proveedorRepo repository.ProveedorRepository,
	detalleRepo repository.DetalleCompraRepository,
) CompraService {
	return &compraService{repo: repo, proveedorRepo: proveedorRepo, detalleRepo: detalleRepo}
}

func compraToResponse(c *model.Compra) dto.CompraResponse {
	return dto.CompraResponse{ID: c.ID, ProveedorID: c.ProveedorID, Fecha: c.Fecha}
}

// checkProveedor rejects purchases pointing at a supplier that does not exist.
func (s *compraService) checkProveedor(ctx context.Context, id uint) error {
	_, err := s.proveedorRepo.FindByID(ctx, id)
	return missingRef(err, "proveedor", id)
}

func (s *compraService) Crear(ctx context.Context, req dto.CompraRequest) (*dto.CompraResponse, error) {
	if err := s.checkProveedor(ctx, req.ProveedorID); err != nil {
		return nil, err
	}
	c := &model.Compra{ProveedorID: req.ProveedorID, Fecha: req.Fecha}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := compraToResponse(c)
	return &resp, nil
}

func (s *compraService) ObtenerPorID(ctx context.Context, id uint) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "compra", id)
	}
	resp := compraToResponse(c)
	return &resp, nil
}

func (s *compraService) Listar(ctx context.Context) ([]dto.CompraResponse, error) {
	compras, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CompraResponse, len(compras))
	for i := range compras {
		resp[i] = compraToResponse(&compras[i])
	}
	return resp, nil
}

func (s *compraService) Actualizar(ctx context.Context, id uint, req dto.CompraRequest) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "compra", id)
	}
	if err := s.checkProveedor(ctx, req.ProveedorID); err != nil {
		return nil, err
	}
	c.ProveedorID = req.ProveedorID
	c.Fecha = req.Fecha
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := compraToResponse(c)
	return &resp, nil
}

// Eliminar refuses purchases that still have lines; delete the lines first so
// their stock is reverted.
func (s *compraService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "compra", id)
	}
	n, err := s.detalleRepo.CountBy(ctx, "compra_id", id)
	if err := mustNotBeReferenced(n, err, fmt.Sprintf("compra %d", id), "detalles"); err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, id), "compra", id)
}

func (s *compraService) Total(ctx context.Context, id uint) (*dto.TotalResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "compra", id)
	}
	detalles, err := s.detalleRepo.ListBy(ctx, "compra_id", id)
	if err != nil {
		return nil, err
	}
	lineas := make([]model.Linea, len(detalles))
	for i, d := range detalles {
		lineas[i] = d.Linea
	}
	return &dto.TotalResponse{ID: id, Lineas: len(lineas), Total: lineitem.Total(lineas)}, nil
}
