package service

import (
	"context"
	"fmt"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type proveedorService struct {
	repo        repository.ProveedorRepository
	comprasRepo repository.CompraRepository
}

func NewProveedorService(repo repository.ProveedorRepository, comprasRepo repository.CompraRepository) ProveedorService {
	return &proveedorService{repo: repo, comprasRepo: comprasRepo}
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{ID: p.ID, Nombre: p.Nombre, Telefono: p.Telefono, Email: p.Email}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{Nombre: req.Nombre, Telefono: req.Telefono, Email: req.Email}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "proveedor", id)
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProveedorResponse, len(proveedores))
	for i := range proveedores {
		resp[i] = proveedorToResponse(&proveedores[i])
	}
	return resp, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, id uint, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "proveedor", id)
	}
	p.Nombre = req.Nombre
	p.Telefono = req.Telefono
	p.Email = req.Email
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

// Eliminar refuses suppliers that still have purchases.
func (s *proveedorService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "proveedor", id)
	}
	n, err := s.comprasRepo.CountBy(ctx, "proveedor_id", id)
	if err := mustNotBeReferenced(n, err, fmt.Sprintf("proveedor %d", id), "compras"); err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, id), "proveedor", id)
}
