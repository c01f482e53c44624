package service

import (
	"context"
	"fmt"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/lineitem"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"
)

type VentaService interface {
	Crear(ctx context.Context, req dto.VentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error)
	Listar(ctx context.Context) ([]dto.VentaResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.VentaRequest) (*dto.VentaResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Total(ctx context.Context, id uint) (*dto.TotalResponse, error)
}

type ventaService struct {
	repo        repository.VentaRepository
	detalleRepo repository.DetalleVentaRepository
}

func NewVentaService(repo repository.VentaRepository, detalleRepo repository.DetalleVentaRepository) VentaService {
	return &ventaService{repo: repo, detalleRepo: detalleRepo}
}

func ventaToResponse(v *model.Venta) dto.VentaResponse {
	return dto.VentaResponse{ID: v.ID, Fecha: v.Fecha}
}

func (s *ventaService) Crear(ctx context.Context, req dto.VentaRequest) (*dto.VentaResponse, error) {
	v := &model.Venta{Fecha: req.Fecha}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := ventaToResponse(v)
	return &resp, nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, id uint) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "venta", id)
	}
	resp := ventaToResponse(v)
	return &resp, nil
}

func (s *ventaService) Listar(ctx context.Context) ([]dto.VentaResponse, error) {
	ventas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VentaResponse, len(ventas))
	for i := range ventas {
		resp[i] = ventaToResponse(&ventas[i])
	}
	return resp, nil
}

func (s *ventaService) Actualizar(ctx context.Context, id uint, req dto.VentaRequest) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "venta", id)
	}
	v.Fecha = req.Fecha
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := ventaToResponse(v)
	return &resp, nil
}

func (s *ventaService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound(err, "venta", id)
	}
	n, err := s.detalleRepo.CountBy(ctx, "venta_id", id)
	if err := mustNotBeReferenced(n, err, fmt.Sprintf("venta %d", id), "detalles"); err != nil {
		return err
	}
	return notFound(s.repo.Delete(ctx, id), "venta", id)
}

func (s *ventaService) Total(ctx context.Context, id uint) (*dto.TotalResponse, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, notFound(err, "venta", id)
	}
	detalles, err := s.detalleRepo.ListBy(ctx, "venta_id", id)
	if err != nil {
		return nil, err
	}
	lineas := make([]model.Linea, len(detalles))
	for i, d := range detalles {
		lineas[i] = d.Linea
	}
	return &dto.TotalResponse{ID: id, Lineas: len(lineas), Total: lineitem.Total(lineas)}, nil
}
