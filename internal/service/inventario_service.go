package service

import (
	"context"

	"github.com/gleydi12/web-inventario/internal/dto"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StockQueue hands stock changes to the worker pool. *worker.Dispatcher
// satisfies it.
type StockQueue interface {
	EnqueueStock(ctx context.Context, a dto.AjusteStock) error
}

// InventarioService owns product stock and its movement history.
type InventarioService interface {
	// Registrar runs write and then the stock changes it implies. Without a
	// queue both happen in one transaction. With a queue write commits first
	// and the changes are enqueued; a failed enqueue is applied inline.
	// ajustes is called after write so it can read ids assigned by it.
	Registrar(ctx context.Context, write func(tx *gorm.DB) error, ajustes func() []dto.AjusteStock) error
	// AplicarAjuste changes one product's stock and records the movement.
	AplicarAjuste(ctx context.Context, a dto.AjusteStock) error
	Movimientos(ctx context.Context, productoID uint) ([]dto.MovimientoStockResponse, error)
}

type inventarioService struct {
	repo    repository.ProductoRepository
	movRepo repository.MovimientoStockRepository
	queue   StockQueue
	cache   *ProductoCache
}

// NewInventarioService builds the service. A nil queue applies every stock
// change inline.
func NewInventarioService(
	repo repository.ProductoRepository,
	movRepo repository.MovimientoStockRepository,
	queue StockQueue,
	cache *ProductoCache,
) InventarioService {
	return &inventarioService{repo: repo, movRepo: movRepo, queue: queue, cache: cache}
}

func (s *inventarioService) Registrar(ctx context.Context, write func(tx *gorm.DB) error, ajustes func() []dto.AjusteStock) error {
	if s.queue == nil {
		err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			if err := write(tx); err != nil {
				return err
			}
			for _, a := range ajustes() {
				if err := s.aplicarTx(tx, a); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		s.cache.Invalidate(ctx)
		return nil
	}

	if err := runTx(ctx, s.repo.DB(), write); err != nil {
		return err
	}
	for _, a := range ajustes() {
		if err := s.queue.EnqueueStock(ctx, a); err != nil {
			log.Warn().Err(err).Uint("producto_id", a.ProductoID).Int("delta", a.Delta).
				Msg("cola de stock no disponible, aplicando en línea")
			if err := s.AplicarAjuste(ctx, a); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *inventarioService) AplicarAjuste(ctx context.Context, a dto.AjusteStock) error {
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.aplicarTx(tx, a)
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func (s *inventarioService) aplicarTx(tx *gorm.DB, a dto.AjusteStock) error {
	antes, despues, err := s.repo.UpdateStockTx(tx, a.ProductoID, a.Delta)
	if err != nil {
		return notFound(err, "producto", a.ProductoID)
	}
	return s.movRepo.CreateTx(tx, &model.MovimientoStock{
		ProductoID:    a.ProductoID,
		Tipo:          a.Tipo,
		Cantidad:      a.Delta,
		StockAnterior: antes,
		StockNuevo:    despues,
		Motivo:        a.Motivo,
		ReferenciaID:  a.ReferenciaID,
	})
}

func (s *inventarioService) Movimientos(ctx context.Context, productoID uint) ([]dto.MovimientoStockResponse, error) {
	if _, err := s.repo.FindByID(ctx, productoID); err != nil {
		return nil, notFound(err, "producto", productoID)
	}
	movs, err := s.movRepo.ListByProducto(ctx, productoID, 0)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimientoStockResponse, len(movs))
	for i, m := range movs {
		resp[i] = dto.MovimientoStockResponse{
			ID:            m.ID,
			ProductoID:    m.ProductoID,
			Tipo:          m.Tipo,
			Cantidad:      m.Cantidad,
			StockAnterior: m.StockAnterior,
			StockNuevo:    m.StockNuevo,
			Motivo:        m.Motivo,
			ReferenciaID:  m.ReferenciaID,
			CreatedAt:     m.CreatedAt,
		}
	}
	return resp, nil
}
