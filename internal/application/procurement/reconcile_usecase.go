package procurement

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/cpr-planning/internal/application/audit"
	"github.com/jhoicas/cpr-planning/internal/application/dto"
	"github.com/jhoicas/cpr-planning/internal/application/ports"
	"github.com/jhoicas/cpr-planning/internal/domain"
	"github.com/jhoicas/cpr-planning/internal/domain/entity"
	"github.com/jhoicas/cpr-planning/internal/domain/planning"
	"github.com/jhoicas/cpr-planning/internal/domain/repository"
	"github.com/jhoicas/cpr-planning/pkg/logger"
)

// ReconcileLockKey clave del candado de la limpieza de duplicados.
const ReconcileLockKey = "cpr:reconcile:consolidated-orders"

// ReconcileUseCase elimina pedidos consolidados con número repetido, conservando
// el más antiguo de cada grupo. No compara contenido.
type ReconcileUseCase struct {
	txRunner ports.TxRunner
	orders   repository.ConsolidatedOrderRepository
	locker   ports.RunLocker
	lockTTL  time.Duration
	log      *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(
	txRunner ports.TxRunner,
	orders repository.ConsolidatedOrderRepository,
	locker ports.RunLocker,
	lockTTL time.Duration,
	log *logger.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		txRunner: txRunner,
		orders:   orders,
		locker:   locker,
		lockTTL:  lockTTL,
		log:      log.Component("reconcile"),
	}
}

// Reconcile busca grupos duplicados y borra los perdedores, cada grupo en su propia
// transacción. Con dryRun solo informa. Una segunda ejecución no borra nada.
// Si otra limpieza está en curso devuelve ErrConflict.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, actor string, dryRun bool) (*dto.ReconcileResponse, error) {
	unlock, ok, err := uc.locker.TryLock(ctx, ReconcileLockKey, uc.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("candado de limpieza: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: ya hay una limpieza de duplicados en curso", domain.ErrConflict)
	}
	defer unlock()

	all, err := uc.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	groups := planning.FindDuplicates(all)

	out := &dto.ReconcileResponse{
		DryRun:     dryRun,
		DeletedIDs: []string{},
		Groups:     make([]dto.DuplicateGroupResponse, 0, len(groups)),
	}
	for _, g := range groups {
		deleted := g.LoserIDs()
		if !dryRun {
			deleted, err = uc.deleteGroup(ctx, actor, g)
			if err != nil {
				return nil, err
			}
		}
		out.Groups = append(out.Groups, dto.DuplicateGroupResponse{
			OrderNumber: g.OrderNumber,
			KeptID:      g.Keeper.ID,
			DeletedIDs:  deleted,
		})
		out.DeletedIDs = append(out.DeletedIDs, deleted...)
	}
	out.DeletedCount = len(out.DeletedIDs)

	uc.log.Info().Bool("dry_run", dryRun).Int("groups", len(groups)).
		Int("deleted", out.DeletedCount).Msg("limpieza de pedidos duplicados")
	return out, nil
}

func (uc *ReconcileUseCase) deleteGroup(ctx context.Context, actor string, g planning.DuplicateGroup) ([]string, error) {
	losers := make(map[string]*entity.ConsolidatedOrder, len(g.Losers))
	for _, o := range g.Losers {
		losers[o.ID] = o
	}
	var deleted []string
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		ids, err := repos.Consolidated.DeleteDuplicates(ctx, g.OrderNumber, g.Keeper.ID, g.LoserIDs())
		if err != nil {
			return fmt.Errorf("borrar duplicados de %s: %w", g.OrderNumber, err)
		}
		for _, id := range ids {
			if err := audit.WriteLog(ctx, repos.Audit, audit.LogOptions{
				Actor:      actor,
				Action:     entity.AuditActionDelete,
				EntityType: entity.EntityConsolidatedOrder,
				EntityID:   id,
				Before:     toConsolidatedResponse(losers[id]),
			}); err != nil {
				return err
			}
		}
		deleted = ids
		return nil
	})
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		deleted = []string{}
	}
	return deleted, nil
}
