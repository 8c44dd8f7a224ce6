package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"publicaya/internal/core/domain"
	"publicaya/internal/core/port"
)

// AdminUseCase serves the admin dashboard: the aggregated fetch batch and
// the two transaction mutations.
type AdminUseCase struct {
	profiles     port.ProfileStore
	transactions port.TransactionStore
	campaigns    port.CampaignStore
	notifier     port.Notifier
}

// NewAdminUseCase constructs the admin use case.
func NewAdminUseCase(profiles port.ProfileStore, transactions port.TransactionStore, campaigns port.CampaignStore, notifier port.Notifier) *AdminUseCase {
	return &AdminUseCase{
		profiles:     profiles,
		transactions: transactions,
		campaigns:    campaigns,
		notifier:     notifier,
	}
}

// Overview fetches everything the admin dashboard shows. The five reads
// run concurrently; the first failure cancels the batch and is surfaced
// as an error notification.
func (u *AdminUseCase) Overview(ctx context.Context) (*port.AdminOverview, error) {
	var out port.AdminOverview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := u.profiles.ListByRole(ctx, domain.RolePersonal)
		out.Users = users
		return err
	})
	g.Go(func() error {
		companies, err := u.profiles.ListByRole(ctx, domain.RoleCompany)
		out.Companies = companies
		return err
	})
	g.Go(func() error {
		txs, err := u.transactions.List(ctx)
		out.Transactions = txs
		return err
	})
	g.Go(func() error {
		n, err := u.campaigns.CountActive(ctx)
		out.ActiveAds = n
		return err
	})
	g.Go(func() error {
		n, err := u.transactions.CountPending(ctx)
		out.PendingTransactions = n
		return err
	})

	if err := g.Wait(); err != nil {
		u.notifier.Notify(domain.NotifyError, "Error", "No se pudieron cargar los datos del panel.")
		return nil, err
	}
	return &out, nil
}

// Approve moves a transaction to approved and then adjusts the user's
// balance through the store's atomic procedure. The two steps are
// sequenced but not wrapped in a cross-step rollback: when the status
// update lands and the balance call fails, the row stays approved with no
// balance effect. The refetch starts only after both round-trips resolve.
func (u *AdminUseCase) Approve(ctx context.Context, txID, userID uuid.UUID, amount int64) (*port.AdminOverview, error) {
	if err := u.transactions.SetStatus(ctx, txID, domain.TxApproved); err != nil {
		u.notifier.Notify(domain.NotifyError, "Error", "No se pudo aprobar la transacción.")
		return nil, err
	}
	if err := u.profiles.AdjustBalance(ctx, userID, amount); err != nil {
		u.notifier.Notify(domain.NotifyError, "Error", "No se pudo actualizar el balance del usuario.")
		return nil, err
	}
	u.notifier.Notify(domain.NotifySuccess, "Transacción Aprobada",
		"La transacción ha sido aprobada y el balance del usuario actualizado.")
	return u.Overview(ctx)
}

// Reject moves a transaction to rejected. The balance procedure is never
// invoked on this path.
func (u *AdminUseCase) Reject(ctx context.Context, txID uuid.UUID) (*port.AdminOverview, error) {
	if err := u.transactions.SetStatus(ctx, txID, domain.TxRejected); err != nil {
		u.notifier.Notify(domain.NotifyError, "Error", "No se pudo rechazar la transacción.")
		return nil, err
	}
	u.notifier.Notify(domain.NotifySuccess, "Transacción Rechazada", "La transacción ha sido rechazada.")
	return u.Overview(ctx)
}
