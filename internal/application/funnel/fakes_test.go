package funnel_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/agency-ops-api/internal/application/ledger"
	"github.com/jhoicas/agency-ops-api/internal/application/notify"
	"github.com/jhoicas/agency-ops-api/internal/domain"
	"github.com/jhoicas/agency-ops-api/internal/domain/entity"
	"github.com/jhoicas/agency-ops-api/internal/domain/repository"
)

// Fakes en memoria para el caso de uso del embudo. Mismo contrato que los
// repositorios de postgres: devuelven copias y el runner restaura el estado
// previo si la función de la transacción falla.

type memStore struct {
	partners    map[string]*entity.Partner
	leads       map[string]*entity.Lead
	commissions map[string]*entity.Commission
	payouts     map[string]*entity.Payout
}

func newMemStore() *memStore {
	return &memStore{
		partners:    make(map[string]*entity.Partner),
		leads:       make(map[string]*entity.Lead),
		commissions: make(map[string]*entity.Commission),
		payouts:     make(map[string]*entity.Payout),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, p := range s.partners {
		v := *p
		cp.partners[id] = &v
	}
	for id, l := range s.leads {
		v := *l
		cp.leads[id] = &v
	}
	for id, c := range s.commissions {
		v := *c
		cp.commissions[id] = &v
	}
	for id, p := range s.payouts {
		v := *p
		cp.payouts[id] = &v
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.partners = snap.partners
	s.leads = snap.leads
	s.commissions = snap.commissions
	s.payouts = snap.payouts
}

type memPartnerRepo struct{ s *memStore }

var _ repository.PartnerRepository = (*memPartnerRepo)(nil)

func (r *memPartnerRepo) Create(p *entity.Partner) error {
	cp := *p
	r.s.partners[cp.ID] = &cp
	return nil
}

func (r *memPartnerRepo) GetByID(id string) (*entity.Partner, error) {
	p, ok := r.s.partners[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartnerRepo) GetByIDForUpdate(id string) (*entity.Partner, error) {
	return r.GetByID(id)
}

func (r *memPartnerRepo) List(limit, offset int) ([]*entity.Partner, error) {
	out := make([]*entity.Partner, 0, len(r.s.partners))
	for _, p := range r.s.partners {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPartnerRepo) Update(p *entity.Partner) error {
	if _, ok := r.s.partners[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.partners[cp.ID] = &cp
	return nil
}

func (r *memPartnerRepo) UpdateBalances(p *entity.Partner) error { return r.Update(p) }

type memLeadRepo struct{ s *memStore }

var _ repository.LeadRepository = (*memLeadRepo)(nil)

func (r *memLeadRepo) Create(l *entity.Lead) error {
	cp := *l
	r.s.leads[cp.ID] = &cp
	return nil
}

func (r *memLeadRepo) GetByID(id string) (*entity.Lead, error) {
	l, ok := r.s.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLeadRepo) GetByIDForUpdate(id string) (*entity.Lead, error) {
	return r.GetByID(id)
}

func (r *memLeadRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Lead, error) {
	out := []*entity.Lead{}
	for _, l := range r.s.leads {
		if l.PartnerID == partnerID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memLeadRepo) List(limit, offset int) ([]*entity.Lead, error) {
	out := make([]*entity.Lead, 0, len(r.s.leads))
	for _, l := range r.s.leads {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memLeadRepo) Update(l *entity.Lead) error {
	if _, ok := r.s.leads[l.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *l
	r.s.leads[cp.ID] = &cp
	return nil
}

type memCommissionRepo struct{ s *memStore }

var _ repository.CommissionRepository = (*memCommissionRepo)(nil)

func (r *memCommissionRepo) Create(c *entity.Commission) error {
	cp := *c
	r.s.commissions[cp.ID] = &cp
	return nil
}

func (r *memCommissionRepo) GetByID(id string) (*entity.Commission, error) {
	c, ok := r.s.commissions[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCommissionRepo) GetByIDForUpdate(id string) (*entity.Commission, error) {
	return r.GetByID(id)
}

func (r *memCommissionRepo) ExistsForLead(partnerID, leadID, ctype string) (bool, error) {
	for _, c := range r.s.commissions {
		if c.PartnerID == partnerID && c.LeadID == leadID && c.Type == ctype {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCommissionRepo) ExistsForClientPeriod(partnerID, clientID, period, ctype string) (bool, error) {
	for _, c := range r.s.commissions {
		if c.PartnerID == partnerID && c.ClientID == clientID && c.Period == period && c.Type == ctype {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCommissionRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Commission, error) {
	out := []*entity.Commission{}
	for _, c := range r.s.commissions {
		if c.PartnerID == partnerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memCommissionRepo) List(limit, offset int) ([]*entity.Commission, error) {
	out := make([]*entity.Commission, 0, len(r.s.commissions))
	for _, c := range r.s.commissions {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCommissionRepo) Update(c *entity.Commission) error {
	if _, ok := r.s.commissions[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.commissions[cp.ID] = &cp
	return nil
}

type memPayoutRepo struct{ s *memStore }

var _ repository.PayoutRepository = (*memPayoutRepo)(nil)

func (r *memPayoutRepo) Create(p *entity.Payout) error {
	cp := *p
	r.s.payouts[cp.ID] = &cp
	return nil
}

func (r *memPayoutRepo) GetByID(id string) (*entity.Payout, error) {
	p, ok := r.s.payouts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPayoutRepo) GetByIDForUpdate(id string) (*entity.Payout, error) {
	return r.GetByID(id)
}

func (r *memPayoutRepo) ListByPartner(partnerID string, limit, offset int) ([]*entity.Payout, error) {
	out := []*entity.Payout{}
	for _, p := range r.s.payouts {
		if p.PartnerID == partnerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPayoutRepo) List(limit, offset int) ([]*entity.Payout, error) {
	out := make([]*entity.Payout, 0, len(r.s.payouts))
	for _, p := range r.s.payouts {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPayoutRepo) Update(p *entity.Payout) error {
	if _, ok := r.s.payouts[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.payouts[cp.ID] = &cp
	return nil
}

type memTxRunner struct{ s *memStore }

var _ ledger.TxRunner = (*memTxRunner)(nil)

func (tr *memTxRunner) Run(ctx context.Context, fn func(
	partnerRepo repository.PartnerRepository,
	leadRepo repository.LeadRepository,
	commissionRepo repository.CommissionRepository,
	payoutRepo repository.PayoutRepository,
) error) error {
	snap := tr.s.snapshot()
	err := fn(
		&memPartnerRepo{s: tr.s},
		&memLeadRepo{s: tr.s},
		&memCommissionRepo{s: tr.s},
		&memPayoutRepo{s: tr.s},
	)
	if err != nil {
		tr.s.restore(snap) // rollback
		return err
	}
	return nil
}

type memNotifier struct {
	leadEvents       []notify.LeadStatusChangedEvent
	commissionEvents []notify.CommissionPaidEvent
	payoutEvents     []notify.PayoutStatusChangedEvent
}

var _ notify.Notifier = (*memNotifier)(nil)

func (n *memNotifier) LeadStatusChanged(_ context.Context, ev notify.LeadStatusChangedEvent) {
	n.leadEvents = append(n.leadEvents, ev)
}

func (n *memNotifier) CommissionPaid(_ context.Context, ev notify.CommissionPaidEvent) {
	n.commissionEvents = append(n.commissionEvents, ev)
}

func (n *memNotifier) PayoutStatusChanged(_ context.Context, ev notify.PayoutStatusChangedEvent) {
	n.payoutEvents = append(n.payoutEvents, ev)
}

func seedPartner(s *memStore, id string, rate int64) *entity.Partner {
	p := &entity.Partner{
		ID:             id,
		Name:           "Partner " + id,
		Email:          id + "@example.com",
		CommissionRate: decimal.NewFromInt(rate),
	}
	s.partners[p.ID] = p
	return p
}
