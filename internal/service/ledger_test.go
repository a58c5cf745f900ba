package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/model"
	"leagueportal/internal/repository"
)

// memLedger is an in-memory store with the same uniqueness and
// compare-and-swap behavior as the MySQL repositories. Transactions are
// serialized and roll back by restoring a snapshot.
type memLedger struct {
	mu       sync.Mutex
	txMu     sync.Mutex
	users    map[uuid.UUID]model.User
	players  map[uuid.UUID]model.Player
	payments map[string]model.Payment
}

func newMemLedger() *memLedger {
	return &memLedger{
		users:    map[uuid.UUID]model.User{},
		players:  map[uuid.UUID]model.Player{},
		payments: map[string]model.Payment{},
	}
}

func (l *memLedger) repos() repository.Repositories {
	return repository.Repositories{
		Users:    memUsers{l},
		Players:  memPlayers{l},
		Payments: memPayments{l},
	}
}

func (l *memLedger) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	l.txMu.Lock()
	defer l.txMu.Unlock()

	l.mu.Lock()
	users, players, payments := cloneMap(l.users), cloneMap(l.players), cloneMap(l.payments)
	l.mu.Unlock()

	if err := fn(ctx, l.repos()); err != nil {
		l.mu.Lock()
		l.users, l.players, l.payments = users, players, payments
		l.mu.Unlock()
		return err
	}
	return nil
}

func (l *memLedger) payment(clientTxnID string) model.Payment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.payments[clientTxnID]
}

func (l *memLedger) player(id uuid.UUID) model.Player {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.players[id]
}

func (l *memLedger) paymentCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.payments)
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type memUsers struct{ l *memLedger }

func (r memUsers) Create(_ context.Context, user *model.User) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, u := range r.l.users {
		if u.Phone == user.Phone {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	user.CreatedAt = time.Now()
	r.l.users[user.ID] = *user
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	u, ok := r.l.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r memUsers) FindByPhone(_ context.Context, phone string) (*model.User, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, u := range r.l.users {
		if u.Phone == phone {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memUsers) List(context.Context) ([]model.User, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	out := make([]model.User, 0, len(r.l.users))
	for _, u := range r.l.users {
		out = append(out, u)
	}
	return out, nil
}

func (r memUsers) Count(context.Context) (int64, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return int64(len(r.l.users)), nil
}

func (r memUsers) UpdateRole(_ context.Context, id uuid.UUID, role model.Role) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	u, ok := r.l.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Role = role
	r.l.users[id] = u
	return nil
}

func (r memUsers) Delete(_ context.Context, id uuid.UUID) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	if _, ok := r.l.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.l.users, id)
	return nil
}

type memPlayers struct{ l *memLedger }

func (r memPlayers) Create(_ context.Context, player *model.Player) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, p := range r.l.players {
		if p.UserID == player.UserID {
			return gorm.ErrDuplicatedKey
		}
	}
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	if player.PaymentStatus == "" {
		player.PaymentStatus = model.PaymentStatusPending
	}
	r.l.players[player.ID] = *player
	return nil
}

func (r memPlayers) FindByID(_ context.Context, id uuid.UUID) (*model.Player, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.players[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r memPlayers) FindByUserID(_ context.Context, userID uuid.UUID) (*model.Player, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for _, p := range r.l.players {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memPlayers) List(_ context.Context, filter repository.PlayerFilter) ([]model.Player, int64, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	var out []model.Player
	for _, p := range r.l.players {
		if filter.Status == "" || p.PaymentStatus == filter.Status {
			out = append(out, p)
		}
	}
	total := int64(len(out))
	if filter.Limit > 0 {
		end := filter.Offset + filter.Limit
		if filter.Offset >= len(out) {
			return []model.Player{}, total, nil
		}
		if end > len(out) {
			end = len(out)
		}
		out = out[filter.Offset:end]
	}
	return out, total, nil
}

func (r memPlayers) CountByStatus(_ context.Context, status model.PaymentStatus) (int64, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	var n int64
	for _, p := range r.l.players {
		if p.PaymentStatus == status {
			n++
		}
	}
	return n, nil
}

func (r memPlayers) MarkPaid(_ context.Context, id uuid.UUID, paidAt time.Time, transactionID string) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.players[id]
	if !ok {
		return nil
	}
	p.PaymentStatus = model.PaymentStatusCompleted
	p.PaymentDate = &paidAt
	p.TransactionID = &transactionID
	r.l.players[id] = p
	return nil
}

type memPayments struct{ l *memLedger }

func (r memPayments) Create(_ context.Context, payment *model.Payment) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	if _, ok := r.l.payments[payment.ClientTxnID]; ok {
		return gorm.ErrDuplicatedKey
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	r.l.payments[payment.ClientTxnID] = *payment
	return nil
}

func (r memPayments) FindByClientTxnID(_ context.Context, clientTxnID string) (*model.Payment, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.payments[clientTxnID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r memPayments) FindByClientTxnIDForUpdate(ctx context.Context, clientTxnID string) (*model.Payment, error) {
	return r.FindByClientTxnID(ctx, clientTxnID)
}

func (r memPayments) ListAll(context.Context) ([]model.Payment, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	out := make([]model.Payment, 0, len(r.l.payments))
	for _, p := range r.l.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r memPayments) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Payment, error) {
	all, _ := r.ListAll(ctx)
	var out []model.Payment
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memPayments) SumCompleted(context.Context) (decimal.Decimal, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.l.payments {
		if p.Status == model.PaymentStatusCompleted {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

func (r memPayments) Settle(_ context.Context, s repository.Settlement) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	for k, p := range r.l.payments {
		if p.ID != s.PaymentID {
			continue
		}
		if p.Status != s.From {
			return apperrors.ErrStaleStatus
		}
		p.Status = s.To
		p.TransactionID = s.TransactionID
		if s.UPITxnID != "" {
			p.UPITxnID = s.UPITxnID
		}
		r.l.payments[k] = p
		return nil
	}
	return apperrors.ErrStaleStatus
}
