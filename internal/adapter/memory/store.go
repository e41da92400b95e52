package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"server/internal/domain"
)

// Store is an in-memory backing store implementing the domain repositories.
// It serves tests and demo mode. All reads copy under the lock, so callers
// always observe a consistent snapshot of the ledger and never a
// half-written entry.
type Store struct {
	state *state

	Campaigns  *CampaignStore
	Ledger     *LedgerStore
	Categories *CategoryStore
	Users      *UserStore
	Analytics  *AnalyticsStore
}

type state struct {
	mu          sync.RWMutex
	categories  []domain.Category
	campaigns   []domain.Campaign
	donations   []domain.Donation
	paymentRefs map[string]struct{}
	users       map[string]domain.User
	userBySub   map[string]string
	counters    map[string]*domain.AnalyticsDaily
	countries   map[string]int
}

// NewStore creates an empty store.
func NewStore() *Store {
	st := &state{
		paymentRefs: make(map[string]struct{}),
		users:       make(map[string]domain.User),
		userBySub:   make(map[string]string),
		counters:    make(map[string]*domain.AnalyticsDaily),
		countries:   make(map[string]int),
	}
	return &Store{
		state:      st,
		Campaigns:  &CampaignStore{state: st},
		Ledger:     &LedgerStore{state: st},
		Categories: &CategoryStore{state: st},
		Users:      &UserStore{state: st},
		Analytics:  &AnalyticsStore{state: st},
	}
}

// CampaignStore implements domain.CampaignRepository.
type CampaignStore struct {
	state *state
}

func (s *CampaignStore) Create(ctx context.Context, campaign *domain.Campaign) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.campaigns = append(s.state.campaigns, *campaign)
	return nil
}

func (s *CampaignStore) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	for i := range s.state.campaigns {
		if s.state.campaigns[i].ID == id {
			c := s.state.campaigns[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *CampaignStore) ListApproved(ctx context.Context) ([]domain.Campaign, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.state.campaigns))
	for _, c := range s.state.campaigns {
		if c.Status == domain.CampaignApproved {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *CampaignStore) UpdateStatus(ctx context.Context, id string, status domain.CampaignStatus) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	for i := range s.state.campaigns {
		if s.state.campaigns[i].ID == id {
			s.state.campaigns[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *CampaignStore) CountApprovedByCategory(ctx context.Context) (map[string]int, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	counts := make(map[string]int)
	for _, c := range s.state.campaigns {
		if c.Status == domain.CampaignApproved {
			counts[c.CategoryID]++
		}
	}
	return counts, nil
}

// LedgerStore implements domain.DonationLedger. Appends are atomic under the
// store lock; the payment-reference index guards against double submission.
type LedgerStore struct {
	state *state
}

func (s *LedgerStore) Record(ctx context.Context, donation *domain.Donation) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	if _, exists := s.state.paymentRefs[donation.PaymentRef]; exists {
		return domain.ErrDuplicatePaymentRef
	}
	s.state.paymentRefs[donation.PaymentRef] = struct{}{}
	s.state.donations = append(s.state.donations, *donation)
	return nil
}

func (s *LedgerStore) ListByCampaign(ctx context.Context, campaignID string) ([]domain.Donation, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	var out []domain.Donation
	for _, d := range s.state.donations {
		if d.CampaignID == campaignID {
			out = append(out, d)
		}
	}
	return out, nil
}

// CategoryStore implements domain.CategoryRepository.
type CategoryStore struct {
	state *state
}

func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.categories = append(s.state.categories, *category)
	return nil
}

func (s *CategoryStore) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	for i := range s.state.categories {
		if s.state.categories[i].ID == id {
			c := s.state.categories[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *CategoryStore) List(ctx context.Context) ([]domain.Category, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	out := make([]domain.Category, len(s.state.categories))
	copy(out, s.state.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// UserStore implements domain.UserRepository.
type UserStore struct {
	state *state
}

func (s *UserStore) UpsertBySubject(ctx context.Context, user *domain.User) (*domain.User, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	now := time.Now().UTC()
	if id, ok := s.state.userBySub[user.Subject]; ok {
		existing := s.state.users[id]
		existing.Email = user.Email
		existing.Name = user.Name
		existing.Picture = user.Picture
		existing.UpdatedAt = now
		s.state.users[id] = existing
		return &existing, nil
	}
	created := *user
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	if created.Role == "" {
		created.Role = domain.UserRoleStudent
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	s.state.users[created.ID] = created
	s.state.userBySub[created.Subject] = created.ID
	return &created, nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	if u, ok := s.state.users[id]; ok {
		return &u, nil
	}
	return nil, domain.ErrNotFound
}

// AnalyticsStore implements domain.AnalyticsRepository.
type AnalyticsStore struct {
	state *state
}

func (s *AnalyticsStore) IncrementCounters(ctx context.Context, day string, counters map[string]int) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	row, ok := s.state.counters[day]
	if !ok {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			return err
		}
		row = &domain.AnalyticsDaily{Day: parsed, CreatedAt: time.Now().UTC()}
		s.state.counters[day] = row
	}
	row.Visitors += counters[domain.CounterVisitors]
	row.CampaignsCreated += counters[domain.CounterCampaignsCreated]
	row.Donations += counters[domain.CounterDonations]
	row.DonationsFailed += counters[domain.CounterDonationsFailed]
	row.AmountMinor += int64(counters[domain.CounterAmountMinor])
	row.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *AnalyticsStore) IncrementCountry(ctx context.Context, code string) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.countries[code]++
	return nil
}

func (s *AnalyticsStore) Summary(ctx context.Context) (*domain.AnalyticsDaily, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	var latest *domain.AnalyticsDaily
	for _, row := range s.state.counters {
		if latest == nil || row.Day.After(latest.Day) {
			latest = row
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	out := *latest
	return &out, nil
}

func (s *AnalyticsStore) TopCountries(ctx context.Context, limit int) ([]domain.CountryCount, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()
	out := make([]domain.CountryCount, 0, len(s.state.countries))
	for code, n := range s.state.countries {
		out = append(out, domain.CountryCount{Country: code, Donations: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Donations != out[j].Donations {
			return out[i].Donations > out[j].Donations
		}
		return out[i].Country < out[j].Country
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var (
	_ domain.CampaignRepository  = (*CampaignStore)(nil)
	_ domain.DonationLedger      = (*LedgerStore)(nil)
	_ domain.CategoryRepository  = (*CategoryStore)(nil)
	_ domain.UserRepository      = (*UserStore)(nil)
	_ domain.AnalyticsRepository = (*AnalyticsStore)(nil)
)
