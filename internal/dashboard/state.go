package dashboard

import (
	"errors"
	"sync"

	"github.com/rentcredit/rentcredit/internal/payment"
	"github.com/rentcredit/rentcredit/internal/tenant"
)

// GraphType selects how the collection chart is drawn. Purely cosmetic view
// state, carried here so the whole dashboard state lives in one place.
type GraphType string

const (
	GraphLine GraphType = "Line"
	GraphBar  GraphType = "Bar"
	GraphPie  GraphType = "Pie"
)

var ErrUnknownGraphType = errors.New("unknown graph type")

// State is the ephemeral view state of the dashboards: the landlord's tenant
// filter criteria, the tenant-side payment filter, and the chart mode. It is
// created at bootstrap and lost on process exit, like the entity stores.
type State struct {
	mu            sync.Mutex
	filters       tenant.FilterCriteria
	paymentFilter payment.StatusFilter
	graphType     GraphType
}

func NewState() *State {
	return &State{
		filters:       tenant.DefaultCriteria(),
		paymentFilter: payment.FilterAll,
		graphType:     GraphLine,
	}
}

// SetFilters replaces the tenant filter criteria wholesale. Criteria hold no
// identity; there is no merge.
func (s *State) SetFilters(crit tenant.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = crit
}

func (s *State) Filters() tenant.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

// SetPaymentFilter replaces the tenant-dashboard payment filter wholesale.
func (s *State) SetPaymentFilter(f payment.StatusFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentFilter = f
}

func (s *State) PaymentFilter() payment.StatusFilter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paymentFilter
}

// SetGraphType replaces the chart mode wholesale.
func (s *State) SetGraphType(g GraphType) error {
	switch g {
	case GraphLine, GraphBar, GraphPie:
	default:
		return ErrUnknownGraphType
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphType = g

	return nil
}

func (s *State) GraphType() GraphType {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.graphType
}
