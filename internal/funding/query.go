package funding

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"server/internal/domain"
)

// DefaultPageSize is applied when a listing request carries no usable limit.
const DefaultPageSize = 12

// Sort enumerates the supported listing orders. The zero value preserves
// creation order.
type Sort string

const (
	SortNewest      Sort = "newest"
	SortMostFunded  Sort = "most_funded"
	SortEndingSoon  Sort = "ending_soon"
	SortMostPopular Sort = "most_popular"
)

// ParseSort maps a query-string value onto a Sort. Unknown values fall back
// to creation order rather than failing the request.
func ParseSort(s string) Sort {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newest", "recent":
		return SortNewest
	case "most_funded", "funded":
		return SortMostFunded
	case "ending_soon", "ending":
		return SortEndingSoon
	case "most_popular", "popular":
		return SortMostPopular
	}
	return ""
}

// Query describes one listing request. Filter and search are conjunctive.
type Query struct {
	CategoryID string
	Search     string
	Sort       Sort
	Page       int
	PageSize   int
}

// Item is one listing entry with its derived funding stats attached.
type Item struct {
	Campaign domain.Campaign
	Stats    Stats
}

// Result carries one page of items plus pagination totals.
type Result struct {
	Items    []Item
	Total    int
	Page     int
	PageSize int
	Pages    int
}

// Engine answers listing requests against the campaign collection. Only
// APPROVED campaigns are eligible; PENDING and REJECTED are invisible here.
type Engine struct {
	campaigns domain.CampaignRepository
	agg       *Aggregator
}

// NewEngine creates a query engine over the campaign collection.
func NewEngine(campaigns domain.CampaignRepository, agg *Aggregator) *Engine {
	return &Engine{campaigns: campaigns, agg: agg}
}

var fold = cases.Fold()

// Run filters, searches, sorts, and paginates the approved campaigns.
// Pages are 1-indexed; a page past the end yields an empty item list, not an
// error. Stats are computed fresh per matching campaign before sorting, so
// funded/popular orderings see current ledger state.
func (e *Engine) Run(ctx context.Context, q Query) (*Result, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = DefaultPageSize
	}

	all, err := e.campaigns.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	needle := fold.String(strings.TrimSpace(q.Search))
	items := make([]Item, 0, len(all))
	for _, c := range all {
		if q.CategoryID != "" && c.CategoryID != q.CategoryID {
			continue
		}
		if needle != "" && !matchesSearch(c, needle) {
			continue
		}
		stats, err := e.agg.Aggregate(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Campaign: c, Stats: stats})
	}

	sortItems(items, q.Sort)

	total := len(items)
	pages := (total + size - 1) / size
	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return &Result{
		Items:    items[start:end],
		Total:    total,
		Page:     page,
		PageSize: size,
		Pages:    pages,
	}, nil
}

func matchesSearch(c domain.Campaign, needle string) bool {
	return strings.Contains(fold.String(c.Title), needle) ||
		strings.Contains(fold.String(c.ShortDescription), needle) ||
		strings.Contains(fold.String(c.Description), needle)
}

// sortItems applies the comparator for the given key with a stable sort.
// Ties break by campaign id ascending so paginated output is deterministic.
func sortItems(items []Item, key Sort) {
	var less func(a, b Item) bool
	switch key {
	case SortNewest:
		less = func(a, b Item) bool { return a.Campaign.CreatedAt.After(b.Campaign.CreatedAt) }
	case SortMostFunded:
		less = func(a, b Item) bool { return a.Stats.CurrentAmount > b.Stats.CurrentAmount }
	case SortMostPopular:
		less = func(a, b Item) bool { return a.Stats.DonorCount > b.Stats.DonorCount }
	case SortEndingSoon:
		less = func(a, b Item) bool {
			ae, be := a.Campaign.EndDate, b.Campaign.EndDate
			switch {
			case ae == nil:
				return false
			case be == nil:
				return true
			default:
				return ae.Before(*be)
			}
		}
	default:
		// Creation order from the repository is already stable.
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.Campaign.ID < b.Campaign.ID
	})
}
