// Package impl contains the application-specific business rules implementations.
package impl

import "subul/config"

const (
	fallbackDefaultLimit = 100
	fallbackMaxLimit     = 500
)

// pager normalizes caller-supplied paging values against configured bounds.
type pager struct {
	defaultLimit int
	maxLimit     int
}

func newPager(cfg *config.PaginationConfig) pager {
	p := pager{defaultLimit: fallbackDefaultLimit, maxLimit: fallbackMaxLimit}
	if cfg != nil {
		if cfg.DefaultLimit > 0 {
			p.defaultLimit = cfg.DefaultLimit
		}
		if cfg.MaxLimit > 0 {
			p.maxLimit = cfg.MaxLimit
		}
	}

	return p
}

// normalize applies the default when limit is unset, clamps it to the
// configured maximum, and floors negative values to the defaults.
func (p pager) normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = p.defaultLimit
	}
	if limit > p.maxLimit {
		limit = p.maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
