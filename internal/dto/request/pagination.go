package request

import "hotel-booking/pkg/utils"

// PaginatedRequest is embedded by list requests. Out of range values fall back to defaults.
type PaginatedRequest struct {
	Page    int `json:"page" validate:"omitempty,min=1"`
	PerPage int `json:"per_page" validate:"omitempty,min=1,max=100"`
}

func (p PaginatedRequest) CurrentPage() int {
	return max(p.Page, 1)
}

func (p PaginatedRequest) Limit() int {
	switch {
	case p.PerPage < 1:
		return utils.DefaultPerPage
	case p.PerPage > utils.MaxPerPage:
		return utils.MaxPerPage
	}
	return p.PerPage
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.CurrentPage(), p.Limit())
}
