package response

import "hotel-booking/pkg/utils"

type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type PaginatedResponse[T any] struct {
	Data       []T      `json:"data"`
	Pagination PageMeta `json:"pagination"`
}

func NewPaginatedResponse[T any](data []T, page, perPage int, total int64) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PageMeta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: utils.CalculateTotalPages(total, perPage),
		},
	}
}

// Paginate converts one page of entities with conv and wraps it with its metadata.
func Paginate[E, T any](items []E, conv func(E) T, page, perPage int, total int64) *PaginatedResponse[T] {
	data := make([]T, 0, len(items))
	for _, item := range items {
		data = append(data, conv(item))
	}
	return NewPaginatedResponse(data, page, perPage, total)
}
