package dto

// PageQuery 页码从 1 开始
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type PageResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	HasNext  bool  `json:"hasNext"`
}

func NewPageResult[T any](items []T, total int64, page, pageSize int) *PageResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return &PageResult[T]{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasNext:  int64(page*pageSize) < total,
	}
}
