package v1

type Pagination struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
}

func newPagination(page, limit uint64, total int) Pagination {
	p := Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
	}

	if limit > 0 {
		p.TotalPages = (total + int(limit) - 1) / int(limit)
	}

	return p
}
