package domain

// PageOptions are the list-endpoint query knobs.
type PageOptions struct {
	SortBy string
	Limit  int
	Page   int
}

// Normalize applies the shared defaults: limit 10, page 1 (1-indexed).
func (o PageOptions) Normalize() PageOptions {
	if o.Limit <= 0 {
		o.Limit = 10
	}
	if o.Page <= 0 {
		o.Page = 1
	}
	return o
}

// Page is the generic paginated result for list-style reads.
type Page[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}
