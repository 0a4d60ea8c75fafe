package dto

// SearchFilter contains query parameters for the service search endpoints.
type SearchFilter struct {
	Q             string
	Category      string
	Location      string
	IncludeHidden bool
	Page          int
	PerPage       int
}
