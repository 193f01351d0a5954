package entities

// ListLeadsQuery is the validated query for the lead list endpoint.
// Defaults are applied at binding time; enum and range rules are declared
// on the binding tags so that every failing field is reported.
type ListLeadsQuery struct {
	Search    string `form:"search"`
	Stage     string `form:"stage" binding:"omitempty,oneof=NEW CONTACTED QUALIFIED PROPOSAL NEGOTIATION CLOSED_WON CLOSED_LOST"`
	Status    string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE CONVERTED REJECTED"`
	Source    string `form:"source"`
	Country   string `form:"country"`
	SortBy    string `form:"sortBy,default=createdAt" binding:"oneof=createdAt updatedAt firstName lastName email company value stage status country city"`
	SortOrder string `form:"sortOrder,default=desc" binding:"oneof=asc desc"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	Limit     int    `form:"limit,default=10" binding:"min=1,max=100"`
}

// Offset returns the number of records to skip for the requested page
func (q *ListLeadsQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// SortSpec is a single-key ordering. Records with equal sort keys have
// store-dependent relative order; no tie-break key is applied.
type SortSpec struct {
	Field      string
	Descending bool
}

// Filter is a store-agnostic filter specification. It is a closed set of
// variants built by the query translator and interpreted by the store
// adapter, instead of an open-ended untyped condition map.
type Filter interface {
	isFilter()
}

// Equals matches records whose field equals the value exactly
type Equals struct {
	Field string
	Value string
}

// Contains matches records whose field contains the value, ignoring case
type Contains struct {
	Field string
	Value string
}

// And matches records satisfying every child filter
type And struct {
	Filters []Filter
}

// Or matches records satisfying at least one child filter
type Or struct {
	Filters []Filter
}

func (Equals) isFilter()   {}
func (Contains) isFilter() {}
func (And) isFilter()      {}
func (Or) isFilter()       {}

// Pagination is the metadata attached to a paginated response
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// LeadPage is one page of leads plus pagination metadata
type LeadPage struct {
	Data       []*Lead    `json:"data"`
	Pagination Pagination `json:"pagination"`
}
