package model

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for wall-clock times.
const TimeLayout = "15:04"

// SortDirection orders a sorted listing
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortField names a sortable booking column
type SortField string

const (
	SortByClient       SortField = "client"
	SortByService      SortField = "service"
	SortByProfessional SortField = "professional"
	SortByPrice        SortField = "price"
	SortByDate         SortField = "date"
	SortByStatus       SortField = "status"
	SortByCreatedAt    SortField = "created_at"
)
