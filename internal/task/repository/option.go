package repository

// ListTasksOptions holds the parameters for listing tasks from a source.
type ListTasksOptions struct {
	MonthID string // Sources may use it to pre-filter; callers re-check it
}
