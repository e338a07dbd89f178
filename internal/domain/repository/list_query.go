package repository

// ListQuery parameterizes a cursor-paged list. Search is matched
// case-insensitively as a partial string across the entity's text fields.
// Implementations return up to Limit+1 rows ordered (created_at DESC, id
// DESC), seeking strictly past the cursor row when Cursor is set.
type ListQuery struct {
	Cursor string // id of the last row of the previous page, "" for the first page
	Limit  int    // positive; callers clamp before building the query
	Search string
}
