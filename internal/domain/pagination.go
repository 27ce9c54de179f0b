package domain

// SkipWithDeleted converts a 1-based page number into an offset, corrected by
// the count of documents deleted from already-fetched pages so the next page
// does not skip over live entries.
func SkipWithDeleted(page, pageSize, deleted int) int {
	if page < 1 {
		page = 1
	}
	skip := (page-1)*pageSize - deleted
	if skip < 0 {
		return 0
	}
	return skip
}

// NormalizeSkip clamps a client supplied skip value.
func NormalizeSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

type CountResponse struct {
	TotalDocs int64 `json:"totalDocs"`
}
