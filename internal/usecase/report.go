package usecase

// ItemResult is the outcome for one row touched by a maintenance run.
type ItemResult struct {
	ID     string
	Slug   string
	Before string
	After  string
	Err    error
}

func (r ItemResult) OK() bool { return r.Err == nil }

// Report collects per-row outcomes. A run keeps going after a failed row,
// so callers inspect Failures instead of a single error.
type Report struct {
	Items   []ItemResult
	Skipped int
}

func (r *Report) add(item ItemResult) {
	r.Items = append(r.Items, item)
}

func (r *Report) Succeeded() int {
	n := 0
	for _, it := range r.Items {
		if it.OK() {
			n++
		}
	}
	return n
}

func (r *Report) Failures() []ItemResult {
	var out []ItemResult
	for _, it := range r.Items {
		if !it.OK() {
			out = append(out, it)
		}
	}
	return out
}
