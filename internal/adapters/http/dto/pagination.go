package dto

// Pagination defaults and bounds for list endpoints. MaxLimit is enforced
// by the lte tag on ListParams: requests beyond it are rejected as an
// invalid payload rather than silently clamped.
const (
	DefaultSkip  = 0
	DefaultLimit = 5
	MaxLimit     = 500
)

// ListParams carries offset pagination for list endpoints. Both values
// are optional; zero values fall back to the defaults.
type ListParams struct {
	Skip  int `form:"skip"  json:"skip"  validate:"gte=0"`
	Limit int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=500"`
}

// GetSkip returns the effective offset.
func (p ListParams) GetSkip() int {
	if p.Skip < 0 {
		return DefaultSkip
	}

	return p.Skip
}

// GetLimit returns the effective page size. Out-of-range values never
// reach here; validation rejects them at binding time.
func (p ListParams) GetLimit() int {
	if p.Limit <= 0 {
		return DefaultLimit
	}

	return p.Limit
}
