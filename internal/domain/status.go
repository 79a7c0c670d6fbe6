package domain

import "time"

// InternStatus is the per-intern active flag. It is keyed by normalized
// email and independent of assignment snapshots.
type InternStatus struct {
	Email     string
	IsActive  bool
	UpdatedAt *time.Time
}
