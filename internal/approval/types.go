package approval

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an approval item.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// StatusFilter narrows the visible items by status.
type StatusFilter string

const (
	FilterAll      StatusFilter = "ALL"
	FilterPending  StatusFilter = StatusFilter(StatusPending)
	FilterApproved StatusFilter = StatusFilter(StatusApproved)
)

// Item is a single business record awaiting or having received approval.
type Item struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	Status Status `json:"status" yaml:"status"`
}

// Approved reports whether the item has been approved.
func (i Item) Approved() bool {
	return i.Status == StatusApproved
}

// sanitizeStatus maps anything other than APPROVED to PENDING.
func sanitizeStatus(raw string) Status {
	if Status(raw) == StatusApproved {
		return StatusApproved
	}
	return StatusPending
}

// ParseStatusFilter accepts all|pending|approved in any case.
// An empty value means ALL.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", string(FilterAll):
		return FilterAll, nil
	case string(FilterPending):
		return FilterPending, nil
	case string(FilterApproved):
		return FilterApproved, nil
	default:
		return "", fmt.Errorf("invalid status filter %q (want all, pending or approved)", raw)
	}
}

// Next cycles ALL -> PENDING -> APPROVED -> ALL.
func (f StatusFilter) Next() StatusFilter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterApproved
	default:
		return FilterAll
	}
}

// Matches reports whether an item with the given status passes the filter.
func (f StatusFilter) Matches(status Status) bool {
	return f == FilterAll || f == "" || StatusFilter(status) == f
}
