package assignment

import (
	"strings"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

// Filter names accepted by CreateBucketMatcher.
const (
	FilterAll        = "all"
	FilterUnassigned = "unassigned"
	FilterAssigned   = "assigned"
	FilterAbsent     = "absent"
	FilterStaff      = "staff"
)

// CreateBucketMatcher builds a predicate over bucket keys for list and board
// filtering. "assigned" matches every per-team bucket; unknown filter names
// match everything, like "all".
func CreateBucketMatcher(filter string) func(bucketKey string) bool {
	switch filter {
	case FilterUnassigned:
		return func(key string) bool { return key == model.BucketKeyUnassigned }
	case FilterAssigned:
		return func(key string) bool { return strings.HasPrefix(key, model.TeamBucketPrefix) }
	case FilterAbsent:
		return func(key string) bool { return key == model.BucketKeyAbsent }
	case FilterStaff:
		return func(key string) bool { return key == model.BucketKeyStaff }
	}
	return func(string) bool { return true }
}
