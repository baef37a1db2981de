package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ymatsuda/gl-console/pkg/core/model"
)

func TestCreateBucketMatcher_Assigned(t *testing.T) {
	matcher := CreateBucketMatcher(FilterAssigned)
	assert.True(t, matcher("team:3班"))
	assert.True(t, matcher(model.TeamBucket("赤組").Key()))
	assert.False(t, matcher(model.BucketKeyUnassigned))
	assert.False(t, matcher(model.BucketKeyStaff))
}

func TestCreateBucketMatcher_ExactBuckets(t *testing.T) {
	assert.True(t, CreateBucketMatcher(FilterUnassigned)(model.BucketKeyUnassigned))
	assert.False(t, CreateBucketMatcher(FilterUnassigned)("team:1班"))
	assert.True(t, CreateBucketMatcher(FilterAbsent)(model.BucketKeyAbsent))
	assert.False(t, CreateBucketMatcher(FilterAbsent)(model.BucketKeyStaff))
	assert.True(t, CreateBucketMatcher(FilterStaff)(model.BucketKeyStaff))
}

func TestCreateBucketMatcher_AllAndUnknownMatchEverything(t *testing.T) {
	keys := []string{"team:1班", model.BucketKeyUnassigned, model.BucketKeyAbsent, model.BucketKeyStaff, model.BucketKeyUnavailable}
	for _, filter := range []string{FilterAll, "", "garbage"} {
		matcher := CreateBucketMatcher(filter)
		for _, key := range keys {
			assert.True(t, matcher(key), "filter %q key %q", filter, key)
		}
	}
}
