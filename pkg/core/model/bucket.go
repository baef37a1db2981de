package model

// BucketKind enumerates the fixed display buckets. Team assignments carry
// the team name alongside the kind.
type BucketKind int

const (
	BucketUnassigned BucketKind = iota
	BucketTeam
	BucketAbsent
	BucketStaff
	BucketUnavailable
)

// Stable bucket keys used for grouping and filtering.
const (
	BucketKeyUnassigned  = "__unassigned"
	BucketKeyAbsent      = "__bucket_absent"
	BucketKeyStaff       = "__bucket_staff"
	BucketKeyUnavailable = "__bucket_unavailable"

	// TeamBucketPrefix prefixes the key of every per-team bucket.
	TeamBucketPrefix = "team:"
)

// Bucket is the derived classification of one (applicant, schedule) pair.
// It is never persisted.
type Bucket struct {
	Kind   BucketKind
	TeamID string // set only when Kind is BucketTeam
}

// TeamBucket builds the bucket for an explicit team assignment.
func TeamBucket(teamID string) Bucket {
	return Bucket{Kind: BucketTeam, TeamID: teamID}
}

// Key returns the stable string key for this bucket.
func (b Bucket) Key() string {
	switch b.Kind {
	case BucketTeam:
		return TeamBucketPrefix + b.TeamID
	case BucketAbsent:
		return BucketKeyAbsent
	case BucketStaff:
		return BucketKeyStaff
	case BucketUnavailable:
		return BucketKeyUnavailable
	}
	return BucketKeyUnassigned
}
