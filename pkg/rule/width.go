package rule

// BucketName selects which bucket of a Rule is in effect.
type BucketName string

const (
	// Long is used when the surface is at least the width threshold.
	Long BucketName = "long"
	// Short is used below the threshold.
	Short BucketName = "short"
)

// DefaultWidthThreshold is the column count at which the tray switches from
// the short bucket to the long bucket.
const DefaultWidthThreshold = 120

// SelectBucket picks the bucket for a measured surface width. A threshold
// of zero or less falls back to DefaultWidthThreshold. The caller must
// re-evaluate this every tick; window size can change between ticks.
func SelectBucket(width, threshold int) BucketName {
	if threshold <= 0 {
		threshold = DefaultWidthThreshold
	}
	if width < threshold {
		return Short
	}
	return Long
}
