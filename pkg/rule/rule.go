// Package rule implements the selection rules that decide which segments the
// tray renders. A rule names segments per width bucket; the engine normalizes
// raw rule specs, merges the persistent baseline (possibly replaced by a
// context detector) with the temporary rule, applies per-name toggles, and
// picks the long or short bucket from the measured surface width.
package rule

import "gitlab.com/tinyland/lab/echo-tray/pkg/segment"

// Spec is the raw, user-facing rule form. Either Both is set (applying to
// both width buckets) or Long/Short are set individually. When Both is
// non-empty it takes precedence entirely; discrete Long/Short entries in the
// same spec are ignored, not merged.
type Spec struct {
	Both  []string `toml:"both" yaml:"both"`
	Long  []string `toml:"long" yaml:"long"`
	Short []string `toml:"short" yaml:"short"`
}

// Rule is the canonical two-bucket form. Order within a bucket is display
// order and is significant.
type Rule struct {
	Long  []string
	Short []string
}

// Normalize converts a raw Spec into canonical form, filtering entries
// against valid. A nil valid set keeps every name.
func Normalize(spec Spec, valid segment.ValidNames) Rule {
	if len(spec.Both) > 0 {
		both := filterNames(spec.Both, valid)
		return Rule{
			Long:  both,
			Short: append([]string(nil), both...),
		}
	}
	return Rule{
		Long:  filterNames(spec.Long, valid),
		Short: filterNames(spec.Short, valid),
	}
}

// Merge combines the persistent baseline with the temporary rule. Buckets
// are concatenated, persistent entries first, duplicates kept. The result
// order is the render order handed to the line builder.
func Merge(persistent, temporary Rule) Rule {
	return Rule{
		Long:  concatNames(persistent.Long, temporary.Long),
		Short: concatNames(persistent.Short, temporary.Short),
	}
}

// Bucket returns the named bucket of the rule.
func (r Rule) Bucket(b BucketName) []string {
	if b == Short {
		return r.Short
	}
	return r.Long
}

// filterNames returns the names present in valid, preserving order. Unknown
// names are dropped silently; a rule referencing a segment from a disabled
// integration is a configuration blemish, not an error.
func filterNames(names []string, valid segment.ValidNames) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if valid.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// concatNames returns a fresh slice holding a followed by b.
func concatNames(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
