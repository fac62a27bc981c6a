package seq

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// Recognised keys for [UniquifyNamed].
const (
	OptionKey     = "key"
	OptionSort    = "sort"
	OptionReverse = "reverse"
)

// UniqueOptions controls the ordering of [Uniquify] and [UniquifyBy] results.
// The zero value sorts ascending by the dedup key.
type UniqueOptions[T any] struct {
	// Sort compares two elements. nil sorts by the dedup key.
	// Build one from a sort-key function with [SortBy].
	Sort func(a, b T) int

	// Reverse sorts in descending order. Elements that compare equal keep
	// their first-seen order in both directions.
	Reverse bool
}

// SortBy returns a comparator that orders elements by the value fn extracts.
//
//	seq.UniqueOptions[User]{Sort: seq.SortBy(func(u User) string { return u.Name })}
func SortBy[T any, S cmp.Ordered](fn func(T) S) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(fn(a), fn(b)) }
}

// Uniquify returns one element per distinct value of s, sorted ascending
// unless opts say otherwise.
//
//	seq.Uniquify(slices.Values([]string{"apple", "banana", "apple", "bananana", "banana"}))
//	// → [apple banana bananana]
func Uniquify[T cmp.Ordered](s iter.Seq[T], opts ...UniqueOptions[T]) []T {
	return UniquifyBy(s, func(item T) T { return item }, opts...)
}

// UniquifyBy returns one element per distinct key(item). When several
// elements share a key the last one is kept. The result is sorted by key
// ascending, or per opts[0] when given.
func UniquifyBy[T any, K cmp.Ordered](s iter.Seq[T], key func(T) K, opts ...UniqueOptions[T]) []T {
	return UniquifyFunc(s, key, SortBy(key), opts...)
}

// UniquifyFunc is [UniquifyBy] for keys that are comparable but not ordered,
// such as structs. compare sorts the result unless opts[0].Sort replaces it;
// with both nil the result keeps first-seen key order and Reverse is ignored.
//
//	type cell struct{ Row, Col int }
//	seq.UniquifyFunc(slices.Values(hits), func(h Hit) cell { return h.Cell },
//	    seq.SortBy(func(h Hit) int { return h.Time }))
func UniquifyFunc[T any, K comparable](s iter.Seq[T], key func(T) K, compare func(a, b T) int, opts ...UniqueOptions[T]) []T {
	var o UniqueOptions[T]
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Sort == nil {
		o.Sort = compare
	}
	return uniquify(s, key, o)
}

// UniquifyNamed is [UniquifyBy] with options supplied as a name → value map,
// for callers that assemble options at runtime.
//
// Recognised names are "key" (func(T) K), "sort" (a comparator
// func(a, b T) int, or a sort-key func returning K, int, float64 or string)
// and "reverse" (anything [cast.ToBoolE] accepts). Without
// "key" the elements themselves are the keys, so T must hold values of type K.
// Any other name, or a value of the wrong type, yields [ErrInvalidArgument]
// before s is consumed.
func UniquifyNamed[T any, K cmp.Ordered](s iter.Seq[T], named map[string]any) ([]T, error) {
	var (
		key  func(T) K
		opts UniqueOptions[T]
	)

	// sorted so the reported option is stable
	for _, name := range slices.Sorted(maps.Keys(named)) {
		value := named[name]
		switch name {
		case OptionKey:
			fn, ok := value.(func(T) K)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidArgument, "option %q: want func(T) K, got %T", name, value)
			}
			key = fn
		case OptionSort:
			switch fn := value.(type) {
			case func(a, b T) int:
				opts.Sort = fn
			case func(T) K:
				opts.Sort = SortBy(fn)
			case func(T) int:
				opts.Sort = SortBy(fn)
			case func(T) float64:
				opts.Sort = SortBy(fn)
			case func(T) string:
				opts.Sort = SortBy(fn)
			default:
				return nil, errors.Wrapf(ErrInvalidArgument, "option %q: want comparator or sort-key func, got %T", name, value)
			}
		case OptionReverse:
			reverse, err := cast.ToBoolE(value)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidArgument, "option %q: %v", name, err)
			}
			opts.Reverse = reverse
		default:
			return nil, errors.Wrapf(ErrInvalidArgument, "unknown option %q", name)
		}
	}

	if key == nil {
		var zero T
		if _, ok := any(zero).(K); !ok {
			return nil, errors.Wrapf(ErrInvalidArgument, "option %q is required when elements are not keys", OptionKey)
		}
		key = func(item T) K { return any(item).(K) }
	}
	if opts.Sort == nil {
		opts.Sort = SortBy(key)
	}
	return uniquify(s, key, opts), nil
}

func uniquify[T any, K comparable](s iter.Seq[T], key func(T) K, opts UniqueOptions[T]) []T {
	var order []K
	last := make(map[K]T)
	for item := range s {
		k := key(item)
		if _, seen := last[k]; !seen {
			order = append(order, k)
		}
		last[k] = item
	}

	out := make([]T, len(order))
	for i, k := range order {
		out[i] = last[k]
	}
	if opts.Sort == nil {
		return out
	}

	compare := opts.Sort
	if opts.Reverse {
		compare = func(a, b T) int { return opts.Sort(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}
