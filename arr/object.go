package arr

// Extend copies every entry of each source into target, in argument order.
// Later sources overwrite earlier ones and the target. Nil sources are
// skipped. target is modified and returned; a nil target is replaced by a
// new map.
//
//	Extend(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
//	// → map[a:2 b:3]
func Extend[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V)
	}
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// Defaults is like [Extend] but never overwrites a key target already holds,
// so the first source to introduce a key wins.
//
//	Defaults(map[string]int{"a": 1}, map[string]int{"a": 2, "b": 3})
//	// → map[a:1 b:3]
func Defaults[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		target = make(map[K]V)
	}
	for _, src := range sources {
		for k, v := range src {
			if _, exists := target[k]; !exists {
				target[k] = v
			}
		}
	}
	return target
}
