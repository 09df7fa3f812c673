package linkedhashmap

type initConfig[K any, V any] struct {
	capacity    int
	initialData []Pair[K, V]
	hash        HashFunc[K]
	equal       EqualFunc[K]
}

// InitOption configures a map at construction time.
type InitOption[K any, V any] func(config *initConfig[K, V])

// WithCapacity allows giving a capacity hint for the map, akin to the standard make(map[K]V, capacity).
// The bucket table is sized so that this many entries fit without growing.
func WithCapacity[K any, V any](capacity int) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.capacity = capacity
	}
}

// WithInitialData allows passing in initial data for the map.
func WithInitialData[K any, V any](initialData ...Pair[K, V]) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.initialData = initialData
	}
}

// WithHasher replaces the hash and equality strategies. Both must be given, and
// equal keys must hash identically.
func WithHasher[K any, V any](hash HashFunc[K], equal EqualFunc[K]) InitOption[K, V] {
	return func(c *initConfig[K, V]) {
		c.hash = hash
		c.equal = equal
	}
}

const invalidOptionMessage = `when using linkedhashmap.New[K,V]() with options, either provide one or several InitOption[K, V]; or a single integer which is then interpreted as a capacity hint, à la make(map[K]V, capacity).` //nolint:lll

func invalidOption() { panic(invalidOptionMessage) }

func parseOptions[K any, V any](options []any) initConfig[K, V] {
	var config initConfig[K, V]
	for _, untypedOption := range options {
		switch option := untypedOption.(type) {
		case int:
			if len(options) != 1 {
				invalidOption()
			}
			config.capacity = option
		case InitOption[K, V]:
			option(&config)
		default:
			invalidOption()
		}
	}
	return config
}
