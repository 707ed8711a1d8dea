package hashmap

// ResizeDirection tells the kinds of slot array rebuild apart.
type ResizeDirection string

const (
	Grow   ResizeDirection = "grow"
	Shrink ResizeDirection = "shrink"
	// Rehash rebuilds at the same capacity to clear tombstones.
	Rehash ResizeDirection = "rehash"
)

// Outcome is what an operation did with its key.
type Outcome string

const (
	// Added and Updated are insert outcomes.
	Added   Outcome = "added"
	Updated Outcome = "updated"
	// Failed is an insert that found no room.
	Failed Outcome = "failed"
	// Hit and Miss are search and delete outcomes.
	Hit  Outcome = "hit"
	Miss Outcome = "miss"
)

// Observer receives table events. Implementations must be cheap; they run
// inline with every operation.
type Observer interface {
	// Observe is called once per insert, search and delete with the outcome
	// and the number of slots examined.
	Observe(op string, outcome Outcome, attempts int)
	// Resized is called after the slot array is replaced.
	Resized(dir ResizeDirection, from, to int)
	// Sized reports capacity and count after every mutation.
	Sized(capacity, count int)
}

type nopObserver struct{}

func (nopObserver) Observe(string, Outcome, int)      {}
func (nopObserver) Resized(ResizeDirection, int, int) {}
func (nopObserver) Sized(int, int)                    {}
