/*
Package hashmap provides an in-memory hash table from string keys to string
values built on open addressing with double hashing.

Basic usage:

	import hashmap "github.com/kobeHub/Hash-map"

	t, err := hashmap.New()
	if err != nil {
		log.Fatal(err)
	}
	defer t.Close()

	if err := t.Insert("just", "1"); err != nil {
		log.Fatal(err)
	}

	if v, ok := t.Search("just"); ok {
		fmt.Println("Value:", v)
	}

	t.Delete("just")

Features:

  - Double hashing with two polynomial string hashes (or seeded xxhash)
  - Prime slot-array capacity, so every probe sequence visits every slot
  - Tombstone deletion that keeps probe chains intact
  - Automatic growth when the load factor would exceed 0.70
  - Automatic shrinking when the load factor drops below 0.10
  - Optional Prometheus metrics and apex/log resize logging

Implementation Details:

Each slot is Empty, Tombstone or Occupied. The i-th probe for a key lands on

	(h1 + i*(h2+1)) mod capacity

where h1 and h2 are the key hashed with multipliers 157 and 211. Search stops
at the first Empty slot and skips Tombstones. Insert scans the same path and
reuses the first Tombstone it passed when the key is absent.

Growing doubles the requested capacity and shrinking halves it, never below
the 53-slot floor; the slot array is then rebuilt at the next prime with
Tombstones dropped. When filling an Empty slot would push Occupied plus
Tombstone slots over the grow watermark, the array is instead rebuilt at the
same capacity, so churn that never changes the size still leaves Empty slots
for searches to stop at.

A Table is not safe for concurrent use. Guard it with a mutex when shared.
*/
package hashmap
