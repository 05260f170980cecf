package bsearch

import "testing"

func TestFindKeyIndex(t *testing.T) {
	var keys [16]byte
	copy(keys[:], []byte{'a', 'c', 'e', 'g'})
	n := 4

	cases := []struct {
		key  byte
		want int
	}{
		{'a', 0},
		{'c', 1},
		{'e', 2},
		{'g', 3},
		{'b', -1},
		{'z', -1},
	}

	for _, c := range cases {
		if got := FindKeyIndex(&keys, n, c.key); got != c.want {
			t.Errorf("FindKeyIndex(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}

func TestInsertPosition(t *testing.T) {
	var keys [16]byte
	copy(keys[:], []byte{'b', 'd', 'f'})
	n := 3

	cases := []struct {
		key  byte
		want int
	}{
		{'a', 0},
		{'b', 0},
		{'c', 1},
		{'e', 2},
		{'g', 3},
	}

	for _, c := range cases {
		if got := InsertPosition(&keys, n, c.key); got != c.want {
			t.Errorf("InsertPosition(%q) = %d, want %d", c.key, got, c.want)
		}
	}
}
