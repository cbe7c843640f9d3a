package storage_test

import (
	"fmt"

	"go-latestmap/storage"
)

func ExampleLatestMap() {
	m := storage.New[int, string]()
	m.Insert(20, "config@20")
	m.Insert(40, "config@40")

	v, ok := m.GetLatest(37)
	fmt.Println(v, ok)

	_, ok = m.GetLatest(5)
	fmt.Println(ok)

	fmt.Println(m.ContainsKey(37))
	// Output:
	// config@20 true
	// false
	// false
}

func ExampleLatestMap_PopLatest() {
	m := storage.New[int, int]()
	m.Insert(1, 2)
	m.Insert(10, 20)
	m.Insert(50, 100)

	k, v, ok := m.PopLatest(3)
	fmt.Println(k, v, ok, m.Len())
	// Output: 1 2 true 2
}

func ExampleStore_Snapshot() {
	s := storage.NewStore[string, string]()
	s.Set("mode", "fast")
	s.Set("mode", "safe")

	snap, err := s.Snapshot(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := snap.Get("mode")
	fmt.Println(v)

	_, err = s.Snapshot(9)
	fmt.Println(err)
	// Output:
	// fast
	// snapshot at 9 (latest 2): version not yet written
}
