package art_test

import (
	"fmt"

	"github.com/hexradix/artix/pkg/art"
)

// ExampleTree_basic demonstrates basic insert, get and remove operations.
func ExampleTree_basic() {
	tree := art.New[string]()

	tree.Insert([]byte("apple"), "red fruit")
	tree.Insert([]byte("banana"), "yellow fruit")
	tree.Insert([]byte("cherry"), "red berry")

	if value := tree.Get([]byte("apple")); value != nil {
		fmt.Printf("Found: %s\n", *value)
	}

	fmt.Printf("Tree size: %d\n", tree.Len())

	// Output:
	// Found: red fruit
	// Tree size: 3
}

// ExampleTree_differentTypes demonstrates using the tree with different
// value types.
func ExampleTree_differentTypes() {
	intTree := art.New[int]()
	intTree.Insert([]byte("count"), 42)
	intTree.Insert([]byte("max"), 100)

	type User struct {
		ID   int
		Name string
	}

	userTree := art.New[User]()
	userTree.Insert([]byte("user:1"), User{ID: 1, Name: "Alice"})
	userTree.Insert([]byte("user:2"), User{ID: 2, Name: "Bob"})

	if count := intTree.Get([]byte("count")); count != nil {
		fmt.Printf("Count: %d\n", *count)
	}

	if user := userTree.Get([]byte("user:1")); user != nil {
		fmt.Printf("User: %+v\n", *user)
	}

	// Output:
	// Count: 42
	// User: {ID:1 Name:Alice}
}

// ExampleTree_remove demonstrates removing values from the tree.
func ExampleTree_remove() {
	tree := art.New[string]()

	tree.Insert([]byte("apple"), "red")
	tree.Insert([]byte("banana"), "yellow")
	tree.Insert([]byte("cherry"), "red")

	fmt.Printf("Before removal: %d items\n", tree.Len())

	if removed := tree.Remove([]byte("banana")); removed != nil {
		fmt.Printf("Removed: %s\n", *removed)
	}

	fmt.Printf("After removal: %d items\n", tree.Len())

	if removed := tree.Remove([]byte("nonexistent")); removed != nil {
		fmt.Printf("Removed: %s\n", *removed)
	} else {
		fmt.Println("Key not found for removal")
	}

	// Output:
	// Before removal: 3 items
	// Removed: yellow
	// After removal: 2 items
	// Key not found for removal
}
