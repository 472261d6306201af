// Package merge combines nested string-keyed trees whose keys must not overlap.
//
// It is used to join the shards of a test run: each shard covers a disjoint set
// of tests, so any key present with a leaf value on both sides means two shards
// ran the same test. Sequences are rejected everywhere because a shard boundary
// must never cut through a single value.
package merge

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Tree is a nested mapping with scalar leaves.
type Tree = map[string]any

var (
	// ErrArraysNotMergeable is returned when a value anywhere in either input is a sequence.
	ErrArraysNotMergeable = errors.New("arrays can't be merged")
	// ErrKeyOverlap is returned when the same leaf key is present on both sides.
	ErrKeyOverlap = errors.New("key overlaps")
	// ErrTypeConflict is returned when one side has a mapping and the other a scalar.
	ErrTypeConflict = errors.New("mapping and scalar at the same key")
)

// Error reports the key path at which a merge failed.
type Error struct {
	Path []string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("key %q: %v", strings.Join(e.Path, "."), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Merge returns a new tree holding every key of a and b. Neither input is
// modified. Merge({}, x) and Merge(x, {}) both equal x. Keys are visited in
// sorted order so the reported conflict is the same on every call.
func Merge(a, b Tree) (Tree, error) {
	return mergeAt(nil, a, b)
}

// CheckNoArrays returns an error if any value in tree is a sequence.
func CheckNoArrays(tree Tree) error {
	_, err := cloneAt(nil, tree)
	return err
}

func mergeAt(path []string, a, b Tree) (Tree, error) {
	result, err := cloneAt(path, a)
	if err != nil {
		return nil, err
	}

	for _, key := range slices.Sorted(maps.Keys(b)) {
		right := b[key]
		keyPath := appendPath(path, key)

		rightTree, rightIsTree := asTree(right)
		if !rightIsTree && isSequence(right) {
			return nil, &Error{Path: keyPath, Err: ErrArraysNotMergeable}
		}

		left, exists := result[key]
		if !exists {
			if rightIsTree {
				cloned, err := cloneAt(keyPath, rightTree)
				if err != nil {
					return nil, err
				}

				result[key] = cloned

				continue
			}

			result[key] = right

			continue
		}

		leftTree, leftIsTree := left.(Tree)

		switch {
		case leftIsTree && rightIsTree:
			merged, err := mergeAt(keyPath, leftTree, rightTree)
			if err != nil {
				return nil, err
			}

			result[key] = merged
		case leftIsTree || rightIsTree:
			return nil, &Error{Path: keyPath, Err: ErrTypeConflict}
		default:
			return nil, &Error{Path: keyPath, Err: ErrKeyOverlap}
		}
	}

	return result, nil
}

// cloneAt deep-copies the mappings of tree, rejecting sequences on the way.
func cloneAt(path []string, tree Tree) (Tree, error) {
	clone := make(Tree, len(tree))

	for _, key := range slices.Sorted(maps.Keys(tree)) {
		value := tree[key]
		keyPath := appendPath(path, key)

		if sub, ok := asTree(value); ok {
			cloned, err := cloneAt(keyPath, sub)
			if err != nil {
				return nil, err
			}

			clone[key] = cloned

			continue
		}

		if isSequence(value) {
			return nil, &Error{Path: keyPath, Err: ErrArraysNotMergeable}
		}

		clone[key] = value
	}

	return clone, nil
}

func asTree(value any) (Tree, bool) {
	tree, ok := value.(Tree)
	return tree, ok
}

func isSequence(value any) bool {
	if value == nil {
		return false
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

func appendPath(path []string, key string) []string {
	keyPath := make([]string, len(path), len(path)+1)
	copy(keyPath, path)

	return append(keyPath, key)
}
