package decode

import (
	"sort"

	"github.com/BurntSushi/toml"
)

// keyOrder records the first-appearance order of key paths in a parsed
// document, one node per table level. Paths repeated by [[table]]
// headers merge into a single node, so sibling order inside array
// elements follows first appearance across the whole array.
type keyOrder struct {
	rank     map[string]int
	children map[string]*keyOrder
}

func newKeyOrder() *keyOrder {
	return &keyOrder{
		rank:     make(map[string]int),
		children: make(map[string]*keyOrder),
	}
}

// buildOrder folds the parser's document-order key paths into a rank
// tree.
func buildOrder(keys []toml.Key) *keyOrder {
	root := newKeyOrder()
	for _, key := range keys {
		node := root
		for _, part := range key {
			if _, ok := node.rank[part]; !ok {
				node.rank[part] = len(node.rank)
			}
			child := node.children[part]
			if child == nil {
				child = newKeyOrder()
				node.children[part] = child
			}
			node = child
		}
	}
	return root
}

// sortedKeys returns m's keys in document order. Keys the parser did
// not record rank for sort alphabetically after the ranked ones, so
// the result stays deterministic.
func (o *keyOrder) sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := o.rank[keys[i]]
		rj, jok := o.rank[keys[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// child returns the order node for a sub-table, or an empty node when
// the parser recorded nothing beneath this key.
func (o *keyOrder) child(key string) *keyOrder {
	if c := o.children[key]; c != nil {
		return c
	}
	return newKeyOrder()
}
