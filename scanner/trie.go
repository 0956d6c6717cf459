package scanner

import "sync"

// Trie is a prefix tree over the fixed set of literal, operator and keyword
// strings of the language. Every node reachable from the root represents a
// prefix; nodes representing a complete entry carry a token kind other
// than Illegal.
type Trie struct {
	root *trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	kind     Kind
}

func newTrieNode() *trieNode {
	return &trieNode{
		children: make(map[rune]*trieNode),
		kind:     Illegal,
	}
}

// NewTrie creates an empty prefix tree.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

// Insert adds an entry, tagged with a token kind. Inserting an entry twice
// overwrites its kind.
func (t *Trie) Insert(entry string, kind Kind) {
	node := t.root
	for _, r := range entry {
		child, ok := node.children[r]
		if !ok {
			child = newTrieNode()
			node.children[r] = child
		}
		node = child
	}
	node.kind = kind
}

// Contains checks if s is a path from the root, i.e. if s is a prefix of (or
// identical to) an entry.
func (t *Trie) Contains(s string) bool {
	return t.walk(s) != nil
}

// Find returns the kind of the entry s. If s is not an entry (but possibly a
// prefix of one), Find returns Illegal.
func (t *Trie) Find(s string) Kind {
	if node := t.walk(s); node != nil {
		return node.kind
	}
	return Illegal
}

func (t *Trie) walk(s string) *trieNode {
	node := t.root
	for _, r := range s {
		child, ok := node.children[r]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

// The entries of the keyword/operator table.
var keywords = []struct {
	entry string
	kind  Kind
}{
	{"true", Bool}, {"false", Bool}, {"nil", Nil},
	{"=", Assign}, {"+", Operator}, {"-", Operator}, {"*", Operator}, {"/", Operator},
	{"<", Operator}, {">", Operator}, {"==", Operator}, {"!=", Operator},
	{"(", LParen}, {")", RParen}, {"{", LBrace}, {"}", RBrace}, {",", Comma},
}

var defaultTrie *Trie
var initOnce sync.Once // monitors one-time creation of the keyword table

// Keywords returns the prefix tree of keywords and operators. It is built once
// and must be treated as read-only.
func Keywords() *Trie {
	initOnce.Do(func() {
		defaultTrie = NewTrie()
		for _, kw := range keywords {
			defaultTrie.Insert(kw.entry, kw.kind)
		}
		tracer().Debugf("keyword table initialized with %d entries", len(keywords))
	})
	return defaultTrie
}
