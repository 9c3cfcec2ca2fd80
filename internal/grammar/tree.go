package grammar

import "strings"

// Tree is one node of a parse tree. Preterminal nodes carry the word in
// Leaf and have no children; interior nodes carry children and no Leaf.
type Tree struct {
	Label    string
	Leaf     string
	Children []*Tree
}

// Words returns the leaves in left-to-right order.
func (t *Tree) Words() []string {
	if t.Leaf != "" {
		return []string{t.Leaf}
	}
	var words []string
	for _, c := range t.Children {
		words = append(words, c.Words()...)
	}
	return words
}

// String renders the bracketed form, e.g. (S (NP (N holmes)) (VP (V sat))).
func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder) {
	if t.Leaf != "" {
		if t.Label == "" {
			sb.WriteString(t.Leaf)
			return
		}
		sb.WriteByte('(')
		sb.WriteString(t.Label)
		sb.WriteByte(' ')
		sb.WriteString(t.Leaf)
		sb.WriteByte(')')
		return
	}
	sb.WriteByte('(')
	sb.WriteString(t.Label)
	for _, c := range t.Children {
		sb.WriteByte(' ')
		c.write(sb)
	}
	sb.WriteByte(')')
}

// Pretty renders the tree one node per line, children indented two spaces
// under their parent.
func (t *Tree) Pretty() string {
	var sb strings.Builder
	t.pretty(&sb, 0)
	return sb.String()
}

func (t *Tree) pretty(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(t.Label)
	if t.Leaf != "" {
		if t.Label != "" {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Leaf)
	}
	sb.WriteByte('\n')
	for _, c := range t.Children {
		c.pretty(sb, depth+1)
	}
}

// NounPhraseChunks returns every NP subtree that does not itself contain a
// smaller NP, in left-to-right order.
func NounPhraseChunks(t *Tree) []*Tree {
	var chunks []*Tree
	var walk func(n *Tree) bool
	walk = func(n *Tree) bool {
		containsNP := false
		for _, c := range n.Children {
			if walk(c) {
				containsNP = true
			}
		}
		if n.Label == "NP" && !containsNP {
			chunks = append(chunks, n)
		}
		return containsNP || n.Label == "NP"
	}
	walk(t)
	return chunks
}
