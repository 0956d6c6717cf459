package runtime

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"golang.org/x/exp/maps"
)

// Symbol table for variables. Symbol tables are attached to scopes.
// Scopes are organized in a tree.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with parsers
// and grammars: Grammars consist of symbols (within rules), too.
// Thus, symbols are used in the scope of the grammar, tags are used during
// runtime (of the client program).
//
// The value bound to a tag is stored in UData. The interpreter binds
// expressions to tags.
type Tag struct {
	name  string
	UData interface{} // bound value
}

// NewTag creates a new tag.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%v>", s.name, s.UData)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
//
// If OnRelease is set, it is called for every tag which is overwritten by a tag
// of the same name.
type SymbolTable struct {
	Table     map[string]*Tag
	OnRelease func(*Tag)
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table: make(map[string]*Tag),
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag, replacing (and releasing) a tag of the
// same name.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	if old != nil && old != tag && t.OnRelease != nil {
		t.OnRelease(old)
	}
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Names returns the names of all tags in the table, sorted.
func (t *SymbolTable) Names() []string {
	names := maps.Keys(t.Table)
	sort.Strings(names)
	return names
}

// === Scopes ================================================================

// ScopeID addresses a scope within a scope tree.
type ScopeID int

// NoScope is the ID of scopes not (yet) part of a scope tree.
const NoScope ScopeID = -1

// Scope is a scope, which may contain symbol definitions. Scopes link back to a
// parent scope, forming a tree. Scopes of functions are named, block scopes
// are anonymous.
type Scope struct {
	ID       ScopeID
	Name     string
	Parent   *Scope
	children []*Scope
	symtab   *SymbolTable
}

// NewScope creates a new scope. If parent is non-nil, the new scope
// will be appended to the parent's children.
func NewScope(nm string, parent *Scope) *Scope {
	sc := &Scope{
		ID:     NoScope,
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
	if parent != nil {
		parent.children = append(parent.children, sc)
	}
	return sc
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	if s.Name == "" {
		return fmt.Sprintf("<scope #%d>", s.ID)
	}
	return fmt.Sprintf("<scope #%d %s>", s.ID, s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// Names returns the names bound in s (not in its ancestors), sorted.
func (s *Scope) Names() []string {
	return s.symtab.Names()
}

// Children returns the scopes nested directly inside s, in order of creation.
func (s *Scope) Children() []*Scope {
	return s.children
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
//
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// Bind defines a tag in the scope and binds a value to it, overwriting any
// existing binding of this name in s. Ancestors of s are never modified.
func (s *Scope) Bind(tagname string, value interface{}) *Tag {
	tag, _ := s.symtab.DefineTag(tagname)
	if tag != nil {
		tag.UData = value
	}
	return tag
}

// ResolveTag finds a tag. Returns the tag (or nil) and a scope. The scope is
// the scope (of a scope-tree-path) the tag was found in. Lookup walks parent
// links only, never siblings or children.
//
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.symtab.ResolveTag(tagname); tag != nil {
			return tag, sc
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during static analysis, thus
// building a tree from scopes which are pushed an popped to/from the stack.
// All scopes are kept in an arena and may be addressed by ID. Named scopes
// may be found by name.
//
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
	arena     *arraylist.List
	named     map[string]ScopeID
	onRelease func(*Tag)
}

// NewScopeTree creates a scope tree with an empty, anonymous global scope.
// The global scope is the current scope (TOS).
func NewScopeTree() *ScopeTree {
	scst := &ScopeTree{
		arena: arraylist.New(),
		named: make(map[string]ScopeID),
	}
	scst.PushNewScope("")
	return scst
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global symbols.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is constructed,
// including a symbol table for variable declarations, as a child of the current scope.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	newsc.ID = ScopeID(scst.arena.Size())
	newsc.symtab.OnRelease = scst.onRelease
	scst.arena.Add(newsc)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.ID).Debugf("pushing new scope %s", newsc)
	return newsc
}

// PopScope pops the top-most (recent) scope. The global scope is never popped.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil || scst.ScopeTOS == scst.ScopeBase {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope %s", sc)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}

// Unwind pops all scopes but the global scope.
func (scst *ScopeTree) Unwind() {
	if scst.ScopeTOS != scst.ScopeBase {
		tracer().Debugf("unwinding scopes from %s", scst.ScopeTOS)
	}
	scst.ScopeTOS = scst.ScopeBase
}

// Register makes a named scope findable by its name, superseding a scope
// previously registered under the same name.
func (scst *ScopeTree) Register(sc *Scope) {
	if sc.Name == "" || scst.Scope(sc.ID) != sc {
		panic("attempt to register an anonymous or foreign scope")
	}
	scst.named[sc.Name] = sc.ID
}

// SetReleaseHook sets a function to be called for every binding which is
// overwritten, for all scopes of the tree (existing ones and future ones).
func (scst *ScopeTree) SetReleaseHook(hook func(*Tag)) {
	scst.onRelease = hook
	for _, sc := range scst.arena.Values() {
		sc.(*Scope).symtab.OnRelease = hook
	}
}

// Scope returns the scope with a given ID, or nil.
func (scst *ScopeTree) Scope(id ScopeID) *Scope {
	sc, ok := scst.arena.Get(int(id))
	if !ok {
		return nil
	}
	return sc.(*Scope)
}

// Named returns the scope registered under name nm, or nil.
func (scst *ScopeTree) Named(nm string) *Scope {
	id, ok := scst.named[nm]
	if !ok {
		return nil
	}
	return scst.Scope(id)
}

// Size returns the number of scopes in the tree.
func (scst *ScopeTree) Size() int {
	return scst.arena.Size()
}
