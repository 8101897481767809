package semantic

import "github.com/ShahzebX/MeowScript/internal/errors"

// Symbol is a single symbol table entry: a variable or a function.
type Symbol struct {
	Name       string
	Type       DataType
	ScopeLevel int
	IsFunction bool
	Params     []string
	Line       int
	Column     int
}

// SymbolTable is a stack of scope frames. Scope 0 is the program scope;
// enter/exit pairs bracket function bodies, then-blocks, else-blocks,
// and while bodies.
type SymbolTable struct {
	scopes []map[string]*Symbol
}

// NewSymbolTable returns a table with only the program scope open.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]*Symbol{{}}}
}

// EnterScope pushes a new, empty frame.
func (st *SymbolTable) EnterScope() {
	st.scopes = append(st.scopes, map[string]*Symbol{})
}

// ExitScope pops the innermost frame. Popping the program scope is a
// contract violation and panics with an *errors.InternalError.
func (st *SymbolTable) ExitScope() {
	if len(st.scopes) <= 1 {
		panic(&errors.InternalError{Message: "cannot exit the program scope"})
	}
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// CurrentLevel returns the index of the innermost open frame.
func (st *SymbolTable) CurrentLevel() int {
	return len(st.scopes) - 1
}

// Declare adds sym to the innermost frame and returns (sym, true). If
// the name is already declared in that same frame it adds nothing and
// returns the symbol already holding the name and false (a declaration
// in an enclosing scope does not count: the new one shadows it).
func (st *SymbolTable) Declare(sym *Symbol) (*Symbol, bool) {
	frame := st.scopes[len(st.scopes)-1]
	if existing, ok := frame[sym.Name]; ok {
		return existing, false
	}
	frame[sym.Name] = sym
	return sym, true
}

// Lookup searches the innermost frame outward and returns the first
// match, or nil if name is not declared in any open scope.
func (st *SymbolTable) Lookup(name string) *Symbol {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if sym, ok := st.scopes[i][name]; ok {
			return sym
		}
	}
	return nil
}
