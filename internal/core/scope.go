package core

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/comalice/immutalint/internal/primitives"
)

// funcFrame tracks one enclosing function during the walk.
type funcFrame struct {
	name        string
	constructor bool
	// scopes[0] holds the signature names; each block statement pushes a
	// scope that pops with the block, so bindings end with their block.
	scopes []map[string]struct{}
	lits   int // count of child function literals, for naming
}

func (f *funcFrame) bind(name string) {
	f.scopes[len(f.scopes)-1][name] = struct{}{}
}

func (f *funcFrame) bound(name string) bool {
	for _, scope := range f.scopes {
		if _, ok := scope[name]; ok {
			return true
		}
	}
	return false
}

func (f *funcFrame) boundInCurrent(name string) bool {
	_, ok := f.scopes[len(f.scopes)-1][name]
	return ok
}

// loopFrame tracks one enclosing for clause so its counter updates can be
// exempted from rebind reporting.
type loopFrame struct {
	post     ast.Stmt
	counters map[string]struct{}
}

// Pass carries per-file state through a single inspection walk.
// Rules receive the same Pass for every node of the file.
type Pass struct {
	Fset   *token.FileSet
	File   *ast.File
	Source primitives.SourceFile

	ins       *Inspector
	stack     []ast.Node
	frames    []*funcFrame
	loops     []*loopFrame
	pkgScope  map[string]struct{} // package-level declared names
	redecls   map[*ast.AssignStmt][]*ast.Ident
	collected []primitives.Violation
}

func newPass(ins *Inspector, fset *token.FileSet, file *ast.File, src primitives.SourceFile) *Pass {
	p := &Pass{
		Fset:     fset,
		File:     file,
		Source:   src,
		ins:      ins,
		pkgScope: make(map[string]struct{}),
	}
	// Package-level names can shadow builtins like delete or copy.
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				p.pkgScope[d.Name.Name] = struct{}{}
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					for _, name := range s.Names {
						p.pkgScope[name.Name] = struct{}{}
					}
				case *ast.TypeSpec:
					p.pkgScope[s.Name.Name] = struct{}{}
				case *ast.ImportSpec:
					if s.Name != nil {
						p.pkgScope[s.Name.Name] = struct{}{}
					}
				}
			}
		}
	}
	return p
}

// push records a node before rule dispatch, updating frame bookkeeping.
func (p *Pass) push(n ast.Node) {
	p.stack = append(p.stack, n)

	switch n := n.(type) {
	case *ast.FuncDecl:
		p.frames = append(p.frames, &funcFrame{
			name:        n.Name.Name,
			constructor: isConstructorName(n.Name.Name) && n.Recv == nil,
			scopes:      []map[string]struct{}{fieldNames(n.Type)},
		})
	case *ast.FuncLit:
		frame := &funcFrame{
			name:   "func",
			scopes: []map[string]struct{}{fieldNames(n.Type)},
		}
		if parent := p.topFrame(); parent != nil {
			parent.lits++
			frame.name = "func" + strconv.Itoa(parent.lits)
			// A literal nested in a constructor is still constructing.
			frame.constructor = parent.constructor
		}
		p.frames = append(p.frames, frame)
	case *ast.BlockStmt:
		if frame := p.topFrame(); frame != nil {
			frame.scopes = append(frame.scopes, make(map[string]struct{}))
		}
	case *ast.ForStmt:
		p.loops = append(p.loops, &loopFrame{
			post:     n.Post,
			counters: definedNames(n.Init),
		})
	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			if frame := p.topFrame(); frame != nil {
				// A := naming something already bound in the same block is
				// a reassignment of that name, not a fresh declaration.
				// Init statements of if/for/switch open their own scope,
				// so only plain statement position counts.
				if _, ok := p.parent().(*ast.BlockStmt); ok {
					for _, lhs := range n.Lhs {
						if id, ok := lhs.(*ast.Ident); ok && id.Name != "_" && frame.boundInCurrent(id.Name) {
							if p.redecls == nil {
								p.redecls = make(map[*ast.AssignStmt][]*ast.Ident)
							}
							p.redecls[n] = append(p.redecls[n], id)
						}
					}
				}
				for _, lhs := range n.Lhs {
					if id, ok := lhs.(*ast.Ident); ok && id.Name != "_" {
						frame.bind(id.Name)
					}
				}
			}
		}
	case *ast.GenDecl:
		if frame := p.topFrame(); frame != nil {
			for _, spec := range n.Specs {
				if vs, ok := spec.(*ast.ValueSpec); ok {
					for _, name := range vs.Names {
						if name.Name != "_" {
							frame.bind(name.Name)
						}
					}
				}
			}
		}
	case *ast.RangeStmt:
		if frame := p.topFrame(); frame != nil && n.Tok == token.DEFINE {
			for _, expr := range []ast.Expr{n.Key, n.Value} {
				if id, ok := expr.(*ast.Ident); ok && id.Name != "_" {
					frame.bind(id.Name)
				}
			}
		}
	}
}

// pop unwinds frame bookkeeping after a node's children were walked.
func (p *Pass) pop() {
	if len(p.stack) == 0 {
		return
	}
	n := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	switch n.(type) {
	case *ast.FuncDecl, *ast.FuncLit:
		p.frames = p.frames[:len(p.frames)-1]
	case *ast.BlockStmt:
		if frame := p.topFrame(); frame != nil && len(frame.scopes) > 1 {
			frame.scopes = frame.scopes[:len(frame.scopes)-1]
		}
	case *ast.ForStmt:
		p.loops = p.loops[:len(p.loops)-1]
	}
}

func (p *Pass) topFrame() *funcFrame {
	if len(p.frames) == 0 {
		return nil
	}
	return p.frames[len(p.frames)-1]
}

// parent returns the node enclosing the one currently being visited.
func (p *Pass) parent() ast.Node {
	if len(p.stack) < 2 {
		return nil
	}
	return p.stack[len(p.stack)-2]
}

// InConstructor reports whether the walk is inside a constructor function
// (name starting New/new, no receiver) or an init function. Function
// literals inherit the constructor property of their enclosing function.
func (p *Pass) InConstructor() bool {
	frame := p.topFrame()
	return frame != nil && frame.constructor
}

// Shadowed reports whether name is rebound by a package-level declaration
// or by a binding still in scope in any enclosing function, hiding the
// builtin of the same name. Block-local bindings stop counting once their
// block is popped.
func (p *Pass) Shadowed(name string) bool {
	if _, ok := p.pkgScope[name]; ok {
		return true
	}
	for i := len(p.frames) - 1; i >= 0; i-- {
		if p.frames[i].bound(name) {
			return true
		}
	}
	return false
}

// Redeclared returns the identifiers on the left of a := that were already
// bound in the innermost scope, meaning the := reassigns them instead of
// declaring fresh variables. Nil for a := that only declares.
func (p *Pass) Redeclared(n *ast.AssignStmt) []*ast.Ident {
	return p.redecls[n]
}

// LoopExempt reports whether stmt updates a counter declared in the init of
// the innermost enclosing for clause and is that clause's post statement.
func (p *Pass) LoopExempt(stmt ast.Stmt, name string) bool {
	for i := len(p.loops) - 1; i >= 0; i-- {
		loop := p.loops[i]
		if loop.post == stmt {
			_, ok := loop.counters[name]
			return ok
		}
	}
	return false
}

// Scope returns the dot-joined path of enclosing functions,
// e.g. "NewServer.func1". Empty for package-level code.
func (p *Pass) Scope() string {
	if len(p.frames) == 0 {
		return ""
	}
	names := make([]string, len(p.frames))
	for i, frame := range p.frames {
		names[i] = frame.name
	}
	return strings.Join(names, ".")
}

// Report builds a violation for node and submits it for acceptance.
// The returned error is ErrTooManyViolations when the cap was hit; rules
// propagate it to stop the walk.
func (p *Pass) Report(info primitives.RuleInfo, node ast.Node, message string) error {
	tokPos := p.Fset.Position(node.Pos())
	pos := primitives.Position{
		Filename: tokPos.Filename,
		Line:     tokPos.Line,
		Column:   tokPos.Column,
		Offset:   tokPos.Offset,
	}
	v := primitives.NewViolation(info.ID, message, pos, info.Default).
		WithScope(p.Scope()).
		WithSnippet(p.Source.Line(pos.Offset))
	return p.ins.accept(p, v)
}

// isConstructorName reports whether a function name marks a constructor.
func isConstructorName(name string) bool {
	return name == "init" ||
		strings.HasPrefix(name, "New") ||
		strings.HasPrefix(name, "new")
}

// fieldNames collects parameter and named result names of a signature.
func fieldNames(ft *ast.FuncType) map[string]struct{} {
	names := make(map[string]struct{})
	collect := func(fl *ast.FieldList) {
		if fl == nil {
			return
		}
		for _, field := range fl.List {
			for _, name := range field.Names {
				if name.Name != "_" {
					names[name.Name] = struct{}{}
				}
			}
		}
	}
	collect(ft.Params)
	collect(ft.Results)
	return names
}

// definedNames returns the identifiers declared by a := statement, if any.
func definedNames(stmt ast.Stmt) map[string]struct{} {
	names := make(map[string]struct{})
	assign, ok := stmt.(*ast.AssignStmt)
	if !ok || assign.Tok != token.DEFINE {
		return names
	}
	for _, lhs := range assign.Lhs {
		if id, ok := lhs.(*ast.Ident); ok && id.Name != "_" {
			names[id.Name] = struct{}{}
		}
	}
	return names
}
