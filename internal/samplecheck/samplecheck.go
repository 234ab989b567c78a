// Package samplecheck defines an analyzer that checks verification sample
// owners at vet time.
//
// An owner is a struct type whose name ends in the configured suffix. It
// must be empty, and every exported method declared on it must be a
// sample: a value receiver, no parameters and one result of type
// hwy.Int4, hwy.Bool4, int32 or bool. The registry rejects anything else
// at run time; the analyzer reports it before an image is ever built.
package samplecheck

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const hwyPath = "github.com/ajroetker/go-lanes/hwy"

// Analyzer reports malformed sample owners.
var Analyzer = &analysis.Analyzer{
	Name:     "samplecheck",
	Doc:      "check that verification sample owners declare only well-formed samples",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var suffix = "Samples"

func init() {
	Analyzer.Flags.StringVar(&suffix, "suffix", suffix, "type name suffix that marks a sample owner")
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodes := []ast.Node{(*ast.TypeSpec)(nil), (*ast.FuncDecl)(nil)}
	insp.Preorder(nodes, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.TypeSpec:
			checkOwner(pass, n)
		case *ast.FuncDecl:
			checkMethod(pass, n)
		}
	})
	return nil, nil
}

func isOwnerName(name string) bool {
	return strings.HasSuffix(name, suffix) && name != suffix
}

func checkOwner(pass *analysis.Pass, spec *ast.TypeSpec) {
	if !isOwnerName(spec.Name.Name) {
		return
	}
	obj := pass.TypesInfo.Defs[spec.Name]
	if obj == nil {
		return
	}
	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		pass.Reportf(spec.Name.Pos(), "sample owner %s must be a struct type", spec.Name.Name)
		return
	}
	if st.NumFields() > 0 {
		pass.Reportf(spec.Name.Pos(), "sample owner %s must be an empty struct", spec.Name.Name)
	}
}

func checkMethod(pass *analysis.Pass, fn *ast.FuncDecl) {
	if fn.Recv == nil || len(fn.Recv.List) != 1 || !fn.Name.IsExported() {
		return
	}
	obj, ok := pass.TypesInfo.Defs[fn.Name].(*types.Func)
	if !ok {
		return
	}
	sig := obj.Type().(*types.Signature)
	recv := sig.Recv().Type()
	ptr, isPtr := recv.(*types.Pointer)
	if isPtr {
		recv = ptr.Elem()
	}
	named, ok := recv.(*types.Named)
	if !ok || !isOwnerName(named.Obj().Name()) {
		return
	}

	owner := named.Obj().Name()
	switch {
	case isPtr:
		pass.Reportf(fn.Name.Pos(), "%s.%s has a pointer receiver; samples use value receivers", owner, fn.Name.Name)
	case sig.Params().Len() != 0:
		pass.Reportf(fn.Name.Pos(), "%s.%s takes parameters; samples take none", owner, fn.Name.Name)
	case sig.Results().Len() != 1:
		pass.Reportf(fn.Name.Pos(), "%s.%s must return exactly one value", owner, fn.Name.Name)
	case !isResultType(sig.Results().At(0).Type()):
		pass.Reportf(fn.Name.Pos(), "%s.%s returns %s; samples return hwy.Int4, hwy.Bool4, int32 or bool",
			owner, fn.Name.Name, types.TypeString(sig.Results().At(0).Type(), types.RelativeTo(pass.Pkg)))
	}
}

func isResultType(t types.Type) bool {
	if b, ok := t.(*types.Basic); ok {
		return b.Kind() == types.Int32 || b.Kind() == types.Bool
	}
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != hwyPath {
		return false
	}
	return obj.Name() == "Int4" || obj.Name() == "Bool4"
}
