package sema

import (
	"fmt"
	"strconv"

	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/symbols"
)

// declKindDatatype maps a VAR/VEC/FUNC/PARAM declaration node kind to
// the datatype its suffix names, mirroring ast_type_to_datatype.
func declKindDatatype(kind ast.Kind) symbols.Datatype {
	switch kind {
	case ast.VarDeclInt, ast.VecDeclInt, ast.FuncDeclInt, ast.ParamInt:
		return symbols.Int
	case ast.VarDeclReal, ast.VecDeclReal, ast.FuncDeclReal, ast.ParamReal:
		return symbols.Real
	case ast.VarDeclBool, ast.VecDeclBool, ast.FuncDeclBool, ast.ParamBool:
		return symbols.Bool
	case ast.VarDeclChar, ast.VecDeclChar, ast.FuncDeclChar, ast.ParamChar:
		return symbols.Char
	default:
		return symbols.Unset
	}
}

// requiredVecLiteralKind returns the literal AST kind a vector's
// initializer items must be compatible with.
func requiredVecLiteralKind(kind ast.Kind) ast.Kind {
	switch kind {
	case ast.VecDeclInt:
		return ast.LitInt
	case ast.VecDeclChar:
		return ast.LitChar
	case ast.VecDeclReal:
		return ast.LitReal
	default:
		return ast.KindInvalid
	}
}

// CheckDeclarations is pass 1 (§4.3.1): promote every VAR/VEC/FUNC/
// PARAM declaration's symbol from Identifier to its real role and
// datatype, flag redeclarations, validate vector initializer item
// type/count, and record a function's parameter signature. Grounded
// directly on check_and_set_declarations in semantic.c.
func CheckDeclarations(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case ast.VarDeclInt, ast.VarDeclChar, ast.VarDeclReal, ast.VarDeclBool:
		checkVarDecl(ctx, node)
	case ast.VecDeclInt, ast.VecDeclChar, ast.VecDeclReal, ast.VecDeclBool:
		checkVecDecl(ctx, node)
	case ast.FuncDeclInt, ast.FuncDeclChar, ast.FuncDeclReal, ast.FuncDeclBool:
		checkFuncDecl(ctx, node)
	case ast.ParamInt, ast.ParamChar, ast.ParamReal, ast.ParamBool:
		checkParamDecl(ctx, node)
	}

	for _, son := range node.Sons {
		CheckDeclarations(ctx, son)
	}
}

func reportRedeclared(ctx *Context, node *ast.Node) {
	ctx.report(diag.New(diag.Redeclared, node.Line,
		fmt.Sprintf("identifier %s already declared", node.Symbol.Text)))
}

func checkVarDecl(ctx *Context, node *ast.Node) {
	if node.Symbol == nil {
		return
	}
	if node.Symbol.Kind != symbols.Identifier {
		reportRedeclared(ctx, node)
	}
	node.Symbol.Kind = symbols.Variable
	node.Symbol.Datatype = declKindDatatype(node.Kind)
}

func checkVecDecl(ctx *Context, node *ast.Node) {
	if node.Symbol == nil {
		return
	}
	if node.Symbol.Kind != symbols.Identifier {
		reportRedeclared(ctx, node)
	}
	node.Symbol.Kind = symbols.Vector
	node.Symbol.Datatype = declKindDatatype(node.Kind)
	node.Symbol.IsVector = true

	sizeNode := node.Son(0)
	vecSize := 0
	if sizeNode != nil && sizeNode.Symbol != nil {
		vecSize, _ = strconv.Atoi(sizeNode.Symbol.Text)
	}

	required := requiredVecLiteralKind(node.Kind)
	count := 0
	for item := node.Son(1); item != nil; item = item.Son(1) {
		initExpr := item.Son(0)
		if initExpr != nil && !verifyLiteralCompatibility(initExpr.Kind, required) {
			ctx.report(diag.New(diag.VecInitWrongType, node.Line, fmt.Sprintf(
				"vector %s has initialization item with wrong type (expected type %s got %s)",
				node.Symbol.Text, required, initExpr.Kind)))
		}
		count++
	}
	if node.Son(1) != nil && count != vecSize {
		ctx.report(diag.New(diag.VecInitWrongCount, node.Line, fmt.Sprintf(
			"vector %s has %d initialization items, but its size is %d",
			node.Symbol.Text, count, vecSize)))
	}
}

func checkFuncDecl(ctx *Context, node *ast.Node) {
	if node.Symbol == nil {
		return
	}
	if node.Symbol.Kind != symbols.Identifier {
		reportRedeclared(ctx, node)
	}
	node.Symbol.Kind = symbols.Function
	node.Symbol.Datatype = declKindDatatype(node.Kind)
	node.Symbol.IsFunction = true
	node.Symbol.FuncID = ctx.nextFunctionID()

	recordParams(ctx, node)
}

func recordParams(ctx *Context, funcDecl *ast.Node) {
	params := funcDecl.Son(0)
	if params == nil || params.Kind == ast.EmptyParamList {
		return
	}
	count := 0
	for cell := params; cell != nil; cell = cell.Son(1) {
		paramNode := cell.Son(0)
		if paramNode == nil {
			continue
		}
		idx, err := symbols.NextParamIndex(count)
		if err != nil {
			break
		}
		funcDecl.Symbol.Params[idx] = declKindDatatype(paramNode.Kind)
		count++
	}
	funcDecl.Symbol.ParamCount = count
}

func checkParamDecl(ctx *Context, node *ast.Node) {
	if node.Symbol == nil {
		return
	}
	if node.Symbol.Kind != symbols.Identifier {
		reportRedeclared(ctx, node)
	}
	node.Symbol.Kind = symbols.Parameter
	node.Symbol.Datatype = declKindDatatype(node.Kind)
}
