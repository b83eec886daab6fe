package ast

// Kind tags every AST node the semantic analyzer and TAC generator
// consume (§6.1). A handful of purely structural kinds — Program,
// StmtList, ParamList, VecInitList — are not named in §6.1 because
// they carry no semantic rule of their own; they exist only to chain
// sibling declarations/statements/arguments together the way a real
// parser's grammar would, and fall through the TAC generator's
// "default: concatenate all child code lists" row (§4.6).
type Kind uint8

const (
	KindInvalid Kind = iota

	// Structural / sequencing.
	Program
	StmtList

	// Declarations.
	VarDeclInt
	VarDeclReal
	VarDeclBool
	VarDeclChar
	VecDeclInt
	VecDeclReal
	VecDeclBool
	VecDeclChar
	FuncDeclInt
	FuncDeclReal
	FuncDeclBool
	FuncDeclChar

	// Parameters.
	ParamInt
	ParamReal
	ParamBool
	ParamChar
	ParamList
	EmptyParamList

	// Literals.
	LitInt
	LitReal
	LitChar
	LitString

	// Names and access.
	Identifier
	VecAccess
	FuncCall
	ExprList
	VecInitList

	// Arithmetic.
	Add
	Sub
	Mul
	Div
	Neg

	// Relational.
	Le
	Ge
	Eq
	Dif
	Gt
	Lt

	// Logical.
	And
	Or
	Not

	NestedExpr

	// Assignments.
	VarAttrib
	VecAttrib

	// Control flow.
	If
	IfElse
	Loop
	ReturnCmd

	// I/O.
	OutputCmd
	OutputParamList
	InputExprInt
	InputExprReal
	InputExprChar
	InputExprBool
)

var kindNames = map[Kind]string{
	KindInvalid:     "invalid",
	Program:         "program",
	StmtList:        "stmt_list",
	VarDeclInt:      "var_decl_int",
	VarDeclReal:     "var_decl_real",
	VarDeclBool:     "var_decl_bool",
	VarDeclChar:     "var_decl_char",
	VecDeclInt:      "vec_decl_int",
	VecDeclReal:     "vec_decl_real",
	VecDeclBool:     "vec_decl_bool",
	VecDeclChar:     "vec_decl_char",
	FuncDeclInt:     "func_decl_int",
	FuncDeclReal:    "func_decl_real",
	FuncDeclBool:    "func_decl_bool",
	FuncDeclChar:    "func_decl_char",
	ParamInt:        "param_int",
	ParamReal:       "param_real",
	ParamBool:       "param_bool",
	ParamChar:       "param_char",
	ParamList:       "param_list",
	EmptyParamList:  "empty_param_list",
	LitInt:          "lit_int",
	LitReal:         "lit_real",
	LitChar:         "lit_char",
	LitString:       "lit_string",
	Identifier:      "identifier",
	VecAccess:       "vec_access",
	FuncCall:        "func_call",
	ExprList:        "expr_list",
	VecInitList:     "vec_init_list",
	Add:             "add",
	Sub:             "sub",
	Mul:             "mul",
	Div:             "div",
	Neg:             "neg",
	Le:              "le",
	Ge:              "ge",
	Eq:              "eq",
	Dif:             "dif",
	Gt:              "gt",
	Lt:              "lt",
	And:             "and",
	Or:              "or",
	Not:             "not",
	NestedExpr:      "nested_expr",
	VarAttrib:       "var_attrib",
	VecAttrib:       "vec_attrib",
	If:              "if",
	IfElse:          "if_else",
	Loop:            "loop",
	ReturnCmd:       "return_cmd",
	OutputCmd:       "output_cmd",
	OutputParamList: "output_param_list",
	InputExprInt:    "input_expr_int",
	InputExprReal:   "input_expr_real",
	InputExprChar:   "input_expr_char",
	InputExprBool:   "input_expr_bool",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
