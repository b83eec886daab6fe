package sema

import (
	"fmt"

	"corec/internal/diag"
)

// CheckUndeclared is pass 2 (§4.3.2): sweep the whole symbol table for
// any entry pass 1 left at kind Identifier — never promoted by a
// VAR/VEC/FUNC/PARAM declaration, meaning it was only ever
// referenced. Grounded on check_undeclared / hash_check_undeclared.
// Per §6.3, these diagnostics carry no source line: the table only
// remembers the line of first mention, not of the offending use.
func CheckUndeclared(ctx *Context) {
	for _, name := range ctx.Table.CheckUndeclared() {
		ctx.report(diag.New(diag.Undeclared, 0, fmt.Sprintf("undeclared identifier %s", name)))
	}
}
