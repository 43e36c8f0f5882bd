package ast

import (
	"strconv"
	"strings"
)

// Print renders program as a parenthesized, Lisp-style dump: one line per
// top-level statement. It exists for the CLI's --dump-ast flag and has no
// bearing on parsing or evaluation.
func Print(program *Program) string {
	var b strings.Builder
	for _, s := range program.Statements {
		b.WriteString(printStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func printStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return printExpr(s.Expression)
	case *PrintStmt:
		return paren("print", printExpr(s.Expression))
	case *VarStmt:
		if s.Init == nil {
			return paren("var", s.Name.Lexeme)
		}
		return paren("var", s.Name.Lexeme, printExpr(s.Init))
	case *BlockStmt:
		parts := make([]string, 0, len(s.Statements)+1)
		parts = append(parts, "block")
		for _, inner := range s.Statements {
			parts = append(parts, printStmt(inner))
		}
		return paren(parts...)
	case *IfStmt:
		if s.Else == nil {
			return paren("if", printExpr(s.Condition), printStmt(s.Then))
		}
		return paren("if", printExpr(s.Condition), printStmt(s.Then), printStmt(s.Else))
	case *LoopStmt:
		parts := []string{"loop"}
		if s.Init != nil {
			parts = append(parts, printStmt(s.Init))
		} else {
			parts = append(parts, "_")
		}
		parts = append(parts, printExpr(s.Condition))
		if s.Update != nil {
			parts = append(parts, printExpr(s.Update))
		} else {
			parts = append(parts, "_")
		}
		parts = append(parts, printStmt(s.Body))
		return paren(parts...)
	case *BreakStmt:
		return "(break)"
	case *ContinueStmt:
		return "(continue)"
	case *FunctionStmt:
		return paren("fun", s.Name.Lexeme, printFunctionBody(s.Function))
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return paren("return", printExpr(s.Value))
	case *ClassStmt:
		return printClass(s)
	default:
		return "(?stmt)"
	}
}

func printClass(s *ClassStmt) string {
	parts := []string{"class", s.Name.Lexeme}
	if s.Superclass != nil {
		parts = append(parts, "<"+s.Superclass.Name.Lexeme)
	}
	for _, m := range s.Methods {
		parts = append(parts, paren("method", m.Name.Lexeme, printFunctionBody(m.Function)))
	}
	for _, m := range s.StaticMethods {
		parts = append(parts, paren("static", m.Name.Lexeme, printFunctionBody(m.Function)))
	}
	return paren(parts...)
}

func printFunctionBody(fn *FunctionExpr) string {
	parts := []string{"params"}
	if fn.Params == nil {
		parts = []string{"getter"}
	} else {
		for _, p := range fn.Params {
			parts = append(parts, p.Lexeme)
		}
	}
	header := paren(parts...)
	var body strings.Builder
	for _, stmt := range fn.Body {
		body.WriteString(printStmt(stmt))
	}
	return header + " " + paren("body", body.String())
}

func printExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		return printLiteral(e.Value)
	case *Unary:
		return paren(e.Operator.Lexeme, printExpr(e.Right))
	case *Binary:
		return paren(e.Operator.Lexeme, printExpr(e.Left), printExpr(e.Right))
	case *Logical:
		return paren(e.Operator.Lexeme, printExpr(e.Left), printExpr(e.Right))
	case *Grouping:
		return paren("group", printExpr(e.Inner))
	case *Variable:
		return e.Name.Lexeme
	case *Assign:
		return paren("=", e.Name.Lexeme, printExpr(e.Value))
	case *Call:
		parts := []string{"call", printExpr(e.Callee)}
		for _, arg := range e.Arguments {
			parts = append(parts, printExpr(arg))
		}
		return paren(parts...)
	case *FunctionExpr:
		return paren("fun", printFunctionBody(e))
	case *Get:
		return paren(".", printExpr(e.Object), e.Name.Lexeme)
	case *Set:
		return paren("=.", printExpr(e.Object), e.Name.Lexeme, printExpr(e.Value))
	case *Delete:
		return paren("delete", printExpr(e.Object), e.Name.Lexeme)
	case *This:
		return "this"
	case *Super:
		return paren("super", e.Member.Lexeme)
	case *Comma:
		parts := []string{","}
		for _, sub := range e.Expressions {
			parts = append(parts, printExpr(sub))
		}
		return paren(parts...)
	default:
		return "(?expr)"
	}
}

func printLiteral(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return strconv.Quote(x)
	default:
		return "?"
	}
}

func paren(parts ...string) string {
	return "(" + strings.Join(parts, " ") + ")"
}
