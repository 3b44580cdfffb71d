package internalcheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const loggingPkg = "github.com/jshobe/secrethub-go/pkg/secrethub/logging"

// secretNames are identifiers and fields that hold plaintext secret values in
// library code.
var secretNames = map[string]bool{
	"value":  true,
	"Data":   true,
	"data":   true,
	"secret": true,
}

func TestNoSecretFormatting(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		"github.com/jshobe/secrethub-go/pkg/secrethub",
		"github.com/jshobe/secrethub-go/pkg/secrethub/memlib",
		"github.com/jshobe/secrethub-go/internal/bindings",
	)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				firstArg, ok := argsIndex(obj.Pkg().Path(), obj.Name())
				if !ok || len(call.Args) <= firstArg {
					return true
				}

				for _, arg := range call.Args[firstArg:] {
					if name, ok := secretOperand(arg); ok {
						pos := fset.Position(arg.Pos())
						findings = append(findings, fmt.Sprintf("%s: %s passed to %s.%s", pos, name, obj.Pkg().Name(), obj.Name()))
					}
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("secret logging policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// argsIndex returns the position of the first formatted argument for the
// formatting and logging functions the policy covers.
func argsIndex(pkgPath, name string) (int, bool) {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Errorf", "Printf", "Sprintf", "Sprint", "Sprintln", "Print", "Println":
			return 0, true
		case "Fprintf", "Fprint", "Fprintln":
			return 1, true
		}
	case "log":
		switch name {
		case "Printf", "Fatalf", "Panicf", "Print", "Println":
			return 0, true
		}
	case "log/slog":
		switch name {
		case "Debug", "Info", "Warn", "Error":
			return 1, true
		case "DebugContext", "InfoContext", "WarnContext", "ErrorContext":
			return 2, true
		}
	case loggingPkg:
		switch name {
		case "Debug", "Info", "Warn", "Error":
			return 2, true
		}
	}
	return 0, false
}

func secretOperand(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name, secretNames[e.Name]
	case *ast.SelectorExpr:
		return e.Sel.Name, secretNames[e.Sel.Name]
	}
	return "", false
}

func TestSecretOperand(t *testing.T) {
	cases := map[string]bool{
		"value":   true,
		"v.Data":  true,
		"path":    false,
		"v.Path":  false,
		`"value"`: false,
	}
	for src, want := range cases {
		var expr ast.Expr
		switch {
		case strings.HasPrefix(src, `"`):
			expr = &ast.BasicLit{Value: src}
		case strings.Contains(src, "."):
			parts := strings.SplitN(src, ".", 2)
			expr = &ast.SelectorExpr{X: ast.NewIdent(parts[0]), Sel: ast.NewIdent(parts[1])}
		default:
			expr = ast.NewIdent(src)
		}
		if _, got := secretOperand(expr); got != want {
			t.Errorf("secretOperand(%s) = %v, want %v", src, got, want)
		}
	}
}
