package extract

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

const (
	hexType = "github.com/SLASH2NL/hexiter.Hex"
)

// Literal is a hex value found in source code.
type Literal struct {
	Value string
	Pos   token.Position
}

// HexFromSource finds all `github.com/SLASH2NL/hexiter.Hex` values used in go source files in dir recursively.
// It will not traverse into imports.
// A value is reported once per source line it appears on, in source order.
func HexFromSource(dir string) ([]Literal, error) {
	dirs, err := findDirsRecursively(dir)
	if err != nil {
		return nil, err
	}

	var literals []Literal
	for _, dir := range dirs {
		fset := token.NewFileSet()

		mode := packages.NeedName | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedCompiledGoFiles

		cfg := &packages.Config{
			Mode:  mode,
			Dir:   dir,
			Fset:  fset,
			Tests: false,
		}

		pkgs, err := packages.Load(cfg)
		if err != nil {
			return nil, fmt.Errorf("loading package: %w", err)
		}

		pkgsErrs := ""
		packages.Visit(pkgs, nil, func(pkg *packages.Package) {
			for _, err := range pkg.Errors {
				if strings.HasPrefix(err.Msg, "build constraints exclude all Go files") {
					continue
				}

				pkgsErrs += err.Error() + "\n"
			}
		})
		if pkgsErrs != "" {
			return nil, fmt.Errorf("package load error: %s", pkgsErrs)
		}

		for _, pkg := range pkgs {
			for expr, def := range pkg.TypesInfo.Types {
				if def.Type.String() == hexType && def.Value != nil && def.Value.Kind() == constant.String {
					literals = append(literals, Literal{
						Value: constant.StringVal(def.Value),
						Pos:   fset.Position(expr.Pos()),
					})
				} else if callExpr, ok := expr.(*ast.CallExpr); ok {
					literals = append(literals, processCallExpr(fset, pkg.TypesInfo, callExpr)...)
				}
			}
		}
	}

	return removeDuplicates(literals), nil
}

func processCallExpr(fset *token.FileSet, info *types.Info, v *ast.CallExpr) []Literal {
	// It is a direct call to a function.
	ident, ok := v.Fun.(*ast.Ident)
	if ok {
		return hexFromCallExpr(fset, info, ident, v.Args)
	}

	// It is a call to a method.
	sel, ok := v.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil
	}

	return hexFromCallExpr(fset, info, sel.Sel, v.Args)
}

// hexFromCallExpr returns the values passed as Hex parameters to the function named by ident.
// It will only resolve values from consts or simple assignments.
func hexFromCallExpr(fset *token.FileSet, info *types.Info, ident *ast.Ident, args []ast.Expr) []Literal {
	typ := info.TypeOf(ident)
	if typ == nil {
		return nil
	}

	sig, ok := typ.(*types.Signature)
	if !ok {
		return nil
	}

	if len(args) != sig.Params().Len() {
		return nil
	}

	literals := make([]Literal, 0)

	for i := 0; i < sig.Params().Len(); i++ {
		if sig.Params().At(i).Type().String() == hexType {
			value, ok := getValueFromExpr(args[i], info)
			if ok {
				literals = append(literals, Literal{
					Value: value,
					Pos:   fset.Position(args[i].Pos()),
				})
			}
		}
	}

	return literals
}

func getValueFromExpr(expr ast.Expr, info *types.Info) (string, bool) {
	switch argType := expr.(type) {
	case *ast.BasicLit:
		if argType.Kind != token.STRING {
			return "", false
		}
		value, err := strconv.Unquote(argType.Value)
		if err != nil {
			return "", false
		}
		return value, true
	case *ast.Ident:
		// Handle the case where the argument is an identifier (e.g., a variable or constant)
		obj := info.ObjectOf(argType)
		if obj == nil {
			return "", false
		}

		switch v := obj.(type) {
		case *types.Const:
			if v.Val().Kind() != constant.String {
				return "", false
			}
			return constant.StringVal(v.Val()), true
		case *types.Var:
			// If it is a variable we try to find the value.
			// Note: Accessing Obj() is deprected, but it's the only way to get the declaration.
			if argType.Obj == nil {
				return "", false
			}

			switch decl := argType.Obj.Decl.(type) {
			case *ast.ValueSpec:
				for _, value := range decl.Values {
					// Find the first matching string value.
					if parsed, ok := getValueFromExpr(value, info); ok {
						return parsed, true
					}
				}
			case *ast.AssignStmt:
				// Only support simple assignments like:
				// h := "cafe"
				// not multiple assignments like:
				// h, g := "cafe", "babe"
				return getValueFromExpr(decl.Rhs[0], info)
			}
		}
	case *ast.CallExpr:
		for _, arg := range argType.Args {
			if value, ok := getValueFromExpr(arg, info); ok {
				return value, true
			}
		}
	}

	return "", false
}

// findDirsRecursively finds all directories that contain go files in the given root directory.
func findDirsRecursively(rootDir string) ([]string, error) {
	subdirs := []string{rootDir}

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != rootDir {
			hasGoFiles := false

			entries, err := os.ReadDir(path)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				if !entry.IsDir() && filepath.Ext(entry.Name()) == ".go" {
					hasGoFiles = true
					break
				}
			}

			if hasGoFiles {
				subdirs = append(subdirs, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return subdirs, nil
}

// removeDuplicates keeps the first occurrence of every value on a line, in source order.
// A conversion such as Hex("cafe") is seen both as a whole and through its argument.
func removeDuplicates(input []Literal) []Literal {
	sort.Slice(input, func(i, j int) bool {
		a, b := input[i].Pos, input[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	type lineValue struct {
		filename string
		line     int
		value    string
	}

	seen := make(map[lineValue]bool)
	var result []Literal

	for _, literal := range input {
		key := lineValue{filename: literal.Pos.Filename, line: literal.Pos.Line, value: literal.Value}
		if !seen[key] {
			result = append(result, literal)
			seen[key] = true
		}
	}

	return result
}
