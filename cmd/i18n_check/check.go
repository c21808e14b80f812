// Copyright 2025, the scholarpage contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"go/ast"
	"go/constant"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"

	"golang.org/x/tools/go/packages"

	"codeberg.org/scholarpage/scholarpage/i18n"
)

// keyTypeName is the named string type translation keys use.
const keyTypeName = "Key"

type ref struct {
	file string
	line int
}

func (r ref) String() string {
	return r.file + ":" + strconv.Itoa(r.line)
}

type missingKey struct {
	locale i18n.Locale
	key    string
	at     ref
}

type unusedKey struct {
	locale i18n.Locale
	key    string
}

type report struct {
	missing []missingKey
	unused  []unusedKey
}

// collectRefs finds every constant expression of type i18n.Key in pkgs.
// Positions are made relative to root when possible.
func collectRefs(pkgs []*packages.Package, root string) map[string][]ref {
	refs := map[string][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				expr, ok := n.(ast.Expr)
				if !ok {
					return true
				}

				tv, ok := p.TypesInfo.Types[expr]
				if !ok || tv.Value == nil || tv.Value.Kind() != constant.String || !isKeyType(tv.Type) {
					return true
				}

				pos := p.Fset.Position(expr.Pos())

				file := pos.Filename
				if rel, err := filepath.Rel(root, file); err == nil {
					file = rel
				}

				key := constant.StringVal(tv.Value)
				refs[key] = append(refs[key], ref{file: file, line: pos.Line})

				// The constant value is known; sub-expressions add nothing.
				return false
			})
		}
	}

	return refs
}

// isKeyType reports whether t is the Key type of a package named i18n.
func isKeyType(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj != nil && obj.Pkg() != nil && obj.Pkg().Name() == "i18n" && obj.Name() == keyTypeName
}

// check looks up every referenced key in every dictionary. Output is sorted
// by locale and key.
func check(refs map[string][]ref, dicts map[i18n.Locale]*i18n.Dictionary) report {
	var rep report

	locales := make([]i18n.Locale, 0, len(dicts))
	for locale := range dicts {
		locales = append(locales, locale)
	}

	slices.Sort(locales)

	keys := make([]string, 0, len(refs))
	for key := range refs {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, locale := range locales {
		dict := dicts[locale]

		for _, key := range keys {
			if _, ok := dict.Lookup(key); !ok {
				rep.missing = append(rep.missing, missingKey{locale: locale, key: key, at: firstRef(refs[key])})
			}
		}

		for _, key := range dict.Keys() {
			if _, used := refs[key]; !used {
				rep.unused = append(rep.unused, unusedKey{locale: locale, key: key})
			}
		}
	}

	return rep
}

func firstRef(rs []ref) ref {
	if len(rs) == 0 {
		return ref{}
	}

	return slices.MinFunc(rs, func(a, b ref) int {
		if a.file != b.file {
			if a.file < b.file {
				return -1
			}

			return 1
		}

		return a.line - b.line
	})
}
