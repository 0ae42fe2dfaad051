// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package preproc

import (
	"context"

	"github.com/lassade/preproc/internal/collections"
	"github.com/lassade/preproc/internal/ppexpr"
	"github.com/lassade/preproc/internal/pplex"
	"github.com/lassade/preproc/internal/symset"
)

var discoverySentinels = []string{"0", "1", "true", "false"}

// FindDefinesOf traverses rootPath and every file it transitively includes,
// via the same cache and include resolution Process uses, and collects
// every symbol name that has any bearing on the result: names given to
// #define, and every identifier referenced inside an #if/#elif expression in
// any branch, taken or not. Conditionals are never evaluated; every
// expression contributes regardless of truth.
func (p *Preprocessor) FindDefinesOf(ctx context.Context, rootPath string) (symset.Set, error) {
	out := symset.New()
	seen := make(collections.Set[string])
	if err := p.discoverFile(ctx, rootPath, out, seen); err != nil {
		return symset.Set{}, err
	}
	out.Remove(discoverySentinels...)
	return out, nil
}

func (p *Preprocessor) discoverFile(ctx context.Context, path string, out symset.Set, seen collections.Set[string]) error {
	if seen.Contains(path) {
		return nil
	}
	seen.Add(path)

	pf, err := p.parse(path)
	if err != nil {
		return err
	}

	for _, line := range pf.lines {
		switch line.Kind {
		case pplex.KindDefine:
			out.Define(line.Span.Text(pf.buf))

		case pplex.KindIf, pplex.KindElif:
			collectVars(line.Expr, out)

		case pplex.KindInclude:
			if err := ctx.Err(); err != nil {
				return err
			}
			includePath := line.Span.Text(pf.buf)
			if err := p.discoverFile(ctx, includePath, out, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectVars adds every Var token's name in expr to out, using
// FilterMapSlice (rather than a hand-rolled loop) to project the subset of
// RPN tokens that are variable references down to their names.
func collectVars(expr ppexpr.Expr, out symset.Set) {
	names := collections.FilterMapSlice(expr.Ops, func(op ppexpr.Op) (string, bool) {
		return op.Name, op.Kind == ppexpr.OpVar
	})
	for _, name := range names {
		out.Define(name)
	}
}
