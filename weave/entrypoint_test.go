package weave_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lyraproj/sonicweave/dsl"
	"github.com/lyraproj/sonicweave/repl"
	"github.com/lyraproj/sonicweave/scl"
	"github.com/lyraproj/sonicweave/weave"
)

func ExampleCompile() {
	source := `
"Major pentad";
9/8;
5/4;
3/2; #ff0000; "fifth";
5/3;
2`
	doc, err := weave.Compile(`pentad.sw`, source, ``, dsl.NewArrayLogger())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(doc)
	// Output:
	// !Created using SonicWeave v0.0.0 alpha
	// !
	// Major pentad
	//  5
	// !
	//  9/8
	//  5/4
	//  3/2 fifth
	//  5/3
	//  2/1
	// ! A list of key colors, ascending from 1/1
	// ! #808080 #808080 #808080 #ff0000 #808080
}

func ExampleDo() {
	weave.Do(dsl.NewArrayLogger(), func(d *repl.Driver) {
		d.EvaluateBlock(`edo(5)`)
		d.EvaluateBlock(`reverse()`)
		fmt.Println(d.Session().Scale())
	})
	// Output: [2, 960., 720., 480., 240.]
}

func TestCompile_title(t *testing.T) {
	doc, err := weave.Compile(`t.sw`, `3/2; 2`, `Configured`, dsl.NewArrayLogger())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Split(doc, "\n")[2] != `Configured` {
		t.Errorf(`expected the configured title, got %q`, doc)
	}

	doc, _ = weave.Compile(`t.sw`, `3/2; 2`, ``, dsl.NewArrayLogger())
	if strings.Split(doc, "\n")[2] != scl.UntitledTuning {
		t.Errorf(`expected the placeholder title, got %q`, doc)
	}

	doc, _ = weave.Compile(`t.sw`, `"Own"; 3/2; 2`, `Configured`, dsl.NewArrayLogger())
	if strings.Split(doc, "\n")[2] != `Own` {
		t.Errorf(`expected the title of the source to win, got %q`, doc)
	}
}

func TestCompile_error(t *testing.T) {
	doc, err := weave.Compile(`t.sw`, "3/2\n2 +", ``, dsl.NewArrayLogger())
	if err == nil || doc != `` {
		t.Fatalf(`expected an error and no document, got %q, %v`, doc, err)
	}
	if dsl.KindOf(err) != dsl.SyntaxError {
		t.Errorf(`expected a syntax error, got %v`, err)
	}
}
