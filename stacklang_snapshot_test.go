package stacklang

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// scenarios mirrors the end-to-end table of worked examples: each source
// term should infer to a stable, canonical stack-effect type.
var scenarios = []string{
	"1",
	`1 true "hi"`,
	"dup",
	"1 [dup] call",
	"[1 dup dup] call",
	"swap",
	"[dup] [drop] cat call",
	"[true] [1] [2] ifte",
	"1 quote",
}

func TestInferScenariosSnapshot(t *testing.T) {
	for i, src := range scenarios {
		ctx := Check(src)
		if ctx.FatalErr != nil {
			t.Fatalf("Check(%q) failed: %v", src, ctx.FatalErr)
		}
		if len(ctx.Results) != 1 {
			t.Fatalf("Check(%q): expected 1 result, got %d", src, len(ctx.Results))
		}
		snaps.MatchSnapshot(t, fmt.Sprintf("scenario_%02d", i), ctx.Results[0].Type.String())
	}
}
