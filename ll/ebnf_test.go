package ll

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestWriteEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := WriteEBNF(makeExprGrammar(t), &buf); err != nil {
		t.Fatal(err)
	}
	expected := `S = A B .
A = C D .
B = [ "+" A B ] .
C = "(" S ")" | "i" .
D = [ "*" C D ] .
`
	assert.Equal(t, expected, buf.String())
}

func TestVerifyEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "topdown.ll")
	defer teardown()
	//
	assert.NoError(t, VerifyEBNF(makeExprGrammar(t)))
	//
	g, _ := NewGrammar("Undefined", "SAB", "a", 'S')
	g.AddProduction('S', "Aa")
	g.AddProduction('B', "a")
	assert.Error(t, VerifyEBNF(g), "A undefined and B unreachable")
	//
	g, _ = NewGrammar("Empty", "SA", "a", 'S')
	g.AddProduction('S', "aA")
	g.AddProduction('A', "eps")
	assert.NoError(t, VerifyEBNF(g))
}
