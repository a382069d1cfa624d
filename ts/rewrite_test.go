package ts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tt := []struct {
		name   string
		in     Node
		expect Node
	}{
		{
			name:   "choice dedup keeps first occurrence order",
			in:     Choice{Ref("x"), Ref("x"), Ref("y")},
			expect: Choice{Ref("x"), Ref("y")},
		},
		{
			name:   "empty alternative promotes to optional",
			in:     Choice{Seq{}, Raw("x")},
			expect: Optional{Raw("x")},
		},
		{
			name:   "dedup before promotion",
			in:     Choice{Ref("a"), Seq{}, Ref("a")},
			expect: Optional{Ref("a")},
		},
		{
			name:   "singleton choice collapses",
			in:     Choice{Ref("x")},
			expect: Ref("x"),
		},
		{
			name:   "singleton seq collapses",
			in:     Seq{Ref("x")},
			expect: Ref("x"),
		},
		{
			name:   "empty children elided from seq",
			in:     Seq{Seq{}, Raw("x"), Seq{}},
			expect: Raw("x"),
		},
		{
			name:   "nested seq flattens",
			in:     Seq{Ref("a"), Seq{Ref("b"), Ref("c")}},
			expect: Seq{Ref("a"), Ref("b"), Ref("c")},
		},
		{
			name:   "repeat1 folding",
			in:     Seq{Ref("g"), Repeat{Ref("g")}},
			expect: Repeat1{Ref("g")},
		},
		{
			name:   "repeat1 folding inside a longer seq",
			in:     Seq{Ref("x"), Ref("g"), Repeat{Ref("g")}},
			expect: Seq{Ref("x"), Repeat1{Ref("g")}},
		},
		{
			name:   "optional of nullable elides",
			in:     Optional{Repeat{Ref("x")}},
			expect: Repeat{Ref("x")},
		},
		{
			name:   "collapse exposes repeat1 folding",
			in:     Seq{Choice{Ref("g")}, Repeat{Ref("g")}},
			expect: Repeat1{Ref("g")},
		},
		{
			name:   "optional wrapper applied after promotion only once",
			in:     Optional{Choice{Seq{}, Raw("x")}},
			expect: Optional{Raw("x")},
		},
	}

	for _, test := range tt {
		t.Run(test.name, func(t *testing.T) {
			got := Normalize(test.in)
			assert.True(t, Equal(test.expect, got), "expected %s, got %s", test.expect, got)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	trees := []Node{
		Seq{Choice{Seq{Ref("a"), Ref("b")}, Seq{Ref("b"), Ref("a")}}, Repeat{Seq{Raw(","), Ref("a")}}},
		Choice{Seq{}, Seq{Ref("x"), Seq{Ref("y")}}, Ref("x")},
		Seq{Ref("g"), Repeat{Ref("g")}, Choice{Ref("h"), Ref("h")}},
		Optional{Optional{Ref("x")}},
	}

	for _, tree := range trees {
		once := Normalize(tree)
		twice := Normalize(once)
		assert.True(t, Equal(once, twice), "normalizing %s twice gave %s", once, twice)
	}
}
