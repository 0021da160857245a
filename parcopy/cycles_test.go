package parcopy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bboissin/thesis-bboissin/parcopy"
)

func TestCycles(t *testing.T) {
	tests := []struct {
		name   string
		copies []parcopy.RegisterCopy
		want   [][]parcopy.Register
	}{
		{"empty", nil, nil},
		{"chain", []parcopy.RegisterCopy{cp(1, 2), cp(2, 3), cp(3, 4)}, nil},
		{"fan-out tree", []parcopy.RegisterCopy{cp(1, 2), cp(1, 3), cp(3, 4)}, nil},
		{"self copy", []parcopy.RegisterCopy{cp(7, 7)}, [][]parcopy.Register{{7}}},
		{"swap", []parcopy.RegisterCopy{cp(2, 1), cp(1, 2)}, [][]parcopy.Register{{1, 2}}},
		{
			"rotation starts at lowest register",
			[]parcopy.RegisterCopy{cp(5, 3), cp(3, 8), cp(8, 5)},
			[][]parcopy.Register{{3, 8, 5}},
		},
		{
			"cycle with tails",
			[]parcopy.RegisterCopy{cp(1, 2), cp(2, 3), cp(3, 1), cp(3, 4), cp(0, 9)},
			[][]parcopy.Register{{1, 2, 3}},
		},
		{
			"several cycles sorted",
			[]parcopy.RegisterCopy{cp(11, 10), cp(10, 11), cp(4, 5), cp(5, 6), cp(6, 4), cp(2, 2)},
			[][]parcopy.Register{{2}, {4, 5, 6}, {10, 11}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parcopy.Cycles(tt.copies))
		})
	}
}

func TestCycles_EachCycleCostsAtMostOneEviction(t *testing.T) {
	copies := []parcopy.RegisterCopy{cp(11, 10), cp(10, 11), cp(4, 5), cp(5, 6), cp(6, 4)}

	evictions := 0
	out, err := parcopy.Sequentialize(copies, 99, parcopy.WithOnEvict(func(parcopy.RegisterCopy) {
		evictions++
	}))
	assert.NoError(t, err)
	assert.Equal(t, len(parcopy.Cycles(copies)), evictions)
	assert.Len(t, out, len(copies)+evictions)
}
