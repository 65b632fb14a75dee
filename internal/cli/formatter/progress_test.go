package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionBar(t *testing.T) {
	cases := []struct {
		name            string
		included, total int
		want            string
	}{
		{"all", 4, 4, "[████] 4/4 lines"},
		{"some", 3, 4, "[███░] 3/4 lines"},
		{"none", 0, 4, "[░░░░] 0/4 lines"},
		{"empty job", 0, 0, "[░░░░] 0/0 lines"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripANSI(SelectionBar(tc.included, tc.total, 4)))
		})
	}
}
