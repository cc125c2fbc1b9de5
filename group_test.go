package rowtable_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rowtable"
)

func TestGroupSlice(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		lines []string
		n     int
		want  []rowtable.Row
	}{
		"uneven tail is padded on the right": {
			lines: []string{"a", "b", "c", "d", "e"},
			n:     2,
			want:  []rowtable.Row{{"a", "b"}, {"c", "d"}, {"e", ""}},
		},
		"exact multiple has no fill": {
			lines: []string{"a", "b", "c", "d"},
			n:     2,
			want:  []rowtable.Row{{"a", "b"}, {"c", "d"}},
		},
		"single line single column": {
			lines: []string{"x"},
			n:     1,
			want:  []rowtable.Row{{"x"}},
		},
		"n of one passes lines through": {
			lines: []string{"a", "", "c"},
			n:     1,
			want:  []rowtable.Row{{"a"}, {""}, {"c"}},
		},
		"empty lines are values": {
			lines: []string{"", "b", "", ""},
			n:     3,
			want:  []rowtable.Row{{"", "b", ""}, {"", "", ""}},
		},
		"n larger than input": {
			lines: []string{"a", "b"},
			n:     4,
			want:  []rowtable.Row{{"a", "b", "", ""}},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := rowtable.GroupSlice(tt.lines, tt.n)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GroupSlice() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupEmptyInput(t *testing.T) {
	t.Parallel()
	got, err := rowtable.GroupSlice(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGroupRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -1, -100} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			t.Parallel()
			consumed := false
			seq := func(yield func(string) bool) {
				consumed = true
				yield("a")
			}
			got, err := rowtable.Group(seq, n)
			require.ErrorIs(t, err, rowtable.ErrInvalidGroupSize)
			assert.Nil(t, got)
			assert.False(t, consumed, "source must not be read")
		})
	}
}

func TestGroupProperties(t *testing.T) {
	t.Parallel()
	for total := range 12 {
		for n := 1; n <= 5; n++ {
			t.Run(fmt.Sprintf("len=%d/n=%d", total, n), func(t *testing.T) {
				t.Parallel()
				lines := make([]string, total)
				for i := range lines {
					lines[i] = fmt.Sprintf("v%d", i)
				}
				rows, err := rowtable.GroupSlice(lines, n)
				require.NoError(t, err)
				if total == 0 {
					assert.Empty(t, rows)
					return
				}

				assert.Len(t, rows, (total+n-1)/n)
				for _, row := range rows {
					assert.Equal(t, n, row.Width())
				}
				var flat []string
				for i, row := range rows {
					if i < len(rows)-1 {
						assert.NotContains(t, row, rowtable.Fill, "only the last row may hold fill")
					}
					flat = append(flat, row...)
				}
				fill := (n - total%n) % n
				last := rows[len(rows)-1]
				for _, v := range last[n-fill:] {
					assert.Equal(t, rowtable.Fill, v)
				}
				assert.Equal(t, lines, flat[:len(flat)-fill])
			})
		}
	}
}

func TestGroupIsLazy(t *testing.T) {
	t.Parallel()
	pulled := 0
	seq := func(yield func(string) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(fmt.Sprint(i)) {
				return
			}
		}
	}
	rows, err := rowtable.Group(seq, 3)
	require.NoError(t, err)

	var got []rowtable.Row
	for row := range rows {
		got = append(got, row)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []rowtable.Row{{"0", "1", "2"}, {"3", "4", "5"}}, got)
	assert.Equal(t, 6, pulled)
}

func TestGroupRowsAreIndependent(t *testing.T) {
	t.Parallel()
	rows, err := rowtable.Group(slices.Values([]string{"a", "b", "c", "d"}), 2)
	require.NoError(t, err)
	collected := slices.Collect(rows)
	collected[0][0] = "changed"
	assert.Equal(t, rowtable.Row{"c", "d"}, collected[1])
}

func TestRowJoin(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		row  rowtable.Row
		sep  string
		want string
	}{
		"comma":            {row: rowtable.Row{"a", "b"}, sep: ",", want: "a,b"},
		"trailing fill":    {row: rowtable.Row{"e", ""}, sep: ",", want: "e,"},
		"empty separator":  {row: rowtable.Row{"a", "b", "c"}, sep: "", want: "abc"},
		"multi-char":       {row: rowtable.Row{"a", "b"}, sep: " | ", want: "a | b"},
		"single field":     {row: rowtable.Row{"x"}, sep: "|", want: "x"},
		"separator inside": {row: rowtable.Row{"a,b", "c"}, sep: ",", want: "a,b,c"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.row.Join(tt.sep))
		})
	}
}
