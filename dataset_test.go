package pairdiff

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testcases := []struct {
		input string
		left  []int
		right []int
	}{
		{input: "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n", left: []int{3, 4, 2, 1, 3, 3}, right: []int{4, 3, 5, 3, 9, 3}},
		// rows without exactly two integers are dropped whole
		{input: "3 4\nnotanumber\n5\n1 2 3\n", left: []int{3}, right: []int{4}},
		// junk tokens are filtered before the count check
		{input: "x 3 y 4 z\n", left: []int{3}, right: []int{4}},
		{input: "1 2 3\n", left: nil, right: nil},
		// explicit signs parse as part of the number
		{input: "-7 +9\n", left: []int{-7}, right: []int{9}},
		// tokens outside 32 bits are filtered like any other junk token
		{input: "3000000000 1 2\n", left: []int{1}, right: []int{2}},
		// tabs and crlf line endings
		{input: "10\t20\r\n30\t40\r\n", left: []int{10, 30}, right: []int{20, 40}},
		// last row without trailing newline
		{input: "5 6", left: []int{5}, right: []int{6}},
		{input: "", left: nil, right: nil},
	}
	for _, v := range testcases {
		ds, err := Parse(strings.NewReader(v.input))
		require.Nilf(t, err, "failed to parse %q", v.input)
		require.EqualValues(t, v.left, ds.Left, "left column mismatch for %q", v.input)
		require.EqualValues(t, v.right, ds.Right, "right column mismatch for %q", v.input)
		require.EqualValues(t, len(v.left), ds.Rows())
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.txt")
	err := os.WriteFile(path, []byte("3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"), 0644)
	require.Nil(t, err)

	ds, err := ParseFile(path)
	require.Nil(t, err)
	require.EqualValues(t, 6, ds.Rows())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "failed to open input file")
}
