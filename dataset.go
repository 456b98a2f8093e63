package pairdiff

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// Dataset contains the two columns of a parsed input file
type Dataset struct {
	Left  []int // first integer of every valid record, in row order
	Right []int // second integer of every valid record, in row order
}

// Rows returns the number of record pairs
func (d *Dataset) Rows() int {
	return len(d.Left)
}

// Parse reads two-column records from r line by line. A line is a valid
// record only when exactly two of its whitespace-separated tokens parse as
// signed 32-bit integers: the first goes to Left, the second to Right.
// Tokens that fail to parse are filtered out rather than treated as errors,
// and lines that filter down to anything other than two integers are
// dropped whole, so a record lands in both columns or in neither. Dropped
// lines are not counted or reported.
func Parse(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var nums []int
		for _, token := range strings.Fields(scanner.Text()) {
			value, err := strconv.ParseInt(token, 10, 32)
			if err != nil {
				continue
			}
			nums = append(nums, int(value))
		}
		if len(nums) != 2 {
			continue
		}
		ds.Left = append(ds.Left, nums[0])
		ds.Right = append(ds.Right, nums[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, errorutil.NewWithTag("pairdiff", "failed to read input got %v", err)
	}
	return ds, nil
}

// ParseFile opens path and parses it with Parse
func ParseFile(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errorutil.NewWithTag("pairdiff", "failed to open input file %v got %v", path, err)
	}
	defer file.Close()
	return Parse(file)
}
