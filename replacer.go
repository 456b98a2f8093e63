package pairdiff

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
)

const (
	// ParenthesisOpen marker - begin of a placeholder
	ParenthesisOpen = "{{"
	// ParenthesisClose marker - end of a placeholder
	ParenthesisClose = "}}"
)

var placeholderRegex = regexp.MustCompile(`\{\{([a-zA-Z0-9]+)\}\}`)

// Replace expands placeholders in template with values on the fly.
// Placeholders without a value are kept as-is so that validation can spot
// them afterwards.
func Replace(template string, values map[string]interface{}) string {
	valuesMap := make(map[string]interface{}, len(values))
	for k, v := range values {
		valuesMap[k] = fmt.Sprint(v)
	}
	return fasttemplate.ExecuteStringStd(template, ParenthesisOpen, ParenthesisClose, valuesMap)
}

// checkMissing checks if all placeholders of template are successfully
// replaced by data, if not error is thrown with description
func checkMissing(template string, data map[string]interface{}) error {
	got := Replace(template, data)
	if res := placeholderRegex.FindAllString(got, -1); len(res) > 0 {
		return fmt.Errorf("values of `%v` variables not found", strings.Join(res, ","))
	}
	return nil
}
