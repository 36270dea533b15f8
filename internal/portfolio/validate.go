package portfolio

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// RequiredSections are the top-level keys every document must carry, in the
// order they are reported when missing.
var RequiredSections = []string{
	"personal",
	"experience",
	"education",
	"technicalSkills",
	"projects",
}

// ValidationError reports required sections absent from the document.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("portfolio data missing required sections: %s", strings.Join(e.Missing, ", "))
}

// Validate checks that each required top-level section is present and
// truthy. Deeper shape problems are left to the section builders, which skip
// a malformed section instead of failing the page.
func Validate(data []byte) error {
	var missing []string
	for _, key := range RequiredSections {
		if !truthy(gjson.GetBytes(data, key)) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// truthy mirrors JavaScript truthiness: missing, null, false, "" and 0 are
// falsy; arrays and objects are truthy even when empty.
func truthy(v gjson.Result) bool {
	if !v.Exists() {
		return false
	}
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	default:
		return true
	}
}
