package strip

import "regexp"

var htmlComment = regexp.MustCompile(`(?s)<!--.*?-->`)

// HTML removes <!-- --> comments. There is no literal-awareness here: the
// removal applies uniformly, including inside embedded script or code text.
// An unterminated comment is left in place.
func HTML(text string) string {
	return htmlComment.ReplaceAllString(text, "")
}
