package sius

import "strings"

// DetectDelimiter guesses the field delimiter from the first line of an
// export. SIUSData writes semicolon-delimited files, so semicolon wins when
// present without commas; a comma anywhere else selects comma; otherwise the
// default applies. No quoting-aware sniffing is attempted.
func DetectDelimiter(firstLine string) rune {
	if strings.ContainsRune(firstLine, ';') && !strings.ContainsRune(firstLine, ',') {
		return ';'
	}
	if strings.ContainsRune(firstLine, ',') {
		return ','
	}
	return DefaultDelimiter
}

// firstLine returns the text up to the first newline.
func firstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}
