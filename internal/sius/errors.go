package sius

// errors.go defines the structural failures the package reports and maps them
// to user-friendly messages with support codes.
//
// Per-cell problems (an unparseable number in a score cell) are never errors;
// they become absent Values and the row stays counted. Only structural issues
// are signaled: empty input, unresolvable required columns, or an unusable
// SIUSFields reference list. Their mapped messages are surfaced to the user
// verbatim.
//
// Code ranges:
//
//	FILE001-FILE099 - file handling (empty, unreadable, too large)
//	COL001-COL099   - column resolution (identifier/score/coordinates)
//	FLD001-FLD099   - SIUSFields reference list
//	SES001-SES099   - session state
//	REQ001-REQ099   - missing request parameters

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for structural failures.
var (
	ErrEmptyFile         = errors.New("file has no data rows")
	ErrNoColumns         = errors.New("file has no columns")
	ErrFieldsUnavailable = errors.New("fields reference not found or empty")
	ErrNoPrimaryScore    = errors.New("no primary score column")
	ErrNoSession         = errors.New("no table uploaded for session")
	ErrStartNRRequired   = errors.New("start_nr required")
)

// ColumnNotFoundError reports a required column that could not be resolved.
type ColumnNotFoundError struct {
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column not found: %s", e.Column)
}

// UserMessage provides user-friendly error information with a support code.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference code
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error text (case-insensitive, substring match)
// to user messages. First match wins; specific patterns come before general
// ones.
var errorPatterns = []errorPattern{
	{
		pattern: "no data rows",
		msg: UserMessage{
			Message: "The uploaded file has no data rows",
			Action:  "Export the results again and upload the new file",
			Code:    "FILE001",
		},
	},
	{
		pattern: "no columns",
		msg: UserMessage{
			Message: "The uploaded file has no columns",
			Action:  "Check that the export is semicolon- or comma-delimited",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "The file could not be parsed as a delimited export",
			Action:  "Check that the file is an unmodified SIUS export",
			Code:    "FILE003",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The file exceeds the upload size limit",
			Action:  "Split the export or raise UPLOAD_MAX_FILE_SIZE",
			Code:    "FILE004",
		},
	},
	{
		// net/http reports a missing multipart part as "http: no such file".
		pattern: "http: no such file",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose a SIUS export file to upload",
			Code:    "FILE005",
		},
	},
	{
		pattern: "fields reference",
		msg: UserMessage{
			Message: "SIUSFields.txt was not found or is empty; column names cannot be assigned",
			Action:  "Place the SIUSFields.txt reference file next to the server or set FIELDS_PATH",
			Code:    "FLD001",
		},
	},
	{
		pattern: "no primary score column",
		msg: UserMessage{
			Message: "No primary score column is defined in the fields reference",
			Action:  "Check that SIUSFields.txt lists a \"Primary score\" field",
			Code:    "COL001",
		},
	},
	{
		pattern: "column not found",
		msg: UserMessage{
			Message: "A required column is missing from the export",
			Action:  "Verify the export and the fields reference describe the same device layout",
			Code:    "COL002",
		},
	},
	{
		pattern: "x and y columns",
		msg: UserMessage{
			Message: "The export has no X and Y coordinate columns",
			Action:  "The target view needs an export that includes shot coordinates",
			Code:    "COL003",
		},
	},
	{
		pattern: "start_nr required",
		msg: UserMessage{
			Message: "No start number was given",
			Action:  "Select a start number and try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "no table uploaded",
		msg: UserMessage{
			Message: "Upload a file first",
			Action:  "The session has no table yet, or it expired after 24 hours of inactivity",
			Code:    "SES001",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is the ERR000 fallback; check the server logs for the
// original technical error when a user reports it.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact the range office",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. Patterns
// are matched case-insensitively; the first match wins, ERR000 otherwise.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders the mapped message as a single display string:
// "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
