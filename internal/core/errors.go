package core

// errors.go defines user-friendly error messages with codes for support
// reference. When users encounter errors they can quote the code instead of
// a raw parser message.
//
// Error codes are grouped by category:
//
//	DOC001 - Malformed document: unmatched or unterminated record boundaries
//	DOC002 - Unreadable input: the uploaded file could not be read
//	REQ001 - No operation selected
//	REQ002 - No file provided
//	REQ003 - File too large
//	BUSY001 - Processing capacity exhausted
//	RATE001 - Rate limited
//	ERR000 - Fallback for anything unmatched
//
// Patterns are matched case-insensitively using strings.Contains; the first
// matching pattern wins, so more specific patterns come before general ones.

import "strings"

// UserMessage provides user-friendly error information with actionable
// guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern maps a technical error fragment to its user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "malformed vcard",
		msg: UserMessage{
			Message: "The file is not a structurally valid vCard document",
			Action:  "Check for a missing BEGIN:VCARD or END:VCARD line",
			Code:    "DOC001",
		},
	},
	{
		pattern: "read input",
		msg: UserMessage{
			Message: "The uploaded file could not be read",
			Action:  "Re-export the contact file and try again",
			Code:    "DOC002",
		},
	},
	{
		pattern: "no operation selected",
		msg: UserMessage{
			Message: "No processing operation was selected",
			Action:  "Enable at least one transform or sorting",
			Code:    "REQ001",
		},
	},
	{
		pattern: "no file",
		msg: UserMessage{
			Message: "No contact file was provided",
			Action:  "Attach a .vcf file to the request",
			Code:    "REQ002",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The contact file is too large",
			Action:  "Split the file or raise the configured upload limit",
			Code:    "REQ003",
		},
	},
	{
		pattern: "too many concurrent requests",
		msg: UserMessage{
			Message: "The server is busy processing other files",
			Action:  "Please try again in a few seconds",
			Code:    "BUSY001",
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

// defaultMessage is the fallback when no pattern matches.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// The original error stays server-side; only the mapped message is shown.
func MapError(err error) UserMessage {
	if err == nil {
		return defaultMessage
	}

	text := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(text, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}
