package respond

import (
	"regexp"
)

var (
	// Provider API key patterns. The Anthropic pattern must run before the
	// generic sk- pattern so it is not half-masked by it.
	anthropicKeyPattern   = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern      = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
	huggingfaceKeyPattern = regexp.MustCompile(`hf_[a-zA-Z0-9]{10,}`)

	// Database password inside a DSN.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = huggingfaceKeyPattern.ReplaceAllString(msg, "hf_****")

	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
