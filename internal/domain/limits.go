package domain

// Resource limits shared by every tool and by the agent runtime.
const (
	// MaxGlobResults is the maximum number of paths returned by a glob search.
	MaxGlobResults = 100

	// MaxSearchResults is the maximum number of matching lines returned by a code search.
	MaxSearchResults = 50

	// MaxToolOutputBytes bounds the size of any successful tool output.
	MaxToolOutputBytes = 64 * 1024

	// MaxSearchFileBytes is the largest file a code search reads.
	MaxSearchFileBytes = 1024 * 1024

	// MaxTicketKeyLength is the maximum accepted length of a ticket key.
	MaxTicketKeyLength = 50

	// MaxTransitionNameLength is the maximum accepted length of a ticket transition name.
	MaxTransitionNameLength = 100

	// MaxCommentLength is the maximum accepted length of a ticket comment.
	MaxCommentLength = 32767

	// MaxHistoryMessages is the number of trailing history entries included in a prompt.
	MaxHistoryMessages = 10
)

// truncatedOutputMarker is appended to tool output cut at MaxToolOutputBytes.
const truncatedOutputMarker = "\n... [output truncated]"

// TruncateOutput bounds output to MaxToolOutputBytes without splitting a UTF-8 sequence.
func TruncateOutput(output string) string {
	if len(output) <= MaxToolOutputBytes {
		return output
	}
	cut := MaxToolOutputBytes - len(truncatedOutputMarker)
	// back off to the start of a rune
	for cut > 0 && output[cut]&0xC0 == 0x80 {
		cut--
	}
	return output[:cut] + truncatedOutputMarker
}
