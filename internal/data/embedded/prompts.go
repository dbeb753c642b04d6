package embedded

import _ "embed"

// SystemPrompt is the instruction sent with every question to a chat
// provider called directly.
//
//go:embed prompts/system.txt
var SystemPrompt string
