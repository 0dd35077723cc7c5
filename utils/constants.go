// File: utils/constants.go
package utils

import "time"

// ConvoStateTTL is how long an idle conversation keeps its state.
const ConvoStateTTL = 30 * time.Minute
