// Package prefs provides durable backends for the panel open
// preference. Every backend satisfies the same contract: a miss is
// reported positively (never defaulted to false), records expire TTL
// after the last write, and an unavailable backing store degrades to
// miss/no-op instead of failing the caller.
package prefs

import "time"

// TTL is how long a written preference stays valid.
const TTL = 7 * 24 * time.Hour

// Key is the single application-scoped record name.
const Key = "panel_open"
