// Package process controls the lifetime of external commands.
package process

import "time"

// WaitDelay bounds how long Wait keeps reading the output pipes of a killed
// command whose grandchildren still hold them open.
var WaitDelay = 2 * time.Second
