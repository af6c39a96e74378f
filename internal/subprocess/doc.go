// Package subprocess launches script processes and manages their lifetime.
//
// This package spawns the script as a child process with all three standard
// streams piped, placed in its own process group so the script and any
// descendants it spawns can be terminated atomically by signalling the
// negative process-group id. The resulting Session owns the pipes until
// Split hands them off to the session workers exactly once.
package subprocess
