// Package countdown holds the countdown timer state machine.
//
// Timer operations commit state first and return the cues the caller should
// play afterwards, so transitions can be exercised without any audio or
// terminal attached. Phase bookkeeping is delegated to a looplab/fsm machine
// with three states: idle, running and expired.
package countdown
