// Package ircode converts infrared remote codes between source formats
// (Pronto hex, raw pulse arrays) and the Broadlink wire format.
//
// All functions are pure: they take already-materialized source data and
// return in-memory results or a *ConvertError. The package never logs,
// never touches the filesystem and keeps no state, so conversions for
// different commands may run concurrently without synchronization.
package ircode
