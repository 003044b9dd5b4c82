// Package utils parses command-line arguments into ids, exact decimal amounts
// and calendar dates.
package utils
