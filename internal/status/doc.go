// Package status implements the status-file language: wildcard test paths,
// the outcome expression grammar, conditional sections, and classification
// of test cases into expected outcome sets.
//
// A status file looks like:
//
//	# comments run to end of line
//	def FAIL_OK = FAIL, OKAY
//	prefix mjsunit
//
//	[$mode == debug]
//	regress/*: PASS || TIMEOUT
//	bugs/bug-1: FAIL_OK
package status
