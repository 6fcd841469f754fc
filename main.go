package main

import (
	"ember/cmd" // Import the cmd package which contains the CLI command and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles argument parsing and execution.
//
// ember (EMBedding helpER) turns files into C char array declarations so binary
// or text assets can be compiled into a program:
//   - Walks its arguments once, left to right; input arguments change the settings
//     used for every file that follows them
//   - Writes one declaration per input, either as a brace-enclosed byte list or
//     as string literal segments, or as an extern forward declaration for headers
//   - Can unpack gzip, bzip2, xz, zip and 7z inputs before embedding them
//   - Can read the same settings and inputs from a YAML manifest
//
// Error handling strategy:
//   - Any invalid argument, unknown value or unreadable file stops the run with a
//     message on stderr and a non-zero exit status
//   - Zero bytes inside string literals are only warned about
func main() {
	cmd.Execute()
}
