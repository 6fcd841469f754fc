package cmd

const usage = `Usage:	ember [--options] [-o file] {[input args] files}*
Ember (EMBedding helpER) turns files into char arrays and packs them into C headers
Input arguments only affect the files that come after them.
All arguments are case-insensitive.
Arguments that have a limited set of allowed values also accept shorthands and ignore case.
A lone '-' reads standard input, once per run, and needs a name set with -n.

-o
	Sets the output file to use. stdout by default. Must be the first argument.

Available input arguments are:
-f
	Sets the output format. Can either be 'source' or 'header'. Header does not include the actual variable values and marks variables as extern. Overwrites the access modifier. Source by default.
-p
	Sets the prefix to use for turning the filename into a variable name. Nothing by default.
-m
	Sets the access modifier to use for variables. 'const' by default.
-e
	Sets the encoding to expect. Can either be 'binary' or 'ascii'. Determines if the variable value is given in byte or string literals. Binary by default.
-n
	Sets the name for the next file. Only applies to the next file. Must be a non-empty valid identifier.
-u
	Sets how inputs are unpacked. One of 'none', 'gzip', 'bzip2', 'xz', 'zip' or '7z'. Archives produce one variable per file inside them. None by default.

Options, only before every other argument ('--' ends them):
Any leading argument starting with '--' is read as an option, and unknown ones are errors.
Put '--' first to embed a file whose name starts with '--'.
--manifest file
	Reads inputs and settings from a YAML manifest before the command line.
--report file
	Writes a JSON summary of every variable written.
--debug
	Enables debug logging.
--no-color
	Disables colored log output.
--help
	Shows this text.
`
