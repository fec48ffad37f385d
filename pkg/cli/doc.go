/*
Package cli provides command-line utilities shared by vigil commands: output
formatters, exit-code conventions, and signal handling.

Output formatting:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, result); err != nil {
	    return err
	}

Exit codes separate the two error classes of the validators: a negative
verdict (violations found, exit 1) and an operational failure (validation
could not run, exit 2).
*/
package cli
