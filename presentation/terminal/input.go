package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptURL asks for the form URL, offering the previous run's URL as a
// default when one is known.
func promptURL(r *bufio.Reader, w io.Writer, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "Enter the form URL [%s]: ", def)
	} else {
		fmt.Fprint(w, "Enter the form URL: ")
	}

	line, err := r.ReadString('\n')
	trimmed := strings.TrimSpace(line)
	if trimmed == "" && def != "" {
		return def, nil
	}
	if trimmed == "" && err != nil {
		return "", err
	}
	return trimmed, nil
}

// promptCount asks for the submission count until a positive integer
// arrives.
func promptCount(r *bufio.Reader, w io.Writer) (int, error) {
	for {
		fmt.Fprint(w, "Enter the number of submissions to make: ")

		line, err := r.ReadString('\n')
		trimmed := strings.TrimSpace(line)

		count, convErr := strconv.Atoi(trimmed)
		switch {
		case convErr != nil:
			fmt.Fprintln(w, "Please enter a valid number.")
		case count <= 0:
			fmt.Fprintln(w, "Please enter a positive number.")
		default:
			return count, nil
		}

		if err != nil {
			// Input exhausted with no valid count.
			return 0, err
		}
	}
}

// promptNames reads names one per line until a blank line or EOF. An
// empty list is allowed; missing identities are fabricated.
func promptNames(r *bufio.Reader, w io.Writer) ([]string, error) {
	fmt.Fprintln(w, "\nEnter names for each submission (one per line). Press Enter on an empty line when done.")
	fmt.Fprintln(w, "Random identities will be used once the list runs out.")

	var names []string
	for {
		line, err := r.ReadString('\n')
		name := strings.TrimSpace(line)
		if name == "" {
			return names, nil
		}
		names = append(names, name)
		if err != nil {
			return names, nil
		}
	}
}
