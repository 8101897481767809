package ir

import "strings"

// Print renders a full instruction list as the newline-joined text form
// a human (or a "meow compile" consumer) reads.
func Print(instructions []Instruction) string {
	lines := make([]string, len(instructions))
	for i, instr := range instructions {
		lines[i] = instr.String()
	}
	return strings.Join(lines, "\n")
}
