package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions over a reader/writer pair. The zero value is not
// usable; construct with New. Readers and writers are injected so tests can
// script an entire session.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// New returns a Prompter reading answers from r and writing questions to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Select presents a numbered list and returns the chosen item. An empty
// answer picks defaultItem when it appears in items, otherwise the first item.
func (p *Prompter) Select(question string, items []string, defaultItem string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("no choices for %q", question)
	}

	defaultIdx := 0
	for i, item := range items {
		if item == defaultItem {
			defaultIdx = i
			break
		}
	}

	fmt.Fprintf(p.writer, "\n%s\n", question)
	for i, item := range items {
		marker := " "
		if i == defaultIdx {
			marker = "*"
		}
		fmt.Fprintf(p.writer, " %s %d) %s\n", marker, i+1, item)
	}
	fmt.Fprintf(p.writer, "Enter number [1-%d] (default %d): ", len(items), defaultIdx+1)

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		return items[defaultIdx], nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(items) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", line, len(items))
	}
	return items[num-1], nil
}

// MultiSelect presents a numbered list and returns the chosen items in the
// order the user typed them. Answers are comma-separated numbers; an empty
// answer selects nothing.
func (p *Prompter) MultiSelect(question string, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	fmt.Fprintf(p.writer, "\n%s\n", question)
	for i, item := range items {
		fmt.Fprintf(p.writer, "   %d) %s\n", i+1, item)
	}
	fmt.Fprintf(p.writer, "Enter numbers separated by commas (empty for none): ")

	line, err := p.readLine()
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}
	if line == "" {
		return nil, nil
	}

	seen := make(map[int]bool)
	var selected []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > len(items) {
			return nil, fmt.Errorf("invalid selection %q: choose 1-%d", part, len(items))
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		selected = append(selected, items[num-1])
	}
	return selected, nil
}

// Confirm asks a yes/no question. An empty answer picks defaultYes.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(p.writer, "\n%s [%s]: ", question, hint)

	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}
	switch strings.ToLower(line) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", line)
	}
}

// Input asks a free-form question; an empty answer returns defaultValue.
func (p *Prompter) Input(question, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.writer, "\n%s (default %s): ", question, defaultValue)
	} else {
		fmt.Fprintf(p.writer, "\n%s: ", question)
	}

	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
