// Package tabular reads and writes automata in the semicolon separated table format:
//
//	;;F
//	;A;B
//	a;A,B;
//	ε;B;
//
// The first line marks final states with F, the second names the states (the first one is the start
// state) and every other line holds the transitions of one symbol, destinations separated by commas.
package tabular

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	automaton "github.com/geange/determinize"
)

const (
	// FinalMarker Marks a final state in the first header line.
	FinalMarker = "F"

	separator     = ";"
	destSeparator = ","
)

var (
	ErrMissingHeader        = errors.New("missing header line")
	ErrNoFinalState         = errors.New("could not find 'F' (final state)")
	ErrInvalidMarker        = errors.New("invalid final state marker")
	ErrEmptyStateName       = errors.New("empty state name")
	ErrEmptySymbol          = errors.New("empty input symbol")
	ErrStateIndexOutOfRange = errors.New("state index out of range")
	ErrReservedCharacter    = errors.New("name contains a separator")
)

// lineReader Splits the non blank lines of a table into cells. Cells are raw text, there is no quoting.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

// next Returns the cells of the next non blank line, or io.EOF.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		text := lr.sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		return strings.Split(text, separator), nil
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Decode Parses a table. It checks the layout only; FromTable checks the automaton itself.
func Decode(r io.Reader) (*automaton.Table, error) {
	lr := newLineReader(r)

	markers, err := readHeader(lr)
	if err != nil {
		return nil, fmt.Errorf("final state line: %w", err)
	}
	names, err := readHeader(lr)
	if err != nil {
		return nil, fmt.Errorf("state line: %w", err)
	}

	t := &automaton.Table{
		States: make([]automaton.State, len(names)),
		Final:  make([]bool, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w in column %d", ErrEmptyStateName, i+1)
		}
		t.States[i] = automaton.State(name)
	}

	hasFinal := false
	for i, marker := range markers {
		switch marker {
		case "":
		case FinalMarker:
			if i >= len(t.States) {
				return nil, fmt.Errorf("%w: final marker in column %d of %d states", ErrStateIndexOutOfRange, i+1, len(t.States))
			}
			t.Final[i] = true
			hasFinal = true
		default:
			return nil, fmt.Errorf("%w %q in column %d", ErrInvalidMarker, marker, i+1)
		}
	}
	if !hasFinal {
		return nil, fmt.Errorf("%w: %s", ErrNoFinalState, strings.Join(markers, separator))
	}

	for {
		record, err := lr.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row, err := parseRow(record, len(t.States))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.line, err)
		}
		if row != nil {
			t.Rows = append(t.Rows, *row)
		}
	}

	return t, nil
}

// readHeader Reads a header line and returns its cells after the leading one, trailing empty cells
// removed.
func readHeader(lr *lineReader) ([]string, error) {
	record, err := lr.next()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, err
	}

	cells := make([]string, 0, len(record))
	for _, cell := range record[1:] {
		cells = append(cells, strings.TrimSpace(cell))
	}
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells, nil
}

// parseRow Returns nil for a line without symbol and destinations.
func parseRow(record []string, numStates int) (*automaton.Row, error) {
	symbol := strings.TrimSpace(record[0])
	cells := record[1:]

	row := &automaton.Row{
		Symbol: automaton.Symbol(symbol),
		Cells:  make([][]automaton.State, 0, len(cells)),
	}
	empty := true
	for i, cell := range cells {
		dests := splitDests(cell)
		if len(dests) == 0 {
			row.Cells = append(row.Cells, nil)
			continue
		}
		if i >= numStates {
			return nil, fmt.Errorf("%w: column %d of %d states", ErrStateIndexOutOfRange, i+1, numStates)
		}
		row.Cells = append(row.Cells, dests)
		empty = false
	}

	if symbol == "" {
		if empty {
			return nil, nil
		}
		return nil, ErrEmptySymbol
	}
	if len(row.Cells) > numStates {
		row.Cells = row.Cells[:numStates]
	}
	return row, nil
}

func splitDests(cell string) []automaton.State {
	var dests []automaton.State
	for _, part := range strings.Split(cell, destSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			dests = append(dests, automaton.State(part))
		}
	}
	return dests
}

// checkName Rejects names that would not read back as one cell.
func checkName(name string) error {
	if strings.ContainsAny(name, separator+destSeparator+"\r\n") {
		return fmt.Errorf("%w: %q", ErrReservedCharacter, name)
	}
	return nil
}

// Encode Writes t in the layout Decode reads. Cells are written as they are, names holding a separator
// or a line break are rejected.
func Encode(w io.Writer, t *automaton.Table) error {
	markers := make([]string, len(t.States)+1)
	names := make([]string, len(t.States)+1)
	for i, state := range t.States {
		if err := checkName(string(state)); err != nil {
			return err
		}
		names[i+1] = string(state)
		if i < len(t.Final) && t.Final[i] {
			markers[i+1] = FinalMarker
		}
	}

	records := [][]string{markers, names}
	for _, row := range t.Rows {
		if err := checkName(string(row.Symbol)); err != nil {
			return err
		}
		record := make([]string, len(t.States)+1)
		record[0] = string(row.Symbol)
		for i, cell := range row.Cells {
			if i >= len(t.States) {
				break
			}
			parts := make([]string, len(cell))
			for j, state := range cell {
				if err := checkName(string(state)); err != nil {
					return err
				}
				parts[j] = string(state)
			}
			record[i+1] = strings.Join(parts, destSeparator)
		}
		records = append(records, record)
	}

	bw := bufio.NewWriter(w)
	for _, record := range records {
		if _, err := bw.WriteString(strings.Join(record, separator) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read Decodes a table and builds the automaton it describes.
func Read(r io.Reader) (*automaton.Automaton, error) {
	t, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return automaton.FromTable(t)
}

// Write Encodes the table of a.
func Write(w io.Writer, a *automaton.Automaton) error {
	return Encode(w, a.Export())
}

// ReadFile Reads the automaton stored in the named file.
func ReadFile(filename string) (*automaton.Automaton, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open input file %s: %w", filename, err)
	}
	defer f.Close()

	a, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return a, nil
}

// WriteFile Writes a to the named file, replacing it.
func WriteFile(filename string, a *automaton.Automaton) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open output file %s: %w", filename, err)
	}

	if err := Write(f, a); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", filename, err)
	}
	return f.Close()
}
