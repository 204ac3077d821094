package bgp

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a CAIDA AS-relationship file (serial-1/serial-2 format:
// "<provider-as>|<customer-as>|-1" for a provider-customer edge,
// "<as>|<as>|0" for a peer edge) and returns a finalized Graph. Comment
// lines starting with '#' are skipped.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening AS-relationship file: %w", err)
	}
	defer f.Close()

	g := New()
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			return nil, fmt.Errorf("AS-relationship file %s line %d: expected at least 3 fields, got %d", path, lineNum, len(fields))
		}
		a, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("AS-relationship file %s line %d: invalid AS %q: %w", path, lineNum, fields[0], err)
		}
		b, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("AS-relationship file %s line %d: invalid AS %q: %w", path, lineNum, fields[1], err)
		}
		rel, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("AS-relationship file %s line %d: invalid relationship code %q: %w", path, lineNum, fields[2], err)
		}
		switch rel {
		case -1:
			g.AddCustomer(a, b)
		case 0:
			g.AddPeer(a, b)
		default:
			return nil, fmt.Errorf("AS-relationship file %s line %d: unknown relationship code %d", path, lineNum, rel)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading AS-relationship file: %w", err)
	}

	g.Finalize()
	return g, nil
}
