package ixp

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads an IXP participant catalog: one "<participant-id>|<asn>"
// record per line, comment lines starting with '#' skipped. Participant
// IDs are converted to the graph's sentinel convention (sentinel =
// -participantID - 100, the inverse of pkg/report's decode) before
// insertion.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening IXP catalog file: %w", err)
	}
	defer f.Close()

	c := New()
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, "|", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("IXP catalog file %s line %d: expected \"pid|asn\", got %q", path, lineNum, line)
		}
		pid, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("IXP catalog file %s line %d: invalid participant id %q: %w", path, lineNum, fields[0], err)
		}
		asn, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("IXP catalog file %s line %d: invalid ASN %q: %w", path, lineNum, fields[1], err)
		}
		sentinel := -pid - 100
		c.AddParticipant(sentinel, asn)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading IXP catalog file: %w", err)
	}

	return c, nil
}
