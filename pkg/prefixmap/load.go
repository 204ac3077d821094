package prefixmap

import (
	"bufio"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
)

// Load reads a CIDR-to-ASN table: one "<prefix>|<asn>" record per line,
// comment lines starting with '#' skipped. Private/reserved ASNs
// ((-100, 0)) are skipped rather than inserted, since they never appear
// as a graph interface's own ASN.
func Load(path string) (*PrefixMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening prefix map file: %w", err)
	}
	defer f.Close()

	m := New()
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
			return nil, fmt.Errorf("prefix map file %s line %d: expected \"prefix|asn\", got %q", path, lineNum, line)
		}
		pfx, err := netip.ParsePrefix(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("prefix map file %s line %d: invalid prefix %q: %w", path, lineNum, fields[0], err)
		}
		asn, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("prefix map file %s line %d: invalid ASN %q: %w", path, lineNum, fields[1], err)
		}
		if asn > -100 && asn < 0 {
			continue
		}
		m.Insert(pfx, asn)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading prefix map file: %w", err)
	}

	return m, nil
}
