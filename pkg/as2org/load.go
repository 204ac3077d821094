package as2org

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a CAIDA-style AS2Org table: one "<asn>|<org_id>" record per
// line, comment lines starting with '#' skipped. org_id need not be
// numeric in the CAIDA dataset itself, but siblinghood only depends on
// equality, so it is hashed here to a stable int via a first-seen table.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening AS2Org file: %w", err)
	}
	defer f.Close()

	m := New()
	orgIDs := make(map[string]int)
	// Count up from math.MinInt32 to avoid colliding with synthesized
	// singleton orgs (org == asn, always >= 0, an IXP sentinel or a small
	// negative annotation sentinel).
	nextOrgID := math.MinInt32

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
			return nil, fmt.Errorf("AS2Org file %s line %d: expected \"asn|org_id\", got %q", path, lineNum, line)
		}
		asn, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("AS2Org file %s line %d: invalid ASN %q: %w", path, lineNum, fields[0], err)
		}
		orgKey := strings.TrimSpace(fields[1])
		orgID, ok := orgIDs[orgKey]
		if !ok {
			orgID = nextOrgID
			orgIDs[orgKey] = orgID
			nextOrgID++
		}
		m.Add(asn, orgID)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading AS2Org file: %w", err)
	}

	return m, nil
}
