package exemption

import "strings"

// Parse parses a comma-separated list of identifiers of the given kind,
// as passed on the command line (e.g., "time.Location,*sync.Once").
// Empty parts are skipped.
func Parse(kind Kind, s string) []Exemption {
	if s == "" {
		return nil
	}

	var exemptions []Exemption

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		exemptions = append(exemptions, New(kind, part))
	}

	return exemptions
}
