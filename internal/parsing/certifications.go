package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// ExtractCertifications splits each certifications line into name, issuer and
// date. Lines that do not split into at least two parts are skipped.
func ExtractCertifications(doc *Document) []types.Certification {
	certifications := []types.Certification{}

	for _, line := range doc.Sections.Lines(types.SectionCertifications) {
		line = stripBullet(line)
		sep := "-"
		if strings.Contains(line, " - ") {
			sep = " - "
		}

		parts := strings.SplitN(line, sep, 3)
		if len(parts) < 2 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if parts[0] == "" {
			continue
		}

		cert := types.Certification{
			Name:   parts[0],
			Issuer: parts[1],
			Date:   DateUnknown,
		}
		if cert.Issuer == "" {
			cert.Issuer = DateUnknown
		}
		if len(parts) == 3 && parts[2] != "" {
			cert.Date = parts[2]
		}
		certifications = append(certifications, cert)
	}

	return certifications
}
