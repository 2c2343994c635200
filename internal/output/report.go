package output

import (
	"github.com/rpgo/runway-simulator/internal/domain"
)

// GenerateReport writes report in format to a timestamped file in dir and
// returns the file names written. "all" writes the verbose console, json and
// detailed csv renderings.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, JSONFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, report, dir, FileExtension(f))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f, err := FormatterFor(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, report, dir, FileExtension(f))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
