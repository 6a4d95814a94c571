package parser

import (
	"fmt"
	"strings"
)

// =============================================================================
// RECORD SPLITTING - Two input shapes, one record stream
// =============================================================================

const recordFields = 5

// rawRecord is one logical record before classification: the five
// personnel-system fields.
type rawRecord struct {
	index int // 1-based record number, for error messages

	period     string
	label      string // appointment type
	position   string
	department string
	assignment string
}

// splitRecords turns raw text into records. Presence of any tab
// character selects the tab-delimited form; otherwise the legacy
// five-line-block form applies. Shape problems are reported per record
// and never abort the split.
func splitRecords(text string) ([]rawRecord, []ParseError) {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return nil, nil
	}
	if strings.Contains(text, "\t") {
		return splitTabDelimited(lines)
	}
	return splitBlocks(lines)
}

func splitTabDelimited(lines []string) ([]rawRecord, []ParseError) {
	var (
		records []rawRecord
		errs    []ParseError
	)
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) < recordFields {
			errs = append(errs, ParseError{
				Record:  i + 1,
				Message: fmt.Sprintf("expected %d tab-delimited columns, got %d", recordFields, len(fields)),
			})
			continue
		}
		records = append(records, rawRecord{
			index:      i + 1,
			period:     strings.TrimSpace(fields[0]),
			label:      strings.TrimSpace(fields[1]),
			position:   strings.TrimSpace(fields[2]),
			department: strings.TrimSpace(fields[3]),
			assignment: strings.TrimSpace(fields[4]),
		})
	}
	return records, errs
}

func splitBlocks(lines []string) ([]rawRecord, []ParseError) {
	var (
		records []rawRecord
		errs    []ParseError
	)
	for start := 0; start < len(lines); start += recordFields {
		index := start/recordFields + 1
		if start+recordFields > len(lines) {
			errs = append(errs, ParseError{
				Record:  index,
				Message: fmt.Sprintf("incomplete record block: %d of %d lines", len(lines)-start, recordFields),
			})
			break
		}
		records = append(records, rawRecord{
			index:      index,
			period:     lines[start],
			label:      lines[start+1],
			position:   lines[start+2],
			department: lines[start+3],
			assignment: lines[start+4],
		})
	}
	return records, errs
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
