package models

import (
	"fmt"
	"unicode/utf8"
)

const Encoding = "UTF-8"

var sizeUnits = []string{"Byte", "KB", "MB", "GB", "TB"}

// Status is the derived summary shown in the status bar.
type Status struct {
	Characters int
	Bytes      int64
}

// ComputeStatus derives the status of a document.
func ComputeStatus(text string) Status {
	return Status{
		Characters: utf8.RuneCountInString(text),
		Bytes:      int64(len(text)),
	}
}

// FormatSize renders a byte count with 1024-based units. Plain bytes print as an
// integer, larger units with two decimals. TB is the largest unit.
func FormatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d %s", bytes, sizeUnits[0])
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}

func (s Status) String() string {
	return fmt.Sprintf("Encoding: %s | Characters: %d | Size: %s", Encoding, s.Characters, FormatSize(s.Bytes))
}
