package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// GenerateReport formats results with the named formatter and writes them to w.
func GenerateReport(w io.Writer, results *domain.BatchResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
