package validate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — проверяет корзины из файла JSON (одна корзина или массив) или JSONL
// (по строке на корзину) и пишет отчёты в writer. Для одиночного JSON ошибка возвращается,
// отчёт не пишется; ошибки элементов массива и строк JSONL попадают в отчёт.
func ValidateFile(ctx context.Context, checker FileChecker, filePath string, format InputFormat, ow io.Writer) (Summary, error) {
	var summary Summary

	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			format = FormatJSON
		}
	}

	switch format {
	case FormatJSON, FormatJSONL:
	default:
		return summary, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return summary, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, checker, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return summary, fmt.Errorf("read file: %w", err)
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		return validateJSONArray(ctx, checker, trimmed, ow)
	}
	report, err := checker.Check(ctx, raw)
	summary.add(report, err)
	if err != nil {
		return summary, err
	}
	if err := writeReport(ow, report); err != nil {
		return summary, err
	}
	return summary, nil
}
