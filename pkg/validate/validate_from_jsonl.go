package validate

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Summary — итог проверки набора корзин.
type Summary struct {
	Allowed int // OK и оформление разрешено
	Blocked int // бизнес-отказ или запрет оформления
	Invalid int // некорректный JSON, структура или целостность данных
}

func (s Summary) String() string {
	return fmt.Sprintf("%d allowed / %d blocked / %d invalid", s.Allowed, s.Blocked, s.Invalid)
}

func (s *Summary) add(report Report, err error) {
	switch {
	case err != nil:
		s.Invalid++
	case report.Allowed():
		s.Allowed++
	default:
		s.Blocked++
	}
}

// ValidateJSONLStream — читает JSONL из reader’а, проверяет каждую корзину и пишет
// по одной строке отчёта на каждую непустую строку входа.
// Ошибки отдельных строк попадают в отчёт и не прерывают поток.
func ValidateJSONLStream(ctx context.Context, checker FileChecker, ir io.Reader, ow io.Writer) (Summary, error) {
	var res Summary

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		lineBytes := bytes.TrimSpace(scanner.Bytes())
		if len(lineBytes) == 0 {
			continue
		}

		report, err := checker.Check(ctx, lineBytes)
		res.add(report, err)
		if err := writeReport(ow, report); err != nil {
			return res, err
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
