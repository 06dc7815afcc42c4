package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dateLayout = "02/01/2006"

var (
	printer = message.NewPrinter(language.BrazilianPortuguese)

	errInvalidAmount = errors.New("Valor inválido")
	errInvalidDate   = errors.New("Data inválida, use dd/mm/aaaa")
)

// formatMoney renders v as Brazilian reais, e.g. "R$ 1.234,50".
func formatMoney(v float64) string {
	if v < 0 {
		return "-R$ " + printer.Sprintf("%.2f", -v)
	}
	return "R$ " + printer.Sprintf("%.2f", v)
}

// parseMoney accepts "1.234,56", "1234,56" and "1234.56", with or without
// the "R$" prefix.
func parseMoney(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return 0, errInvalidAmount
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errInvalidAmount
	}
	return v, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

// parseDate reads dd/mm/yyyy in local time. An empty string means now.
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}
