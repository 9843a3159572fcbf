// Package format renders calculator results for display.
//
// Numbers are grouped and separated the way the selected locale expects
// (pt-BR: "1.234,5", en: "1,234.5"). Values arriving here are already
// rounded by the payback package; the formatter only fixes the number of
// fraction digits shown.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported locale names.
const (
	LocalePortuguese = "pt-BR"
	LocaleEnglish    = "en"

	// DefaultLocale is Brazilian Portuguese.
	DefaultLocale = LocalePortuguese
)

// Placeholder is shown in place of a value that is absent.
const Placeholder = "-"

// ErrUnsupportedLocale is returned by New for locales without a catalog.
var ErrUnsupportedLocale = fmt.Errorf("unsupported locale (supported: %s, %s)", LocalePortuguese, LocaleEnglish)

// Formatter renders numbers and messages for one locale.
type Formatter struct {
	locale   string
	tag      language.Tag
	printer  *message.Printer
	decimal  string
	group    string
	currency string
}

// New returns a Formatter for the named locale. Matching is case-insensitive
// and accepts "pt", "pt-BR", "pt_BR", "en" and regional English variants.
func New(locale string) (*Formatter, error) {
	switch normalizeLocale(locale) {
	case "pt", "pt-br":
		return newFormatter(LocalePortuguese, language.BrazilianPortuguese, ",", "R$ "), nil
	case "en", "en-us", "en-gb":
		return newFormatter(LocaleEnglish, language.English, ".", "$"), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
}

// MustNew is like New but panics on an unsupported locale.
func MustNew(locale string) *Formatter {
	f, err := New(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// IsSupportedLocale reports whether New accepts locale.
func IsSupportedLocale(locale string) bool {
	_, err := New(locale)
	return err == nil
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

func newFormatter(name string, tag language.Tag, decimal, currency string) *Formatter {
	printer := message.NewPrinter(tag, message.Catalog(messages))
	return &Formatter{
		locale:   name,
		tag:      tag,
		printer:  printer,
		decimal:  decimal,
		group:    strings.Trim(printer.Sprintf("%d", 1000), "0123456789"),
		currency: currency,
	}
}

// Locale returns the canonical locale name.
func (f *Formatter) Locale() string { return f.locale }

// Number formats v with exactly precision fraction digits and locale
// grouping. Example (en): Number(1234.567, 2) returns "1,234.57".
func (f *Formatter) Number(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	if precision < 0 {
		precision = 0
	}

	formatted := fmt.Sprintf("%.*f", precision, v)
	negative := strings.HasPrefix(formatted, "-")
	formatted = strings.TrimPrefix(formatted, "-")

	intPart, fracPart, _ := strings.Cut(formatted, ".")
	out := f.groupDigits(intPart)
	if fracPart != "" {
		out += f.decimal + fracPart
	}
	if negative && strings.Trim(out, "0.,") != "" {
		out = "-" + out
	}
	return out
}

// Compact formats v with up to maxPrecision fraction digits, dropping
// trailing zeros. Example (pt-BR): Compact(35.8, 2) returns "35,8".
func (f *Formatter) Compact(v float64, maxPrecision int) string {
	s := f.Number(v, maxPrecision)
	if s == Placeholder || !strings.Contains(s, f.decimal) {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, f.decimal)
}

// maxPrinterDigits is the longest digit run that fits an int64 for the
// printer.
const maxPrinterDigits = 18

// groupDigits inserts the locale thousands separator into a run of digits.
// Runs longer than maxPrinterDigits have their leading part grouped by the
// printer and the remaining groups of three appended with the same separator.
func (f *Formatter) groupDigits(digits string) string {
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return digits
	}

	var tail string
	if len(digits) > maxPrinterDigits {
		split := len(digits) - 3*((len(digits)-maxPrinterDigits+2)/3)
		var sb strings.Builder
		for i := split; i < len(digits); i += 3 {
			sb.WriteString(f.group)
			sb.WriteString(digits[i : i+3])
		}
		digits, tail = digits[:split], sb.String()
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits + tail
	}
	return f.printer.Sprintf("%d", n) + tail
}

// Years formats a payback period with one fraction digit.
// Example (pt-BR): "2,5 anos".
func (f *Formatter) Years(v float64) string {
	return f.printer.Sprintf(msgYears, f.Number(v, 1))
}

// Kg formats a CO2 mass with up to two fraction digits.
// Example (en): "1,234 kg".
func (f *Formatter) Kg(v float64) string {
	return f.Compact(v, 2) + " kg"
}

// Currency formats a money amount with two fraction digits.
// Example (pt-BR): "R$ 698,06". The symbol is fixed per locale.
func (f *Formatter) Currency(v float64) string {
	return f.currency + f.Number(v, 2)
}

// VolumeM3 formats a water volume in cubic meters.
func (f *Formatter) VolumeM3(v float64) string {
	return f.Compact(v, 2) + " m³"
}

// EnergyKWh formats an energy amount in kWh.
func (f *Formatter) EnergyKWh(v float64) string {
	return f.Compact(v, 2) + " kWh"
}

// Trees formats a whole tree count. Example (en): "13 trees".
func (f *Formatter) Trees(n float64) string {
	return f.printer.Sprintf(msgTrees, f.Number(n, 0))
}

// Optional formats *v with render, or returns Placeholder when v is nil.
func Optional(v *float64, render func(float64) string) string {
	if v == nil {
		return Placeholder
	}
	return render(*v)
}
