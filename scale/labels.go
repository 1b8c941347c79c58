// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// siDigits is the default number of digits after the decimal point for
// SI prefixed labels when no explicit precision is set.
const siDigits = 2

func linearLabel(s *Scale, v float64) string {
	return s.formatValue(v)
}

func logLabel(s *Scale, v float64) string {
	if v == 0 {
		return "0"
	}
	return s.formatValue(v)
}

// formatValue formats a tick value, trying in order: the Formatter
// override, SI prefixes, locale-aware formatting, explicit precision,
// and finally the shortest exact representation.
func (s *Scale) formatValue(v float64) string {
	if s.Formatter != nil {
		return s.Formatter(v)
	}
	t := &s.Ticks
	if t.SIPrefix {
		return humanize.SIWithDigits(v, t.Precision.Or(siDigits), "")
	}
	if s.Locale != "" {
		if t.Precision.Valid {
			p := t.Precision.Value
			return s.localePrinter().Sprintf("%v", number.Decimal(v,
				number.MinFractionDigits(p), number.MaxFractionDigits(p)))
		}
		return s.localePrinter().Sprintf("%v", number.Decimal(v))
	}
	if t.Precision.Valid {
		return strconv.FormatFloat(v, 'f', t.Precision.Value, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// localePrinter returns the message printer for the Locale tag,
// falling back to the undetermined language for unparseable tags.
func (s *Scale) localePrinter() *message.Printer {
	if s.printer == nil {
		tag, err := language.Parse(s.Locale)
		if err != nil {
			slog.Error("scale: unrecognized locale", "locale", s.Locale, "err", err)
			tag = language.Und
		}
		s.printer = message.NewPrinter(tag)
	}
	return s.printer
}
