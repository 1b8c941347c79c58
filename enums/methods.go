// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/chart/base/errors"
)

// String returns the string representation of the given enum value
// with the given map, falling back on the formatted int64 value
// if the value is not in the map.
func String[T EnumConstraint](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string representation,
// the map from strings to values, and the name of the type, which is
// used for the error message.
func SetString[T comparable](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString], but it also tries the lowercase
// version of the given string if the original version fails.
func SetStringLower[T comparable](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value with the given map,
// falling back on the string representation of the value
// if the value is not in the map.
func Desc[T EnumConstraint](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return i.String()
}

// Values returns an [Enum] slice of the given concrete enum values.
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// UnmarshalText loads the given enum value from the given text.
// It logs any error instead of returning it to prevent one unknown
// value from spoiling the loading of an entire config file.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	errors.Log(i.SetString(string(text)))
	return nil
}
