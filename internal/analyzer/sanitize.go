package analyzer

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// ValidationReport is the outcome of sanitizing a result tree. Errors
// describes every repair made; the tree has been repaired in place either
// way, so callers use the result unconditionally and log the report.
type ValidationReport struct {
	Valid  bool
	Errors []string
}

var timeType = reflect.TypeOf(time.Time{})

// Sanitize walks the whole result tree and repairs numeric corruption in
// place: NaN and infinite floats become 0, negative counters become 0.
// No field in the result tree legitimately holds a negative value, so any
// negative is treated as upstream API inconsistency. This is a last line
// of defense; the scorers guard their own division-by-zero cases first.
func Sanitize(result *AnalysisResult) ValidationReport {
	report := ValidationReport{}
	sanitizeValue(reflect.ValueOf(result).Elem(), "result", &report)
	report.Valid = len(report.Errors) == 0
	return report
}

func sanitizeValue(v reflect.Value, path string, report *ValidationReport) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			sanitizeValue(v.Elem(), path, report)
		}

	case reflect.Struct:
		if v.Type() == timeType {
			return
		}
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			sanitizeValue(v.Field(i), path+"."+field.Name, report)
		}

	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			sanitizeValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i), report)
		}

	case reflect.Map:
		for _, key := range v.MapKeys() {
			elem := v.MapIndex(key)
			elemPath := fmt.Sprintf("%s[%v]", path, key)
			// Map values are not addressable; repair via a settable copy.
			repaired := reflect.New(elem.Type()).Elem()
			repaired.Set(elem)
			sanitizeValue(repaired, elemPath, report)
			if !repaired.Equal(elem) {
				v.SetMapIndex(key, repaired)
			}
		}

	case reflect.Float32, reflect.Float64:
		f := v.Float()
		switch {
		case math.IsNaN(f) || math.IsInf(f, 0):
			report.Errors = append(report.Errors, fmt.Sprintf("%s: non-finite value replaced with 0", path))
			v.SetFloat(0)
		case f < 0:
			report.Errors = append(report.Errors, fmt.Sprintf("%s: negative value %v replaced with 0", path, f))
			v.SetFloat(0)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: negative value %d replaced with 0", path, v.Int()))
			v.SetInt(0)
		}
	}
}
