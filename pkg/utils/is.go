// Package utils holds small helpers shared by the shell: value predicates,
// debouncing, key extraction, namespaced local storage, and device detection.
package utils

import (
	"math"
	"net/url"
	"reflect"
	"regexp"
)

// IsURL reports whether s is an absolute http, https, or ftp URL with a host.
func IsURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ftp":
		return u.Host != ""
	default:
		return false
	}
}

// IsEqual reports deep equality of a and b.
func IsEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// IsNumber reports whether v holds a finite integer or floating-point value.
func IsNumber(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return false
	}
}

// IsBoolean reports whether v holds a bool.
func IsBoolean(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

var mobileAgent = regexp.MustCompile(`(?i)android|webos|iphone|ipod|ipad|blackberry|iemobile|opera mini|windows phone|mobile`)

// DeviceDetection reports whether userAgent identifies a mobile device.
func DeviceDetection(userAgent string) bool {
	return mobileAgent.MatchString(userAgent)
}
