package model

import "strings"

// Project describes the software being released.
type Project struct {
	Name            string
	Version         string
	Description     string
	LongDescription string
	Website         string
	License         string
	JavaVersion     string
	Tags            []string
	Authors         []string
	ExtraProperties Properties
}

// UniqueStrings trims values, drops blanks and duplicates, and keeps first-seen order.
func UniqueStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}
