// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"

	"github.com/lithammer/shortuuid/v4"
)

// studentSuffixLength is the number of random characters appended to a
// student identifier.
const studentSuffixLength = 9

// StudentIDGenerator issues human-readable student identifiers of the form
// K_<class>_<section><suffix>, e.g. K_10_A7xQ2mPzRt.
type StudentIDGenerator struct {
}

func NewStudentIDGenerator() *StudentIDGenerator {
	return &StudentIDGenerator{}
}

// Generate returns a new student identifier for the class and section.
// Blank class or section segments are replaced with "X".
func (g *StudentIDGenerator) Generate(class, section string) string {
	suffix := shortuuid.New()
	if len(suffix) > studentSuffixLength {
		suffix = suffix[:studentSuffixLength]
	}
	return fmt.Sprintf("K_%s_%s%s", segment(class), strings.ToUpper(segment(section)), suffix)
}

func segment(s string) string {
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return "X"
	}
	return s
}
