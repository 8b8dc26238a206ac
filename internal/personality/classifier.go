// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package personality

import (
	"fmt"
	"strings"
)

// Trait is a dominant trait label produced by the answer classifier.
type Trait string

const (
	Analytical Trait = "Analytical"
	Creative   Trait = "Creative"
	Leadership Trait = "Leadership"
	Technical  Trait = "Technical"
)

// traits is the fixed label set in enumeration order. The order is part of
// the classifier contract: it breaks ties.
var traits = [...]Trait{Analytical, Creative, Leadership, Technical}

// Traits returns the fixed label set in enumeration order.
func Traits() []Trait {
	return traits[:]
}

// ParseTrait resolves a label to a [Trait]. Matching ignores surrounding
// whitespace and letter case.
func ParseTrait(label string) (Trait, error) {
	label = strings.TrimSpace(label)
	for _, t := range traits {
		if strings.EqualFold(label, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTrait, label)
}

// Classify returns the label that occurs most often in labels.
//
// When several labels share the highest count the one that comes first in
// enumeration order (Analytical, Creative, Leadership, Technical) wins,
// independently of the order of the answers.
//
// It fails with [ErrNoAnswers] on empty input and with [ErrUnknownTrait]
// when any label is outside the fixed set.
func Classify(labels []string) (Trait, error) {
	if len(labels) == 0 {
		return "", ErrNoAnswers
	}

	var counts [len(traits)]int
	for _, label := range labels {
		trait, err := ParseTrait(label)
		if err != nil {
			return "", err
		}
		counts[trait.index()]++
	}

	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}

	return traits[best], nil
}

func (t Trait) index() int {
	for i, known := range traits {
		if known == t {
			return i
		}
	}
	return -1
}

// Describe returns a short human-readable profile of the trait.
func Describe(t Trait) string {
	return descriptions[t]
}

var descriptions = map[Trait]string{
	Analytical: "You have a strong analytical mind with excellent problem-solving abilities. " +
		"You thrive when working with data, logic, and structured approaches.",
	Creative: "You possess exceptional creativity and imagination. " +
		"You excel at thinking outside the box and bringing innovative ideas to life.",
	Leadership: "You are a natural leader with strong communication and organizational skills. " +
		"You inspire others and excel at managing teams and projects.",
	Technical: "You have strong technical aptitude and enjoy working with your hands. " +
		"You excel at building, fixing, and optimizing systems.",
}
