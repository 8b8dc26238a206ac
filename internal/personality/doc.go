// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package personality turns questionnaire input into a personality
// classification and ranks catalog careers for it.
//
// Two independent classifiers are provided:
//   - [Classify] reduces forced-choice answers to the dominant [Trait];
//   - [Score] reduces a five-dimension submission to a five-letter type code.
//
// [Matcher] maps either classification to at most [MaxRecommendations]
// careers taken from a caller-supplied catalog. Everything in this package
// is a pure function of its input and safe for concurrent use.
package personality
