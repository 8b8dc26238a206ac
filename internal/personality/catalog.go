// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package personality

import (
	"slices"

	"github.com/MKhiriev/career-compass/models"
)

// curatedTitles is the hand-picked trait to career table, best fit first.
var curatedTitles = map[Trait][]string{
	Analytical: {"Data Scientist", "Research Scientist", "Financial Analyst", "Doctor", "Engineer"},
	Creative:   {"Graphic Designer", "Writer/Author", "Architect", "Film Director", "UX Designer"},
	Leadership: {"IAS Officer", "Business Manager", "Entrepreneur", "HR Director", "Teacher/Professor"},
	Technical:  {"Software Engineer", "Mechanical Engineer", "Robotics Engineer", "Electrician", "Surgeon"},
}

// CuratedTitles returns the curated career titles of trait, best fit first.
func CuratedTitles(trait Trait) []string {
	return slices.Clone(curatedTitles[trait])
}

// letterTags maps every letter of every type-code position to the interest
// tags it implies. Position 0 and 1 both use 'C', positions 3 and 4 both
// use 'S', hence the per-position tables.
var letterTags = [TypeCodeLength]map[byte][]string{
	{ // openness
		'O': {"creativity", "design", "research", "innovation"},
		'C': {"operations", "maintenance", "accounting", "process"},
	},
	{ // conscientiousness
		'C': {"planning", "analysis", "attention to detail", "finance"},
		'D': {"adaptability", "media", "entrepreneurship", "improvisation"},
	},
	{ // extraversion
		'E': {"communication", "leadership", "sales", "teaching", "management"},
		'I': {"programming", "data analysis", "writing", "engineering"},
	},
	{ // agreeableness
		'A': {"teamwork", "empathy", "healthcare", "education"},
		'S': {"negotiation", "strategy", "business", "law"},
	},
	{ // neuroticism
		'N': {"art", "storytelling", "creativity"},
		'S': {"problem solving", "decision making", "engineering", "healthcare"},
	},
}

// SeedCatalog returns the starter catalog: one entry per curated title.
// The slice is freshly allocated on every call.
func SeedCatalog() []models.Career {
	seed := []models.Career{
		{
			Title:          "Data Scientist",
			Description:    "Extracts insight from data using statistics and machine learning.",
			Requirements:   []string{"Bachelor's degree in a quantitative field", "Portfolio of data projects"},
			Skills:         []string{"statistics", "programming", "data analysis", "machine learning", "research"},
			Industries:     []string{"technology", "finance", "healthcare"},
			SalaryRange:    models.SalaryRange{Min: 800000, Max: 2500000},
			GrowthRate:     22,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Excellent",
		},
		{
			Title:          "Research Scientist",
			Description:    "Designs and runs experiments to advance knowledge in a scientific field.",
			Requirements:   []string{"Master's or PhD in a science discipline"},
			Skills:         []string{"research", "analysis", "writing", "attention to detail"},
			Industries:     []string{"academia", "pharmaceuticals", "government"},
			SalaryRange:    models.SalaryRange{Min: 600000, Max: 2000000},
			GrowthRate:     8,
			EducationLevel: "PhD",
			JobOutlook:     "Good",
		},
		{
			Title:          "Financial Analyst",
			Description:    "Evaluates investments and financial performance to guide business decisions.",
			Requirements:   []string{"Bachelor's degree in finance or economics"},
			Skills:         []string{"analysis", "finance", "accounting", "attention to detail"},
			Industries:     []string{"finance", "banking", "business"},
			SalaryRange:    models.SalaryRange{Min: 500000, Max: 1800000},
			GrowthRate:     9,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Good",
		},
		{
			Title:          "Doctor",
			Description:    "Diagnoses and treats illness and promotes patient health.",
			Requirements:   []string{"MBBS", "Medical licence"},
			Skills:         []string{"diagnosis", "empathy", "decision making", "attention to detail"},
			Industries:     []string{"healthcare"},
			SalaryRange:    models.SalaryRange{Min: 900000, Max: 3000000},
			GrowthRate:     7,
			EducationLevel: "Professional degree",
			JobOutlook:     "Excellent",
		},
		{
			Title:          "Engineer",
			Description:    "Applies science and mathematics to design and build practical solutions.",
			Requirements:   []string{"Bachelor's degree in engineering"},
			Skills:         []string{"mathematics", "problem solving", "analysis", "planning"},
			Industries:     []string{"engineering", "manufacturing", "construction"},
			SalaryRange:    models.SalaryRange{Min: 500000, Max: 1600000},
			GrowthRate:     6,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Good",
		},
		{
			Title:          "Graphic Designer",
			Description:    "Creates visual concepts that communicate ideas to audiences.",
			Requirements:   []string{"Design portfolio"},
			Skills:         []string{"design", "creativity", "art", "communication"},
			Industries:     []string{"media", "advertising", "technology"},
			SalaryRange:    models.SalaryRange{Min: 300000, Max: 1200000},
			GrowthRate:     3,
			EducationLevel: "Diploma",
			JobOutlook:     "Stable",
		},
		{
			Title:          "Writer/Author",
			Description:    "Writes books, articles and scripts for print and digital media.",
			Requirements:   []string{"Strong writing portfolio"},
			Skills:         []string{"writing", "storytelling", "creativity", "research"},
			Industries:     []string{"media", "publishing"},
			SalaryRange:    models.SalaryRange{Min: 200000, Max: 1500000},
			GrowthRate:     4,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Stable",
		},
		{
			Title:          "Architect",
			Description:    "Plans and designs buildings that are safe, functional and beautiful.",
			Requirements:   []string{"B.Arch degree", "Council of Architecture registration"},
			Skills:         []string{"design", "creativity", "planning", "mathematics"},
			Industries:     []string{"construction", "real estate"},
			SalaryRange:    models.SalaryRange{Min: 400000, Max: 1800000},
			GrowthRate:     5,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Good",
		},
		{
			Title:          "Film Director",
			Description:    "Leads the creative vision of film and video productions.",
			Requirements:   []string{"Film school or equivalent experience"},
			Skills:         []string{"storytelling", "leadership", "creativity", "improvisation"},
			Industries:     []string{"media", "entertainment"},
			SalaryRange:    models.SalaryRange{Min: 300000, Max: 5000000},
			GrowthRate:     6,
			EducationLevel: "Diploma",
			JobOutlook:     "Competitive",
		},
		{
			Title:          "UX Designer",
			Description:    "Designs digital products around the needs of their users.",
			Requirements:   []string{"Design portfolio", "Knowledge of user research"},
			Skills:         []string{"design", "research", "empathy", "innovation"},
			Industries:     []string{"technology", "e-commerce"},
			SalaryRange:    models.SalaryRange{Min: 500000, Max: 2000000},
			GrowthRate:     13,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Excellent",
		},
		{
			Title:          "IAS Officer",
			Description:    "Administers government policy as a member of the civil service.",
			Requirements:   []string{"Bachelor's degree", "UPSC Civil Services Examination"},
			Skills:         []string{"leadership", "decision making", "law", "communication"},
			Industries:     []string{"government", "public administration"},
			SalaryRange:    models.SalaryRange{Min: 700000, Max: 2500000},
			GrowthRate:     2,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Competitive",
		},
		{
			Title:          "Business Manager",
			Description:    "Oversees operations, people and budgets of a business unit.",
			Requirements:   []string{"MBA preferred"},
			Skills:         []string{"management", "leadership", "strategy", "negotiation"},
			Industries:     []string{"business", "retail", "finance"},
			SalaryRange:    models.SalaryRange{Min: 600000, Max: 2500000},
			GrowthRate:     7,
			EducationLevel: "Master's",
			JobOutlook:     "Good",
		},
		{
			Title:          "Entrepreneur",
			Description:    "Builds and runs new ventures, taking on financial risk.",
			Requirements:   []string{"Business idea", "Risk tolerance"},
			Skills:         []string{"entrepreneurship", "sales", "adaptability", "strategy"},
			Industries:     []string{"business", "technology"},
			SalaryRange:    models.SalaryRange{Min: 0, Max: 10000000},
			GrowthRate:     10,
			EducationLevel: "Any",
			JobOutlook:     "Variable",
		},
		{
			Title:          "HR Director",
			Description:    "Leads hiring, development and wellbeing of an organisation's people.",
			Requirements:   []string{"Degree in HR or business", "Management experience"},
			Skills:         []string{"communication", "empathy", "negotiation", "management"},
			Industries:     []string{"business", "consulting"},
			SalaryRange:    models.SalaryRange{Min: 800000, Max: 3000000},
			GrowthRate:     6,
			EducationLevel: "Master's",
			JobOutlook:     "Good",
		},
		{
			Title:          "Teacher/Professor",
			Description:    "Educates students and mentors them through their studies.",
			Requirements:   []string{"B.Ed or postgraduate degree"},
			Skills:         []string{"teaching", "communication", "empathy", "planning"},
			Industries:     []string{"education", "academia"},
			SalaryRange:    models.SalaryRange{Min: 300000, Max: 1500000},
			GrowthRate:     5,
			EducationLevel: "Master's",
			JobOutlook:     "Stable",
		},
		{
			Title:          "Software Engineer",
			Description:    "Designs, builds and maintains software systems.",
			Requirements:   []string{"Degree in computer science or equivalent experience"},
			Skills:         []string{"programming", "problem solving", "teamwork", "engineering"},
			Industries:     []string{"technology", "finance", "e-commerce"},
			SalaryRange:    models.SalaryRange{Min: 600000, Max: 3000000},
			GrowthRate:     25,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Excellent",
		},
		{
			Title:          "Mechanical Engineer",
			Description:    "Designs and tests mechanical devices and thermal systems.",
			Requirements:   []string{"Bachelor's degree in mechanical engineering"},
			Skills:         []string{"engineering", "mathematics", "problem solving", "maintenance"},
			Industries:     []string{"manufacturing", "automotive", "energy"},
			SalaryRange:    models.SalaryRange{Min: 400000, Max: 1500000},
			GrowthRate:     4,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Stable",
		},
		{
			Title:          "Robotics Engineer",
			Description:    "Builds robots and automated systems for industry and research.",
			Requirements:   []string{"Degree in mechatronics, electronics or computer science"},
			Skills:         []string{"programming", "engineering", "innovation", "problem solving"},
			Industries:     []string{"manufacturing", "technology", "healthcare"},
			SalaryRange:    models.SalaryRange{Min: 600000, Max: 2200000},
			GrowthRate:     12,
			EducationLevel: "Bachelor's",
			JobOutlook:     "Excellent",
		},
		{
			Title:          "Electrician",
			Description:    "Installs and repairs electrical wiring and equipment.",
			Requirements:   []string{"ITI certificate", "Electrical licence"},
			Skills:         []string{"maintenance", "problem solving", "safety", "process"},
			Industries:     []string{"construction", "energy"},
			SalaryRange:    models.SalaryRange{Min: 200000, Max: 800000},
			GrowthRate:     7,
			EducationLevel: "Vocational",
			JobOutlook:     "Good",
		},
		{
			Title:          "Surgeon",
			Description:    "Performs operations to treat injury and disease.",
			Requirements:   []string{"MBBS", "Surgical residency"},
			Skills:         []string{"precision", "decision making", "attention to detail", "teamwork"},
			Industries:     []string{"healthcare"},
			SalaryRange:    models.SalaryRange{Min: 1500000, Max: 6000000},
			GrowthRate:     6,
			EducationLevel: "Professional degree",
			JobOutlook:     "Excellent",
		},
	}
	return seed
}
