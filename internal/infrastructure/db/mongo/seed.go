package mongo

import "github.com/ecodot/clubhub/internal/core/domain"

// Reference catalog inserted by CatalogRepository.Seed on first startup.

var majorSeed = []interface{}{
	domain.Major{Idx: 0, Name: "Mechanical Engineering"},
	domain.Major{Idx: 1, Name: "Aerospace Engineering"},
	domain.Major{Idx: 2, Name: "Naval Architecture and Ocean Engineering"},
	domain.Major{Idx: 3, Name: "Industrial Management Engineering"},
	domain.Major{Idx: 4, Name: "Chemical Engineering"},
	domain.Major{Idx: 5, Name: "Polymer Science and Engineering"},
	domain.Major{Idx: 6, Name: "Materials Science and Engineering"},
	domain.Major{Idx: 7, Name: "Civil Infrastructure Engineering"},
	domain.Major{Idx: 8, Name: "Environmental Engineering"},
	domain.Major{Idx: 9, Name: "Geoinformatics"},
	domain.Major{Idx: 10, Name: "Architectural Engineering"},
	domain.Major{Idx: 11, Name: "Architecture"},
	domain.Major{Idx: 12, Name: "Energy Resources Engineering"},
	domain.Major{Idx: 13, Name: "Electrical Engineering"},
	domain.Major{Idx: 14, Name: "Electronic Engineering"},
	domain.Major{Idx: 15, Name: "Information and Communication Engineering"},
	domain.Major{Idx: 16, Name: "Semiconductor Systems Engineering"},
	domain.Major{Idx: 17, Name: "Mathematics"},
	domain.Major{Idx: 18, Name: "Statistics"},
	domain.Major{Idx: 19, Name: "Physics"},
	domain.Major{Idx: 20, Name: "Chemistry"},
	domain.Major{Idx: 21, Name: "Ocean Sciences"},
	domain.Major{Idx: 22, Name: "Food and Nutrition"},
	domain.Major{Idx: 23, Name: "Business Administration"},
	domain.Major{Idx: 24, Name: "Global Finance"},
	domain.Major{Idx: 25, Name: "Asia Pacific Logistics"},
	domain.Major{Idx: 26, Name: "International Trade"},
	domain.Major{Idx: 27, Name: "Public Administration"},
	domain.Major{Idx: 28, Name: "Political Science and Diplomacy"},
	domain.Major{Idx: 29, Name: "Media and Communication"},
	domain.Major{Idx: 30, Name: "Economics"},
	domain.Major{Idx: 31, Name: "Social Welfare"},
	domain.Major{Idx: 32, Name: "Korean Language and Literature"},
	domain.Major{Idx: 33, Name: "History"},
	domain.Major{Idx: 34, Name: "Philosophy"},
	domain.Major{Idx: 35, Name: "English Language and Literature"},
	domain.Major{Idx: 36, Name: "Cultural Content Management"},
	domain.Major{Idx: 37, Name: "Nursing"},
	domain.Major{Idx: 38, Name: "Mechatronics Engineering"},
	domain.Major{Idx: 39, Name: "Software Convergence Engineering"},
	domain.Major{Idx: 40, Name: "Fine Arts"},
	domain.Major{Idx: 41, Name: "Design Convergence"},
	domain.Major{Idx: 42, Name: "Sport Science"},
	domain.Major{Idx: 43, Name: "Theatre and Film"},
	domain.Major{Idx: 44, Name: "Artificial Intelligence Engineering"},
	domain.Major{Idx: 45, Name: "Data Science"},
	domain.Major{Idx: 46, Name: "Smart Mobility Engineering"},
	domain.Major{Idx: 47, Name: "Computer Engineering"},
	domain.Major{Idx: 48, Name: "Biological Engineering"},
	domain.Major{Idx: 49, Name: "Life Sciences"},
}

var belongSeed = []interface{}{
	domain.Belong{Idx: 0, Name: "Central"},
	domain.Belong{Idx: 1, Name: "College of Engineering"},
	domain.Belong{Idx: 2, Name: "College of Natural Sciences"},
	domain.Belong{Idx: 3, Name: "College of Business"},
	domain.Belong{Idx: 4, Name: "College of Social Sciences"},
	domain.Belong{Idx: 5, Name: "College of Humanities"},
	domain.Belong{Idx: 6, Name: "College of Arts and Sports"},
}

var bigCategorySeed = []interface{}{
	domain.BigCategory{Idx: 0, Name: "Academic"},
	domain.BigCategory{Idx: 1, Name: "Culture and Arts"},
	domain.BigCategory{Idx: 2, Name: "Sports"},
	domain.BigCategory{Idx: 3, Name: "Volunteering"},
	domain.BigCategory{Idx: 4, Name: "Religion"},
	domain.BigCategory{Idx: 5, Name: "Hobby"},
}

var smallCategorySeed = []interface{}{
	domain.SmallCategory{Idx: 0, Name: "Programming"},
	domain.SmallCategory{Idx: 1, Name: "Robotics"},
	domain.SmallCategory{Idx: 2, Name: "Debate"},
	domain.SmallCategory{Idx: 3, Name: "Band"},
	domain.SmallCategory{Idx: 4, Name: "Photography"},
	domain.SmallCategory{Idx: 5, Name: "Dance"},
	domain.SmallCategory{Idx: 6, Name: "Soccer"},
	domain.SmallCategory{Idx: 7, Name: "Basketball"},
	domain.SmallCategory{Idx: 8, Name: "Climbing"},
	domain.SmallCategory{Idx: 9, Name: "Community Service"},
	domain.SmallCategory{Idx: 10, Name: "Board Games"},
	domain.SmallCategory{Idx: 11, Name: "Reading"},
}
